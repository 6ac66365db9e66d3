package codegen

import (
	"errors"
	"fmt"
	"go/token"
	"os"

	"gopkg.in/yaml.v3"
)

// Method names every generated shape declares; members may not use them.
var reservedMembers = map[string]bool{
	"ShapeName":       true,
	"Equal":           true,
	"Hash":            true,
	"String":          true,
	"Clone":           true,
	"MarshalQuery":    true,
	"Metadata":        true,
	"RequestMetadata": true,
	"OperationName":   true,
	"DryRunRequest":   true,
}

// Load reads and validates a service definition file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is intentional user input
	if err != nil {
		return nil, fmt.Errorf("read definition: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a service definition.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse definition: %w", err)
	}
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("invalid definition: %w", err)
	}
	return &def, nil
}

// Validate checks names, member types and references.
func (d *Definition) Validate() error {
	if d.Service == "" {
		return errors.New("service is required")
	}
	if d.APIVersion == "" {
		return errors.New("api_version is required")
	}

	types := make(map[string]string)
	declare := func(name, kind string) error {
		if !token.IsIdentifier(name) || !token.IsExported(name) {
			return fmt.Errorf("%s %q: name must be an exported Go identifier", kind, name)
		}
		if prev, ok := types[name]; ok {
			return fmt.Errorf("%s %q: already declared as %s", kind, name, prev)
		}
		types[name] = kind
		return nil
	}

	for _, e := range d.Enums {
		if err := declare(e.Name, TypeEnum); err != nil {
			return err
		}
		if err := validateEnum(e); err != nil {
			return err
		}
	}
	for _, s := range d.Shapes {
		if err := declare(s.Name, TypeStructure); err != nil {
			return err
		}
	}
	for _, s := range d.Shapes {
		if err := validateMembers(s.Name, s.Members, types); err != nil {
			return err
		}
	}

	ops := make(map[string]bool)
	for _, op := range d.Operations {
		if !token.IsIdentifier(op.Name) || !token.IsExported(op.Name) {
			return fmt.Errorf("operation %q: name must be an exported Go identifier", op.Name)
		}
		if ops[op.Name] {
			return fmt.Errorf("operation %q: declared twice", op.Name)
		}
		ops[op.Name] = true
		if err := validateMembers(op.Name+"Input", op.Input, types); err != nil {
			return err
		}
		if err := validateMembers(op.Name+"Output", op.Output, types); err != nil {
			return err
		}
	}
	return nil
}

func validateEnum(e Enum) error {
	if len(e.Values) == 0 {
		return fmt.Errorf("enum %q: no values", e.Name)
	}
	names := make(map[string]bool, len(e.Values))
	wires := make(map[string]bool, len(e.Values))
	for _, v := range e.Values {
		if !token.IsIdentifier(e.Name + v.Name) {
			return fmt.Errorf("enum %q: value name %q is not a Go identifier", e.Name, v.Name)
		}
		if v.Value == "" {
			return fmt.Errorf("enum %q: value %q has an empty wire string", e.Name, v.Name)
		}
		if names[v.Name] || wires[v.Value] {
			return fmt.Errorf("enum %q: duplicate value %q", e.Name, v.Value)
		}
		names[v.Name] = true
		wires[v.Value] = true
	}
	return nil
}

func validateMembers(owner string, members []Member, types map[string]string) error {
	seen := make(map[string]bool, len(members))
	for _, m := range members {
		if !token.IsIdentifier(m.Name) || !token.IsExported(m.Name) {
			return fmt.Errorf("%s.%s: name must be an exported Go identifier", owner, m.Name)
		}
		if reservedMembers[m.Name] {
			return fmt.Errorf("%s.%s: name is reserved", owner, m.Name)
		}
		if seen[m.Name] {
			return fmt.Errorf("%s.%s: declared twice", owner, m.Name)
		}
		seen[m.Name] = true

		kind := m.Type
		if m.Type == TypeList {
			switch m.Element {
			case TypeString, TypeEnum, TypeStructure:
			case "":
				return fmt.Errorf("%s.%s: list without element type", owner, m.Name)
			default:
				return fmt.Errorf("%s.%s: unsupported list element %q", owner, m.Name, m.Element)
			}
			kind = m.Element
		}

		switch kind {
		case TypeString, TypeBoolean, TypeInteger, TypeLong, TypeTimestamp, TypeBlob:
			if m.Target != "" {
				return fmt.Errorf("%s.%s: %s members take no target", owner, m.Name, kind)
			}
		case TypeEnum, TypeStructure:
			if got, ok := types[m.Target]; !ok || got != kind {
				return fmt.Errorf("%s.%s: unknown %s %q", owner, m.Name, kind, m.Target)
			}
		default:
			return fmt.Errorf("%s.%s: unknown type %q", owner, m.Name, m.Type)
		}
	}
	return nil
}
