// Package codegen renders the EC2 model packages from a YAML service
// definition.
package codegen

// Member types accepted in a definition.
const (
	TypeString    = "string"
	TypeBoolean   = "boolean"
	TypeInteger   = "integer"
	TypeLong      = "long"
	TypeTimestamp = "timestamp"
	TypeBlob      = "blob"
	TypeEnum      = "enum"
	TypeStructure = "structure"
	TypeList      = "list"
)

// Definition is the root of a service definition file.
type Definition struct {
	Service    string      `yaml:"service"`
	APIVersion string      `yaml:"api_version"`
	Enums      []Enum      `yaml:"enums"`
	Shapes     []Shape     `yaml:"shapes"`
	Operations []Operation `yaml:"operations"`
}

// Enum is a string-backed enumeration.
type Enum struct {
	Name   string      `yaml:"name"`
	Doc    string      `yaml:"doc"`
	Values []EnumValue `yaml:"values"`
}

// EnumValue is one variant: Name is appended to the enum name to form
// the Go constant, Value is the wire string.
type EnumValue struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Shape is a nested structure.
type Shape struct {
	Name    string   `yaml:"name"`
	Doc     string   `yaml:"doc"`
	Members []Member `yaml:"members"`
}

// Operation is an API call with its input and output members.
type Operation struct {
	Name   string   `yaml:"name"`
	Doc    string   `yaml:"doc"`
	DryRun bool     `yaml:"dry_run"`
	Input  []Member `yaml:"input"`
	Output []Member `yaml:"output"`
}

// Member is a field of a shape, input or output.
type Member struct {
	Name      string `yaml:"name"`
	Type      string `yaml:"type"`
	Target    string `yaml:"target,omitempty"`
	Element   string `yaml:"element,omitempty"`
	Location  string `yaml:"location,omitempty"`
	Sensitive bool   `yaml:"sensitive,omitempty"`
	Doc       string `yaml:"doc,omitempty"`
}

// QueryName returns the name the member is serialized under.
func (m Member) QueryName() string {
	if m.Location != "" {
		return m.Location
	}
	return m.Name
}

// Kind returns the member type, or the element type for lists.
func (m Member) Kind() string {
	if m.Type == TypeList {
		return m.Element
	}
	return m.Type
}

func (d *Definition) shape(name string) (Shape, bool) {
	for _, s := range d.Shapes {
		if s.Name == name {
			return s, true
		}
	}
	return Shape{}, false
}
