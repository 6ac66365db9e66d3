package codegen

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"regexp"
	"sort"
	"strings"
	"text/template"
)

// DefaultModule is the import path generated code lives under.
const DefaultModule = "github.com/yairfalse/ec2model"

const header = "// Code generated by ec2gen. DO NOT EDIT.\n\n"

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// File is one rendered source file. Path is slash separated and relative
// to the module root.
type File struct {
	Path    string
	Content []byte
}

type importSpec struct {
	name string
	path string
	std  bool
}

func importsFor(module string) map[string]importSpec {
	return map[string]importSpec{
		"bytes":      {path: "bytes", std: true},
		"slices":     {path: "slices", std: true},
		"time":       {path: "time", std: true},
		"url":        {path: "net/url", std: true},
		"query":      {path: "github.com/aws/aws-sdk-go-v2/aws/protocol/query"},
		"smithytime": {name: "smithytime", path: "github.com/aws/smithy-go/time"},
		"enum":       {path: module + "/pkg/enum"},
		"request":    {path: module + "/pkg/request"},
		"shape":      {path: module + "/pkg/shape"},
		"types":      {path: module + "/ec2/types"},
	}
}

var qualifierRE = regexp.MustCompile(`(?:^|[^\w.])([a-z]+)\.[A-Z]`)

type opView struct {
	Input  shapeView
	Output shapeView
}

// Render produces every generated file for def. Output is gofmt formatted
// and sorted by path.
func Render(def *Definition, module string) ([]File, error) {
	if module == "" {
		module = DefaultModule
	}
	imports := importsFor(module)

	enums := make([]enumView, 0, len(def.Enums))
	for _, e := range def.Enums {
		enums = append(enums, newEnumView(e))
	}

	shapes := make([]shapeView, 0, len(def.Shapes))
	for _, s := range def.Shapes {
		v := newShapeView(s.Name, s.Doc, s.Members, "", "err")
		v.fields()
		shapes = append(shapes, v)
	}

	var ops []opView
	var dryRun []shapeView
	for _, op := range def.Operations {
		in := newShapeView(op.Name+"Input", inputDoc(op), op.Input, "types", "nil, err")
		in.Input = true
		in.OpName = op.Name
		in.DryRun = op.DryRun
		in.fields()
		out := newShapeView(op.Name+"Output", "holds the result of "+op.Name+".", op.Output, "types", "nil, err")
		out.fields()
		ops = append(ops, opView{Input: in, Output: out})
		if op.DryRun {
			dryRun = append(dryRun, in)
		}
	}

	var marshalled []shapeView
	for _, name := range def.queryShapes() {
		for _, v := range shapes {
			if v.Name == name {
				marshalled = append(marshalled, v)
			}
		}
	}

	var files []File
	add := func(file, pkg, tmpl string, data any) error {
		src, err := renderFile(pkg, tmpl, data, imports)
		if err != nil {
			return fmt.Errorf("render %s: %w", file, err)
		}
		files = append(files, File{Path: file, Content: src})
		return nil
	}

	if err := add("ec2/types/enums.go", "types", "enums", enums); err != nil {
		return nil, err
	}
	if err := add("ec2/types/types.go", "types", "types", shapes); err != nil {
		return nil, err
	}
	registry := struct {
		Enums  []enumView
		Shapes []shapeView
	}{enums, shapes}
	if err := add("ec2/types/registry.go", "types", "typesRegistry", registry); err != nil {
		return nil, err
	}
	if err := add("ec2/types/marshal.go", "types", "marshal", marshalled); err != nil {
		return nil, err
	}
	for _, op := range ops {
		if err := add("ec2/api_op_"+op.Input.OpName+".go", "ec2", "operation", op); err != nil {
			return nil, err
		}
	}
	if err := add("ec2/registry.go", "ec2", "opsRegistry", ops); err != nil {
		return nil, err
	}
	serializers := struct {
		APIVersion string
		Inputs     []shapeView
	}{def.APIVersion, dryRun}
	if err := add("ec2/serializers.go", "ec2", "serializers", serializers); err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

func inputDoc(op Operation) string {
	doc := "holds the parameters of " + op.Name
	if op.Doc != "" {
		doc += ", which " + strings.TrimSpace(op.Doc)
	} else {
		doc += "."
	}
	return doc
}

func renderFile(pkg, tmpl string, data any, known map[string]importSpec) ([]byte, error) {
	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, tmpl, data); err != nil {
		return nil, err
	}

	var std, ext []importSpec
	seen := make(map[string]bool)
	for _, m := range qualifierRE.FindAllStringSubmatch(body.String(), -1) {
		spec, ok := known[m[1]]
		if !ok || seen[m[1]] || m[1] == pkg {
			continue
		}
		seen[m[1]] = true
		if spec.std {
			std = append(std, spec)
		} else {
			ext = append(ext, spec)
		}
	}

	var src bytes.Buffer
	src.WriteString(header)
	fmt.Fprintf(&src, "package %s\n\n", pkg)
	if len(std)+len(ext) > 0 {
		src.WriteString("import (\n")
		writeImports(&src, std)
		if len(std) > 0 && len(ext) > 0 {
			src.WriteString("\n")
		}
		writeImports(&src, ext)
		src.WriteString(")\n\n")
	}
	src.Write(body.Bytes())

	out, err := format.Source(src.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format: %w", err)
	}
	return out, nil
}

func writeImports(buf *bytes.Buffer, specs []importSpec) {
	sort.Slice(specs, func(i, j int) bool { return specs[i].path < specs[j].path })
	for _, s := range specs {
		if s.name != "" {
			fmt.Fprintf(buf, "\t%s %q\n", s.name, s.path)
		} else {
			fmt.Fprintf(buf, "\t%q\n", s.path)
		}
	}
}

// queryShapes returns, in definition order, the shapes reachable from the
// inputs of dry-run operations. Those shapes need query marshallers.
func (d *Definition) queryShapes() []string {
	need := make(map[string]bool)
	var visit func(members []Member)
	visit = func(members []Member) {
		for _, m := range members {
			if m.Kind() != TypeStructure || need[m.Target] {
				continue
			}
			need[m.Target] = true
			if s, ok := d.shape(m.Target); ok {
				visit(s.Members)
			}
		}
	}
	for _, op := range d.Operations {
		if op.DryRun {
			visit(op.Input)
		}
	}

	var names []string
	for _, s := range d.Shapes {
		if need[s.Name] {
			names = append(names, s.Name)
		}
	}
	return names
}
