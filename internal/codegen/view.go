package codegen

import (
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"
)

// member kinds that select the accessor family in templates
const (
	accessPointer = "pointer"
	accessValue   = "value"
	accessList    = "list"
)

// memberView carries the Go expressions a template needs for one member.
// Expressions are written from inside the shape's methods, where the
// receiver is s and the other operand of Equal is o. FieldType is the
// struct field type; ValueType is what With takes, the element type for
// lists.
type memberView struct {
	Owner     string
	Name      string
	Field     string
	Doc       string
	Access    string
	FieldType string
	ValueType string
	Equal     string
	Hash      string
	Print     []string
	Marshal   []string
}

type shapeView struct {
	Name    string
	Doc     string
	Input   bool
	OpName  string
	DryRun  bool
	Fields  []string
	Members []memberView
}

// Go expressions in generated code reference the types package through
// this qualifier when rendered into the operations package.
func qualify(qual, name string) string {
	if qual == "" {
		return name
	}
	return qual + "." + name
}

func fieldName(name string) string {
	r, n := utf8.DecodeRuneInString(name)
	f := string(unicode.ToLower(r)) + name[n:]
	if token.IsKeyword(f) {
		f += "Value"
	}
	return f
}

func lowerFirst(name string) string {
	r, n := utf8.DecodeRuneInString(name)
	return string(unicode.ToLower(r)) + name[n:]
}

func newMemberView(m Member, qual, errReturn string) memberView {
	v := memberView{
		Name:  m.Name,
		Field: fieldName(m.Name),
		Doc:   strings.TrimSpace(m.Doc),
	}
	if v.Doc == "" {
		v.Doc = "the " + m.Name + " member."
	}
	f := "s." + v.Field
	of := "o." + v.Field
	key := `object.Key("` + m.QueryName() + `")`
	flat := `object.FlatKey("` + m.QueryName() + `")`

	var elem, elemEqual, elemHash, elemString string
	switch m.Kind() {
	case TypeString:
		elem = "string"
		elemEqual = "shape.EqualValue[string]"
		elemHash = "shape.StringHash"
	case TypeBoolean:
		elem = "bool"
	case TypeInteger:
		elem = "int32"
	case TypeLong:
		elem = "int64"
	case TypeTimestamp:
		elem = "time.Time"
	case TypeBlob:
		elem = "[]byte"
	case TypeEnum:
		elem = qualify(qual, m.Target)
		elemEqual = "shape.EqualValue[" + elem + "]"
		elemHash = "shape.HashEnum[" + elem + "]"
		elemString = elem + ".String"
	case TypeStructure:
		elem = "*" + qualify(qual, m.Target)
		elemEqual = "(" + elem + ").Equal"
		elemHash = "(" + elem + ").Hash"
		elemString = "(" + elem + ").String"
	}

	if m.Type == TypeList {
		v.Access = accessList
		v.FieldType = "shape.List[" + elem + "]"
		v.ValueType = elem
		v.Equal = "shape.EqualList(" + f + ", " + of + ", " + elemEqual + ")"
		v.Hash = "shape.HashList(" + f + ", " + elemHash + ")"
		switch {
		case m.Sensitive:
			v.Print = []string{`p.Sensitive("` + m.Name + `", ` + f + `.IsSet())`}
		case m.Element == TypeString:
			v.Print = []string{`p.Strings("` + m.Name + `", ` + f + `)`}
		default:
			v.Print = []string{`shape.PrintList(p, "` + m.Name + `", ` + f + `, ` + elemString + `)`}
		}
		switch m.Element {
		case TypeString:
			v.Marshal = []string{"shape.MarshalQueryStrings(" + f + ", " + flat + ")"}
		case TypeEnum:
			v.Marshal = []string{"shape.MarshalQueryEnums(" + f + ", " + flat + ")"}
		default:
			v.Marshal = []string{
				"if err := shape.MarshalQueryList(" + f + ", " + flat + "); err != nil {",
				"\treturn " + errReturn,
				"}",
			}
		}
		return v
	}

	switch m.Type {
	case TypeEnum:
		v.Access = accessValue
		v.FieldType = elem
		v.ValueType = elem
		v.Equal = f + " == " + of
		v.Hash = "shape.HashEnum(" + f + ")"
		v.Print = []string{`p.Enum("` + m.Name + `", string(` + f + `))`}
		v.Marshal = []string{
			"if " + f + ` != "" {`,
			"\t" + key + ".String(string(" + f + "))",
			"}",
		}
		if m.Sensitive {
			v.Print = []string{`p.Sensitive("` + m.Name + `", ` + f + ` != "")`}
		}
		return v
	case TypeStructure:
		v.Access = accessValue
		v.FieldType = elem
		v.ValueType = elem
		v.Equal = f + ".Equal(" + of + ")"
		v.Hash = f + ".Hash()"
		v.Print = []string{
			"if " + f + " != nil {",
			"\t" + `p.Field("` + m.Name + `", ` + f + ".String())",
			"}",
		}
		v.Marshal = []string{
			"if err := " + f + ".MarshalQuery(" + key + "); err != nil {",
			"\treturn " + errReturn,
			"}",
		}
	case TypeBlob:
		v.Access = accessValue
		v.FieldType = elem
		v.ValueType = elem
		v.Equal = "shape.EqualBytes(" + f + ", " + of + ")"
		v.Hash = "shape.HashBytes(" + f + ")"
		v.Print = []string{`p.Bytes("` + m.Name + `", ` + f + `)`}
		v.Marshal = []string{
			"if " + f + " != nil {",
			"\t" + key + ".Base64EncodeBytes(" + f + ")",
			"}",
		}
	default:
		v.Access = accessPointer
		v.FieldType = "*" + elem
		v.ValueType = elem
		var printer, hasher, encode string
		switch m.Type {
		case TypeString:
			printer, hasher, encode = "Str", "HashString", ".String(*"+f+")"
		case TypeBoolean:
			printer, hasher, encode = "Bool", "HashBool", ".Boolean(*"+f+")"
		case TypeInteger:
			printer, hasher, encode = "Int32", "HashInt32", ".Integer(*"+f+")"
		case TypeLong:
			printer, hasher, encode = "Int64", "HashInt64", ".Long(*"+f+")"
		case TypeTimestamp:
			printer, hasher, encode = "Time", "HashTime", ".String(smithytime.FormatDateTime(*"+f+"))"
		}
		if m.Type == TypeTimestamp {
			v.Equal = "shape.EqualTime(" + f + ", " + of + ")"
		} else {
			v.Equal = "shape.EqualPtr(" + f + ", " + of + ")"
		}
		v.Hash = "shape." + hasher + "(" + f + ")"
		v.Print = []string{`p.` + printer + `("` + m.Name + `", ` + f + `)`}
		v.Marshal = []string{
			"if " + f + " != nil {",
			"\t" + key + encode,
			"}",
		}
	}
	if m.Sensitive {
		v.Print = []string{`p.Sensitive("` + m.Name + `", ` + f + ` != nil)`}
	}
	return v
}

func newShapeView(name, doc string, members []Member, qual, errReturn string) shapeView {
	v := shapeView{Name: name, Doc: strings.TrimSpace(doc)}
	for _, m := range members {
		mv := newMemberView(m, qual, errReturn)
		mv.Owner = name
		v.Members = append(v.Members, mv)
	}
	return v
}

// fields lays out the struct body; an empty entry is a blank line.
func (v *shapeView) fields() {
	v.Fields = nil
	if v.Input {
		v.Fields = append(v.Fields, "request.Metadata")
		if len(v.Members) > 0 {
			v.Fields = append(v.Fields, "")
		}
	}
	for _, m := range v.Members {
		v.Fields = append(v.Fields, m.Field+" "+m.FieldType)
	}
}

type enumValueView struct {
	Const string
	Value string
}

type enumView struct {
	Name   string
	Doc    string
	Table  string
	Values []enumValueView
}

func newEnumView(e Enum) enumView {
	v := enumView{
		Name:  e.Name,
		Doc:   strings.TrimSpace(e.Doc),
		Table: lowerFirst(e.Name) + "Table",
	}
	if v.Doc == "" {
		v.Doc = "is the EC2 " + e.Name + " enum."
	}
	for _, ev := range e.Values {
		v.Values = append(v.Values, enumValueView{Const: e.Name + ev.Name, Value: ev.Value})
	}
	return v
}
