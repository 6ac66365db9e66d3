package codegen

import (
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderDemo(t *testing.T) map[string]string {
	t.Helper()

	def, err := Parse([]byte(demoDefinition))
	require.NoError(t, err)
	files, err := Render(def, "example.com/demo")
	require.NoError(t, err)

	out := make(map[string]string, len(files))
	for _, f := range files {
		out[f.Path] = string(f.Content)
	}
	return out
}

func TestRender_Files(t *testing.T) {
	def, err := Parse([]byte(demoDefinition))
	require.NoError(t, err)
	files, err := Render(def, "example.com/demo")
	require.NoError(t, err)

	var paths []string
	for _, f := range files {
		paths = append(paths, f.Path)
	}
	want := []string{
		"ec2/api_op_ListWalls.go",
		"ec2/api_op_PaintWall.go",
		"ec2/registry.go",
		"ec2/serializers.go",
		"ec2/types/enums.go",
		"ec2/types/marshal.go",
		"ec2/types/registry.go",
		"ec2/types/types.go",
	}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Errorf("rendered paths mismatch (-want +got):\n%s", diff)
	}

	for _, f := range files {
		t.Run(f.Path, func(t *testing.T) {
			assert.True(t, strings.HasPrefix(string(f.Content), header))

			formatted, err := format.Source(f.Content)
			require.NoError(t, err)
			assert.Equal(t, string(formatted), string(f.Content))

			_, err = parser.ParseFile(token.NewFileSet(), f.Path, f.Content, parser.ParseComments)
			require.NoError(t, err)
		})
	}
}

func TestRender_Enums(t *testing.T) {
	src := renderDemo(t)["ec2/types/enums.go"]

	assert.Contains(t, src, "package types")
	assert.Contains(t, src, `"example.com/demo/pkg/enum"`)
	assert.Contains(t, src, "type Color string")
	assert.Contains(t, src, `ColorLightBlue Color = "light-blue"`)
	assert.Contains(t, src, "var colorTable = enum.NewTable(")
	assert.Contains(t, src, "func ParseColor(s string) (Color, error) { return colorTable.Parse(s) }")
}

func TestRender_Operations(t *testing.T) {
	files := renderDemo(t)

	paint := declNames(t, "paint.go", files["ec2/api_op_PaintWall.go"])
	for _, name := range []string{
		"PaintWallInput",
		"PaintWallInput.OperationName",
		"PaintWallInput.DryRunRequest",
		"PaintWallInput.Labels",
		"PaintWallInput.HasLabels",
		"PaintWallInput.WithWallIds",
		"PaintWallInput.Type",
		"PaintWallInput.Clone",
		"PaintWallOutput.PaintedAt",
		"PaintWallOutput.Equal",
	} {
		assert.Contains(t, paint, name)
	}
	assert.NotContains(t, paint, "PaintWallOutput.OperationName")

	src := files["ec2/api_op_PaintWall.go"]
	assert.Contains(t, src, `"example.com/demo/ec2/types"`)
	assert.Contains(t, src, "typeValue *string")
	assert.Contains(t, src, "request.Metadata")

	list := declNames(t, "list.go", files["ec2/api_op_ListWalls.go"])
	assert.Contains(t, list, "ListWallsInput.OperationName")
	assert.NotContains(t, list, "ListWallsInput.DryRunRequest")

	reg := files["ec2/registry.go"]
	assert.Contains(t, reg, `"PaintWall",`)
	assert.Contains(t, reg, `shape.Register("ListWallsOutput"`)
}

func TestRender_Serializers(t *testing.T) {
	files := renderDemo(t)

	src := files["ec2/serializers.go"]
	assert.Contains(t, src, `const apiVersion = "2020-01-01"`)
	assert.Contains(t, src, "func marshalPaintWallInput(s *PaintWallInput) (*request.WireRequest, error) {")
	assert.Contains(t, src, `object.Key("Action").String("PaintWall")`)
	assert.Contains(t, src, `shape.MarshalQueryStrings(s.wallIds, object.FlatKey("WallId"))`)
	assert.Contains(t, src, `shape.MarshalQueryList(s.labels, object.FlatKey("Label"))`)
	assert.NotContains(t, src, "marshalListWallsInput")

	marshal := files["ec2/types/marshal.go"]
	assert.Contains(t, marshal, "func (s *Label) MarshalQuery(value query.Value) error {")

	types := files["ec2/types/types.go"]
	assert.Contains(t, types, `p.Sensitive("Secret", s.secret != nil)`)
}

func TestRender_Deterministic(t *testing.T) {
	a := renderDemo(t)
	b := renderDemo(t)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("render is not deterministic (-first +second):\n%s", diff)
	}
}

func TestRender_DefaultModule(t *testing.T) {
	def, err := Parse([]byte(demoDefinition))
	require.NoError(t, err)
	files, err := Render(def, "")
	require.NoError(t, err)

	for _, f := range files {
		if f.Path == "ec2/types/types.go" {
			assert.Contains(t, string(f.Content), `"`+DefaultModule+`/pkg/shape"`)
			return
		}
	}
	t.Fatal("types.go not rendered")
}

// The checked-in EC2 packages must declare exactly what the definition
// renders to.
func TestRender_EC2MatchesCheckedIn(t *testing.T) {
	def, err := Load("../../api/ec2.yaml")
	require.NoError(t, err)
	files, err := Render(def, DefaultModule)
	require.NoError(t, err)

	for _, f := range files {
		t.Run(f.Path, func(t *testing.T) {
			onDisk, err := os.ReadFile(filepath.Join("..", "..", filepath.FromSlash(f.Path)))
			require.NoError(t, err)

			want := declNames(t, f.Path, f.Content)
			got := declNames(t, f.Path, onDisk)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("%s is stale, run go generate ./ec2 (-rendered +on disk):\n%s", f.Path, diff)
			}
		})
	}
}

func declNames(t *testing.T, name string, src any) []string {
	t.Helper()

	f, err := parser.ParseFile(token.NewFileSet(), name, src, 0)
	require.NoError(t, err)

	var names []string
	for _, d := range f.Decls {
		switch d := d.(type) {
		case *ast.FuncDecl:
			if d.Recv != nil && len(d.Recv.List) > 0 {
				names = append(names, receiverName(d.Recv.List[0].Type)+"."+d.Name.Name)
				continue
			}
			names = append(names, d.Name.Name)
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.TypeSpec:
					names = append(names, s.Name.Name)
				case *ast.ValueSpec:
					for _, n := range s.Names {
						names = append(names, n.Name)
					}
				}
			}
		}
	}
	return names
}

func receiverName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.StarExpr:
		return receiverName(e.X)
	case *ast.Ident:
		return e.Name
	}
	return ""
}
