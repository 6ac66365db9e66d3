package codegen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demoDefinition = `
service: demo
api_version: "2020-01-01"
enums:
  - name: Color
    doc: is the paint color.
    values:
      - {name: Red, value: red}
      - {name: LightBlue, value: light-blue}
shapes:
  - name: Label
    doc: is a key and value attached to a wall.
    members:
      - {name: Key, type: string, doc: the label key.}
      - {name: Color, type: enum, target: Color}
      - {name: Secret, type: string, sensitive: true}
operations:
  - name: PaintWall
    doc: paints a wall.
    dry_run: true
    input:
      - {name: Coats, type: integer}
      - {name: Labels, type: list, element: structure, target: Label, location: Label}
      - {name: Type, type: string}
      - {name: WallIds, type: list, element: string, location: WallId}
    output:
      - {name: Done, type: boolean}
      - {name: PaintedAt, type: timestamp}
  - name: ListWalls
    output:
      - {name: WallIds, type: list, element: string}
`

func TestParse(t *testing.T) {
	def, err := Parse([]byte(demoDefinition))
	require.NoError(t, err)

	assert.Equal(t, "demo", def.Service)
	assert.Equal(t, "2020-01-01", def.APIVersion)
	require.Len(t, def.Enums, 1)
	assert.Equal(t, "light-blue", def.Enums[0].Values[1].Value)
	require.Len(t, def.Operations, 2)
	assert.True(t, def.Operations[0].DryRun)
	assert.False(t, def.Operations[1].DryRun)

	labels := def.Operations[0].Input[1]
	assert.Equal(t, "Label", labels.QueryName())
	assert.Equal(t, TypeStructure, labels.Kind())
	assert.Equal(t, "Coats", def.Operations[0].Input[0].QueryName())
	assert.Equal(t, []string{"Label"}, def.queryShapes())
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "not yaml",
			yaml:    "service: [",
			wantErr: "parse definition",
		},
		{
			name:    "missing service",
			yaml:    `api_version: "1"`,
			wantErr: "service is required",
		},
		{
			name:    "missing api version",
			yaml:    "service: demo",
			wantErr: "api_version is required",
		},
		{
			name: "unexported shape",
			yaml: `service: demo
api_version: "1"
shapes:
  - name: label`,
			wantErr: `structure "label": name must be an exported Go identifier`,
		},
		{
			name: "enum and shape share a name",
			yaml: `service: demo
api_version: "1"
enums:
  - name: Color
    values: [{name: Red, value: red}]
shapes:
  - name: Color`,
			wantErr: `structure "Color": already declared as enum`,
		},
		{
			name: "enum without values",
			yaml: `service: demo
api_version: "1"
enums:
  - name: Color`,
			wantErr: `enum "Color": no values`,
		},
		{
			name: "duplicate wire value",
			yaml: `service: demo
api_version: "1"
enums:
  - name: Color
    values: [{name: Red, value: red}, {name: Crimson, value: red}]`,
			wantErr: `enum "Color": duplicate value "red"`,
		},
		{
			name: "empty wire value",
			yaml: `service: demo
api_version: "1"
enums:
  - name: Color
    values: [{name: Red}]`,
			wantErr: "empty wire string",
		},
		{
			name: "reserved member",
			yaml: `service: demo
api_version: "1"
shapes:
  - name: Label
    members: [{name: Hash, type: string}]`,
			wantErr: "Label.Hash: name is reserved",
		},
		{
			name: "unknown member type",
			yaml: `service: demo
api_version: "1"
shapes:
  - name: Label
    members: [{name: Key, type: float}]`,
			wantErr: `Label.Key: unknown type "float"`,
		},
		{
			name: "list without element",
			yaml: `service: demo
api_version: "1"
shapes:
  - name: Label
    members: [{name: Keys, type: list}]`,
			wantErr: "list without element type",
		},
		{
			name: "list of integers",
			yaml: `service: demo
api_version: "1"
shapes:
  - name: Label
    members: [{name: Sizes, type: list, element: integer}]`,
			wantErr: `unsupported list element "integer"`,
		},
		{
			name: "unresolved target",
			yaml: `service: demo
api_version: "1"
operations:
  - name: PaintWall
    input: [{name: Color, type: enum, target: Color}]`,
			wantErr: `PaintWallInput.Color: unknown enum "Color"`,
		},
		{
			name: "target of the wrong kind",
			yaml: `service: demo
api_version: "1"
enums:
  - name: Color
    values: [{name: Red, value: red}]
operations:
  - name: PaintWall
    output: [{name: Color, type: structure, target: Color}]`,
			wantErr: `PaintWallOutput.Color: unknown structure "Color"`,
		},
		{
			name: "scalar with target",
			yaml: `service: demo
api_version: "1"
shapes:
  - name: Label
    members: [{name: Key, type: string, target: Label}]`,
			wantErr: "string members take no target",
		},
		{
			name: "duplicate member",
			yaml: `service: demo
api_version: "1"
shapes:
  - name: Label
    members: [{name: Key, type: string}, {name: Key, type: string}]`,
			wantErr: "Label.Key: declared twice",
		},
		{
			name: "duplicate operation",
			yaml: `service: demo
api_version: "1"
operations:
  - name: PaintWall
  - name: PaintWall`,
			wantErr: `operation "PaintWall": declared twice`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(demoDefinition), 0o600))

	def, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", def.Service)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read definition")
}

func TestLoad_EC2Definition(t *testing.T) {
	def, err := Load("../../api/ec2.yaml")
	require.NoError(t, err)

	assert.Equal(t, "ec2", def.Service)
	assert.Equal(t, "2016-11-15", def.APIVersion)
	assert.Len(t, def.Operations, 13)

	var dryRun []string
	for _, op := range def.Operations {
		if op.DryRun {
			dryRun = append(dryRun, op.Name)
		}
	}
	assert.Equal(t, []string{
		"AttachVolume", "CreateRoute", "CreateTags", "CreateVolume", "DeleteRoute",
		"DeleteVolume", "DescribeVolumes", "ImportKeyPair", "StopInstances",
	}, dryRun)
	assert.Equal(t, []string{"Filter", "Tag", "TagSpecification"}, def.queryShapes())
}
