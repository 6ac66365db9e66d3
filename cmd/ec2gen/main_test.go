package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yairfalse/ec2model/internal/codegen"
)

func sampleFiles() []codegen.File {
	return []codegen.File{
		{Path: "ec2/a.go", Content: []byte("package ec2\n")},
		{Path: "ec2/types/b.go", Content: []byte("package types\n")},
	}
}

func TestWriteFiles(t *testing.T) {
	root := t.TempDir()

	written, err := writeFiles(root, sampleFiles())
	require.NoError(t, err)
	assert.Equal(t, 2, written)

	data, err := os.ReadFile(filepath.Join(root, "ec2", "types", "b.go"))
	require.NoError(t, err)
	assert.Equal(t, "package types\n", string(data))

	written, err = writeFiles(root, sampleFiles())
	require.NoError(t, err)
	assert.Zero(t, written, "unchanged files are not rewritten")
}

func TestCheckFiles(t *testing.T) {
	root := t.TempDir()
	_, err := writeFiles(root, sampleFiles())
	require.NoError(t, err)

	stale, err := checkFiles(root, sampleFiles())
	require.NoError(t, err)
	assert.Empty(t, stale)

	require.NoError(t, os.WriteFile(filepath.Join(root, "ec2", "a.go"), []byte("package old\n"), 0o600))
	require.NoError(t, os.Remove(filepath.Join(root, "ec2", "types", "b.go")))

	stale, err = checkFiles(root, sampleFiles())
	require.NoError(t, err)
	assert.Equal(t, []string{"ec2/a.go", "ec2/types/b.go"}, stale)
}

func TestRunGenerate(t *testing.T) {
	root := t.TempDir()
	defer resetFlags()

	var out bytes.Buffer
	rootCmd.SetOut(&out)

	rootCmd.SetArgs([]string{"--definition", "../../api/ec2.yaml", "--out", root, "--module", "example.com/ec2"})
	require.NoError(t, rootCmd.Execute())
	assert.FileExists(t, filepath.Join(root, "ec2", "api_op_DeleteVolume.go"))
	assert.FileExists(t, filepath.Join(root, "ec2", "types", "enums.go"))

	rootCmd.SetArgs([]string{"--definition", "../../api/ec2.yaml", "--out", root, "--module", "example.com/ec2", "--check"})
	require.NoError(t, rootCmd.Execute())
	assert.Empty(t, out.String())

	require.NoError(t, os.WriteFile(filepath.Join(root, "ec2", "registry.go"), []byte("package ec2\n"), 0o600))
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 generated files are stale")
	assert.Equal(t, "ec2/registry.go\n", out.String())
}

func TestRunGenerate_BadDefinition(t *testing.T) {
	defer resetFlags()

	rootCmd.SetArgs([]string{"--definition", filepath.Join(t.TempDir(), "missing.yaml")})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read definition")
}

func resetFlags() {
	definitionPath = "api/ec2.yaml"
	outDir = "."
	modulePath = codegen.DefaultModule
	checkOnly = false
	verbose = false
	rootCmd.SetArgs(nil)
	rootCmd.SetOut(nil)
}
