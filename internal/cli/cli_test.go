package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func writeDoc(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
	return path
}

func TestRunMerge(t *testing.T) {
	dir := t.TempDir()
	parent := writeDoc(t, dir, "parent.txt",
		"Parent summary.\n\nParameters\n----------\nx : int\n    Description of x.\ny : float\n    Description of y.")
	child := writeDoc(t, dir, "child.txt",
		"Child summary.\n\nParameters\n----------\ny : str\n    Overridden.")

	var out bytes.Buffer
	err := RunMerge(&out, &MergeConfig{
		ParentPath: parent,
		ChildPath:  child,
		Dialect:    "numpy",
		Params:     []string{"x", "y"},
		OutputPath: "-",
	})
	require.NoError(t, err)
	assert.Equal(t,
		"Child summary.\n\nParameters\n----------\nx : int\n    Description of x.\ny : str\n    Overridden.\n",
		out.String())
}

func TestRunMergeClassLevel(t *testing.T) {
	dir := t.TempDir()
	parent := writeDoc(t, dir, "parent.txt", "Parent summary.\n\nNotes\n-----\nParent notes.")
	child := writeDoc(t, dir, "child.txt", "Child summary.")
	outPath := filepath.Join(dir, "merged.txt")

	var out bytes.Buffer
	err := RunMerge(&out, &MergeConfig{
		ParentPath: parent,
		ChildPath:  child,
		Dialect:    "numpy",
		ClassLevel: true,
		OutputPath: outPath,
	})
	require.NoError(t, err)
	assert.Empty(t, out.String())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "Child summary.\n\nNotes\n-----\nParent notes.\n", string(data))
}

func TestRunMergeUnknownDialect(t *testing.T) {
	err := RunMerge(&bytes.Buffer{}, &MergeConfig{Dialect: "restructured"})
	assert.Error(t, err)
}

func TestRunCheck(t *testing.T) {
	dir := t.TempDir()
	parent := writeDoc(t, dir, "parent.txt", "Shared summary text.")
	identical := writeDoc(t, dir, "identical.txt", "Shared summary text.")
	distinct := writeDoc(t, dir, "distinct.txt", "Something else entirely.")

	t.Run("duplicates reported", func(t *testing.T) {
		var out bytes.Buffer
		err := RunCheck(&out, &CheckConfig{
			ParentPath: parent,
			ChildPath:  identical,
			Dialect:    "numpy",
			Threshold:  0.8,
		})
		assert.ErrorIs(t, err, ErrDuplicateSections)
		assert.Contains(t, out.String(), "Summary: 1.00")
	})

	t.Run("distinct docstrings pass", func(t *testing.T) {
		var out bytes.Buffer
		err := RunCheck(&out, &CheckConfig{
			ParentPath: parent,
			ChildPath:  distinct,
			Dialect:    "numpy",
			Threshold:  0.8,
		})
		require.NoError(t, err)
		assert.Empty(t, out.String())
	})
}

func TestRunApply(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	dir := t.TempDir()
	chdir(t, dir)

	parent := writeDoc(t, dir, "parent.txt",
		"Parent summary.\n\nArgs:\n    x: Description of x.")
	child := writeDoc(t, dir, "child.txt", "Child summary.")
	outDir := filepath.Join(dir, "out")
	require.NoError(t, os.Mkdir(outDir, 0o750))

	manifest := writeDoc(t, dir, "manifest.yaml",
		"entries:\n"+
			"  - child: "+child+"\n"+
			"    ancestors: ["+parent+"]\n"+
			"    params: [x]\n"+
			"    dialect: google\n")

	var out bytes.Buffer
	err := RunApply(&out, &ApplyConfig{ManifestPath: manifest, OutputDir: outDir})
	require.NoError(t, err)
	assert.Equal(t, "merged 1 docstrings\n", out.String())

	data, err := os.ReadFile(filepath.Join(outDir, "child.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Child summary.\n\nArgs:\n    x: Description of x.\n", string(data))
}

func TestRunApplyDisabledLeavesChildUnchanged(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("DOCMERGE_ENABLED", "false")

	parent := writeDoc(t, dir, "parent.txt", "Parent summary.\n\nNotes\n-----\nNote.")
	child := writeDoc(t, dir, "child.txt", "Child summary.")
	outDir := filepath.Join(dir, "out")
	require.NoError(t, os.Mkdir(outDir, 0o750))

	manifest := writeDoc(t, dir, "manifest.yaml",
		"entries:\n"+
			"  - child: "+child+"\n"+
			"    ancestors: ["+parent+"]\n"+
			"    class: true\n")

	err := RunApply(&bytes.Buffer{}, &ApplyConfig{ManifestPath: manifest, OutputDir: outDir})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outDir, "child.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Child summary.\n", string(data))
}

func TestRunApplyRejectsInvalidManifest(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	dir := t.TempDir()
	chdir(t, dir)

	tests := []struct {
		name     string
		manifest string
	}{
		{"no entries", "entries: []\n"},
		{"missing ancestors", "entries:\n  - child: c.txt\n"},
		{"bad dialect", "entries:\n  - child: c.txt\n    ancestors: [p.txt]\n    dialect: rst\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDoc(t, dir, "manifest-"+tt.name+".yaml", tt.manifest)
			err := RunApply(&bytes.Buffer{}, &ApplyConfig{ManifestPath: path})
			assert.Error(t, err)
		})
	}
}

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	assert.Equal(t, "docmerge", cmd.Use)

	names := make([]string, 0, 3)
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "merge")
	assert.Contains(t, names, "check")
	assert.Contains(t, names, "apply")
}
