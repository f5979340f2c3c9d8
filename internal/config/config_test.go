/*
File    : gomix-script/internal/config/config_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadWithMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaultsFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gomix-script.yaml")
	const doc = `
repl:
  prompt: "myshell> "
stdlib:
  - array_size
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "myshell> ", cfg.Repl.Prompt)
	assert.Equal(t, []string{"array_size"}, cfg.Stdlib)
	// Fields absent from the YAML keep their defaults.
	assert.Equal(t, Default().Repl.Version, cfg.Repl.Version)
}

func TestLoadWithMalformedYAMLIsHardError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gomix-script.yaml")
	require.NoError(t, os.WriteFile(path, []byte("repl: [this is not a mapping"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
