/*
File    : gomix-script/internal/config/config.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package config loads the optional YAML settings file the CLI and REPL
// read before starting (spec.md's external interfaces are silent on
// configuration; this is ambient tooling the distilled spec omitted — see
// SPEC_FULL.md's AMBIENT STACK section).
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Repl holds the REPL's cosmetic settings.
type Repl struct {
	Prompt  string `yaml:"prompt"`
	Banner  string `yaml:"banner"`
	Version string `yaml:"version"`
	Author  string `yaml:"author"`
	License string `yaml:"license"`
}

// Config is the top-level shape of a gomix-script.yaml settings file.
type Config struct {
	Repl Repl `yaml:"repl"`
	// Stdlib is the native-function allowlist passed to
	// host.RegisterStdlib by cmd/gomix and internal/repl. Empty means
	// every native is registered (spec.md §6: array_size, array_push,
	// array_pop).
	Stdlib []string `yaml:"stdlib"`
}

// Default returns the configuration used when no settings file is found.
func Default() Config {
	return Config{
		Repl: Repl{
			Prompt:  "gomix >>> ",
			Banner:  defaultBanner,
			Version: "v1.0.0",
			Author:  "akashmaji(@iisc.ac.in)",
			License: "MIT",
		},
	}
}

const defaultBanner = `
   ▄▄▄▄              ▄▄   ▄▄
  ██▀▀▀▀█            ███ ███ ▄▄▄ ▄▄ ▄▄
 ██      ▄████▄      ████████  ██▀ ▀██
 ██  ▄▄  ██▀  ▀██    ██ ▀▀ ██  ██    ██
  ██▄▄██ ▀██▄▄██▀    ██    ██  ▀██▄▄██▀
    ▀▀▀▀    ▀▀▀▀     ▀▀    ▀▀    ▀▀▀▀
`

// Load reads a YAML settings file at path, falling back to Default if
// path is empty or does not exist. A present-but-malformed file is a hard
// error — config.Load never silently ignores bad YAML.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
