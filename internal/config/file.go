package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/dgallion1/docoutline/internal/outline"
)

// LoadEnvFile loads KEY=VALUE pairs from path into the process environment.
// Variables that are already set win. A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// LoadHeuristics reads a YAML heuristics profile on top of base. Keys the
// file leaves out keep base's values; unknown keys are rejected.
//
//	body_threshold: 11.5
//	max_levels: 3
//	excluded_prefixes: [mission, vision]
func LoadHeuristics(path string, base outline.Options) (outline.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read heuristics: %w", err)
	}

	opts := base
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("parse heuristics %s: %w", path, err)
	}
	return opts, nil
}
