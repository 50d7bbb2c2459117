package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ToYAML serializes the options to YAML.
func (o *Options) ToYAML() ([]byte, error) {
	if o == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(o); err != nil {
		return nil, fmt.Errorf("encode options: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// FromYAML parses options from YAML bytes. Fields absent from the document
// keep their defaults.
func FromYAML(data []byte) (*Options, error) {
	opts := Default()
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return opts, nil
}

// Load reads options from a YAML file. An empty path returns the defaults.
func Load(path string) (*Options, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return FromYAML(data)
}
