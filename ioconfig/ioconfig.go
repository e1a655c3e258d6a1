package ioconfig

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadInputConfiguration reads and validates an InputConfiguration from
// path.
func LoadInputConfiguration(path string) (InputConfiguration, error) {
	var cfg InputConfiguration
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("ioconfig: reading %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("ioconfig: parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// SaveInputConfiguration writes cfg to path as indented JSON.
func SaveInputConfiguration(path string, cfg InputConfiguration) error {
	return writeJSON(path, cfg)
}

// SaveFinalExportConfiguration writes cfg to path as indented JSON.
func SaveFinalExportConfiguration(path string, cfg FinalExportConfiguration) error {
	return writeJSON(path, cfg)
}

func writeJSON(path string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("ioconfig: marshaling %s: %w", path, err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("ioconfig: writing %s: %w", path, err)
	}
	return nil
}
