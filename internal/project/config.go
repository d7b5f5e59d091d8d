package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/galaxy-ui/galaxy/internal/branding"
	"github.com/galaxy-ui/galaxy/internal/framework"
	"github.com/galaxy-ui/galaxy/internal/platform"
)

// Config represents the components.json structure. Field order here is the
// key order on disk.
type Config struct {
	Schema      string              `json:"$schema,omitempty"`
	Framework   framework.Framework `json:"framework"`
	TypeScript  bool                `json:"typescript"`
	Tailwind    Tailwind            `json:"tailwind"`
	Aliases     Aliases             `json:"aliases"`
	IconLibrary string              `json:"iconLibrary"`
}

// Tailwind holds styling preferences.
type Tailwind struct {
	Config       string `json:"config"`
	CSS          string `json:"css"`
	BaseColor    string `json:"baseColor"`
	CSSVariables bool   `json:"cssVariables"`
	Prefix       string `json:"prefix"`
}

// Aliases holds the import aliases components are written under.
type Aliases struct {
	Components string `json:"components"`
	Utils      string `json:"utils"`
	UI         string `json:"ui,omitempty"`
	Lib        string `json:"lib,omitempty"`
	Hooks      string `json:"hooks,omitempty"`
}

// ConfigPath returns the full path to components.json for a project.
func ConfigPath(root string) string {
	return filepath.Join(root, branding.ConfigFile())
}

// Exists reports whether the project already has a components.json.
func Exists(root string) bool {
	_, err := os.Stat(ConfigPath(root))
	return err == nil
}

// Load reads and validates components.json from root. It returns nil, nil
// when the file does not exist.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(ConfigPath(root))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading project config: %w", err)
	}
	return Validate(data)
}

// Marshal renders cfg exactly as Save writes it.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling project config: %w", err)
	}
	return append(data, '\n'), nil
}

// Save rewrites components.json in full.
func Save(root string, cfg *Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := platform.WriteFileAtomic(ConfigPath(root), data, 0644); err != nil {
		return fmt.Errorf("writing project config: %w", err)
	}
	return nil
}

// Update merges fields into the top level of the existing config, validates
// the result, and persists it. Nested objects are replaced, not merged. It
// returns nil, nil when the project has no config yet.
func Update(root string, fields map[string]any) (*Config, error) {
	data, err := os.ReadFile(ConfigPath(root))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading project config: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing project config: %w", err)
	}
	for k, v := range fields {
		raw[k] = v
	}

	merged, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("merging project config: %w", err)
	}
	cfg, err := Validate(merged)
	if err != nil {
		return nil, err
	}
	if err := Save(root, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
