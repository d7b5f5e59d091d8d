// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is embedded into the binary; forks change the CLI name, the
// user settings directory, or the project config file name there.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	ConfigFile  string `yaml:"config_file"`
	SchemaURL   string `yaml:"schema_url"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "galaxy",
			DisplayName: "Galaxy UI",
			Description: "Copy Galaxy UI components into your project",
			HomeDir:     ".galaxy",
			EnvPrefix:   "GALAXY",
			GoModule:    "github.com/galaxy-ui/galaxy",
			ConfigFile:  "components.json",
			SchemaURL:   "https://galaxy-ui.dev/schema.json",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "galaxy").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "Galaxy UI").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".galaxy").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "GALAXY").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// ConfigFile returns the project config file name (e.g., "components.json").
func ConfigFile() string { load(); return defaults.ConfigFile }

// SchemaURL returns the value written to the "$schema" key of new project configs.
func SchemaURL() string { load(); return defaults.SchemaURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "GALAXY_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
