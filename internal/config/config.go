package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/galaxy-ui/galaxy/internal/branding"
	"github.com/galaxy-ui/galaxy/internal/detect"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized setting keys.
const (
	KeyRegistryDir    = "registry_dir"
	KeyPackageManager = "package_manager"
	KeyStrict         = "strict"
)

// Keys lists every recognized setting key.
var Keys = []string{KeyRegistryDir, KeyPackageManager, KeyStrict}

// Dir returns the path to the user config directory (~/.galaxy/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.galaxy/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()
	viper.SetDefault(KeyStrict, false)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// RegistryDir returns the on-disk registry override, or "" for the bundled one.
func RegistryDir() string {
	return viper.GetString(KeyRegistryDir)
}

// PackageManager returns the forced package manager, or "" to detect one.
func PackageManager() string {
	return viper.GetString(KeyPackageManager)
}

// Strict reports whether missing component sources should fail an install.
func Strict() bool {
	return viper.GetBool(KeyStrict)
}

// Validate checks that key is recognized and value fits it.
func Validate(key, value string) error {
	if !slices.Contains(Keys, key) {
		return fmt.Errorf("unknown config key %q (known keys: %v)", key, Keys)
	}
	switch key {
	case KeyPackageManager:
		if value == "" {
			return nil
		}
		if _, err := detect.ParsePackageManager(value); err != nil {
			return err
		}
	case KeyStrict:
		if _, err := strconv.ParseBool(value); err != nil {
			return fmt.Errorf("%s must be true or false, got %q", key, value)
		}
	}
	return nil
}

// Set validates and writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := Validate(key, value); err != nil {
		return err
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	if key == KeyStrict {
		b, _ := strconv.ParseBool(value)
		viper.Set(key, b)
	} else {
		viper.Set(key, value)
	}

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
