package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Config, error)
}

type loader struct {
	rootDir string
}

// NewLoader creates a configuration loader rooted at rootDir.
func NewLoader(rootDir string) Loader {
	return &loader{rootDir: rootDir}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (SKETCHCHECK_*)
// 2. Config file (.sketchcheck/config.yml or .sketchcheck/config.yaml)
// 3. Default values
func (l *loader) Load() (*Config, error) {
	v := viper.New()

	configDir := filepath.Join(l.rootDir, ".sketchcheck")
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	v.SetEnvPrefix("SKETCHCHECK")
	v.AutomaticEnv()
	// Replace . with _ in env var names (e.g., SKETCHCHECK_TOOLCHAIN_FQBN)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("board")
	v.BindEnv("analysis.cache_capacity")
	v.BindEnv("toolchain.binary")
	v.BindEnv("toolchain.fqbn")
	v.BindEnv("toolchain.timeout_seconds")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// Missing config file is fine; defaults + env vars apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("board", defaults.Board)

	v.SetDefault("paths.sketches", defaults.Paths.Sketches)
	v.SetDefault("paths.ignore", defaults.Paths.Ignore)

	v.SetDefault("analysis.cache_capacity", defaults.Analysis.CacheCapacity)

	v.SetDefault("toolchain.binary", defaults.Toolchain.Binary)
	v.SetDefault("toolchain.fqbn", defaults.Toolchain.FQBN)
	v.SetDefault("toolchain.timeout_seconds", defaults.Toolchain.TimeoutSeconds)
}

// LoadConfig creates a loader rooted at the current working directory and
// loads config.
func LoadConfig() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return NewLoader(wd).Load()
}

// LoadConfigFromDir loads configuration from a specific directory.
func LoadConfigFromDir(rootDir string) (*Config, error) {
	return NewLoader(rootDir).Load()
}
