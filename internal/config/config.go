package config

import (
	"github.com/cowboydaniel/sketchcheck/internal/discovery"
	"github.com/cowboydaniel/sketchcheck/internal/ram"
)

// Config is the complete sketchcheck configuration. It can be loaded from
// .sketchcheck/config.yml with environment variable overrides.
type Config struct {
	Board     string          `yaml:"board" mapstructure:"board"`
	Paths     PathsConfig     `yaml:"paths" mapstructure:"paths"`
	Analysis  AnalysisConfig  `yaml:"analysis" mapstructure:"analysis"`
	Toolchain ToolchainConfig `yaml:"toolchain" mapstructure:"toolchain"`
	// Boards overrides or extends the built-in board profile table,
	// keyed by board name.
	Boards map[string]BoardOverride `yaml:"boards" mapstructure:"boards"`
}

// PathsConfig defines which files to analyze and which to skip.
type PathsConfig struct {
	Sketches []string `yaml:"sketches" mapstructure:"sketches"` // glob patterns for sketch files
	Ignore   []string `yaml:"ignore" mapstructure:"ignore"`     // glob patterns to skip
}

// AnalysisConfig tunes the analyzer.
type AnalysisConfig struct {
	CacheCapacity int `yaml:"cache_capacity" mapstructure:"cache_capacity"` // cached analyses
}

// ToolchainConfig configures the optional external compiler.
type ToolchainConfig struct {
	Binary         string `yaml:"binary" mapstructure:"binary"`                   // compiler executable
	FQBN           string `yaml:"fqbn" mapstructure:"fqbn"`                       // fully-qualified board name
	TimeoutSeconds int    `yaml:"timeout_seconds" mapstructure:"timeout_seconds"` // per-compile bound
}

// BoardOverride is a user-supplied board profile.
type BoardOverride struct {
	BaseOverheadBytes int  `yaml:"base_overhead_bytes" mapstructure:"base_overhead_bytes"`
	IntWidthBytes     int  `yaml:"int_width_bytes" mapstructure:"int_width_bytes"`
	PointerWidthBytes int  `yaml:"pointer_width_bytes" mapstructure:"pointer_width_bytes"`
	Is32Bit           bool `yaml:"is_32bit" mapstructure:"is_32bit"`
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Board: "Arduino Uno",
		Paths: PathsConfig{
			Sketches: discovery.DefaultSketchPatterns,
			Ignore:   discovery.DefaultIgnorePatterns,
		},
		Analysis: AnalysisConfig{
			CacheCapacity: 256,
		},
		Toolchain: ToolchainConfig{
			Binary:         "arduino-cli",
			FQBN:           "arduino:avr:uno",
			TimeoutSeconds: 60,
		},
	}
}

// BoardProfiles converts the configured overrides into estimator profiles.
// Zero-valued width fields fall back to the 8-bit defaults so a partial
// override still estimates sensibly.
func (c *Config) BoardProfiles() map[string]ram.BoardProfile {
	if len(c.Boards) == 0 {
		return nil
	}

	profiles := make(map[string]ram.BoardProfile, len(c.Boards))
	for name, o := range c.Boards {
		p := ram.BoardProfile{
			Name:              name,
			BaseOverheadBytes: o.BaseOverheadBytes,
			IntWidthBytes:     o.IntWidthBytes,
			PointerWidthBytes: o.PointerWidthBytes,
			Is32Bit:           o.Is32Bit,
		}
		if p.IntWidthBytes == 0 {
			p.IntWidthBytes = 2
			if p.Is32Bit {
				p.IntWidthBytes = 4
			}
		}
		if p.PointerWidthBytes == 0 {
			p.PointerWidthBytes = 2
			if p.Is32Bit {
				p.PointerWidthBytes = 4
			}
		}
		profiles[name] = p
	}
	return profiles
}
