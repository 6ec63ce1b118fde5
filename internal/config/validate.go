package config

import (
	"fmt"
	"strings"
)

// Validate checks a configuration for values the rest of the system cannot
// work with.
func Validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Board) == "" {
		return fmt.Errorf("board must not be empty")
	}

	if len(cfg.Paths.Sketches) == 0 {
		return fmt.Errorf("paths.sketches must list at least one pattern")
	}

	if cfg.Analysis.CacheCapacity < 0 {
		return fmt.Errorf("analysis.cache_capacity must not be negative, got %d", cfg.Analysis.CacheCapacity)
	}

	if cfg.Toolchain.TimeoutSeconds < 0 {
		return fmt.Errorf("toolchain.timeout_seconds must not be negative, got %d", cfg.Toolchain.TimeoutSeconds)
	}

	for name, o := range cfg.Boards {
		if o.BaseOverheadBytes < 0 {
			return fmt.Errorf("boards.%s.base_overhead_bytes must not be negative", name)
		}
		if o.IntWidthBytes < 0 || o.PointerWidthBytes < 0 {
			return fmt.Errorf("boards.%s: widths must not be negative", name)
		}
	}

	return nil
}
