// Package discovery finds sketch files under a root directory using glob
// include patterns and ignore rules.
package discovery

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// DefaultSketchPatterns match the two sketch extensions.
var DefaultSketchPatterns = []string{"**/*.ino", "**/*.pde"}

// DefaultIgnorePatterns skip build output and VCS metadata.
var DefaultIgnorePatterns = []string{"build/**", ".git/**", ".pio/**", "**/.build/**"}

type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// SketchDiscovery walks a directory tree for sketch files.
type SketchDiscovery struct {
	rootDir        string
	sketchPatterns []compiledPattern
	ignorePatterns []compiledPattern
}

// New creates a discovery instance for rootDir. Nil pattern slices get the
// defaults.
func New(rootDir string, sketchPatterns, ignorePatterns []string) (*SketchDiscovery, error) {
	if sketchPatterns == nil {
		sketchPatterns = DefaultSketchPatterns
	}
	if ignorePatterns == nil {
		ignorePatterns = DefaultIgnorePatterns
	}

	sd := &SketchDiscovery{rootDir: rootDir}

	for _, pattern := range sketchPatterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, err
		}
		sd.sketchPatterns = append(sd.sketchPatterns, compiledPattern{pattern: pattern, glob: g})
	}

	for _, pattern := range ignorePatterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, err
		}
		sd.ignorePatterns = append(sd.ignorePatterns, compiledPattern{pattern: pattern, glob: g})
	}

	return sd, nil
}

// Discover walks the tree and returns matching sketch paths, sorted for
// stable batch output.
func (sd *SketchDiscovery) Discover() ([]string, error) {
	sketches := []string{}

	err := filepath.Walk(sd.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(sd.rootDir, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if sd.shouldIgnore(relPath) {
			return nil
		}
		if sd.matchesAnyPattern(relPath, sd.sketchPatterns) {
			sketches = append(sketches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(sketches)
	return sketches, nil
}

func (sd *SketchDiscovery) shouldIgnore(relPath string) bool {
	if sd.matchesAnyPattern(relPath, sd.ignorePatterns) {
		return true
	}
	// Directory paths (as handed in by watchers) should match their own
	// "dir/**" ignore pattern.
	return sd.matchesAnyPattern(relPath+"/**", sd.ignorePatterns)
}

func (sd *SketchDiscovery) matchesAnyPattern(path string, patterns []compiledPattern) bool {
	for _, cp := range patterns {
		if cp.glob.Match(path) {
			return true
		}
	}

	// "**/*.ino" should also match a root-level "blink.ino"; retry those
	// patterns with the **/ prefix stripped.
	if !strings.Contains(path, "/") {
		for _, cp := range patterns {
			if strings.HasPrefix(cp.pattern, "**/") {
				simplified := strings.TrimPrefix(cp.pattern, "**/")
				if g, err := glob.Compile(simplified, '/'); err == nil && g.Match(path) {
					return true
				}
			}
		}
	}

	return false
}
