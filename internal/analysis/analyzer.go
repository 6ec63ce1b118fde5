// Package analysis ties the preprocessing pipeline, the RAM estimator and
// the hint detectors together behind one façade, with an in-memory result
// cache keyed by source content. The cache stores cursor-independent work
// (preprocessed unit, RAM estimate, unranked hints); ranking against the
// caller's cursor happens per request.
package analysis

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/maypok86/otter"

	"github.com/cowboydaniel/sketchcheck/internal/hints"
	"github.com/cowboydaniel/sketchcheck/internal/preprocess"
	"github.com/cowboydaniel/sketchcheck/internal/ram"
)

// DefaultCacheCapacity is the entry budget when Config leaves it zero.
const DefaultCacheCapacity = 256

// Config controls analyzer construction.
type Config struct {
	// CacheCapacity is the maximum number of cached analyses. Zero means
	// DefaultCacheCapacity.
	CacheCapacity int
	// Boards overrides the built-in board profile table by exact name.
	// Unlisted boards fall back to the built-in profiles.
	Boards map[string]ram.BoardProfile
}

// Options selects what a single Analyze call should see.
type Options struct {
	// Board names the target board for the RAM estimate.
	Board string
	// Cursor is the editor caret; hints are ranked by proximity to it.
	Cursor hints.Cursor
	// SerialMonitorOpen mirrors the editor's serial monitor panel state.
	SerialMonitorOpen bool
}

// Report is the complete outcome of analyzing one sketch.
type Report struct {
	Board    string
	RAMBytes int
	Unit     preprocess.Unit
	Hints    *hints.Result
	// CacheHit reports whether the cursor-independent work was served
	// from cache.
	CacheHit bool
}

type cachedAnalysis struct {
	unit     preprocess.Unit
	ramBytes int
	hints    []hints.Hint
}

// Analyzer runs sketch analyses and caches their cursor-independent parts.
// Safe for concurrent use.
type Analyzer struct {
	cache  otter.Cache[string, cachedAnalysis]
	boards map[string]ram.BoardProfile
}

// New builds an Analyzer from cfg.
func New(cfg Config) (*Analyzer, error) {
	capacity := cfg.CacheCapacity
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}

	cache, err := otter.MustBuilder[string, cachedAnalysis](capacity).Build()
	if err != nil {
		return nil, fmt.Errorf("building analysis cache: %w", err)
	}

	return &Analyzer{cache: cache, boards: cfg.Boards}, nil
}

// Analyze preprocesses src, estimates RAM for the board and runs the hint
// detectors, ranking hints against the cursor in opts. Identical source,
// board and monitor state reuse the cached analysis; only ranking is
// recomputed.
func (a *Analyzer) Analyze(src string, opts Options) *Report {
	key := cacheKey(src, opts)

	cached, hit := a.cache.Get(key)
	if !hit {
		state := hints.EditorState{SerialMonitorOpen: opts.SerialMonitorOpen}
		cached = cachedAnalysis{
			unit:     preprocess.BuildUnit(src),
			ramBytes: ram.EstimateWithProfile(src, a.profileFor(opts.Board)),
			hints:    hints.Analyze(src, state),
		}
		a.cache.Set(key, cached)
	}

	return &Report{
		Board:    opts.Board,
		RAMBytes: cached.ramBytes,
		Unit:     cached.unit,
		Hints:    hints.BuildResult(src, cached.hints, opts.Cursor),
		CacheHit: hit,
	}
}

// EstimateRAM is the estimator-only path, honoring configured board
// overrides.
func (a *Analyzer) EstimateRAM(src, board string) int {
	return ram.EstimateWithProfile(src, a.profileFor(board))
}

// Close releases the cache's background resources.
func (a *Analyzer) Close() {
	a.cache.Close()
}

func (a *Analyzer) profileFor(board string) ram.BoardProfile {
	if p, ok := a.boards[board]; ok {
		return p
	}
	return ram.Profile(board)
}

func cacheKey(src string, opts Options) string {
	sum := sha256.Sum256([]byte(src))
	return hex.EncodeToString(sum[:]) + "|" + opts.Board + "|" +
		strconv.FormatBool(opts.SerialMonitorOpen)
}
