package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/cowboydaniel/sketchcheck/internal/analysis"
	"github.com/cowboydaniel/sketchcheck/internal/discovery"
	"github.com/cowboydaniel/sketchcheck/internal/hints"
)

var (
	analyzeLine        int
	analyzeColumn      int
	analyzeMonitorOpen bool
	analyzeQuiet       bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path]",
	Short: "Analyze a sketch file or every sketch under a directory",
	Long: `Analyze runs the full pipeline over a sketch: RAM estimate for the
target board, preprocessing summary and hints. Given a directory it
discovers sketches with the configured patterns and analyzes each one.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		analyzer, err := analysis.New(analysis.Config{
			CacheCapacity: cfg.Analysis.CacheCapacity,
			Boards:        cfg.BoardProfiles(),
		})
		if err != nil {
			return err
		}
		defer analyzer.Close()

		info, err := os.Stat(args[0])
		if err != nil {
			return err
		}
		if info.IsDir() {
			return analyzeDirectory(analyzer, cfg.Board, cfg.Paths.Sketches, cfg.Paths.Ignore, args[0])
		}
		return analyzeFile(analyzer, cfg.Board, args[0])
	},
}

func init() {
	analyzeCmd.Flags().IntVar(&analyzeLine, "line", 0, "cursor line (0-based) used to rank hints")
	analyzeCmd.Flags().IntVar(&analyzeColumn, "column", 0, "cursor column used to rank hints")
	analyzeCmd.Flags().BoolVar(&analyzeMonitorOpen, "serial-monitor-open", true, "whether the serial monitor is open")
	analyzeCmd.Flags().BoolVarP(&analyzeQuiet, "quiet", "q", false, "suppress progress output")
	rootCmd.AddCommand(analyzeCmd)
}

func analyzeFile(analyzer *analysis.Analyzer, board, path string) error {
	src, err := readSketch(path)
	if err != nil {
		return err
	}

	report := analyzer.Analyze(src, analysis.Options{
		Board:             board,
		Cursor:            hints.CursorAt(analyzeLine, analyzeColumn),
		SerialMonitorOpen: analyzeMonitorOpen,
	})

	fmt.Printf("%s (%s)\n", path, board)
	fmt.Printf("  Estimated RAM: %d bytes\n", report.RAMBytes)
	fmt.Printf("  Custom types: %d, synthesized prototypes: %d\n",
		len(report.Unit.Types), len(report.Unit.Prototypes))

	if len(report.Hints.Hints) == 0 {
		fmt.Println("  No hints.")
		return nil
	}
	for _, line := range report.Hints.Rendered() {
		fmt.Printf("  - %s\n", line)
	}
	return nil
}

func analyzeDirectory(analyzer *analysis.Analyzer, board string, patterns, ignore []string, dir string) error {
	sd, err := discovery.New(dir, patterns, ignore)
	if err != nil {
		return err
	}
	sketches, err := sd.Discover()
	if err != nil {
		return err
	}
	if len(sketches) == 0 {
		fmt.Println("No sketches found.")
		return nil
	}

	var bar *progressbar.ProgressBar
	if !analyzeQuiet {
		bar = progressbar.NewOptions(len(sketches),
			progressbar.OptionSetDescription("Analyzing sketches"),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionSetItsString("sketches/s"),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionShowElapsedTimeOnFinish(),
			progressbar.OptionOnCompletion(func() {
				fmt.Println()
			}),
		)
	}

	type summary struct {
		path     string
		ramBytes int
		hints    int
		warnings int
	}
	summaries := make([]summary, 0, len(sketches))

	for _, path := range sketches {
		src, err := readSketch(path)
		if err != nil {
			return err
		}
		report := analyzer.Analyze(src, analysis.Options{
			Board:             board,
			SerialMonitorOpen: analyzeMonitorOpen,
		})

		s := summary{path: path, ramBytes: report.RAMBytes, hints: len(report.Hints.Hints)}
		for _, h := range report.Hints.Hints {
			if h.Severity == hints.SeverityWarning {
				s.warnings++
			}
		}
		summaries = append(summaries, s)

		if bar != nil {
			bar.Add(1)
		}
	}

	fmt.Printf("✓ Analyzed %d sketches for %s\n", len(summaries), board)
	for _, s := range summaries {
		fmt.Printf("  %s: %d bytes RAM, %d hints (%d warnings)\n",
			s.path, s.ramBytes, s.hints, s.warnings)
	}
	return nil
}
