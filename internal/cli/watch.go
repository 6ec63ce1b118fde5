package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cowboydaniel/sketchcheck/internal/analysis"
	"github.com/cowboydaniel/sketchcheck/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Re-analyze sketches as they change",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

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

		sw, err := watcher.New([]string{dir}, 0)
		if err != nil {
			return err
		}
		defer sw.Stop()

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		err = sw.Start(ctx, func(files []string) {
			for _, path := range files {
				src, err := readSketch(path)
				if err != nil {
					// Removed files show up as change events too.
					log.Printf("Skipping %s: %v", path, err)
					continue
				}
				report := analyzer.Analyze(src, analysis.Options{Board: cfg.Board})
				fmt.Printf("%s: %d bytes RAM, %d hints\n",
					path, report.RAMBytes, len(report.Hints.Hints))
				for _, line := range report.Hints.Rendered() {
					fmt.Printf("  - %s\n", line)
				}
			}
		})
		if err != nil {
			return err
		}

		fmt.Printf("Watching %s for sketch changes (Ctrl-C to stop)\n", dir)

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-sigCh:
		case <-ctx.Done():
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
