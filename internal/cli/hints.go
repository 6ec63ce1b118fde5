package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cowboydaniel/sketchcheck/internal/hints"
)

var (
	hintsLine        int
	hintsColumn      int
	hintsOffset      int
	hintsMonitorOpen bool
)

var hintsCmd = &cobra.Command{
	Use:   "hints [sketch]",
	Short: "Show sketch hints ranked by cursor proximity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSketch(args[0])
		if err != nil {
			return err
		}

		cursor := hints.CursorAt(hintsLine, hintsColumn)
		if cmd.Flags().Changed("offset") {
			cursor = hints.CursorAtOffset(hintsOffset)
		}

		state := hints.EditorState{SerialMonitorOpen: hintsMonitorOpen}
		result := hints.AnalyzeContext(src, cursor, state)

		if len(result.Hints) == 0 {
			fmt.Println("No hints.")
			return nil
		}
		for _, line := range result.Rendered() {
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	hintsCmd.Flags().IntVar(&hintsLine, "line", 0, "cursor line (0-based)")
	hintsCmd.Flags().IntVar(&hintsColumn, "column", 0, "cursor column")
	hintsCmd.Flags().IntVar(&hintsOffset, "offset", 0, "cursor as absolute byte offset (overrides --line/--column)")
	hintsCmd.Flags().BoolVar(&hintsMonitorOpen, "serial-monitor-open", true, "whether the serial monitor is open")
	rootCmd.AddCommand(hintsCmd)
}
