package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cowboydaniel/sketchcheck/internal/analysis"
	"github.com/cowboydaniel/sketchcheck/internal/ram"
)

var ramListBoards bool

var ramCmd = &cobra.Command{
	Use:   "ram [sketch]",
	Short: "Estimate a sketch's RAM usage for the target board",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if ramListBoards {
			for _, board := range ram.KnownBoards() {
				fmt.Println(board)
			}
			return nil
		}
		if len(args) != 1 {
			return fmt.Errorf("expected a sketch path (or --list-boards)")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		src, err := readSketch(args[0])
		if err != nil {
			return err
		}

		analyzer, err := analysis.New(analysis.Config{Boards: cfg.BoardProfiles()})
		if err != nil {
			return err
		}
		defer analyzer.Close()

		fmt.Printf("%d bytes (%s)\n", analyzer.EstimateRAM(src, cfg.Board), cfg.Board)
		return nil
	},
}

func init() {
	ramCmd.Flags().BoolVar(&ramListBoards, "list-boards", false, "list built-in board profiles")
	rootCmd.AddCommand(ramCmd)
}
