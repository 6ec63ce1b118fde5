package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cowboydaniel/sketchcheck/internal/reference"
)

var referenceLimit int

var referenceCmd = &cobra.Command{
	Use:   "reference [query]",
	Short: "Search the built-in Arduino API reference",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := reference.NewIndex()
		if err != nil {
			return err
		}
		defer idx.Close()

		results, err := idx.Search(strings.Join(args, " "), referenceLimit)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Println("No matches.")
			return nil
		}

		for _, r := range results {
			fmt.Printf("%s  [%s]\n", r.Entry.Name, r.Entry.Category)
			fmt.Printf("  %s\n", r.Entry.Signature)
			fmt.Printf("  %s\n", r.Entry.Summary)
		}
		return nil
	},
}

func init() {
	referenceCmd.Flags().IntVar(&referenceLimit, "limit", 5, "maximum number of results")
	rootCmd.AddCommand(referenceCmd)
}
