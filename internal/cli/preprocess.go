package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cowboydaniel/sketchcheck/internal/preprocess"
)

var preprocessCmd = &cobra.Command{
	Use:   "preprocess [sketch]",
	Short: "Print the sketch as the IDE preprocessor would hand it to the compiler",
	Long: `Preprocess hoists custom type definitions ahead of synthesized
function prototypes, removes hand-written prototypes that mention those
types, and strips stray control-flow statements at global scope. The
printed unit is what a compiler should see.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSketch(args[0])
		if err != nil {
			return err
		}

		unit := preprocess.BuildUnit(src)
		fmt.Print(unit.Render())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(preprocessCmd)
}
