package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cowboydaniel/sketchcheck/internal/toolchain"
)

var compileCmd = &cobra.Command{
	Use:   "compile [sketch]",
	Short: "Compile a sketch with the external toolchain and report diagnostics",
	Long: `Compile shells out to the configured compiler (arduino-cli by
default) for real verification. Static analysis never needs this; use it
when you want compiler-grade diagnostics next to the heuristic results.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		runner := &toolchain.Runner{
			Binary:  cfg.Toolchain.Binary,
			Timeout: time.Duration(cfg.Toolchain.TimeoutSeconds) * time.Second,
		}

		result, err := runner.Compile(cmd.Context(), args[0], cfg.Toolchain.FQBN)
		if err != nil {
			return err
		}

		fmt.Printf("Job %s finished in %s\n", result.JobID, result.Took.Round(time.Millisecond))
		if result.OK {
			fmt.Println("✓ Compiled cleanly")
			return nil
		}

		for _, d := range result.Diagnostics {
			fmt.Printf("%s:%d:%d: %s: %s\n", d.File, d.Line, d.Column, d.Severity, d.Message)
		}
		if toolchain.HasErrors(result.Diagnostics) {
			return fmt.Errorf("compile failed")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compileCmd)
}
