// Package cli wires the analysis packages into the sketchcheck command
// tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cowboydaniel/sketchcheck/internal/config"
)

var (
	rootDir   string
	boardFlag string
	verbose   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sketchcheck",
	Short: "Static analysis for Arduino sketches",
	Long: `sketchcheck analyzes Arduino sketches without compiling them:
it estimates RAM usage per board, hoists custom types and synthesizes
function prototypes the way the IDE preprocessor would, and surfaces
line-addressed hints about common sketch mistakes.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", ".", "directory holding .sketchcheck/config.yml")
	rootCmd.PersistentFlags().StringVar(&boardFlag, "board", "", "target board (overrides configuration)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig loads configuration from the --root directory and applies
// command-line overrides on top.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfigFromDir(rootDir)
	if err != nil {
		return nil, err
	}
	if boardFlag != "" {
		cfg.Board = boardFlag
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Board: %s\n", cfg.Board)
	}
	return cfg, nil
}

// readSketch loads one sketch file.
func readSketch(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading sketch: %w", err)
	}
	return string(data), nil
}
