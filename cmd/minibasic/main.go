package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"minibasic/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "minibasic",
	Short: "Tokenizer for a line-numbered BASIC dialect",
	Long:  `minibasic breaks line-numbered BASIC source into classified, positioned tokens`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
