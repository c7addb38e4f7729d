package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"datefmt/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "datefmt",
	Short: "Render dates with a three-part format pattern language",
	Long:  `datefmt renders calendar dates according to a small pattern language of year, month and day tokens joined by a separator`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// colorEnabled resolves the --color persistent flag against f.
func colorEnabled(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}
