package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"datefmt/internal/ui"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Try dates and patterns interactively",
	Long:  `Repl opens an interactive form with a date field and a pattern field, rendering a live preview while you type`,
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func init() {
	replCmd.Flags().StringP("pattern", "p", "", "initial pattern (default: datefmt.toml, then "+defaultPattern+")")
}

func runRepl(cmd *cobra.Command, args []string) error {
	if !isTerminal(os.Stdout) {
		return fmt.Errorf("repl requires a terminal")
	}

	patternFlag, err := cmd.Flags().GetString("pattern")
	if err != nil {
		return fmt.Errorf("failed to get pattern flag: %w", err)
	}
	pattern, err := resolvePattern(patternFlag, ".")
	if err != nil {
		return err
	}

	model := ui.NewPromptModel(pattern)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("repl failed: %w", err)
	}
	return nil
}
