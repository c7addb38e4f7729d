package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"datefmt"
	"datefmt/internal/driver"
)

var formatCmd = &cobra.Command{
	Use:   "format [flags] [date]",
	Short: "Format a single date",
	Long:  `Format renders one date (today by default, or an explicit yyyy-mm-dd argument) using the resolved pattern`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFormat,
}

func init() {
	formatCmd.Flags().StringP("pattern", "p", "", "format pattern (default: datefmt.toml, then "+defaultPattern+")")
	formatCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type formatPayload struct {
	Date    string `json:"date"`
	Pattern string `json:"pattern"`
	Output  string `json:"output"`
}

func runFormat(cmd *cobra.Command, args []string) error {
	patternFlag, err := cmd.Flags().GetString("pattern")
	if err != nil {
		return fmt.Errorf("failed to get pattern flag: %w", err)
	}
	outFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	pattern, err := resolvePattern(patternFlag, ".")
	if err != nil {
		return err
	}

	day := time.Now()
	if len(args) == 1 {
		day, err = driver.ParseDate(args[0])
		if err != nil {
			return err
		}
	}

	rendered, err := datefmt.Format(day, pattern)
	if err != nil {
		return err
	}

	switch outFormat {
	case "pretty":
		fmt.Fprintln(cmd.OutOrStdout(), rendered)
		return nil
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(formatPayload{
			Date:    day.Format("2006-01-02"),
			Pattern: pattern,
			Output:  rendered,
		})
	default:
		return fmt.Errorf("unknown format: %s", outFormat)
	}
}
