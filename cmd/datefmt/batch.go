package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"datefmt"
	"datefmt/internal/driver"
)

var batchCmd = &cobra.Command{
	Use:   "batch [flags] [file]",
	Short: "Format dates read line by line",
	Long:  `Batch reads one yyyy-mm-dd date per line from a file (or stdin when no file is given) and renders each with the resolved pattern; the first bad line aborts the run`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().StringP("pattern", "p", "", "format pattern (default: datefmt.toml, then "+defaultPattern+")")
	batchCmd.Flags().Int("jobs", 0, "number of parallel workers (0 = GOMAXPROCS)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	patternFlag, err := cmd.Flags().GetString("pattern")
	if err != nil {
		return fmt.Errorf("failed to get pattern flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	pattern, err := resolvePattern(patternFlag, ".")
	if err != nil {
		return err
	}
	p, err := datefmt.ParsePattern(pattern)
	if err != nil {
		return err
	}

	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer f.Close()
		in = f
	}

	lines, err := readLines(in)
	if err != nil {
		return err
	}

	results, err := driver.FormatLines(cmd.Context(), lines, p, jobs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, res := range results {
		fmt.Fprintln(out, res.Output)
	}
	return nil
}

func readLines(in io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return lines, nil
}
