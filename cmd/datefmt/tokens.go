package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"datefmt"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "List the pattern token vocabulary",
	Long:  `Tokens prints every recognized pattern token and separator, with an example rendered for today`,
	Args:  cobra.NoArgs,
	RunE:  runTokens,
}

var tokenDescriptions = map[datefmt.Kind]string{
	datefmt.YearTwoDigit:  "last two digits of the year, zero-padded",
	datefmt.YearFull:      "full year, zero-padded to four digits",
	datefmt.MonthNumeric:  "month number, no padding",
	datefmt.MonthPadded:   "month number, zero-padded",
	datefmt.MonthAbbrev:   "three-letter month abbreviation",
	datefmt.MonthWide:     "month spelled out in full",
	datefmt.DayNumeric:    "day of the month, no padding",
	datefmt.DayPadded:     "day of the month, zero-padded",
	datefmt.WeekdayAbbrev: "three-letter weekday abbreviation",
	datefmt.WeekdayWide:   "weekday spelled out in full",
}

var separatorNames = map[byte]string{
	'/': "slash",
	'.': "period",
	'-': "hyphen",
	' ': "space",
}

func runTokens(cmd *cobra.Command, args []string) error {
	header := color.New(color.FgCyan, color.Bold)
	if !colorEnabled(cmd, os.Stdout) {
		header.DisableColor()
	}

	now := time.Now()
	out := cmd.OutOrStdout()

	const tokenWidth, exampleWidth = 6, 11
	fmt.Fprintln(out, header.Sprint(
		runewidth.FillRight("TOKEN", tokenWidth)+
			runewidth.FillRight("EXAMPLE", exampleWidth)+
			"RENDERS"))
	for _, k := range datefmt.Kinds() {
		fmt.Fprintln(out,
			runewidth.FillRight(k.Literal(), tokenWidth)+
				runewidth.FillRight(k.Render(now), exampleWidth)+
				tokenDescriptions[k])
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, header.Sprint("SEPARATORS"))
	for _, sep := range datefmt.Separators() {
		fmt.Fprintln(out,
			runewidth.FillRight(fmt.Sprintf("%q", sep), tokenWidth)+
				separatorNames[sep])
	}
	return nil
}
