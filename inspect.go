package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/countmore/countmore/election"
	"github.com/countmore/countmore/summary"
)

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	stateColor   = color.New(color.FgGreen, color.Bold)
	warnColor    = color.New(color.FgYellow)
)

func newSelectCmd() *cobra.Command {
	var (
		dataDir string
		year    int
	)

	cmd := &cobra.Command{
		Use:   "select HOME SCHOOL",
		Short: "Compare a home state and a school state",
		Example: `  countmore select CA GA
  countmore select pa pa`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			home, err := election.ParseState(args[0])
			if err != nil {
				return err
			}
			school, err := election.ParseState(args[1])
			if err != nil {
				return err
			}

			data, err := election.Load(dataDir)
			if err != nil {
				return err
			}
			writer, err := summary.NewWriter(data, year)
			if err != nil {
				return err
			}

			sum, err := writer.Describe(data.Rankings().NewSelectionResult(home, school))
			if err != nil {
				return err
			}
			return printSummary(cmd.OutOrStdout(), data, sum)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", "", "Directory with election tables (default: embedded)")
	cmd.Flags().IntVar(&year, "year", 2020, "Election quoted in the margin message")
	return cmd
}

func printSummary(w io.Writer, data *election.Dataset, sum summary.Summary) error {
	headingColor.Fprintf(w, "%s\n", sum.Headline)
	fmt.Fprintf(w, "%s\n", sum.Details)
	if sum.MarginMessage != "" {
		warnColor.Fprintf(w, "%s\n", sum.MarginMessage)
	}

	fmt.Fprintln(w)
	for _, st := range sum.Register {
		url, err := data.BestRegistrationURL(st)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Register in %s: %s\n", stateColor.Sprint(data.Name(st)), url)
	}
	return nil
}

func newMarginCmd() *cobra.Command {
	var (
		dataDir string
		year    int
	)

	cmd := &cobra.Command{
		Use:     "margin STATE",
		Short:   "Show how close a state's presidential result was",
		Example: `  countmore margin GA --year 2016`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := election.ParseState(args[0])
			if err != nil {
				return err
			}

			data, err := election.Load(dataDir)
			if err != nil {
				return err
			}
			e, err := data.Election(year)
			if err != nil {
				return err
			}
			r, err := e.Result(st)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			headingColor.Fprintf(w, "%s, %d\n", data.Name(st), e.Year)
			for _, p := range []election.Party{election.PartyDem, election.PartyRep, election.PartyOther} {
				fmt.Fprintf(w, "  %-14s %12s  %6s\n",
					e.Candidates.Name(p),
					election.FormatNumber(r.Votes.Get(p)),
					election.FormatPercent(r.VotesPercent(p), 1))
			}
			fmt.Fprintf(w, "%s won by %s\n", stateColor.Sprint(r.Winner(e.Candidates)), r.DescribeMargin())
			return nil
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", "", "Directory with election tables (default: embedded)")
	cmd.Flags().IntVar(&year, "year", 2020, "Election year")
	return cmd
}
