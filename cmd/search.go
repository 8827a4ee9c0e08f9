package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/okent/spendreport"
	"github.com/okent/spendreport/renderer"
)

type searchCmd struct {
	period  rangeFlags
	keyword string
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "list transactions matching a description keyword" }
func (*searchCmd) Usage() string {
	return `qbs search -k <keyword> [-s <start>] [-e <end>]

  Splits the period's transactions into the ones whose description
  contains the keyword (case-insensitive) and the rest. Both buckets are
  displayed, matches first, so nothing disappears from the listing.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	c.period.setFlags(f)
	f.StringVar(&c.keyword, "k", "", "Keyword to search descriptions for")
}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.keyword == "" {
		fmt.Fprintln(os.Stderr, "Error: -k <keyword> is required")
		return subcommands.ExitUsageError
	}
	period, err := c.period.parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	kept, _ := a.fetch(period)
	matching, rest := spendreport.MatchKeyword(kept, c.keyword)
	printMarkdown(renderer.Keyword(c.keyword, matching, rest))
	return subcommands.ExitSuccess
}
