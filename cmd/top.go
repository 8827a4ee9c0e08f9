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

type topCmd struct {
	period rangeFlags
	n      int
	by     string
}

func (*topCmd) Name() string     { return "top" }
func (*topCmd) Synopsis() string { return "display the top transactions of a period" }
func (*topCmd) Usage() string {
	return `qbs top [-n <count>] [-by amount|date|vendor] [-s <start>] [-e <end>]

  Sorts the period's transactions by the chosen key and displays the
  first n.
`
}

func (c *topCmd) SetFlags(f *flag.FlagSet) {
	c.period.setFlags(f)
	f.IntVar(&c.n, "n", 10, "Number of transactions to display")
	f.StringVar(&c.by, "by", "amount", "Sort key (amount, date, vendor)")
}

func (c *topCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	key, err := spendreport.ParseSortKey(c.by)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
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
	top := spendreport.TopN(spendreport.Sorted(kept, key), c.n)
	printMarkdown(renderer.Listing(fmt.Sprintf("Top %d Transactions by %s (%s)", len(top), key, period.Identifier()), top))
	return subcommands.ExitSuccess
}
