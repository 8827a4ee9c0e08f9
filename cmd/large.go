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

type largeCmd struct {
	period rangeFlags
	min    float64
}

func (*largeCmd) Name() string     { return "large" }
func (*largeCmd) Synopsis() string { return "display transactions at or above a threshold" }
func (*largeCmd) Usage() string {
	return `qbs large [-min <amount>] [-s <start>] [-e <end>]

  Displays the period's transactions with an amount of at least -min,
  sorted by descending amount.
`
}

func (c *largeCmd) SetFlags(f *flag.FlagSet) {
	c.period.setFlags(f)
	f.Float64Var(&c.min, "min", 1000, "Minimum amount (inclusive)")
}

func (c *largeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	threshold := spendreport.USD(c.min)
	large := spendreport.Sorted(spendreport.Large(kept, threshold), spendreport.ByAmount)
	printMarkdown(renderer.Listing(fmt.Sprintf("Transactions of %s or more (%s)", threshold, period.Identifier()), large))
	return subcommands.ExitSuccess
}
