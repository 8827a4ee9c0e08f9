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

type recurringCmd struct {
	period rangeFlags
}

func (*recurringCmd) Name() string     { return "recurring" }
func (*recurringCmd) Synopsis() string { return "detect recurring payments in a period" }
func (*recurringCmd) Usage() string {
	return `qbs recurring [-s <start>] [-e <end>]

  Groups the period's transactions by payee (falling back to the start of
  the description when the payee is unknown) and keeps the groups that
  occur more than once. Use a long period, e.g. a full year, to catch
  monthly subscriptions.
`
}

func (c *recurringCmd) SetFlags(f *flag.FlagSet) {
	c.period.setFlags(f)
}

func (c *recurringCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	groups := spendreport.Recurring(kept, spendreport.NoVendor)
	printMarkdown(renderer.Recurring(groups))
	return subcommands.ExitSuccess
}
