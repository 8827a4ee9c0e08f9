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

type vendorsCmd struct {
	period rangeFlags
}

func (*vendorsCmd) Name() string     { return "vendors" }
func (*vendorsCmd) Synopsis() string { return "display spending grouped by payee" }
func (*vendorsCmd) Usage() string {
	return `qbs vendors [-s <start>] [-e <end>]

  Displays count, total and average per payee for the period, largest
  total first.
`
}

func (c *vendorsCmd) SetFlags(f *flag.FlagSet) {
	c.period.setFlags(f)
}

func (c *vendorsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	groups := spendreport.ByVendor(kept)
	printMarkdown(renderer.Groups(fmt.Sprintf("Spending by Vendor (%s)", period.Identifier()), "Vendor", groups))
	return subcommands.ExitSuccess
}
