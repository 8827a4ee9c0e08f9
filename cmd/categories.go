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

type categoriesCmd struct {
	period rangeFlags
	list   bool
}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "display spending grouped by category" }
func (*categoriesCmd) Usage() string {
	return `qbs categories [-s <start>] [-e <end>] [-list]

  Classifies each transaction of the period against the ordered rule
  table and displays count, total and average per category. With -list
  the rule table itself is printed instead.
`
}

func (c *categoriesCmd) SetFlags(f *flag.FlagSet) {
	c.period.setFlags(f)
	f.BoolVar(&c.list, "list", false, "Print the category rule table instead of a report")
}

func (c *categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.list {
		for _, name := range a.rules.Names() {
			fmt.Printf("%s: %s\n", name, a.rules.Describe(name))
		}
		return subcommands.ExitSuccess
	}

	period, err := c.period.parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	kept, _ := a.fetch(period)
	groups := spendreport.ByCategory(kept, a.rules)
	printMarkdown(renderer.Groups(fmt.Sprintf("Spending by Category (%s)", period.Identifier()), "Category", groups))
	return subcommands.ExitSuccess
}
