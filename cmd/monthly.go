package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"

	"github.com/okent/spendreport"
	"github.com/okent/spendreport/date"
	"github.com/okent/spendreport/renderer"
)

type monthlyCmd struct {
	year  yearFlag
	month int
	out   string
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display one month of transactions sorted by amount" }
func (*monthlyCmd) Usage() string {
	return `qbs monthly [-m <month>] [-y <year>] [-o <dir>]

  Fetches the month's purchases, drops excluded payees, and displays the
  remaining transactions sorted by descending amount with category totals.
  With -o the report is written to <dir>/<month>_bank_transactions_sorted.txt
  instead of the terminal.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	c.year.setFlags(f)
	f.IntVar(&c.month, "m", int(date.Today().Month()), "Month to report on (1-12)")
	f.StringVar(&c.out, "o", "", "Directory to write the report file to (prints to the terminal when empty)")
}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	month, ok := monthValue(c.month)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: invalid month %d, want 1-12\n", c.month)
		return subcommands.ExitUsageError
	}
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	period := date.MonthOf(c.year.year, month)
	report := monthlyReport(a, period)
	md := renderer.Monthly(report)

	if c.out == "" {
		printMarkdown(md)
		return subcommands.ExitSuccess
	}
	path := filepath.Join(c.out, monthlyFileName(period))
	if err := writeReport(path, md); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Wrote %s\n", path)
	return subcommands.ExitSuccess
}

// monthlyFileName is the flat-file name of a per-month report.
func monthlyFileName(period date.Range) string {
	return period.MonthName() + "_bank_transactions_sorted.txt"
}

func monthlyReport(a *app, period date.Range) spendreport.MonthlyReport {
	records := a.client.Purchases(period)
	return spendreport.NewMonthlyReport(period, records, a.cfg, a.rules)
}
