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

// annualFileName is the flat-file name of the year-end summary.
const annualFileName = "annual_summary.txt"

type annualCmd struct {
	year yearFlag
	out  string
}

func (*annualCmd) Name() string     { return "annual" }
func (*annualCmd) Synopsis() string { return "display the year-end spending summary" }
func (*annualCmd) Usage() string {
	return `qbs annual [-y <year>] [-o <dir>]

  Fetches the whole year month by month and displays the annual summary:
  monthly rollup, category totals, recurring payments and the largest
  transactions. With -o the report is written to <dir>/annual_summary.txt.
`
}

func (c *annualCmd) SetFlags(f *flag.FlagSet) {
	c.year.setFlags(f)
	f.StringVar(&c.out, "o", "", "Directory to write the report file to (prints to the terminal when empty)")
}

func (c *annualCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	report := annualReport(a, c.year.year)
	md := renderer.Annual(report)

	if c.out == "" {
		printMarkdown(md)
		return subcommands.ExitSuccess
	}
	path := filepath.Join(c.out, annualFileName)
	if err := writeReport(path, md); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Wrote %s\n", path)
	return subcommands.ExitSuccess
}

// annualReport fetches a year of purchases one calendar month at a time,
// so each month lands in its own daily cache entry, and builds the
// summary over the combined set.
func annualReport(a *app, year int) spendreport.AnnualReport {
	var records []spendreport.RawRecord
	for _, month := range date.MonthsOf(year) {
		records = append(records, a.client.Purchases(month)...)
	}
	return spendreport.NewAnnualReport(year, records, a.cfg, a.rules)
}
