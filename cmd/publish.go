package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/subcommands"

	"github.com/okent/spendreport/date"
	"github.com/okent/spendreport/renderer"
)

type publishCmd struct {
	year yearFlag
	out  string
}

func (*publishCmd) Name() string     { return "publish" }
func (*publishCmd) Synopsis() string { return "generate all report files for a year" }
func (*publishCmd) Usage() string {
	return `qbs publish [-y <year>] [-o <dir>]

  Generates the twelve per-month reports and the annual summary for the
  year and saves them to a directory. Months with no transactions are
  skipped.
`
}

func (c *publishCmd) SetFlags(f *flag.FlagSet) {
	c.year.setFlags(f)
	f.StringVar(&c.out, "o", "reports", "Root directory for the generated reports")
}

func (c *publishCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := os.MkdirAll(c.out, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create output directory: %v\n", err)
		return subcommands.ExitFailure
	}
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	published := 0
	for _, month := range date.MonthsOf(c.year.year) {
		report := monthlyReport(a, month)
		if len(report.Transactions) == 0 && report.Excluded.Count == 0 {
			continue
		}
		path := filepath.Join(c.out, monthlyFileName(month))
		if err := writeReport(path, renderer.Monthly(report)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		log.Printf("Generated monthly report for %s", month.Identifier())
		published++
	}

	annual := annualReport(a, c.year.year)
	path := filepath.Join(c.out, annualFileName)
	if err := writeReport(path, renderer.Annual(annual)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	log.Printf("Generated annual summary for %d", c.year.year)

	fmt.Printf("Published %d monthly reports and the annual summary to %s\n", published, c.out)
	return subcommands.ExitSuccess
}
