// Package cmd implements the CLI application to report on business spending.
package cmd

import (
	"flag"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/okent/spendreport"
	"github.com/okent/spendreport/date"
	"github.com/okent/spendreport/quickbooks"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&monthlyCmd{}, "reports")
	c.Register(&annualCmd{}, "reports")
	c.Register(&publishCmd{}, "reports")

	c.Register(&categoriesCmd{}, "analysis")
	c.Register(&vendorsCmd{}, "analysis")
	c.Register(&recurringCmd{}, "analysis")
	c.Register(&topCmd{}, "analysis")
	c.Register(&largeCmd{}, "analysis")
	c.Register(&searchCmd{}, "analysis")
	c.Register(&suggestCmd{}, "analysis")

	c.Register(&statusCmd{}, "tokens")
	c.Register(&refreshCmd{}, "tokens")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var apiURL = flag.String("api", "", "Base URL of the QuickBooks query API (defaults to "+quickbooks.DefaultBaseURL+", or $QB_API_URL)")
var configFile = flag.String("config", "", "Path to the category rules file (JSON), built-in rules when empty")

// baseURL resolves the query API base URL from the flag, then the
// environment, then the built-in default.
func baseURL() string {
	if *apiURL != "" {
		return *apiURL
	}
	return os.Getenv("QB_API_URL")
}

// app bundles what every reporting command needs: the upstream client
// and the compiled rule table.
type app struct {
	client *quickbooks.Client
	cfg    spendreport.Config
	rules  *spendreport.RuleSet
}

// newApp is the central function to set up the reporting pipeline.
func newApp() (*app, error) {
	cfg, err := spendreport.LoadConfig(*configFile)
	if err != nil {
		return nil, err
	}
	rules, err := cfg.Rules()
	if err != nil {
		return nil, err
	}
	return &app{
		client: quickbooks.New(baseURL()),
		cfg:    cfg,
		rules:  rules,
	}, nil
}

// fetch pulls a period of purchases and runs the front of the pipeline:
// normalization and payee exclusion.
func (a *app) fetch(r date.Range) ([]spendreport.Transaction, spendreport.ExcludedSummary) {
	records := a.client.Purchases(r)
	txs := spendreport.NormalizeAll(records, spendreport.NormalizeOptions{})
	return spendreport.Partition(txs, a.cfg.ExcludedVendors)
}

// rangeFlags is the shared -s / -e period selection, defaulting to the
// current calendar month.
type rangeFlags struct {
	start string
	end   string
}

func (r *rangeFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&r.start, "s", "", "Start date of the period (YYYY-MM-DD, defaults to the 1st of this month)")
	f.StringVar(&r.end, "e", "", "End date of the period (YYYY-MM-DD, defaults to the last day of this month)")
}

func (r *rangeFlags) parse() (date.Range, error) {
	today := date.Today()
	period := date.MonthOf(today.Year(), today.Month())
	if r.start != "" {
		from, err := date.Parse(r.start)
		if err != nil {
			return date.Range{}, err
		}
		period.From = from
	}
	if r.end != "" {
		to, err := date.Parse(r.end)
		if err != nil {
			return date.Range{}, err
		}
		period.To = to
	}
	return period, nil
}

// yearFlag is the shared -y year selection, defaulting to the current year.
type yearFlag struct {
	year int
}

func (y *yearFlag) setFlags(f *flag.FlagSet) {
	f.IntVar(&y.year, "y", date.Today().Year(), "Year to report on")
}

// monthValue validates a 1-12 month flag.
func monthValue(m int) (time.Month, bool) {
	if m < 1 || m > 12 {
		return 0, false
	}
	return time.Month(m), true
}
