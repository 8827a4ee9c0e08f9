package spendreport

import (
	"github.com/okent/spendreport/date"
)

// MonthlyReport is the derived view behind the per-month sorted
// transaction report. It is recomputed on every run; nothing persists.
type MonthlyReport struct {
	Period       date.Range
	Transactions []Transaction // kept transactions, sorted by descending amount
	Categories   []Group
	Excluded     ExcludedSummary
}

// NewMonthlyReport runs the whole pipeline over one month of raw records.
func NewMonthlyReport(period date.Range, records []RawRecord, cfg Config, rules *RuleSet) MonthlyReport {
	txs := NormalizeAll(records, NormalizeOptions{})
	kept, excluded := Partition(txs, cfg.ExcludedVendors)
	return MonthlyReport{
		Period:       period,
		Transactions: Sorted(kept, ByAmount),
		Categories:   ByCategory(kept, rules),
		Excluded:     excluded,
	}
}

// Total sums the kept transactions of the month.
func (r MonthlyReport) Total() Money { return Total(r.Transactions) }

// AnnualReport is the derived view behind the annual summary.
type AnnualReport struct {
	Year       int
	Months     []Group // calendar month rollup, chronological
	Categories []Group
	Recurring  []Group
	TopSpend   []Transaction // largest transactions of the year
	Excluded   ExcludedSummary
	Count      int
	GrandTotal Money
}

// topSpendCount bounds the largest-transactions section of the annual summary.
const topSpendCount = 10

// NewAnnualReport runs the pipeline over a whole year of raw records,
// typically gathered by iterating the twelve static month ranges.
func NewAnnualReport(year int, records []RawRecord, cfg Config, rules *RuleSet) AnnualReport {
	txs := NormalizeAll(records, NormalizeOptions{})
	kept, excluded := Partition(txs, cfg.ExcludedVendors)
	return AnnualReport{
		Year:       year,
		Months:     ByMonth(kept),
		Categories: ByCategory(kept, rules),
		Recurring:  Recurring(kept, NoVendor),
		TopSpend:   TopN(Sorted(kept, ByAmount), topSpendCount),
		Excluded:   excluded,
		Count:      len(kept),
		GrandTotal: Total(kept),
	}
}
