package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/okent/spendreport"
	"github.com/okent/spendreport/date"
	"github.com/okent/spendreport/quickbooks"
)

func tx(day string, amount float64, vendor, description string) spendreport.Transaction {
	return spendreport.Transaction{
		Date:        day,
		Amount:      spendreport.USD(amount),
		Vendor:      vendor,
		Description: description,
	}
}

// parse runs the rendered markdown through a GFM parser and counts the
// structural nodes, so the tests check well-formed tables rather than
// raw pipes and dashes.
func parse(t *testing.T, rendered string) (headings, tableRows int) {
	t.Helper()
	source := []byte(rendered)
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	root := md.Parser().Parse(text.NewReader(source))
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *ast.Heading:
			headings++
		case *east.TableRow:
			tableRows++
		}
		return ast.WalkContinue, nil
	})
	return headings, tableRows
}

func TestTransactions(t *testing.T) {
	txs := []spendreport.Transaction{
		tx("2025-01-15", 120, "Acme", "monthly service"),
		tx("2025-01-20", 30.50, "Staples", "paper"),
	}
	got := Transactions(txs)

	_, rows := parse(t, got)
	if rows != 2 {
		t.Errorf("got %d table rows, want 2", rows)
	}
	for _, want := range []string{"Acme", "$120.00", "$30.50", "2025-01-15"} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered table is missing %q:\n%s", want, got)
		}
	}
}

func TestTransactions_empty(t *testing.T) {
	got := Transactions(nil)
	if !strings.Contains(got, "No transactions for this period.") {
		t.Errorf("empty listing should say so, got:\n%s", got)
	}
	if strings.Contains(got, "|") {
		t.Errorf("empty listing should not render a table:\n%s", got)
	}
}

func TestTransactions_truncatesLongDescriptions(t *testing.T) {
	long := strings.Repeat("x", 200)
	got := Transactions([]spendreport.Transaction{tx("2025-01-15", 10, "Acme", long)})
	if strings.Contains(got, long) {
		t.Errorf("description should be truncated:\n%s", got)
	}
	if !strings.Contains(got, strings.Repeat("x", 100)+"...") {
		t.Errorf("truncated description should keep the first 100 chars and an ellipsis:\n%s", got)
	}
}

func TestGroups(t *testing.T) {
	groups := []spendreport.Group{
		{Key: "Software & SaaS", Count: 2, Total: spendreport.USD(250)},
		{Key: "Office & Supplies", Count: 1, Total: spendreport.USD(30)},
	}
	got := Groups("By Category", "Category", groups)

	headings, rows := parse(t, got)
	if headings != 1 {
		t.Errorf("got %d headings, want 1", headings)
	}
	if rows != 3 { // two groups plus the All row
		t.Errorf("got %d table rows, want 3", rows)
	}
	for _, want := range []string{"Software & SaaS", "$250.00", "$125.00", "**$280.00**", "**3**"} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered groups are missing %q:\n%s", want, got)
		}
	}
}

func TestGroups_empty(t *testing.T) {
	got := Groups("By Vendor", "Vendor", nil)
	if !strings.Contains(got, "No data for this period.") {
		t.Errorf("empty groups should say so, got:\n%s", got)
	}
}

func TestMonthly(t *testing.T) {
	cfg := spendreport.DefaultConfig()
	rules := spendreport.MustRuleSet(cfg.Categories)
	records := []spendreport.RawRecord{
		{"totalAmt": 120.0, "txnDate": "2025-01-15", "privateNote": "HIGHLEVEL subscription", "entityRef": map[string]any{"name": "HighLevel"}},
		{"totalAmt": 1500.0, "txnDate": "2025-01-20", "entityRef": map[string]any{"name": "Stockton Walbeck"}},
	}
	report := spendreport.NewMonthlyReport(date.MonthOf(2025, time.January), records, cfg, rules)
	got := Monthly(report)

	for _, want := range []string{
		"Bank Transactions January 2025 (sorted by amount)",
		"By Category",
		"Software & SaaS",
		"1 transactions totaling $120.00.",
		"Excluded payees: 1 transactions totaling $1,500.00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("monthly report is missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Stockton Walbeck") {
		t.Errorf("excluded payee should not appear in the listing:\n%s", got)
	}
}

func TestAnnual(t *testing.T) {
	cfg := spendreport.DefaultConfig()
	rules := spendreport.MustRuleSet(cfg.Categories)
	records := []spendreport.RawRecord{
		{"totalAmt": 100.0, "txnDate": "2025-01-10", "entityRef": map[string]any{"name": "Acme"}},
		{"totalAmt": 150.0, "txnDate": "2025-02-10", "entityRef": map[string]any{"name": "Acme"}},
		{"totalAmt": 40.0, "txnDate": "2025-03-05", "entityRef": map[string]any{"name": "Staples"}},
	}
	report := spendreport.NewAnnualReport(2025, records, cfg, rules)
	got := Annual(report)

	for _, want := range []string{
		"Annual Summary 2025",
		"3 transactions totaling $290.00.",
		"By Month",
		"2025-01",
		"Recurring Payments",
		"Acme (2 payments, $250.00 total, $125.00 average)",
		"Top 3 Transactions",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("annual summary is missing %q:\n%s", want, got)
		}
	}
}

func TestRecurring_empty(t *testing.T) {
	got := Recurring(nil)
	if !strings.Contains(got, "No recurring payments found.") {
		t.Errorf("empty recurring view should say so, got:\n%s", got)
	}
}

func TestListing(t *testing.T) {
	txs := []spendreport.Transaction{
		tx("2025-01-15", 2000, "Acme", "annual license"),
	}
	got := Listing("Large Transactions (over $1,000.00)", txs)
	for _, want := range []string{"Large Transactions", "$2,000.00", "1 transactions totaling $2,000.00."} {
		if !strings.Contains(got, want) {
			t.Errorf("listing is missing %q:\n%s", want, got)
		}
	}
}

func TestKeyword(t *testing.T) {
	matching := []spendreport.Transaction{tx("2025-01-15", 97, "HighLevel", "HIGHLEVEL monthly")}
	rest := []spendreport.Transaction{tx("2025-01-20", 30, "Staples", "paper")}
	got := Keyword("highlevel", matching, rest)

	for _, want := range []string{`Transactions matching "highlevel"`, "Other transactions", "HighLevel", "Staples"} {
		if !strings.Contains(got, want) {
			t.Errorf("keyword view is missing %q:\n%s", want, got)
		}
	}
	if strings.Index(got, "HighLevel") > strings.Index(got, "Staples") {
		t.Errorf("matching transactions should come first:\n%s", got)
	}
}

func TestStatus(t *testing.T) {
	got := Status(quickbooks.TokenStatus{
		IsExpired:          false,
		ExpiryTime:         "2025-01-15T10:00:00",
		CurrentTime:        "2025-01-15T09:00:00",
		MinutesUntilExpiry: 60,
		Status:             "Active",
	})
	for _, want := range []string{"QuickBooks Token Status", "Active", "60", "false"} {
		if !strings.Contains(got, want) {
			t.Errorf("status view is missing %q:\n%s", want, got)
		}
	}
}
