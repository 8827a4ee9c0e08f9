package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/okent/spendreport"
)

// Annual renders the year-end summary: month rollup, category totals,
// recurring payments, largest transactions and the grand total.
func Annual(r spendreport.AnnualReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Annual Summary %d", r.Year))
	doc.PlainText(fmt.Sprintf("%d transactions totaling %s.", r.Count, r.GrandTotal.String()))

	doc.H2("By Month")
	groupTable(doc, "Month", r.Months)

	doc.H2("By Category")
	groupTable(doc, "Category", r.Categories)

	doc.H2("Recurring Payments")
	recurringSection(doc, r.Recurring)

	doc.H2(fmt.Sprintf("Top %d Transactions", len(r.TopSpend)))
	transactionTable(doc, r.TopSpend)

	excludedNote(doc, r.Excluded)
	return doc.String()
}

// Recurring renders the recurring payment groups on their own.
func Recurring(groups []spendreport.Group) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Recurring Payments")
	recurringSection(doc, groups)
	return doc.String()
}

func recurringSection(doc *md.Markdown, groups []spendreport.Group) {
	if len(groups) == 0 {
		doc.PlainText("No recurring payments found.")
		return
	}
	for _, g := range groups {
		doc.H3(fmt.Sprintf("%s (%d payments, %s total, %s average)",
			g.Key, g.Count, g.Total.String(), g.Average().String()))
		transactionTable(doc, g.Transactions)
	}
}
