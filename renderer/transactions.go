// Package renderer turns report data into markdown text. Formatting is
// deliberately outside the core pipeline: commands print the markdown to
// the terminal or write it to flat files.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/okent/spendreport"
)

// descriptionWidth bounds the description column of transaction tables.
const descriptionWidth = 100

// Transactions renders a transaction listing as a markdown table.
func Transactions(txs []spendreport.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	transactionTable(doc, txs)
	return doc.String()
}

func transactionTable(doc *md.Markdown, txs []spendreport.Transaction) {
	if len(txs) == 0 {
		doc.PlainText("No transactions for this period.")
		return
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Date", "Vendor", "Amount", "Description"},
	}
	for _, tx := range txs {
		table.Rows = append(table.Rows, []string{
			tx.Date,
			tx.Vendor,
			tx.Amount.String(),
			spendreport.Truncate(tx.Description, descriptionWidth),
		})
	}
	doc.Table(table)
}

// excludedNote appends the excluded-payee audit line of a report.
func excludedNote(doc *md.Markdown, excl spendreport.ExcludedSummary) {
	if excl.Count == 0 {
		return
	}
	doc.PlainText(fmt.Sprintf("Excluded payees: %d transactions totaling %s (not part of the figures above).",
		excl.Count, excl.Total.String()))
}
