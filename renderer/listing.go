package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/okent/spendreport"
)

// Listing renders a titled transaction table with a closing total line.
// The top, large and vendors commands all print through it.
func Listing(title string, txs []spendreport.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(title)
	transactionTable(doc, txs)
	if len(txs) > 0 {
		doc.PlainText(fmt.Sprintf("%d transactions totaling %s.", len(txs), spendreport.Total(txs).String()))
	}
	return doc.String()
}

// Keyword renders the keyword search view: matching transactions first,
// then the remainder of the period under its own heading.
func Keyword(keyword string, matching, rest []spendreport.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Transactions matching %q", keyword))
	transactionTable(doc, matching)
	if len(matching) > 0 {
		doc.PlainText(fmt.Sprintf("%d transactions totaling %s.", len(matching), spendreport.Total(matching).String()))
	}
	doc.H2("Other transactions")
	transactionTable(doc, rest)
	return doc.String()
}
