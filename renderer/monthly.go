package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/okent/spendreport"
)

// Monthly renders the per-month sorted transaction report.
func Monthly(r spendreport.MonthlyReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Bank Transactions %s (sorted by amount)", r.Period.From.Format("January 2006")))
	transactionTable(doc, r.Transactions)
	if len(r.Transactions) > 0 {
		doc.PlainText(fmt.Sprintf("%d transactions totaling %s.", len(r.Transactions), r.Total().String()))
		doc.H2("By Category")
		groupTable(doc, "Category", r.Categories)
	}
	excludedNote(doc, r.Excluded)
	return doc.String()
}
