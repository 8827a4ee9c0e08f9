package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/okent/spendreport"
)

// Groups renders one aggregation dimension (categories, vendors, days,
// months) as a titled markdown table with count, total and average.
func Groups(title, keyHeader string, groups []spendreport.Group) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(title)
	groupTable(doc, keyHeader, groups)
	return doc.String()
}

func groupTable(doc *md.Markdown, keyHeader string, groups []spendreport.Group) {
	if len(groups) == 0 {
		doc.PlainText("No data for this period.")
		return
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{keyHeader, "Count", "Total", "Average"},
	}
	var count int
	var total spendreport.Money
	for _, g := range groups {
		table.Rows = append(table.Rows, []string{
			g.Key,
			fmt.Sprintf("%d", g.Count),
			g.Total.String(),
			g.Average().String(),
		})
		count += g.Count
		total = total.Add(g.Total)
	}
	table.Rows = append(table.Rows, []string{
		md.Bold("All"),
		md.Bold(fmt.Sprintf("%d", count)),
		md.Bold(total.String()),
		"",
	})
	doc.Table(table)
}
