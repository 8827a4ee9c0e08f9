package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/okent/spendreport/quickbooks"
)

// Status renders the OAuth token status of the QuickBooks bridge.
func Status(s quickbooks.TokenStatus) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("QuickBooks Token Status")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft},
		Header:    []string{"Field", "Value"},
		Rows: [][]string{
			{"Status", s.Status},
			{"Expired", fmt.Sprintf("%t", s.IsExpired)},
			{"Expiry time", s.ExpiryTime},
			{"Current time", s.CurrentTime},
			{"Minutes until expiry", fmt.Sprintf("%d", s.MinutesUntilExpiry)},
		},
	})
	return doc.String()
}
