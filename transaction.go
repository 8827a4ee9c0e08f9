package spendreport

import "strings"

// Placeholder values used when a source record omits a field. Every
// transaction leaving Normalize has all four fields populated; downstream
// stages rely on it.
const (
	NoDate        = "N/A"
	NoDescription = "No Description Available"
	NoVendor      = "No Vendor Listed"
)

// Transaction is the canonical shape of a purchase once normalized.
type Transaction struct {
	// Date is the calendar day "YYYY-MM-DD", or the NoDate sentinel when
	// the source record had none. It is kept as a string on purpose: date
	// sorting is lexicographic and the sentinel participates in it (a
	// known quirk of the original reports, preserved as-is).
	Date        string
	Amount      Money
	Description string
	Vendor      string
}

// Month returns the "YYYY-MM" calendar month prefix of the transaction
// date, or the NoDate sentinel for dateless transactions.
func (t Transaction) Month() string {
	if t.Date == NoDate || len(t.Date) < 7 {
		return NoDate
	}
	return t.Date[:7]
}

// Dated reports whether the transaction carries a real calendar date.
func (t Transaction) Dated() bool { return t.Date != NoDate }

// Truncate bounds free text to max characters, appending an ellipsis
// marker when it was cut. Reports use 100 or 200 depending on layout.
// The cut lands on a rune boundary, never inside a multibyte character.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}

// Total sums the amounts of the given transactions.
func Total(txs []Transaction) Money {
	var total Money
	for _, tx := range txs {
		total = total.Add(tx.Amount)
	}
	return total
}

// containsFold reports whether the uppercased haystack contains the
// uppercased needle.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToUpper(haystack), strings.ToUpper(needle))
}
