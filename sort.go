package spendreport

import (
	"fmt"
	"sort"
	"strings"
)

// SortKey identifies a transaction ordering for ranked listings.
type SortKey int

const (
	ByAmount     SortKey = iota // descending
	ByDate                      // descending, lexicographic on "YYYY-MM-DD"
	ByVendorName                // ascending, lexicographic
)

// ParseSortKey parses a user-supplied sort key name.
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(s) {
	case "amount":
		return ByAmount, nil
	case "date":
		return ByDate, nil
	case "vendor":
		return ByVendorName, nil
	default:
		return ByAmount, fmt.Errorf("unknown sort key %q (amount, date, vendor)", s)
	}
}

func (k SortKey) String() string {
	switch k {
	case ByAmount:
		return "amount"
	case ByDate:
		return "date"
	case ByVendorName:
		return "vendor"
	default:
		panic(fmt.Sprintf("unknown sort key %d", k))
	}
}

// Sorted returns a stably sorted copy of the transactions; the input is
// never modified. Date ordering is lexicographic, which makes the NoDate
// sentinel sort as a real value mid-sequence; the original reports behave
// that way and it is preserved here.
func Sorted(txs []Transaction, key SortKey) []Transaction {
	out := make([]Transaction, len(txs))
	copy(out, txs)
	switch key {
	case ByAmount:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Amount.GreaterThan(out[j].Amount)
		})
	case ByDate:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Date > out[j].Date
		})
	case ByVendorName:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Vendor < out[j].Vendor
		})
	}
	return out
}

// TopN returns the first n transactions of an already-ordered sequence,
// or the whole sequence when it is shorter.
func TopN(txs []Transaction, n int) []Transaction {
	if n < 0 {
		n = 0
	}
	if n > len(txs) {
		n = len(txs)
	}
	return txs[:n]
}

// MatchKeyword splits transactions into the ones whose description
// contains the keyword (case-insensitive) and the rest. Relative order
// is preserved within both buckets and nothing is dropped: this is a
// partition, not a filter.
func MatchKeyword(txs []Transaction, keyword string) (matching, rest []Transaction) {
	matching = make([]Transaction, 0, len(txs))
	rest = make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		if containsFold(tx.Description, keyword) {
			matching = append(matching, tx)
		} else {
			rest = append(rest, tx)
		}
	}
	return matching, rest
}

// ByKeyword reorders transactions so that the keyword matches come first.
func ByKeyword(txs []Transaction, keyword string) []Transaction {
	matching, rest := MatchKeyword(txs, keyword)
	return append(matching, rest...)
}
