package spendreport

import (
	"sort"
)

// Group is the per-key statistic of one aggregation dimension.
type Group struct {
	Key          string
	Count        int
	Total        Money
	Transactions []Transaction
}

// Average is Total divided by Count. Groups are only created on their
// first member, so Count is never zero.
func (g Group) Average() Money { return g.Total.DivInt(g.Count) }

// groupBy buckets transactions under the key function, preserving member
// order within each group. Transactions with an empty key are skipped.
func groupBy(txs []Transaction, key func(Transaction) string) map[string]*Group {
	groups := make(map[string]*Group)
	for _, tx := range txs {
		k := key(tx)
		if k == "" {
			continue
		}
		g, ok := groups[k]
		if !ok {
			g = &Group{Key: k}
			groups[k] = g
		}
		g.Count++
		g.Total = g.Total.Add(tx.Amount)
		g.Transactions = append(g.Transactions, tx)
	}
	return groups
}

// collect flattens a group map into a slice sorted by descending total,
// ties broken by key for determinism.
func collect(groups map[string]*Group) []Group {
	out := make([]Group, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Total.Cmp(out[j].Total); c != 0 {
			return c > 0
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// collectByKey flattens a group map into a slice sorted ascending by key,
// the natural order for calendar dimensions.
func collectByKey(groups map[string]*Group) []Group {
	out := make([]Group, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// ByCategory groups spending by classification, sorted by descending total.
func ByCategory(txs []Transaction, rules *RuleSet) []Group {
	return collect(groupBy(txs, func(tx Transaction) string {
		return rules.Classify(tx.Description)
	}))
}

// ByVendor groups spending by payee, sorted by descending total.
func ByVendor(txs []Transaction) []Group {
	return collect(groupBy(txs, func(tx Transaction) string {
		return tx.Vendor
	}))
}

// ByDay groups spending by calendar day, chronological. Transactions
// without a date are left out of calendar dimensions (they still count in
// vendor and category aggregation).
func ByDay(txs []Transaction) []Group {
	return collectByKey(groupBy(txs, func(tx Transaction) string {
		if !tx.Dated() {
			return ""
		}
		return tx.Date
	}))
}

// ByMonth groups spending by calendar month prefix, chronological.
func ByMonth(txs []Transaction) []Group {
	return collectByKey(groupBy(txs, func(tx Transaction) string {
		if !tx.Dated() {
			return ""
		}
		return tx.Month()
	}))
}

// recurringKeyLen bounds the description prefix used as a fallback group
// key when the vendor is a placeholder.
const recurringKeyLen = 50

// Recurring detects recurring expenses: transactions are keyed by vendor,
// or by the first 50 characters of the description when the vendor is the
// given placeholder. Only groups with at least two members are kept.
// Members are sorted ascending by date within a group, groups by
// descending total.
func Recurring(txs []Transaction, vendorPlaceholder string) []Group {
	if vendorPlaceholder == "" {
		vendorPlaceholder = NoVendor
	}
	groups := groupBy(txs, func(tx Transaction) string {
		if tx.Vendor == vendorPlaceholder {
			if r := []rune(tx.Description); len(r) > recurringKeyLen {
				return string(r[:recurringKeyLen])
			}
			return tx.Description
		}
		return tx.Vendor
	})
	for k, g := range groups {
		if g.Count < 2 {
			delete(groups, k)
			continue
		}
		sort.SliceStable(g.Transactions, func(i, j int) bool {
			return g.Transactions[i].Date < g.Transactions[j].Date
		})
	}
	return collect(groups)
}

// Large filters transactions with an amount of at least threshold. The
// threshold is caller-supplied: reports disagree on what "large" means
// (1000 in the monthly report, 500 suggested for reviews).
func Large(txs []Transaction, threshold Money) []Transaction {
	out := make([]Transaction, 0)
	for _, tx := range txs {
		if tx.Amount.GreaterThanOrEqual(threshold) {
			out = append(out, tx)
		}
	}
	return out
}
