package spendreport

// ExcludedSummary tallies the transactions removed from spend analysis so
// reports can still account for them.
type ExcludedSummary struct {
	Count int
	Total Money
}

// Partition splits transactions into the ones kept for analysis and a
// summary of the ones belonging to excluded payees. A transaction is
// excluded iff its vendor exactly equals one of the configured names;
// matching is case-sensitive on purpose, the payee names come from the
// same accounting system that configured the list. Input order is
// preserved in kept.
func Partition(txs []Transaction, excludedVendors []string) ([]Transaction, ExcludedSummary) {
	excluded := make(map[string]bool, len(excludedVendors))
	for _, name := range excludedVendors {
		excluded[name] = true
	}

	kept := make([]Transaction, 0, len(txs))
	var summary ExcludedSummary
	for _, tx := range txs {
		if excluded[tx.Vendor] {
			summary.Count++
			summary.Total = summary.Total.Add(tx.Amount)
			continue
		}
		kept = append(kept, tx)
	}
	return kept, summary
}
