package spendreport

import "testing"

// End-to-end run of the default configuration over a small batch:
// exclusion, classification and recurring detection composed the way the
// report commands compose them.
func TestPipeline_endToEnd(t *testing.T) {
	cfg := DefaultConfig()
	rules, err := cfg.Rules()
	if err != nil {
		t.Fatalf("default rules: %v", err)
	}

	records := []RawRecord{
		{"totalAmt": 1500.0, "txnDate": "2025-01-03", "privateNote": "x", "entityRef": map[string]any{"name": "Stockton Walbeck"}},
		{"totalAmt": 800.0, "txnDate": "2025-01-05", "privateNote": "x", "entityRef": map[string]any{"name": "Dakota Walbeck"}},
		{"totalAmt": 650.0, "txnDate": "2025-01-06", "privateNote": "x", "entityRef": map[string]any{"name": "Parker Walbeck"}},
		{"totalAmt": 300.0, "txnDate": "2025-01-07", "privateNote": "x", "entityRef": map[string]any{"name": "Canyon Smith"}},
		{"totalAmt": 200.0, "txnDate": "2025-01-10", "privateNote": "HIGHLEVEL monthly", "entityRef": map[string]any{"name": "Acme"}},
		{"totalAmt": 50.0, "txnDate": "2025-02-10", "privateNote": "HIGHLEVEL monthly", "entityRef": map[string]any{"name": "Acme"}},
	}

	txs := NormalizeAll(records, NormalizeOptions{})
	kept, excl := Partition(txs, cfg.ExcludedVendors)

	// All four built-in excluded payees are filtered, not just the first.
	if excl.Count != 4 || !excl.Total.Equal(USD(3250)) {
		t.Errorf("excluded = %+v, want count 4 total $3250", excl)
	}
	if len(kept) != 2 {
		t.Fatalf("kept %d, want 2", len(kept))
	}

	for _, tx := range kept {
		if got := rules.Classify(tx.Description); got != "Software & SaaS" {
			t.Errorf("Classify(%q) = %q, want Software & SaaS", tx.Description, got)
		}
	}

	groups := Recurring(kept, NoVendor)
	if len(groups) != 1 {
		t.Fatalf("recurring groups = %d, want 1", len(groups))
	}
	g := groups[0]
	if g.Key != "Acme" || g.Count != 2 {
		t.Errorf("group = %+v, want Acme with 2 members", g)
	}
	if !g.Total.Equal(USD(250)) {
		t.Errorf("group total = %v, want $250", g.Total)
	}
	if !g.Average().Equal(USD(125)) {
		t.Errorf("group average = %v, want $125", g.Average())
	}
}

// An empty upstream response is "no data for this period", not an error:
// every aggregation comes back empty and every total zero.
func TestPipeline_emptyResponse(t *testing.T) {
	cfg := DefaultConfig()
	rules, err := cfg.Rules()
	if err != nil {
		t.Fatal(err)
	}

	txs := NormalizeAll(nil, NormalizeOptions{})
	kept, excl := Partition(txs, cfg.ExcludedVendors)

	if len(kept) != 0 || excl.Count != 0 || !excl.Total.IsZero() {
		t.Errorf("empty input produced data: kept=%d excl=%+v", len(kept), excl)
	}
	if got := ByCategory(kept, rules); len(got) != 0 {
		t.Errorf("ByCategory = %v, want empty", got)
	}
	if got := ByMonth(kept); len(got) != 0 {
		t.Errorf("ByMonth = %v, want empty", got)
	}
	if got := TopN(Sorted(kept, ByAmount), 10); len(got) != 0 {
		t.Errorf("TopN = %v, want empty", got)
	}
	if !Total(kept).IsZero() {
		t.Errorf("Total = %v, want zero", Total(kept))
	}
}
