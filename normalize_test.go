package spendreport

import "testing"

func TestNormalize_defaults(t *testing.T) {
	testCases := []struct {
		name string
		in   RawRecord
		want Transaction
	}{
		{
			name: "complete record",
			in: RawRecord{
				"totalAmt":    125.5,
				"txnDate":     "2025-03-14T00:00:00-07:00",
				"privateNote": "HIGHLEVEL monthly",
				"entityRef":   map[string]any{"value": "42", "name": "Acme"},
			},
			want: Transaction{Date: "2025-03-14", Amount: USD(125.5), Description: "HIGHLEVEL monthly", Vendor: "Acme"},
		},
		{
			name: "empty record gets all placeholders",
			in:   RawRecord{},
			want: Transaction{Date: NoDate, Amount: USD(0), Description: NoDescription, Vendor: NoVendor},
		},
		{
			name: "memo fallback when privateNote empty",
			in:   RawRecord{"privateNote": "", "memo": "office chairs"},
			want: Transaction{Date: NoDate, Amount: USD(0), Description: "office chairs", Vendor: NoVendor},
		},
		{
			name: "string amount",
			in:   RawRecord{"totalAmt": "99.99"},
			want: Transaction{Date: NoDate, Amount: USD(99.99), Description: NoDescription, Vendor: NoVendor},
		},
		{
			name: "unparseable amount is zero",
			in:   RawRecord{"totalAmt": "n/a"},
			want: Transaction{Date: NoDate, Amount: USD(0), Description: NoDescription, Vendor: NoVendor},
		},
		{
			name: "short date kept as is",
			in:   RawRecord{"txnDate": "2025-03-14"},
			want: Transaction{Date: "2025-03-14", Amount: USD(0), Description: NoDescription, Vendor: NoVendor},
		},
		{
			name: "entityRef without name",
			in:   RawRecord{"entityRef": map[string]any{"value": "42"}},
			want: Transaction{Date: NoDate, Amount: USD(0), Description: NoDescription, Vendor: NoVendor},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.in, NormalizeOptions{})
			if got.Date != tc.want.Date {
				t.Errorf("Date = %q, want %q", got.Date, tc.want.Date)
			}
			if !got.Amount.Equal(tc.want.Amount) {
				t.Errorf("Amount = %v, want %v", got.Amount, tc.want.Amount)
			}
			if got.Description != tc.want.Description {
				t.Errorf("Description = %q, want %q", got.Description, tc.want.Description)
			}
			if got.Vendor != tc.want.Vendor {
				t.Errorf("Vendor = %q, want %q", got.Vendor, tc.want.Vendor)
			}
		})
	}
}

func TestNormalize_isTotal(t *testing.T) {
	// Whatever garbage the source emits, all four fields come out populated.
	garbage := []RawRecord{
		nil,
		{},
		{"totalAmt": []any{"weird"}},
		{"txnDate": 42, "privateNote": 3.14, "entityRef": "not a map"},
		{"entityRef": map[string]any{"name": 7}},
	}
	for i, r := range garbage {
		got := Normalize(r, NormalizeOptions{})
		if got.Date == "" || got.Description == "" || got.Vendor == "" {
			t.Errorf("record %d: normalized transaction has empty field: %+v", i, got)
		}
	}
}

func TestNormalize_vendorPlaceholder(t *testing.T) {
	got := Normalize(RawRecord{}, NormalizeOptions{VendorPlaceholder: "Unknown"})
	if got.Vendor != "Unknown" {
		t.Errorf("Vendor = %q, want %q", got.Vendor, "Unknown")
	}
}

func TestNormalizeAll_preservesOrder(t *testing.T) {
	records := []RawRecord{
		{"privateNote": "first"},
		{"privateNote": "second"},
		{"privateNote": "third"},
	}
	txs := NormalizeAll(records, NormalizeOptions{})
	if len(txs) != 3 {
		t.Fatalf("got %d transactions, want 3", len(txs))
	}
	for i, want := range []string{"first", "second", "third"} {
		if txs[i].Description != want {
			t.Errorf("txs[%d].Description = %q, want %q", i, txs[i].Description, want)
		}
	}
}

func TestTruncate(t *testing.T) {
	testCases := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 100, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this one is too long", 7, "this on..."},
		{"caffè crème reçu par virement", 11, "caffè crème..."}, // cut counts runes, not bytes
		{"caffè", 5, "caffè"},
	}
	for _, tc := range testCases {
		if got := Truncate(tc.in, tc.max); got != tc.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
		}
	}
}
