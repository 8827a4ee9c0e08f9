package spendreport

import (
	"encoding/json"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// RawRecord is a purchase entity as returned by the accounting-system
// query API, decoded as-is from JSON.
type RawRecord map[string]any

// NormalizeOptions tunes the defaults applied while normalizing.
type NormalizeOptions struct {
	// VendorPlaceholder replaces an absent payee name. Different reports
	// historically used different placeholders ("No Vendor Listed",
	// "Unknown"), so it is a parameter, not a constant. Empty means
	// NoVendor.
	VendorPlaceholder string
}

// Normalize converts a raw record into a canonical Transaction. It is a
// total function: any missing or malformed field maps to its documented
// default, never to an error.
func Normalize(r RawRecord, opts NormalizeOptions) Transaction {
	vendorPlaceholder := opts.VendorPlaceholder
	if vendorPlaceholder == "" {
		vendorPlaceholder = NoVendor
	}

	return Transaction{
		Date:        rawDate(r),
		Amount:      rawAmount(r),
		Description: rawDescription(r),
		Vendor:      rawVendor(r, vendorPlaceholder),
	}
}

// NormalizeAll normalizes every record of a query response, in order.
func NormalizeAll(records []RawRecord, opts NormalizeOptions) []Transaction {
	txs := make([]Transaction, 0, len(records))
	for _, r := range records {
		txs = append(txs, Normalize(r, opts))
	}
	return txs
}

// rawAmount parses totalAmt as a decimal. The API is inconsistent about
// the JSON type (number or numeric string); anything unparseable is zero.
func rawAmount(r RawRecord) Money {
	switch v := r["totalAmt"].(type) {
	case float64:
		return USD(v)
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return USD(0)
		}
		return USD(d)
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return USD(0)
		}
		return USD(d)
	case int:
		return USD(v)
	default:
		return USD(0)
	}
}

// rawDate truncates txnDate to its "YYYY-MM-DD" calendar day.
func rawDate(r RawRecord) string {
	s, ok := r["txnDate"].(string)
	if !ok || s == "" {
		return NoDate
	}
	if len(s) > 10 {
		return s[:10]
	}
	return s
}

// rawDescription prefers privateNote over memo.
func rawDescription(r RawRecord) string {
	if s, ok := r["privateNote"].(string); ok && s != "" {
		return s
	}
	if s, ok := r["memo"].(string); ok && s != "" {
		return s
	}
	return NoDescription
}

// rawVendor reads the nested entityRef.name payee field.
func rawVendor(r RawRecord, placeholder string) string {
	jval, err := jsonpath.Get("$.entityRef.name", map[string]any(r))
	if err != nil {
		return placeholder
	}
	s, ok := jval.(string)
	if !ok || s == "" {
		return placeholder
	}
	return s
}
