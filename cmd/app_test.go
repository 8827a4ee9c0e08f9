package cmd

import (
	"testing"
	"time"

	"github.com/okent/spendreport/date"
)

func TestRangeFlagsParse(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		wantFrom string
		wantTo   string
		wantErr  bool
	}{
		{
			name:     "explicit range",
			start:    "2025-01-01",
			end:      "2025-03-31",
			wantFrom: "2025-01-01",
			wantTo:   "2025-03-31",
		},
		{
			name:     "lenient dates",
			start:    "2025-1-1",
			end:      "2025-3-31",
			wantFrom: "2025-01-01",
			wantTo:   "2025-03-31",
		},
		{
			name:    "invalid start",
			start:   "january",
			wantErr: true,
		},
		{
			name:    "invalid end",
			end:     "2025-13-01",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := rangeFlags{start: tt.start, end: tt.end}
			period, err := r.parse()
			if (err != nil) != tt.wantErr {
				t.Fatalf("parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := period.From.String(); got != tt.wantFrom {
				t.Errorf("parse() From = %s, want %s", got, tt.wantFrom)
			}
			if got := period.To.String(); got != tt.wantTo {
				t.Errorf("parse() To = %s, want %s", got, tt.wantTo)
			}
		})
	}
}

func TestRangeFlagsParse_defaultsToCurrentMonth(t *testing.T) {
	var r rangeFlags
	period, err := r.parse()
	if err != nil {
		t.Fatalf("parse() error = %v", err)
	}
	today := date.Today()
	want := date.MonthOf(today.Year(), today.Month())
	if period != want {
		t.Errorf("parse() = %v, want %v", period, want)
	}
}

func TestMonthlyFileName(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  string
	}{
		{2025, time.January, "january_bank_transactions_sorted.txt"},
		{2025, time.July, "july_bank_transactions_sorted.txt"},
		{2024, time.December, "december_bank_transactions_sorted.txt"},
	}
	for _, tt := range tests {
		if got := monthlyFileName(date.MonthOf(tt.year, tt.month)); got != tt.want {
			t.Errorf("monthlyFileName(%d-%d) = %q, want %q", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestMonthValue(t *testing.T) {
	if _, ok := monthValue(0); ok {
		t.Error("monthValue(0) should be rejected")
	}
	if _, ok := monthValue(13); ok {
		t.Error("monthValue(13) should be rejected")
	}
	if m, ok := monthValue(7); !ok || m != time.July {
		t.Errorf("monthValue(7) = %v, %v", m, ok)
	}
}
