package date

import (
	"strings"
	"time"
)

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange returns a range with both boundaries included.
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// Contains returns true if the date is included in the range (boundaries included).
func (r Range) Contains(d Date) bool { return !d.Before(r.From) && !d.After(r.To) }

// Identifier computes a short identifier for the range: the "2006-01" month
// key when the range is a calendar month, the year when it is a calendar
// year, and "from_to" otherwise.
func (r Range) Identifier() string {
	switch {
	case r.From.Day() == 1 && r.From.Month() == time.January && r.To == YearOf(r.From.Year()).To:
		return r.From.Format("2006")
	case r.From.Day() == 1 && r.To == MonthOf(r.From.Year(), r.From.Month()).To:
		return r.From.Format("2006-01")
	default:
		return r.From.String() + "_" + r.To.String()
	}
}

// MonthName returns the lowercase English month name of the range start,
// used in per-month report file names.
func (r Range) MonthName() string {
	return strings.ToLower(r.From.Format("January"))
}

// MonthOf returns the calendar month range holding the given year and month.
func MonthOf(year int, month time.Month) Range {
	first := New(year, month, 1)
	return Range{From: first, To: New(year, month+1, 1).Add(-1)}
}

// YearOf returns the calendar year range for the given year.
func YearOf(year int) Range {
	return Range{From: New(year, time.January, 1), To: New(year, time.December, 31)}
}

// MonthsOf returns the twelve calendar month ranges of a year, in order.
// Annual batch runs iterate this static list.
func MonthsOf(year int) []Range {
	months := make([]Range, 0, 12)
	for m := time.January; m <= time.December; m++ {
		months = append(months, MonthOf(year, m))
	}
	return months
}
