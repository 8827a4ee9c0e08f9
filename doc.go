// Package spendreport turns raw purchase records from the accounting
// system into spending reports.
//
// The pipeline is a sequence of pure functions: raw records are normalized
// into canonical transactions, transactions from excluded payees are
// partitioned out, and the remainder is classified into spending
// categories and aggregated along several independent dimensions (by
// category, vendor, day, month, and recurring-expense group).
//
// Every stage is stateless over its inputs, so generating reports for
// different date ranges concurrently needs no locking. All monetary
// arithmetic is exact decimal.
package spendreport
