package spendreport

// tx is a test helper building a transaction from literals.
func tx(day string, amount float64, vendor, description string) Transaction {
	return Transaction{
		Date:        day,
		Amount:      USD(amount),
		Description: description,
		Vendor:      vendor,
	}
}
