package models

import "github.com/shopspring/decimal"

// CategoryTotal is the outflow total of one category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// Summary is the income/expense reduction of a transaction set.
type Summary struct {
	Balance      decimal.Decimal
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	ByCategory   []CategoryTotal // Sorted by total, descending
}
