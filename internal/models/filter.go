package models

import "time"

// TransactionFilter narrows a transaction set. Zero-valued fields impose no constraint.
type TransactionFilter struct {
	Type     string
	Category string
	DateFrom *time.Time
	DateTo   *time.Time
	Text     string
}

// HasDateBound reports whether either date bound is set.
func (f TransactionFilter) HasDateBound() bool {
	return f.DateFrom != nil || f.DateTo != nil
}

// TransactionPage is one page of a filtered, sorted transaction list.
type TransactionPage struct {
	Items    []Transaction
	Total    int
	Page     int
	PageSize int
}
