package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the kind of a transaction.
type TransactionType string

// Supported transaction types. Deposit increases the balance, transfer models any outflow.
const (
	TransactionTypeDeposit  TransactionType = "deposit"
	TransactionTypeTransfer TransactionType = "transfer"
)

// ParseTransactionType maps a case-insensitive name to a known type.
func ParseTransactionType(s string) (TransactionType, bool) {
	switch {
	case strings.EqualFold(s, string(TransactionTypeDeposit)):
		return TransactionTypeDeposit, true
	case strings.EqualFold(s, string(TransactionTypeTransfer)):
		return TransactionTypeTransfer, true
	}
	return "", false
}

// IsDeposit reports whether t is an inflow. Every other value counts as outflow.
func (t TransactionType) IsDeposit() bool {
	return strings.EqualFold(string(t), string(TransactionTypeDeposit))
}

// Transaction is a single deposit or transfer owned by one user.
type Transaction struct {
	ID            string          `json:"id" db:"id"`                         // Unique per user, caller generated
	UserID        string          `json:"user_id" db:"user_id"`               // Owner
	Type          TransactionType `json:"type" db:"type"`                     // deposit or transfer
	Amount        decimal.Decimal `json:"amount" db:"amount"`                 // Always positive
	CreatedAt     string          `json:"created_at" db:"created_at"`         // RFC 3339, set once
	UpdatedAt     *string         `json:"updated_at,omitempty" db:"updated_at"`
	Category      *string         `json:"category,omitempty" db:"category"`
	Description   *string         `json:"description,omitempty" db:"description"`
	ReceiptURL    *string         `json:"receipt_url,omitempty" db:"receipt_url"`       // Uploaded blob
	ReceiptBase64 *string         `json:"receipt_base64,omitempty" db:"receipt_base64"` // Inline payload
}

// CreatedAtTime parses CreatedAt. ok is false for a missing or malformed timestamp.
func (t Transaction) CreatedAtTime() (time.Time, bool) {
	return ParseInstant(t.CreatedAt)
}

// HasReceipt reports whether the transaction carries a receipt in either form.
func (t Transaction) HasReceipt() bool {
	return (t.ReceiptURL != nil && *t.ReceiptURL != "") ||
		(t.ReceiptBase64 != nil && *t.ReceiptBase64 != "")
}

var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseInstant parses an ISO-8601 timestamp or date.
func ParseInstant(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range instantLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// StringPtr returns a pointer to s, or nil when s is blank.
func StringPtr(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// StringValue dereferences p, returning "" for nil.
func StringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
