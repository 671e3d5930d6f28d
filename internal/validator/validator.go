// Package validator checks transaction drafts before they are persisted.
package validator

import (
	"errors"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-finance-tracker/internal/models"
)

// Validation errors, in the order the checks run.
var (
	ErrUnauthenticated      = errors.New("user is not authenticated")
	ErrInvalidAmount        = errors.New("invalid transaction amount")
	ErrAmountTooLarge       = errors.New("transaction amount is too large")
	ErrInvalidType          = errors.New("invalid transaction type")
	ErrInvalidReceiptFormat = errors.New("invalid receipt format")
	ErrReceiptTooLarge      = errors.New("receipt is too large")
)

// Limits are the product thresholds applied by the Validator.
type Limits struct {
	MaxAmount         decimal.Decimal
	MaxFractionDigits int // Scale of the stored amount column
	MaxReceiptBytes   int64
	ReceiptExtensions []string // Lower case, without the dot
}

// DefaultLimits returns the reference thresholds: 1,000,000 per transaction and 5 MiB receipts.
func DefaultLimits() Limits {
	return Limits{
		MaxAmount:         decimal.NewFromInt(1_000_000),
		MaxFractionDigits: 6,
		MaxReceiptBytes:   5 * 1024 * 1024,
		ReceiptExtensions: []string{"jpg", "jpeg", "png"},
	}
}

// Validator turns a TransactionDraft into a Transaction ready to persist.
type Validator struct {
	limits Limits
	now    func() time.Time
	newID  func() string
}

// Option configures a Validator.
type Option func(*Validator)

// WithClock overrides the time source used for CreatedAt/UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) { v.now = now }
}

// WithIDGenerator overrides the transaction id generator.
func WithIDGenerator(newID func() string) Option {
	return func(v *Validator) { v.newID = newID }
}

// New creates a Validator with the given limits.
func New(limits Limits, opts ...Option) *Validator {
	v := &Validator{
		limits: limits,
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate runs the checks in order and stops at the first failure. existing is the
// stored record when editing, nil when creating. The draft's receipt is checked but not
// copied into the result; attaching it is the repository's job.
func (v *Validator) Validate(userID string, draft models.TransactionDraft, existing *models.Transaction) (*models.Transaction, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrUnauthenticated
	}

	amount, err := v.parseAmount(draft.Amount)
	if err != nil {
		return nil, err
	}

	txType := models.TransactionTypeTransfer
	if strings.TrimSpace(draft.Type) != "" {
		t, ok := models.ParseTransactionType(draft.Type)
		if !ok {
			return nil, ErrInvalidType
		}
		txType = t
	}

	if draft.Receipt != nil {
		if err := v.checkReceipt(*draft.Receipt); err != nil {
			return nil, err
		}
	}

	now := v.now().UTC().Format(time.RFC3339Nano)
	tx := &models.Transaction{
		UserID:      userID,
		Type:        txType,
		Amount:      amount,
		Category:    models.StringPtr(strings.TrimSpace(draft.Category)),
		Description: models.StringPtr(strings.TrimSpace(draft.Description)),
	}

	if existing != nil {
		tx.ID = existing.ID
		tx.CreatedAt = existing.CreatedAt
		tx.UpdatedAt = &now
	} else {
		tx.ID = v.newID()
		tx.CreatedAt = now
	}

	return tx, nil
}

// amountPattern is a plain decimal with an optional dot or comma separator. Exponent
// notation is rejected before it reaches decimal parsing.
var amountPattern = regexp.MustCompile(`^([0-9]{1,32})(?:[.,]([0-9]{1,32}))?$`)

func (v *Validator) parseAmount(raw string) (decimal.Decimal, error) {
	m := amountPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if len(m[2]) > v.limits.MaxFractionDigits {
		return decimal.Zero, ErrInvalidAmount
	}

	normalized := m[1]
	if m[2] != "" {
		normalized += "." + m[2]
	}
	amount, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if !amount.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	if amount.GreaterThan(v.limits.MaxAmount) {
		return decimal.Zero, ErrAmountTooLarge
	}
	return amount, nil
}

func (v *Validator) checkReceipt(r models.ReceiptAttachment) error {
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(r.Filename)), ".")
	allowed := false
	for _, e := range v.limits.ReceiptExtensions {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		return ErrInvalidReceiptFormat
	}

	// len*3/4 slightly overestimates the decoded size.
	if int64(len(r.Base64))*3/4 > v.limits.MaxReceiptBytes {
		return ErrReceiptTooLarge
	}
	return nil
}
