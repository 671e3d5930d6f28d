package services

//go:generate mockgen -source=transaction.go -destination=transaction_mock.go -package=services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-finance-tracker/internal/aggregation"
	"github.com/sbilibin2017/gw-finance-tracker/internal/filters"
	"github.com/sbilibin2017/gw-finance-tracker/internal/logger"
	"github.com/sbilibin2017/gw-finance-tracker/internal/models"
	"github.com/sbilibin2017/gw-finance-tracker/internal/validator"
)

// TransactionFacade persists transactions and their receipts.
type TransactionFacade interface {
	List(ctx context.Context, userID string) ([]models.Transaction, error)
	Get(ctx context.Context, userID, id string) (*models.Transaction, error)
	Create(ctx context.Context, userID string, tx models.Transaction, receipt *models.ReceiptAttachment) (*models.Transaction, error)
	Update(ctx context.Context, userID, id string, tx models.Transaction, receipt *models.ReceiptAttachment) (*models.Transaction, error)
	Remove(ctx context.Context, userID, id string) error
}

// TransactionValidator checks drafts.
type TransactionValidator interface {
	Validate(userID string, draft models.TransactionDraft, existing *models.Transaction) (*models.Transaction, error)
}

// CategoryClassifier maps descriptions to categories.
type CategoryClassifier interface {
	Classify(description string) (string, bool)
}

// TransactionEventPublisher emits transaction change events.
type TransactionEventPublisher interface {
	Publish(ctx context.Context, event string, tx models.Transaction)
}

// TransactionService runs the create/edit/delete flows and the read pipeline.
type TransactionService struct {
	facade     TransactionFacade
	validator  TransactionValidator
	classifier CategoryClassifier
	events     TransactionEventPublisher
	summary    aggregation.Options
	pageSize   int
}

// TransactionServiceOpt configures a TransactionService.
type TransactionServiceOpt func(*TransactionService)

// WithSummaryOptions sets the category bucket and top-N used by Summary.
func WithSummaryOptions(opts aggregation.Options) TransactionServiceOpt {
	return func(s *TransactionService) { s.summary = opts }
}

// WithPageSize sets the page size used when the caller passes none.
func WithPageSize(size int) TransactionServiceOpt {
	return func(s *TransactionService) { s.pageSize = size }
}

func NewTransactionService(
	facade TransactionFacade,
	validator TransactionValidator,
	classifier CategoryClassifier,
	events TransactionEventPublisher,
	opts ...TransactionServiceOpt,
) *TransactionService {
	s := &TransactionService{
		facade:     facade,
		validator:  validator,
		classifier: classifier,
		events:     events,
		summary:    aggregation.DefaultOptions(),
		pageSize:   20,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates, classifies and stores a new transaction.
func (s *TransactionService) Create(ctx context.Context, userID string, draft models.TransactionDraft) (*models.Transaction, error) {
	tx, err := s.validator.Validate(userID, draft, nil)
	if err != nil {
		logger.Log.Infow("transaction rejected", "userID", userID, "error", err)
		return nil, err
	}
	s.categorize(tx)

	saved, err := s.facade.Create(ctx, userID, *tx, draft.Receipt)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, EventTransactionCreated, *saved)
	return saved, nil
}

// Update overwrites the transaction named by req with draft. A missing id is created.
func (s *TransactionService) Update(ctx context.Context, userID string, req models.EditRequest, draft models.TransactionDraft) (*models.Transaction, error) {
	if userID == "" {
		return nil, validator.ErrUnauthenticated
	}

	existing, err := s.facade.Get(ctx, userID, req.TransactionID)
	if err != nil {
		return nil, err
	}

	tx, err := s.validator.Validate(userID, draft, existing)
	if err != nil {
		logger.Log.Infow("transaction rejected", "userID", userID, "id", req.TransactionID, "error", err)
		return nil, err
	}
	tx.ID = req.TransactionID
	s.categorize(tx)

	if existing != nil && draft.Receipt == nil {
		tx.ReceiptURL = existing.ReceiptURL
		tx.ReceiptBase64 = existing.ReceiptBase64
	}

	saved, err := s.facade.Update(ctx, userID, req.TransactionID, *tx, draft.Receipt)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, EventTransactionUpdated, *saved)
	return saved, nil
}

// Delete removes the transaction named by req.
func (s *TransactionService) Delete(ctx context.Context, userID string, req models.EditRequest) error {
	if userID == "" {
		return validator.ErrUnauthenticated
	}
	if err := s.facade.Remove(ctx, userID, req.TransactionID); err != nil {
		return err
	}
	s.publish(ctx, EventTransactionDeleted, models.Transaction{ID: req.TransactionID, UserID: userID})
	return nil
}

// List returns one page of the user's filtered transactions, newest first.
func (s *TransactionService) List(ctx context.Context, userID string, filter models.TransactionFilter, page, size int) (models.TransactionPage, error) {
	txs, err := s.fetch(ctx, userID)
	if err != nil {
		return models.TransactionPage{}, err
	}
	sorted := filters.SortByCreatedAtDesc(filters.Apply(txs, filter))
	return filters.Paginate(sorted, page, size, s.pageSize), nil
}

// Summary aggregates the user's filtered transactions.
func (s *TransactionService) Summary(ctx context.Context, userID string, filter models.TransactionFilter) (models.Summary, error) {
	txs, err := s.fetch(ctx, userID)
	if err != nil {
		return models.Summary{}, err
	}
	return aggregation.Summarize(filters.Apply(txs, filter), s.summary), nil
}

// Balance returns deposits minus transfers over all of the user's transactions.
func (s *TransactionService) Balance(ctx context.Context, userID string) (decimal.Decimal, error) {
	txs, err := s.fetch(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}
	return aggregation.Balance(txs), nil
}

// Classify previews the category a description would get.
func (s *TransactionService) Classify(description string) (string, bool) {
	return s.classifier.Classify(description)
}

func (s *TransactionService) fetch(ctx context.Context, userID string) ([]models.Transaction, error) {
	if userID == "" {
		return nil, validator.ErrUnauthenticated
	}
	return s.facade.List(ctx, userID)
}

// categorize fills an empty category from the description. A user-chosen category wins.
func (s *TransactionService) categorize(tx *models.Transaction) {
	if tx.Category != nil || tx.Description == nil {
		return
	}
	if category, ok := s.classifier.Classify(*tx.Description); ok {
		tx.Category = &category
	}
}

func (s *TransactionService) publish(ctx context.Context, event string, tx models.Transaction) {
	if s.events == nil {
		return
	}
	s.events.Publish(ctx, event, tx)
}

// IsValidationError reports whether err is a draft validation failure.
func IsValidationError(err error) bool {
	for _, target := range []error{
		validator.ErrInvalidAmount,
		validator.ErrAmountTooLarge,
		validator.ErrInvalidType,
		validator.ErrInvalidReceiptFormat,
		validator.ErrReceiptTooLarge,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
