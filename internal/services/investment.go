package services

//go:generate mockgen -source=investment.go -destination=investment_mock.go -package=services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-finance-tracker/internal/logger"
	"github.com/sbilibin2017/gw-finance-tracker/internal/models"
	"github.com/sbilibin2017/gw-finance-tracker/internal/validator"
)

var (
	ErrInvalidInvestmentValue  = errors.New("invalid investment value")
	ErrInvalidInvestmentType   = errors.New("invalid investment type")
	ErrInvalidInvestmentPeriod = errors.New("invalid investment month or year")
)

// InvestmentStore persists investment positions.
type InvestmentStore interface {
	ListByUser(ctx context.Context, userID string) ([]models.Investment, error)
	Save(ctx context.Context, inv models.Investment) error
}

// InvestmentService manages monthly investment positions.
type InvestmentService struct {
	store InvestmentStore
	now   func() time.Time
	newID func() string
}

func NewInvestmentService(store InvestmentStore) *InvestmentService {
	return &InvestmentService{store: store, now: time.Now, newID: uuid.NewString}
}

// List returns the user's investments, oldest first.
func (s *InvestmentService) List(ctx context.Context, userID string) ([]models.Investment, error) {
	if userID == "" {
		return nil, validator.ErrUnauthenticated
	}
	invs, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list investments", "userID", userID, "error", err)
		return nil, err
	}
	return invs, nil
}

// Save validates draft and stores it, overwriting a position with the same id.
func (s *InvestmentService) Save(ctx context.Context, userID string, draft models.InvestmentDraft) (*models.Investment, error) {
	if userID == "" {
		return nil, validator.ErrUnauthenticated
	}

	value, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(draft.Value), ",", "."))
	if err != nil || !value.IsPositive() {
		return nil, ErrInvalidInvestmentValue
	}

	invType := models.InvestmentType(strings.TrimSpace(draft.Type))
	if invType == "" {
		invType = models.InvestmentOutros
	}
	if !invType.Valid() {
		return nil, ErrInvalidInvestmentType
	}

	month, ok := parseMonth(draft.Month)
	if !ok || draft.Year < 1900 || draft.Year > 9999 {
		return nil, ErrInvalidInvestmentPeriod
	}

	now := s.now().UTC().Format(time.RFC3339Nano)
	inv := models.Investment{
		ID:          strings.TrimSpace(draft.ID),
		UserID:      userID,
		Month:       month,
		Year:        draft.Year,
		Value:       value,
		Type:        invType,
		Description: models.StringPtr(strings.TrimSpace(draft.Description)),
		CreatedAt:   now,
	}
	if inv.ID == "" {
		inv.ID = s.newID()
	} else {
		inv.UpdatedAt = &now
	}

	if err := s.store.Save(ctx, inv); err != nil {
		logger.Log.Errorw("failed to save investment", "userID", userID, "id", inv.ID, "error", err)
		return nil, err
	}
	return &inv, nil
}

// TotalsByType sums the user's investments per kind, in display order. Kinds without positions are omitted.
func (s *InvestmentService) TotalsByType(ctx context.Context, userID string) ([]models.InvestmentTotal, error) {
	invs, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	sums := make(map[models.InvestmentType]decimal.Decimal)
	for _, inv := range invs {
		sums[inv.Type] = sums[inv.Type].Add(inv.Value)
	}

	totals := make([]models.InvestmentTotal, 0, len(sums))
	for _, t := range models.InvestmentTypes {
		if sum, ok := sums[t]; ok {
			totals = append(totals, models.InvestmentTotal{Type: t, Total: sum})
		}
	}
	return totals, nil
}

// parseMonth accepts a three-letter English abbreviation in any case and returns it canonicalized.
func parseMonth(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	for m := time.January; m <= time.December; m++ {
		abbr := m.String()[:3]
		if strings.EqualFold(raw, abbr) {
			return abbr, true
		}
	}
	return "", false
}
