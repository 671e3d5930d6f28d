package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-finance-tracker/internal/models"
	"github.com/sbilibin2017/gw-finance-tracker/internal/validator"
)

func TestInvestmentService_Save(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		draft   models.InvestmentDraft
		wantErr error
	}{
		{name: "valid", draft: models.InvestmentDraft{Month: "jan", Year: 2024, Value: "1000,50", Type: "CDB"}},
		{name: "default type", draft: models.InvestmentDraft{Month: "Feb", Year: 2024, Value: "10"}},
		{name: "zero value", draft: models.InvestmentDraft{Month: "Jan", Year: 2024, Value: "0"}, wantErr: ErrInvalidInvestmentValue},
		{name: "unknown type", draft: models.InvestmentDraft{Month: "Jan", Year: 2024, Value: "1", Type: "Cripto"}, wantErr: ErrInvalidInvestmentType},
		{name: "bad month", draft: models.InvestmentDraft{Month: "Janeiro", Year: 2024, Value: "1"}, wantErr: ErrInvalidInvestmentPeriod},
		{name: "bad year", draft: models.InvestmentDraft{Month: "Jan", Year: 0, Value: "1"}, wantErr: ErrInvalidInvestmentPeriod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := NewMockInvestmentStore(ctrl)
			svc := NewInvestmentService(store)
			svc.now = func() time.Time { return fixedNow }
			svc.newID = func() string { return "inv-1" }

			if tt.wantErr == nil {
				store.EXPECT().Save(ctx, gomock.Any()).Return(nil)
			}

			inv, err := svc.Save(ctx, "u1", tt.draft)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "inv-1", inv.ID)
			assert.Equal(t, "u1", inv.UserID)
			assert.Nil(t, inv.UpdatedAt)
		})
	}
}

func TestInvestmentService_SaveExistingAndErrors(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockInvestmentStore(ctrl)
	svc := NewInvestmentService(store)

	store.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, inv models.Investment) error {
		assert.Equal(t, "inv-7", inv.ID)
		assert.Equal(t, "Mar", inv.Month)
		assert.Equal(t, models.InvestmentTesouroDireto, inv.Type)
		assert.True(t, decimal.RequireFromString("1500").Equal(inv.Value))
		assert.NotNil(t, inv.UpdatedAt)
		return nil
	})
	_, err := svc.Save(ctx, "u1", models.InvestmentDraft{ID: "inv-7", Month: "MAR", Year: 2024, Value: "1500", Type: "Tesouro Direto"})
	require.NoError(t, err)

	store.EXPECT().Save(ctx, gomock.Any()).Return(errors.New("db"))
	_, err = svc.Save(ctx, "u1", models.InvestmentDraft{Month: "Mar", Year: 2024, Value: "1"})
	assert.Error(t, err)

	_, err = svc.Save(ctx, "", models.InvestmentDraft{})
	assert.ErrorIs(t, err, validator.ErrUnauthenticated)
}

func TestInvestmentService_TotalsByType(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockInvestmentStore(ctrl)
	svc := NewInvestmentService(store)

	store.EXPECT().ListByUser(ctx, "u1").Return([]models.Investment{
		{ID: "1", Type: models.InvestmentCDB, Value: decimal.NewFromInt(1200)},
		{ID: "2", Type: models.InvestmentRendaFixa, Value: decimal.NewFromInt(1000)},
		{ID: "3", Type: models.InvestmentCDB, Value: decimal.RequireFromString("0.5")},
	}, nil)

	totals, err := svc.TotalsByType(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, totals, 2)
	assert.Equal(t, models.InvestmentRendaFixa, totals[0].Type)
	assert.Equal(t, models.InvestmentCDB, totals[1].Type)
	assert.Equal(t, "1200.5", totals[1].Total.String())

	_, err = svc.List(ctx, "")
	assert.ErrorIs(t, err, validator.ErrUnauthenticated)
}
