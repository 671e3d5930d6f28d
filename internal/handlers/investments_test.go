package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-finance-tracker/internal/models"
	"github.com/sbilibin2017/gw-finance-tracker/internal/services"
)

func TestListInvestmentsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockInvestmentReader(ctrl)
	svc.EXPECT().List(gomock.Any(), "u1").Return([]models.Investment{
		{ID: "1", Month: "Jan", Year: 2024, Value: decimal.NewFromInt(1000), Type: models.InvestmentRendaFixa, CreatedAt: "2024-01-31T12:00:00Z"},
	}, nil)
	svc.EXPECT().TotalsByType(gomock.Any(), "u1").Return([]models.InvestmentTotal{
		{Type: models.InvestmentRendaFixa, Total: decimal.NewFromInt(1000)},
	}, nil)

	rr := httptest.NewRecorder()
	NewListInvestmentsHandler(svc).ServeHTTP(rr, withUser(httptest.NewRequest(http.MethodGet, "/investments", nil), "u1"))

	require.Equal(t, http.StatusOK, rr.Code)
	var got InvestmentListResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	require.Len(t, got.Items, 1)
	assert.Equal(t, 1000.0, got.Items[0].Value)
	assert.Equal(t, []InvestmentTotalResponse{{Type: "Renda Fixa", Total: 1000}}, got.Totals)

	svc.EXPECT().List(gomock.Any(), "u1").Return(nil, errors.New("db"))
	rr = httptest.NewRecorder()
	NewListInvestmentsHandler(svc).ServeHTTP(rr, withUser(httptest.NewRequest(http.MethodGet, "/investments", nil), "u1"))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestSaveInvestmentHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockInvestmentSaver(ctrl)

	svc.EXPECT().Save(gomock.Any(), "u1", models.InvestmentDraft{Month: "Jan", Year: 2024, Value: "1000", Type: "CDB"}).
		Return(&models.Investment{ID: "inv-1", Month: "Jan", Year: 2024, Value: decimal.NewFromInt(1000), Type: models.InvestmentCDB}, nil)
	rr := httptest.NewRecorder()
	NewSaveInvestmentHandler(svc).ServeHTTP(rr, withUser(httptest.NewRequest(http.MethodPost, "/investments",
		jsonBody(t, `{"month":"Jan","year":2024,"value":1000,"type":"CDB"}`)), "u1"))
	assert.Equal(t, http.StatusCreated, rr.Code)

	svc.EXPECT().Save(gomock.Any(), "u1", gomock.Any()).Return(nil, services.ErrInvalidInvestmentType)
	rr = httptest.NewRecorder()
	NewSaveInvestmentHandler(svc).ServeHTTP(rr, withUser(httptest.NewRequest(http.MethodPost, "/investments",
		jsonBody(t, `{"month":"Jan","year":2024,"value":"1","type":"Cripto"}`)), "u1"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Unknown investment type", decodeError(t, rr))

	rr = httptest.NewRecorder()
	NewSaveInvestmentHandler(svc).ServeHTTP(rr, withUser(httptest.NewRequest(http.MethodPost, "/investments", jsonBody(t, `[`)), "u1"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
