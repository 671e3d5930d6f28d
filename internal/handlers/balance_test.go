package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-finance-tracker/internal/facades"
	"github.com/sbilibin2017/gw-finance-tracker/internal/models"
	"github.com/sbilibin2017/gw-finance-tracker/internal/validator"
)

func TestGetBalanceHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockBalanceGetter(ctrl)

	tests := []struct {
		name         string
		userID       string
		mockSetup    func()
		expectedCode int
		expectedBody string
	}{
		{
			name:   "success",
			userID: "u1",
			mockSetup: func() {
				svc.EXPECT().Balance(gomock.Any(), "u1").Return(decimal.RequireFromString("454.10"), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"balance":454.1}`,
		},
		{
			name:   "unauthenticated",
			userID: "",
			mockSetup: func() {
				svc.EXPECT().Balance(gomock.Any(), "").Return(decimal.Zero, validator.ErrUnauthenticated)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"error":"Unauthorized"}`,
		},
		{
			name:   "store down",
			userID: "u1",
			mockSetup: func() {
				svc.EXPECT().Balance(gomock.Any(), "u1").Return(decimal.Zero, facades.ErrStoreReadFailed)
			},
			expectedCode: http.StatusBadGateway,
			expectedBody: `{"error":"Could not load transactions, try again"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/balance", nil)
			if tt.userID != "" {
				req = withUser(req, tt.userID)
			}
			rr := httptest.NewRecorder()
			NewGetBalanceHandler(svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestGetSummaryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockSummarizer(ctrl)
	svc.EXPECT().Summary(gomock.Any(), "u1", models.TransactionFilter{Type: "transfer"}).Return(models.Summary{
		Balance:      decimal.NewFromInt(50),
		TotalIncome:  decimal.NewFromInt(100),
		TotalExpense: decimal.NewFromInt(50),
		ByCategory: []models.CategoryTotal{
			{Category: "Outros", Total: decimal.NewFromInt(30)},
			{Category: "Lazer", Total: decimal.NewFromInt(20)},
		},
	}, nil)

	rr := httptest.NewRecorder()
	NewGetSummaryHandler(svc).ServeHTTP(rr, withUser(httptest.NewRequest(http.MethodGet, "/summary?type=transfer", nil), "u1"))

	require.Equal(t, http.StatusOK, rr.Code)
	var got SummaryResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Equal(t, 50.0, got.Balance)
	assert.Equal(t, 100.0, got.TotalIncome)
	assert.Equal(t, []CategoryTotalResponse{{"Outros", 30}, {"Lazer", 20}}, got.ByCategory)

	rr = httptest.NewRecorder()
	NewGetSummaryHandler(svc).ServeHTTP(rr, withUser(httptest.NewRequest(http.MethodGet, "/summary?date_from=nope", nil), "u1"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestClassifyHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockClassifier(ctrl)
	svc.EXPECT().Classify("Uber centro").Return("Transporte", true)
	svc.EXPECT().Classify("presente").Return("", false)

	rr := httptest.NewRecorder()
	NewClassifyHandler(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/categories/classify?description=Uber+centro", nil))
	assert.JSONEq(t, `{"category":"Transporte"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	NewClassifyHandler(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/categories/classify?description=presente", nil))
	assert.JSONEq(t, `{"category":null}`, rr.Body.String())
}
