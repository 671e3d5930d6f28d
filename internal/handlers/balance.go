package handlers

//go:generate mockgen -source=balance.go -destination=balance_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-finance-tracker/internal/models"
	"github.com/sbilibin2017/gw-finance-tracker/internal/session"
)

// BalanceGetter computes the running balance.
type BalanceGetter interface {
	Balance(ctx context.Context, userID string) (decimal.Decimal, error)
}

// Summarizer aggregates transactions.
type Summarizer interface {
	Summary(ctx context.Context, userID string, filter models.TransactionFilter) (models.Summary, error)
}

// BalanceResponse represents the user's balance
// swagger:model BalanceResponse
type BalanceResponse struct {
	// Deposits minus transfers
	// default: 454.1
	Balance float64 `json:"balance"`
}

// CategoryTotalResponse is the spending of one category
// swagger:model CategoryTotalResponse
type CategoryTotalResponse struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// SummaryResponse represents the aggregated totals
// swagger:model SummaryResponse
type SummaryResponse struct {
	Balance      float64                 `json:"balance"`
	TotalIncome  float64                 `json:"total_income"`
	TotalExpense float64                 `json:"total_expense"`
	ByCategory   []CategoryTotalResponse `json:"by_category"`
}

// NewGetBalanceHandler returns an HTTP handler for the user's balance.
// @Summary Get balance
// @Description Sum of deposits minus sum of transfers over all transactions
// @Tags summary
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.BalanceResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 502 {object} handlers.ErrorResponse "Store unavailable"
// @Router /balance [get]
func NewGetBalanceHandler(svc BalanceGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		balance, err := svc.Balance(r.Context(), session.UserID(r.Context()))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, BalanceResponse{Balance: balance.InexactFloat64()})
	}
}

// NewGetSummaryHandler returns an HTTP handler for income, expense and category totals.
// @Summary Get summary
// @Description Totals over the filtered transactions. Categories are ranked by spending
// @Tags summary
// @Produce json
// @Security BearerAuth
// @Param type query string false "deposit or transfer"
// @Param category query string false "Category"
// @Param date_from query string false "ISO-8601 date or timestamp"
// @Param date_to query string false "ISO-8601 date or timestamp"
// @Param q query string false "Description contains"
// @Success 200 {object} handlers.SummaryResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid query"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 502 {object} handlers.ErrorResponse "Store unavailable"
// @Router /summary [get]
func NewGetSummaryHandler(svc Summarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, ok := parseFilter(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid date filter")
			return
		}

		summary, err := svc.Summary(r.Context(), session.UserID(r.Context()), filter)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		resp := SummaryResponse{
			Balance:      summary.Balance.InexactFloat64(),
			TotalIncome:  summary.TotalIncome.InexactFloat64(),
			TotalExpense: summary.TotalExpense.InexactFloat64(),
			ByCategory:   make([]CategoryTotalResponse, 0, len(summary.ByCategory)),
		}
		for _, c := range summary.ByCategory {
			resp.ByCategory = append(resp.ByCategory, CategoryTotalResponse{Category: c.Category, Total: c.Total.InexactFloat64()})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
