package handlers

//go:generate mockgen -source=investments.go -destination=investments_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-finance-tracker/internal/models"
	"github.com/sbilibin2017/gw-finance-tracker/internal/session"
)

// InvestmentReader lists investments and their totals.
type InvestmentReader interface {
	List(ctx context.Context, userID string) ([]models.Investment, error)
	TotalsByType(ctx context.Context, userID string) ([]models.InvestmentTotal, error)
}

// InvestmentSaver stores investments.
type InvestmentSaver interface {
	Save(ctx context.Context, userID string, draft models.InvestmentDraft) (*models.Investment, error)
}

// InvestmentRequest is the body of POST /investments
// swagger:model InvestmentRequest
type InvestmentRequest struct {
	// Existing id to overwrite, empty to create
	ID string `json:"id,omitempty"`
	// Three-letter month
	// default: Jan
	Month string `json:"month"`
	// default: 2024
	Year int `json:"year"`
	// default: 1000
	Value Amount `json:"value" swaggertype:"string"`
	// default: CDB
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// InvestmentResponse is a stored investment
// swagger:model InvestmentResponse
type InvestmentResponse struct {
	ID          string  `json:"id"`
	Month       string  `json:"month"`
	Year        int     `json:"year"`
	Value       float64 `json:"value"`
	Type        string  `json:"type"`
	Description *string `json:"description,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   *string `json:"updated_at,omitempty"`
}

func newInvestmentResponse(inv models.Investment) InvestmentResponse {
	return InvestmentResponse{
		ID:          inv.ID,
		Month:       inv.Month,
		Year:        inv.Year,
		Value:       inv.Value.InexactFloat64(),
		Type:        string(inv.Type),
		Description: inv.Description,
		CreatedAt:   inv.CreatedAt,
		UpdatedAt:   inv.UpdatedAt,
	}
}

// InvestmentTotalResponse is the total of one investment type
// swagger:model InvestmentTotalResponse
type InvestmentTotalResponse struct {
	Type  string  `json:"type"`
	Total float64 `json:"total"`
}

// InvestmentListResponse lists investments oldest first with totals per type
// swagger:model InvestmentListResponse
type InvestmentListResponse struct {
	Items  []InvestmentResponse      `json:"items"`
	Totals []InvestmentTotalResponse `json:"totals"`
}

// NewListInvestmentsHandler returns an HTTP handler listing the user's investments.
// @Summary List investments
// @Tags investments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.InvestmentListResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /investments [get]
func NewListInvestmentsHandler(svc InvestmentReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := session.UserID(r.Context())

		invs, err := svc.List(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		totals, err := svc.TotalsByType(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		resp := InvestmentListResponse{
			Items:  make([]InvestmentResponse, 0, len(invs)),
			Totals: make([]InvestmentTotalResponse, 0, len(totals)),
		}
		for _, inv := range invs {
			resp.Items = append(resp.Items, newInvestmentResponse(inv))
		}
		for _, t := range totals {
			resp.Totals = append(resp.Totals, InvestmentTotalResponse{Type: string(t.Type), Total: t.Total.InexactFloat64()})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewSaveInvestmentHandler returns an HTTP handler storing an investment.
// @Summary Save investment
// @Tags investments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param investment body handlers.InvestmentRequest true "Investment"
// @Success 201 {object} handlers.InvestmentResponse
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /investments [post]
func NewSaveInvestmentHandler(svc InvestmentSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req InvestmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		inv, err := svc.Save(r.Context(), session.UserID(r.Context()), models.InvestmentDraft{
			ID:          req.ID,
			Month:       req.Month,
			Year:        req.Year,
			Value:       string(req.Value),
			Type:        req.Type,
			Description: req.Description,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, newInvestmentResponse(*inv))
	}
}
