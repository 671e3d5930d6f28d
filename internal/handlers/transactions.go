package handlers

//go:generate mockgen -source=transactions.go -destination=transactions_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-finance-tracker/internal/models"
	"github.com/sbilibin2017/gw-finance-tracker/internal/session"
)

// TransactionLister returns filtered pages of transactions.
type TransactionLister interface {
	List(ctx context.Context, userID string, filter models.TransactionFilter, page, size int) (models.TransactionPage, error)
}

// TransactionCreator creates transactions.
type TransactionCreator interface {
	Create(ctx context.Context, userID string, draft models.TransactionDraft) (*models.Transaction, error)
}

// TransactionUpdater overwrites transactions.
type TransactionUpdater interface {
	Update(ctx context.Context, userID string, req models.EditRequest, draft models.TransactionDraft) (*models.Transaction, error)
}

// TransactionDeleter deletes transactions.
type TransactionDeleter interface {
	Delete(ctx context.Context, userID string, req models.EditRequest) error
}

// ReceiptRequest is an image attached to a transaction
// swagger:model ReceiptRequest
type ReceiptRequest struct {
	// File name, the extension must be jpg, jpeg or png
	// default: nota.jpg
	Filename string `json:"filename"`
	// Base64 image, a data URL prefix is accepted
	Base64 string `json:"base64"`
}

// TransactionRequest is the body of create and update
// swagger:model TransactionRequest
type TransactionRequest struct {
	// deposit or transfer, transfer when empty
	// default: transfer
	Type string `json:"type"`
	// Number or string, comma decimals are accepted
	// required: true
	// default: 45,90
	Amount Amount `json:"amount" swaggertype:"string"`
	// Category, classified from the description when empty
	Category string `json:"category"`
	// default: Uber centro
	Description string          `json:"description"`
	Receipt     *ReceiptRequest `json:"receipt,omitempty"`
}

func (req TransactionRequest) draft() models.TransactionDraft {
	d := models.TransactionDraft{
		Type:        req.Type,
		Amount:      string(req.Amount),
		Category:    req.Category,
		Description: req.Description,
	}
	if req.Receipt != nil {
		d.Receipt = &models.ReceiptAttachment{Filename: req.Receipt.Filename, Base64: req.Receipt.Base64}
	}
	return d
}

// TransactionResponse is a stored transaction
// swagger:model TransactionResponse
type TransactionResponse struct {
	ID            string  `json:"id"`
	Type          string  `json:"type"`
	Amount        float64 `json:"amount"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     *string `json:"updated_at,omitempty"`
	Category      *string `json:"category,omitempty"`
	Description   *string `json:"description,omitempty"`
	ReceiptURL    *string `json:"receipt_url,omitempty"`
	ReceiptBase64 *string `json:"receipt_base64,omitempty"`
}

func newTransactionResponse(tx models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            tx.ID,
		Type:          string(tx.Type),
		Amount:        tx.Amount.InexactFloat64(),
		CreatedAt:     tx.CreatedAt,
		UpdatedAt:     tx.UpdatedAt,
		Category:      tx.Category,
		Description:   tx.Description,
		ReceiptURL:    tx.ReceiptURL,
		ReceiptBase64: tx.ReceiptBase64,
	}
}

// TransactionPageResponse is one page of transactions
// swagger:model TransactionPageResponse
type TransactionPageResponse struct {
	Items    []TransactionResponse `json:"items"`
	Total    int                   `json:"total"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"page_size"`
}

// parseFilter reads the filter query parameters. A date-only date_to covers the whole day.
func parseFilter(r *http.Request) (models.TransactionFilter, bool) {
	q := r.URL.Query()
	f := models.TransactionFilter{
		Type:     q.Get("type"),
		Category: q.Get("category"),
		Text:     q.Get("q"),
	}

	if raw := strings.TrimSpace(q.Get("date_from")); raw != "" {
		from, ok := models.ParseInstant(raw)
		if !ok {
			return f, false
		}
		f.DateFrom = &from
	}
	if raw := strings.TrimSpace(q.Get("date_to")); raw != "" {
		to, ok := models.ParseInstant(raw)
		if !ok {
			return f, false
		}
		if len(raw) == len("2006-01-02") {
			to = to.Add(24*time.Hour - time.Nanosecond)
		}
		f.DateTo = &to
	}
	return f, true
}

func queryInt(r *http.Request, key string) (int, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	return n, err == nil
}

// NewListTransactionsHandler returns an HTTP handler listing the user's transactions.
// @Summary List transactions
// @Description Filtered, newest first, paginated
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param type query string false "deposit or transfer"
// @Param category query string false "Category"
// @Param date_from query string false "ISO-8601 date or timestamp"
// @Param date_to query string false "ISO-8601 date or timestamp, dates are inclusive"
// @Param q query string false "Description contains"
// @Param page query int false "Page, from 1"
// @Param page_size query int false "Page size"
// @Success 200 {object} handlers.TransactionPageResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid query"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 502 {object} handlers.ErrorResponse "Store unavailable"
// @Router /transactions [get]
func NewListTransactionsHandler(svc TransactionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, ok := parseFilter(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid date filter")
			return
		}
		page, okPage := queryInt(r, "page")
		size, okSize := queryInt(r, "page_size")
		if !okPage || !okSize {
			writeError(w, http.StatusBadRequest, "invalid pagination")
			return
		}

		result, err := svc.List(r.Context(), session.UserID(r.Context()), filter, page, size)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		resp := TransactionPageResponse{
			Items:    make([]TransactionResponse, 0, len(result.Items)),
			Total:    result.Total,
			Page:     result.Page,
			PageSize: result.PageSize,
		}
		for _, tx := range result.Items {
			resp.Items = append(resp.Items, newTransactionResponse(tx))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewCreateTransactionHandler returns an HTTP handler creating a transaction.
// @Summary Create transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param transaction body handlers.TransactionRequest true "Transaction"
// @Success 201 {object} handlers.TransactionResponse
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 502 {object} handlers.ErrorResponse "Store or blob storage unavailable"
// @Router /transactions [post]
func NewCreateTransactionHandler(svc TransactionCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		tx, err := svc.Create(r.Context(), session.UserID(r.Context()), req.draft())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, newTransactionResponse(*tx))
	}
}

// NewUpdateTransactionHandler returns an HTTP handler overwriting a transaction.
// @Summary Update transaction
// @Description Replaces the whole record. A missing id is created
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction id"
// @Param transaction body handlers.TransactionRequest true "Transaction"
// @Success 200 {object} handlers.TransactionResponse
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 502 {object} handlers.ErrorResponse "Store or blob storage unavailable"
// @Router /transactions/{id} [put]
func NewUpdateTransactionHandler(svc TransactionUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		edit := models.EditRequest{TransactionID: chi.URLParam(r, "id")}
		tx, err := svc.Update(r.Context(), session.UserID(r.Context()), edit, req.draft())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, newTransactionResponse(*tx))
	}
}

// NewDeleteTransactionHandler returns an HTTP handler deleting a transaction.
// @Summary Delete transaction
// @Description Deleting a missing id succeeds
// @Tags transactions
// @Security BearerAuth
// @Param id path string true "Transaction id"
// @Success 204 "Deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 502 {object} handlers.ErrorResponse "Store unavailable"
// @Router /transactions/{id} [delete]
func NewDeleteTransactionHandler(svc TransactionDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		edit := models.EditRequest{TransactionID: chi.URLParam(r, "id")}
		if err := svc.Delete(r.Context(), session.UserID(r.Context()), edit); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
