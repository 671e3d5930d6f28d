package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-finance-tracker/internal/facades"
	"github.com/sbilibin2017/gw-finance-tracker/internal/logger"
	"github.com/sbilibin2017/gw-finance-tracker/internal/services"
	"github.com/sbilibin2017/gw-finance-tracker/internal/validator"
)

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// Messages shown for each failure kind.
var errorMessages = []struct {
	err    error
	status int
	msg    string
}{
	{validator.ErrUnauthenticated, http.StatusUnauthorized, "Unauthorized"},
	{validator.ErrInvalidAmount, http.StatusBadRequest, "Amount must be a number greater than zero"},
	{validator.ErrAmountTooLarge, http.StatusBadRequest, "Amount exceeds the maximum allowed"},
	{validator.ErrInvalidType, http.StatusBadRequest, "Type must be deposit or transfer"},
	{validator.ErrInvalidReceiptFormat, http.StatusBadRequest, "Receipt must be a JPG or PNG image"},
	{validator.ErrReceiptTooLarge, http.StatusBadRequest, "Receipt is too large"},
	{facades.ErrInvalidReceiptPayload, http.StatusBadRequest, "Receipt is not valid base64"},
	{services.ErrInvalidInvestmentValue, http.StatusBadRequest, "Value must be a number greater than zero"},
	{services.ErrInvalidInvestmentType, http.StatusBadRequest, "Unknown investment type"},
	{services.ErrInvalidInvestmentPeriod, http.StatusBadRequest, "Invalid month or year"},
	{facades.ErrStoreReadFailed, http.StatusBadGateway, "Could not load transactions, try again"},
	{facades.ErrStoreWriteFailed, http.StatusBadGateway, "Could not save the transaction, try again"},
	{facades.ErrBlobUploadFailed, http.StatusBadGateway, "Could not upload the receipt, try again"},
}

// writeServiceError maps err to a status and message with errors.Is.
func writeServiceError(w http.ResponseWriter, err error) {
	for _, e := range errorMessages {
		if errors.Is(err, e.err) {
			writeError(w, e.status, e.msg)
			return
		}
	}
	logger.Log.Errorw("internal server error", "err", err)
	writeError(w, http.StatusInternalServerError, "Internal server error")
}

// Amount accepts a JSON number or string, keeping the text as typed.
type Amount string

func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*a = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*a = Amount(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*a = Amount(n.String())
	return nil
}
