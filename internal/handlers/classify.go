package handlers

//go:generate mockgen -source=classify.go -destination=classify_mock.go -package=handlers

import "net/http"

// Classifier previews the category of a description.
type Classifier interface {
	Classify(description string) (string, bool)
}

// ClassifyResponse is the suggested category, null when no keyword matches
// swagger:model ClassifyResponse
type ClassifyResponse struct {
	// default: Transporte
	Category *string `json:"category"`
}

// NewClassifyHandler returns an HTTP handler suggesting a category for a description.
// @Summary Classify description
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param description query string true "Description"
// @Success 200 {object} handlers.ClassifyResponse
// @Router /categories/classify [get]
func NewClassifyHandler(svc Classifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var resp ClassifyResponse
		if category, ok := svc.Classify(r.URL.Query().Get("description")); ok {
			resp.Category = &category
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
