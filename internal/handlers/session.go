package handlers

//go:generate mockgen -source=session.go -destination=session_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-finance-tracker/internal/middlewares"
	"github.com/sbilibin2017/gw-finance-tracker/internal/models"
	"github.com/sbilibin2017/gw-finance-tracker/internal/services"
	"github.com/sbilibin2017/gw-finance-tracker/internal/session"
)

// Logouter revokes a token.
type Logouter interface {
	Logout(ctx context.Context, tokenID string, ttl time.Duration) error
}

// CurrentUserGetter loads the signed-in user's profile.
type CurrentUserGetter interface {
	CurrentUser(ctx context.Context, userID string) (*models.CurrentUser, error)
}

// NewLogoutHandler returns an HTTP handler revoking the caller's token.
// @Summary Logout
// @Description Revokes the bearer token until it expires
// @Tags auth
// @Security BearerAuth
// @Success 204 "Logged out"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /logout [post]
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.ClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		if err := svc.Logout(r.Context(), claims.ID, claims.TTL(time.Now())); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// NewMeHandler returns an HTTP handler for the signed-in user's profile.
// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.CurrentUser
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /me [get]
func NewMeHandler(svc CurrentUserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := session.UserID(r.Context())
		if userID == "" {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		user, err := svc.CurrentUser(r.Context(), userID)
		if err != nil {
			if errors.Is(err, services.ErrUserDoesNotExist) {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}
