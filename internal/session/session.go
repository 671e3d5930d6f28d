package session

import (
	"context"
	"sync"

	"github.com/sbilibin2017/gw-finance-tracker/internal/models"
)

// Change describes a sign-in state transition. User is nil after sign-out.
type Change struct {
	User *models.CurrentUser
}

// Subscription identifies a listener registered with Start.
type Subscription uint64

// Hub fans auth state changes out to subscribers.
type Hub struct {
	mu        sync.RWMutex
	next      Subscription
	listeners map[Subscription]func(Change)
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{listeners: make(map[Subscription]func(Change))}
}

// Start registers onChange and returns a handle for Stop.
func (h *Hub) Start(onChange func(Change)) Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.next++
	h.listeners[h.next] = onChange
	return h.next
}

// Stop removes the subscription. Unknown handles are ignored.
func (h *Hub) Stop(sub Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.listeners, sub)
}

// Notify calls every live listener synchronously.
func (h *Hub) Notify(change Change) {
	h.mu.RLock()
	fns := make([]func(Change), 0, len(h.listeners))
	for _, fn := range h.listeners {
		fns = append(fns, fn)
	}
	h.mu.RUnlock()

	for _, fn := range fns {
		fn(change)
	}
}

type userKey struct{}

// WithUser stores the authenticated user in ctx.
func WithUser(ctx context.Context, user models.CurrentUser) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// UserFromContext returns the user stored by WithUser.
func UserFromContext(ctx context.Context) (models.CurrentUser, bool) {
	user, ok := ctx.Value(userKey{}).(models.CurrentUser)
	if !ok || user.ID == "" {
		return models.CurrentUser{}, false
	}
	return user, true
}

// UserID returns the id of the authenticated user or "" when there is none.
func UserID(ctx context.Context) string {
	user, _ := UserFromContext(ctx)
	return user.ID
}
