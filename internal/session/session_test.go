package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-finance-tracker/internal/models"
)

func TestHub_NotifyReachesLiveSubscribers(t *testing.T) {
	hub := NewHub()

	var first, second []Change
	s1 := hub.Start(func(c Change) { first = append(first, c) })
	hub.Start(func(c Change) { second = append(second, c) })

	hub.Notify(Change{User: &models.CurrentUser{ID: "u1"}})
	hub.Stop(s1)
	hub.Notify(Change{})

	assert.Len(t, first, 1)
	assert.Equal(t, "u1", first[0].User.ID)
	assert.Len(t, second, 2)
	assert.Nil(t, second[1].User)
}

func TestHub_StopUnknownIsNoop(t *testing.T) {
	hub := NewHub()
	assert.NotPanics(t, func() { hub.Stop(Subscription(42)) })
}

func TestUserFromContext(t *testing.T) {
	_, ok := UserFromContext(context.Background())
	assert.False(t, ok)
	assert.Equal(t, "", UserID(context.Background()))

	_, ok = UserFromContext(WithUser(context.Background(), models.CurrentUser{}))
	assert.False(t, ok, "a user without id is not authenticated")

	ctx := WithUser(context.Background(), models.CurrentUser{ID: "u1"})
	user, ok := UserFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "u1", UserID(ctx))
}
