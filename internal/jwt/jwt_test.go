package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-finance-tracker/internal/models"
)

func testUser() *models.UserDB {
	name := "Ana"
	return &models.UserDB{UserID: uuid.New(), Email: "ana@example.com", DisplayName: &name}
}

func TestJWT_GenerateAndValidate(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(time.Minute))
	user := testUser()
	ctx := context.Background()

	token, err := j.Generate(ctx, user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	assert.NoError(t, j.Validate(ctx, token))

	claims, err := j.GetClaims(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.NotEmpty(t, claims.ID)
	assert.True(t, claims.TTL(time.Now()) > 0)

	current := claims.ToCurrentUser()
	assert.Equal(t, user.UserID.String(), current.ID)
	assert.Equal(t, "Ana", models.StringValue(current.DisplayName))
	assert.Equal(t, "ana@example.com", models.StringValue(current.Email))
}

func TestJWT_TokensHaveDistinctIDs(t *testing.T) {
	j := New(WithSecretKey("s"))
	user := testUser()
	ctx := context.Background()

	t1, err := j.Generate(ctx, user)
	require.NoError(t, err)
	t2, err := j.Generate(ctx, user)
	require.NoError(t, err)

	c1, _ := j.GetClaims(ctx, t1)
	c2, _ := j.GetClaims(ctx, t2)
	assert.NotEqual(t, c1.ID, c2.ID)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(-time.Minute))
	ctx := context.Background()

	token, err := j.Generate(ctx, testUser())
	require.NoError(t, err)

	assert.Error(t, j.Validate(ctx, token))
	claims, err := j.GetClaims(ctx, token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_InvalidToken(t *testing.T) {
	ctx := context.Background()
	j := New(WithSecretKey("secret"))

	assert.Error(t, j.Validate(ctx, "invalid.token.string"))

	other := New(WithSecretKey("other"))
	token, err := other.Generate(ctx, testUser())
	require.NoError(t, err)
	assert.Error(t, j.Validate(ctx, token), "signed with another key")
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New()
	ctx := context.Background()

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "valid", header: "Bearer abc", want: "abc"},
		{name: "lowercase scheme", header: "bearer abc", want: "abc"},
		{name: "missing", header: "", wantErr: ErrMissingAuthHeader},
		{name: "wrong scheme", header: "Basic abc", wantErr: ErrInvalidAuthHeader},
		{name: "no token", header: "Bearer", wantErr: ErrInvalidAuthHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := http.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			got, err := j.GetTokenFromRequest(ctx, r)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.want, got)
		})
	}
}
