package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-commerce-api/internal/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:       "3f1c0a9e-0000-0000-0000-000000000001",
		Username: "anthony",
		Role:     domain.RoleAdmin,
	}
}

func newJWTer(ttl time.Duration) *JWTer {
	return &JWTer{Secret: []byte("test-secret"), Issuer: "go-commerce-api", TTL: ttl}
}

func TestIssueParse_Roundtrip(t *testing.T) {
	j := newJWTer(10 * time.Minute)
	u := testUser()

	tok, exp, err := j.Issue(u)
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), exp, 5*time.Second)

	claims, err := j.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "anthony", claims.Subject)
	assert.Equal(t, "ADMIN", claims.Role)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, "go-commerce-api", claims.Issuer)
}

func TestParse_Expired(t *testing.T) {
	j := newJWTer(-2 * time.Minute) // already past expiry plus leeway
	tok, _, err := j.Issue(testUser())
	require.NoError(t, err)

	_, err = j.Parse(tok)
	assert.Error(t, err)
}

func TestParse_WrongSecret(t *testing.T) {
	j := newJWTer(10 * time.Minute)
	tok, _, err := j.Issue(testUser())
	require.NoError(t, err)

	other := &JWTer{Secret: []byte("other-secret"), Issuer: "go-commerce-api"}
	_, err = other.Parse(tok)
	assert.Error(t, err)
}

func TestParse_WrongIssuer(t *testing.T) {
	j := newJWTer(10 * time.Minute)
	tok, _, err := j.Issue(testUser())
	require.NoError(t, err)

	other := &JWTer{Secret: []byte("test-secret"), Issuer: "someone-else"}
	_, err = other.Parse(tok)
	assert.Error(t, err)
}

func TestParse_Garbage(t *testing.T) {
	j := newJWTer(10 * time.Minute)
	_, err := j.Parse("not.a.token")
	assert.Error(t, err)
}
