package service

import (
	"context"
	"time"

	"go-commerce-api/internal/core/auth"
	"go-commerce-api/internal/domain"
	"go-commerce-api/pkg/utils"
)

type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	Username  string
	Role      domain.Role
	UserID    string
}

type AuthService struct {
	users domain.UserRepository
	jwter *auth.JWTer
}

func NewAuthService(users domain.UserRepository, jwter *auth.JWTer) *AuthService {
	return &AuthService{users: users, jwter: jwter}
}

// Authenticate checks the credentials and issues an access token.
// Unknown username and wrong password both come back as
// ErrInvalidCredentials so the response does not leak which one it was.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*AuthResult, error) {
	u, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if u == nil || !utils.CheckPassword(password, u.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, exp, err := s.jwter.Issue(u)
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		Token:     token,
		ExpiresAt: exp,
		Username:  u.Username,
		Role:      u.Role,
		UserID:    u.ID,
	}, nil
}
