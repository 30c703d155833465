package service

import (
	"context"

	"go-commerce-api/internal/domain"
	"go-commerce-api/pkg/utils"
)

type RegisterService struct {
	users domain.UserRepository
}

func NewRegisterService(users domain.UserRepository) *RegisterService {
	return &RegisterService{users: users}
}

// Register validates the input, hashes the password and persists the user.
// The unique indexes on username/email are the real guard; the pre-check
// only exists to answer with ErrAlreadyExists before paying for a bcrypt.
func (s *RegisterService) Register(ctx context.Context, in domain.RegisterInput) (*domain.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	role, _ := domain.ParseRole(in.Role)

	existing, err := s.users.FindByUsernameOrEmail(in.Username, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrAlreadyExists
	}

	u := &domain.User{
		ID:           utils.NewID(),
		Username:     in.Username,
		Email:        in.Email,
		Name:         in.Name,
		PasswordHash: utils.HashPassword(in.Password),
		Role:         role,
	}
	if err := s.users.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}
