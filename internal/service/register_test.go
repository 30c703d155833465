package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-commerce-api/internal/domain"
	"go-commerce-api/pkg/utils"
)

func registerInput() domain.RegisterInput {
	return domain.RegisterInput{
		Username: "anthony",
		Password: "secret123",
		Email:    "anthony@example.com",
		Name:     "Anthony",
		Role:     "USER",
	}
}

func TestRegister_PersistsHashedPassword(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewRegisterService(users)

	u, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	assert.Equal(t, domain.RoleUser, u.Role)

	stored, err := users.FindByUsername("anthony")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.True(t, utils.CheckPassword("secret123", stored.PasswordHash))
}

func TestRegister_DuplicateUsername(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewRegisterService(users)

	_, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	in := registerInput()
	in.Email = "other@example.com" // same username, different email
	_, err = svc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewRegisterService(users)

	_, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	in := registerInput()
	in.Username = "other"
	_, err = svc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestRegister_ValidationFailure(t *testing.T) {
	svc := NewRegisterService(newFakeUserRepo())

	in := registerInput()
	in.Username = "ab"
	_, err := svc.Register(context.Background(), in)

	var fe domain.FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "username", fe[0].Field)
}
