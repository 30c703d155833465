package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCheckPassword(t *testing.T) {
	h := HashPassword("secret123")
	assert.NotEqual(t, "secret123", h)
	assert.True(t, CheckPassword("secret123", h))
	assert.False(t, CheckPassword("wrong", h))
}

func TestNewID_Unique(t *testing.T) {
	assert.NotEqual(t, NewID(), NewID())
}
