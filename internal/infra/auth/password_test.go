package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/crmbase/lead-manager/internal/infra/auth"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := auth.HashPassword("Secret123!", auth.DefaultCost)
	assert.NoError(t, err)
	assert.NotEqual(t, "Secret123!", hash)

	assert.NoError(t, auth.ComparePassword(hash, "Secret123!"))
	assert.ErrorIs(t, auth.ComparePassword(hash, "wrong"), auth.ErrMismatchedPassword)
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	_, err := auth.HashPassword("", auth.DefaultCost)
	assert.ErrorIs(t, err, auth.ErrEmptyPassword)
}

func TestHashPasswordHonorsCost(t *testing.T) {
	hash, err := auth.HashPassword("Secret123!", auth.AdminCost)
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, auth.AdminCost, cost)
}
