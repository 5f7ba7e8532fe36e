package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/crmbase/lead-manager/internal/entity"
	"github.com/crmbase/lead-manager/internal/infra/auth"
)

func TestGenerateAndParseRoundTrip(t *testing.T) {
	m := auth.NewJWTManager("test-secret", time.Hour)

	token, err := m.Generate(&entity.User{ID: "user-1", Role: entity.RoleSalesRep})
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := m.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, entity.RoleSalesRep, claims.Role)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestParseExpiredToken(t *testing.T) {
	m := auth.NewJWTManager("test-secret", -time.Minute)

	token, err := m.Generate(&entity.User{ID: "user-1", Role: entity.RoleManager})
	assert.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	signer := auth.NewJWTManager("secret-a", time.Hour)
	verifier := auth.NewJWTManager("secret-b", time.Hour)

	token, err := signer.Generate(&entity.User{ID: "user-1", Role: entity.RoleManager})
	assert.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	m := auth.NewJWTManager("test-secret", time.Hour)

	_, err := m.Parse("not.a.token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseRejectsUnknownRole(t *testing.T) {
	m := auth.NewJWTManager("test-secret", time.Hour)

	token, err := m.Generate(&entity.User{ID: "user-1", Role: entity.Role("SUPERUSER")})
	assert.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
