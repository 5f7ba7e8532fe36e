package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Bcrypt work factors. Admin accounts are hashed at a higher cost than
// ordinary registrations.
const (
	DefaultCost = 10
	AdminCost   = 12
)

var (
	ErrEmptyPassword      = errors.New("password must not be empty")
	ErrMismatchedPassword = errors.New("password does not match hash")
)

// HashPassword generates a bcrypt hash at the given work factor.
func HashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(h), err
}

// ComparePassword validates the cleartext password against the stored
// hash in constant time.
func ComparePassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatchedPassword
		}
		return err
	}
	return nil
}
