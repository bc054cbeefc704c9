// Package auth implements the demo-account login the application ships
// with. There is no user database: accounts are configured at startup and
// each session carries a single authenticated user.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/Samhr4577/finance-sparkle-16/internal/errors"
)

// User is an authenticated demo account.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Credential pairs a demo account with its plaintext password from
// configuration. The password is hashed at startup and discarded.
type Credential struct {
	User     User
	Password string
}

// Service authenticates against the configured demo accounts.
type Service struct {
	users  []User
	hashes [][]byte
}

// NewService hashes the configured credentials and returns a Service.
func NewService(credentials ...Credential) (*Service, error) {
	s := &Service{}
	for _, c := range credentials {
		hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		s.users = append(s.users, c.User)
		s.hashes = append(s.hashes, hash)
	}
	return s, nil
}

// Authenticate verifies the email/password pair and returns the matching
// user, or ErrInvalidCredentials.
func (s *Service) Authenticate(email, password string) (*User, error) {
	for i, u := range s.users {
		if u.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword(s.hashes[i], []byte(password)) == nil {
			user := u
			return &user, nil
		}
	}
	return nil, apperrors.ErrInvalidCredentials
}
