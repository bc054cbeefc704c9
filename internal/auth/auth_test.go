package auth

import (
	"testing"

	"github.com/Samhr4577/finance-sparkle-16/internal/testutil"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	s, err := NewService(Credential{
		User:     User{ID: "user-1", Email: "user@example.com", Name: "Demo User"},
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("failed to build auth service: %v", err)
	}
	return s
}

func TestAuthenticate(t *testing.T) {
	t.Run("valid_credentials", func(t *testing.T) {
		s := newTestService(t)

		user, err := s.Authenticate("user@example.com", "password123")
		testutil.AssertNoError(t, err)
		if user.ID != "user-1" || user.Name != "Demo User" {
			t.Errorf("unexpected user %+v", user)
		}
	})

	t.Run("wrong_password", func(t *testing.T) {
		s := newTestService(t)

		_, err := s.Authenticate("user@example.com", "wrong")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("unknown_email", func(t *testing.T) {
		s := newTestService(t)

		_, err := s.Authenticate("nobody@example.com", "password123")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})
}
