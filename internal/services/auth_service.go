package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"sudsshop/internal/store"
)

var ErrBadPassword = errors.New("incorrect password")

// AuthService is the owner-access gate. The shop password comes from config;
// only its bcrypt hash is kept in memory. This is a convenience gate for a
// low-stakes panel, not real access control: there is one password, no
// account, and no lockout beyond the route's rate limiter.
type AuthService struct {
	hash []byte
}

func NewAuthService(password string) (*AuthService, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthService{hash: h}, nil
}

// Login authenticates the session iff the attempt equals the configured
// password. A mismatch sets the session's error flag and leaves the guard
// untouched; attempts are unlimited.
func (s *AuthService) Login(sess *store.Session, attempt string) error {
	if bcrypt.CompareHashAndPassword(s.hash, []byte(attempt)) != nil {
		sess.RejectLogin()
		return ErrBadPassword
	}
	sess.GrantAdmin()
	return nil
}
