package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// UserService handles credential checks. Registration and deletion go through
// the operator's write pipeline.
type UserService struct {
	reader *storage.Reader
}

// NewUserService creates a new UserService.
func NewUserService(reader *storage.Reader) *UserService {
	return &UserService{reader: reader}
}

// Login verifies the username/password pair against the stored bcrypt hash.
// Unknown usernames and wrong passwords both fail with ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, username, password string) (User, error) {
	row, err := s.reader.Users.FindByUsername(ctx, username)
	if err != nil {
		return User{}, &PersistenceError{Op: "Login", Err: err}
	}
	if row == nil {
		return User{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(row.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}

	return userFromStorage(row), nil
}
