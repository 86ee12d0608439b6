package actions

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/user"
)

// RegisterUser creates a user with a bcrypt-hashed credential and seeds the
// default category set in the same transaction; a failure at any step rolls
// the whole registration back. Fails with ErrDuplicateUsername when the
// username is taken. On success Result holds the persisted user.
type RegisterUser struct {
	Username string
	Password string

	Result *user.User
}

func (a *RegisterUser) Perform(ctx context.Context, writer *storage.Writer) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	row, err := writer.User.Insert(ctx, &user.UserCreate{
		Username:     a.Username,
		PasswordHash: string(hash),
	})
	if storage.IsUniqueViolation(err) {
		return service.ErrDuplicateUsername
	}
	if err != nil {
		return &service.PersistenceError{Op: "RegisterUser", Err: err}
	}

	if err := seedCategories(ctx, writer, row.ID); err != nil {
		return err
	}

	a.Result = row
	return nil
}
