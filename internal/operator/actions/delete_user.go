package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// DeleteUser removes a user. The schema's cascade rules remove the user's
// categories, transactions, and goals with the row. Fails with ErrUserNotFound
// when no such user exists.
type DeleteUser struct {
	UserID uuid.UUID
}

func (a *DeleteUser) Perform(ctx context.Context, writer *storage.Writer) error {
	affected, err := writer.User.Delete(ctx, a.UserID)
	if err != nil {
		return &service.PersistenceError{Op: "DeleteUser", EntityID: a.UserID.String(), Err: err}
	}
	if affected == 0 {
		return service.ErrUserNotFound
	}
	return nil
}
