package service

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage/user"
)

// User represents a user in the service layer. The credential hash never
// leaves the storage and service layers.
type User struct {
	ID        uuid.UUID
	Username  string
	CreatedAt time.Time
}

func userFromStorage(row *user.User) User {
	return User{
		ID:        row.ID,
		Username:  row.Username,
		CreatedAt: row.CreatedAt,
	}
}
