package user

import (
	"time"

	"github.com/carson-networks/finance-tracker/internal/service"
	userstore "github.com/carson-networks/finance-tracker/internal/storage/user"
)

// User is the wire representation of a user. Credential material is never
// serialized.
type User struct {
	ID        string `json:"id" doc:"User UUID"`
	Username  string `json:"username" doc:"Unique username"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(u service.User) User {
	return User{
		ID:        u.ID.String(),
		Username:  u.Username,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func fromStorage(row *userstore.User) User {
	return User{
		ID:        row.ID.String(),
		Username:  row.Username,
		CreatedAt: row.CreatedAt.Format(time.RFC3339),
	}
}
