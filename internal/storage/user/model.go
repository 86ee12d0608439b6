package user

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// User represents a user record. PasswordHash is a bcrypt hash, never the
// plain credential.
type User struct {
	ID           uuid.UUID `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// UserCreate is the input for creating a new user.
type UserCreate struct {
	Username     string
	PasswordHash string
}

// IReader defines the read operations on user storage.
type IReader interface {
	FindByUsername(ctx context.Context, username string) (*User, error)
}

// IWriter defines the full set of operations on user storage within a transaction.
type IWriter interface {
	IReader
	Insert(ctx context.Context, create *UserCreate) (*User, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
