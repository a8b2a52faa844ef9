package identity

import "context"

// Store is the user gateway backed by the usuarios table.
type Store interface {
	FindByEmail(ctx context.Context, email string) (*User, error) // ErrNotFound when absent
	FindByID(ctx context.Context, id int64) (*User, error)
	// Create persists a new user; ErrEmailTaken when the unique email index
	// rejects the insert.
	Create(ctx context.Context, u *User) (int64, error)
	UpdateProfile(ctx context.Context, u *User) error
}
