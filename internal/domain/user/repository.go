package user

import (
	"context"
	"errors"
)

var ErrUserNotFound = errors.New("user not found")

// Repository defines the interface for user data operations
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	// GetByIDs returns the users that exist; missing ids are skipped.
	GetByIDs(ctx context.Context, ids []uint) ([]*User, error)
	List(ctx context.Context) ([]*User, error)
	Exists(ctx context.Context, id uint) (bool, error)
}
