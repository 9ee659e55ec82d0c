package repository

import (
	"context"
	"errors"

	"github.com/adityarmn/go-todo-app/internal/domain/entity"
)

// ErrNotFound is returned by lookups that match no document.
var ErrNotFound = errors.New("not found")

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Insert(ctx context.Context, u *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
