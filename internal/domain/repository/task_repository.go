package repository

import (
	"context"

	"github.com/adityarmn/go-todo-app/internal/domain/entity"
)

// TaskRepository defines the interface for task-related database operations.
// Every lookup and mutation is filtered by the owning user's id.
type TaskRepository interface {
	Insert(ctx context.Context, t *entity.Task) error
	ListByOwner(ctx context.Context, ownerID string) ([]entity.Task, error)
	FindByIDAndOwner(ctx context.Context, id, ownerID string) (*entity.Task, error)
	UpdateFields(ctx context.Context, id, ownerID, title, description string) error
	DeleteByIDAndOwner(ctx context.Context, id, ownerID string) (int64, error)
}
