package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/adityarmn/go-todo-app/internal/domain/entity"
	repo "github.com/adityarmn/go-todo-app/internal/domain/repository"
)

var (
	ErrTaskNotFound   = errors.New("task not found")
	ErrNothingDeleted = errors.New("no task deleted")
)

type TaskService struct {
	Tasks  repo.TaskRepository
	Logger *logrus.Logger
}

func NewTaskService(tasks repo.TaskRepository, logger *logrus.Logger) *TaskService {
	return &TaskService{Tasks: tasks, Logger: logger}
}

// List returns all of the owner's tasks in creation order.
func (s *TaskService) List(ctx context.Context, ownerID string) ([]entity.Task, error) {
	return s.Tasks.ListByOwner(ctx, ownerID)
}

// Create persists a new task owned by the caller. Empty title or description
// is accepted.
func (s *TaskService) Create(ctx context.Context, ownerID, title, description string) (*entity.Task, error) {
	t := &entity.Task{Title: title, Description: description, UserID: ownerID}
	if err := s.Tasks.Insert(ctx, t); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("owner", ownerID).Error("insert task failed")
		}
		return nil, err
	}
	return t, nil
}

// GetByID returns the task when it exists and is owned by the caller,
// ErrTaskNotFound otherwise.
func (s *TaskService) GetByID(ctx context.Context, ownerID, id string) (*entity.Task, error) {
	t, err := s.Tasks.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return t, nil
}

// Update overwrites title and description on the matching owned task, then
// reads back the record. A write that matched nothing surfaces as
// ErrTaskNotFound from the read-back; there is no optimistic concurrency
// token, the last writer wins.
func (s *TaskService) Update(ctx context.Context, ownerID, id, title, description string) (*entity.Task, error) {
	if err := s.Tasks.UpdateFields(ctx, id, ownerID, title, description); err != nil {
		return nil, err
	}
	t, err := s.Tasks.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return t, nil
}

// Delete removes the matching owned task. ErrNothingDeleted when the delete
// count is not exactly one, so deleting an already-deleted id fails.
func (s *TaskService) Delete(ctx context.Context, ownerID, id string) error {
	n, err := s.Tasks.DeleteByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if n != 1 {
		return ErrNothingDeleted
	}
	return nil
}
