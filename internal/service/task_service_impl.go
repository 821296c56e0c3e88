package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/filingdesk/internal/domain"
	"github.com/alexanderramin/filingdesk/internal/repository"
)

type taskService struct {
	tasks repository.TaskRepo
	users repository.UserRepo
}

func NewTaskService(tasks repository.TaskRepo, users repository.UserRepo) TaskService {
	return &taskService{tasks: tasks, users: users}
}

func (s *taskService) List(ctx context.Context, f repository.TaskFilter) ([]*domain.Task, error) {
	return s.tasks.List(ctx, f)
}

func (s *taskService) Complete(ctx context.Context, id string) (*domain.Task, error) {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := t.Complete(time.Now().UTC()); err != nil {
		return nil, err
	}
	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("saving task: %w", err)
	}
	return t, nil
}

func (s *taskService) Assign(ctx context.Context, id, userID string) (*domain.Task, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("loading assignee: %w", err)
	}
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := t.Assign(userID, time.Now().UTC()); err != nil {
		return nil, err
	}
	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("saving task: %w", err)
	}
	return t, nil
}
