// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// todoService is the core [TodoService]: it normalises input and delegates
// persistence to a [store.TodoRepository].
type todoService struct {
	todoRepository store.TodoRepository
	logger         *logger.Logger
}

// NewTodoService constructs the core [TodoService].
func NewTodoService(todoRepository store.TodoRepository, logger *logger.Logger) TodoService {
	return &todoService{
		todoRepository: todoRepository,
		logger:         logger,
	}
}

// List returns the user's todos newest first. Unknown filters list
// everything; an empty result is an empty slice.
func (s *todoService) List(ctx context.Context, userID int64, filter models.Filter) ([]models.Todo, error) {
	todos, err := s.todoRepository.ListTodos(ctx, models.TodoQuery{
		UserID: userID,
		Filter: models.ParseFilter(filter.String()),
	})
	if err != nil {
		return nil, fmt.Errorf("error listing todos: %w", err)
	}

	return todos, nil
}

// Add stores a new, not yet done todo with the trimmed title.
func (s *todoService) Add(ctx context.Context, userID int64, title string) (models.Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		logger.FromContext(ctx).Debug().Int64("user_id", userID).Msg("empty todo title")
		return models.Todo{}, ErrEmptyTitle
	}

	todo, err := s.todoRepository.CreateTodo(ctx, models.Todo{UserID: userID, Title: title, Done: false})
	if err != nil {
		return models.Todo{}, fmt.Errorf("error adding todo: %w", err)
	}

	return todo, nil
}

// Toggle flips the done flag of the user's todo.
func (s *todoService) Toggle(ctx context.Context, userID, todoID int64) (models.Todo, error) {
	todo, err := s.todoRepository.ToggleTodo(ctx, models.TodoKey{ID: todoID, UserID: userID})
	if err != nil {
		return models.Todo{}, fmt.Errorf("error toggling todo: %w", err)
	}

	return todo, nil
}

// Delete removes the user's todo.
func (s *todoService) Delete(ctx context.Context, userID, todoID int64) error {
	if err := s.todoRepository.DeleteTodo(ctx, models.TodoKey{ID: todoID, UserID: userID}); err != nil {
		return fmt.Errorf("error deleting todo: %w", err)
	}

	return nil
}
