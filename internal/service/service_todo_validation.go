// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// TodoValidationService rejects requests with missing identifiers before
// they reach the wrapped [TodoService].
type TodoValidationService struct {
	inner TodoService
}

// NewTodoValidationService returns a [TodoServiceWrapper]; call Wrap to
// obtain the decorated service.
func NewTodoValidationService() TodoServiceWrapper {
	return &TodoValidationService{}
}

func (v *TodoValidationService) List(ctx context.Context, userID int64, filter models.Filter) ([]models.Todo, error) {
	if err := validateUserID(ctx, userID); err != nil {
		return nil, err
	}

	return v.inner.List(ctx, userID, filter)
}

func (v *TodoValidationService) Add(ctx context.Context, userID int64, title string) (models.Todo, error) {
	if err := validateUserID(ctx, userID); err != nil {
		return models.Todo{}, err
	}

	return v.inner.Add(ctx, userID, title)
}

func (v *TodoValidationService) Toggle(ctx context.Context, userID, todoID int64) (models.Todo, error) {
	if err := validateKey(ctx, userID, todoID); err != nil {
		return models.Todo{}, err
	}

	return v.inner.Toggle(ctx, userID, todoID)
}

func (v *TodoValidationService) Delete(ctx context.Context, userID, todoID int64) error {
	if err := validateKey(ctx, userID, todoID); err != nil {
		return err
	}

	return v.inner.Delete(ctx, userID, todoID)
}

func (v *TodoValidationService) Wrap(wrapped TodoService) TodoService {
	v.inner = wrapped
	return v
}

func validateUserID(ctx context.Context, userID int64) error {
	if userID <= 0 {
		logger.FromContext(ctx).Warn().Int64("user_id", userID).Msg("todo operation without a user")
		return ErrInvalidDataProvided
	}
	return nil
}

func validateKey(ctx context.Context, userID, todoID int64) error {
	if err := validateUserID(ctx, userID); err != nil {
		return err
	}
	if todoID <= 0 {
		return ErrInvalidTodoID
	}
	return nil
}
