// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
)

// healthCheckTimeout bounds a single database ping.
const healthCheckTimeout = 2 * time.Second

type healthService struct {
	checker store.HealthChecker
	logger  *logger.Logger
}

// NewHealthService returns a [HealthService] that pings checker.
func NewHealthService(checker store.HealthChecker, logger *logger.Logger) HealthService {
	return &healthService{
		checker: checker,
		logger:  logger,
	}
}

// Check returns nil when the database answers within healthCheckTimeout.
func (s *healthService) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	if err := s.checker.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("health check failed")
		return fmt.Errorf("health check failed: %w", err)
	}
	return nil
}
