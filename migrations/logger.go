// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

// gooseLogger writes goose progress lines through the application logger.
type gooseLogger struct {
	log *logger.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.log.Info().Str("component", "goose").Msg(message(format, v...))
}

// Fatalf logs at fatal level, which exits the process like goose expects.
func (g gooseLogger) Fatalf(format string, v ...any) {
	g.log.Fatal().Str("component", "goose").Msg(message(format, v...))
}

func message(format string, v ...any) string {
	return strings.TrimSpace(strings.TrimPrefix(fmt.Sprintf(format, v...), "goose: "))
}
