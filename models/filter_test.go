// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilter(t *testing.T) {
	tests := []struct {
		raw  string
		want Filter
	}{
		{"", FilterAll},
		{"all", FilterAll},
		{"active", FilterActive},
		{"done", FilterDone},
		{"DONE", FilterDone},
		{" Active ", FilterActive},
		{"archived", FilterAll},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFilter(tt.raw))
		})
	}
}

func TestNewTodoListResponse_EmptyIsNotNil(t *testing.T) {
	resp := NewTodoListResponse(nil)
	assert.NotNil(t, resp)
	assert.Empty(t, resp)
}

func TestNewAppBuildInfo_DefaultsToNotAvailable(t *testing.T) {
	info := NewAppBuildInfo("", "2026-01-01", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-01-01", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Contains(t, info.String(), "Build date: 2026-01-01")
}
