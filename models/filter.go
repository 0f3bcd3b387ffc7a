// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Filter selects a subset of a user's todos by their done-state.
type Filter string

const (
	// FilterAll selects every todo. It is the default.
	FilterAll Filter = "all"
	// FilterActive selects todos that are not done yet.
	FilterActive Filter = "active"
	// FilterDone selects completed todos.
	FilterDone Filter = "done"
)

// ParseFilter converts a raw query value into a [Filter].
// Matching is case-insensitive; empty or unknown values yield [FilterAll].
func ParseFilter(raw string) Filter {
	switch f := Filter(strings.ToLower(strings.TrimSpace(raw))); f {
	case FilterActive, FilterDone:
		return f
	default:
		return FilterAll
	}
}

// Filters lists every filter in display order.
func Filters() []Filter {
	return []Filter{FilterAll, FilterActive, FilterDone}
}

func (f Filter) String() string {
	return string(f)
}
