// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
)

func TestCardGroupColumns(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  int
	}{
		{"narrow", 40, 1},
		{"narrow edge", 59, 1},
		{"medium", 60, 2},
		{"medium edge", 99, 2},
		{"wide", 100, 4},
		{"very wide", 200, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := CardGroup{Width: tc.width}
			if got := g.Columns(); got != tc.want {
				t.Errorf("Columns() at width %d = %d, want %d", tc.width, got, tc.want)
			}
		})
	}
}

func TestCardGroupViewEmpty(t *testing.T) {
	g := CardGroup{Width: 120}
	if g.View() != "" {
		t.Error("View() with no cards should render nothing")
	}
}

func TestCardGroupViewRowChunking(t *testing.T) {
	cards := []string{"aa", "bb", "cc", "dd", "ee"}

	// Two columns: five cards wrap onto three rows, the last row short.
	g := CardGroup{Cards: cards, Width: 70}
	rows := strings.Split(g.View(), "\n")
	if len(rows) != 3 {
		t.Fatalf("row count = %d, want 3", len(rows))
	}
	if !strings.Contains(rows[0], "aa") || !strings.Contains(rows[0], "bb") {
		t.Error("first row should hold the first two cards")
	}
	if !strings.Contains(rows[2], "ee") {
		t.Error("last row should hold the trailing card")
	}
	if strings.Contains(rows[2], "dd") {
		t.Error("last row should not hold cards from earlier rows")
	}
}

func TestCardGroupViewSingleColumn(t *testing.T) {
	g := CardGroup{Cards: []string{"one", "two", "three"}, Width: 40}
	rows := strings.Split(g.View(), "\n")
	if len(rows) != 3 {
		t.Fatalf("row count = %d, want 3", len(rows))
	}
	for i, want := range []string{"one", "two", "three"} {
		if !strings.Contains(rows[i], want) {
			t.Errorf("row %d = %q, want %q", i, rows[i], want)
		}
	}
}

func TestCardGroupViewOrderPreserved(t *testing.T) {
	g := CardGroup{Cards: []string{"first", "second", "third", "fourth"}, Width: 120}
	view := g.View()
	if strings.Index(view, "first") > strings.Index(view, "fourth") {
		t.Error("View() should preserve card declaration order")
	}
}
