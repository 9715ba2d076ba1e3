// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"fits", "fleet", 10, "fleet"},
		{"exact", "fleet", 5, "fleet"},
		{"cut", "maintenance", 6, "maint…"},
		{"zero", "fleet", 0, ""},
		{"negative", "fleet", -3, ""},
		{"wide runes", "車両管理", 5, "車両…"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncate(tc.in, tc.max); got != tc.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
			}
		})
	}
}

func TestGap(t *testing.T) {
	if got := gap(3); got != "   " {
		t.Errorf("gap(3) = %q", got)
	}
	if gap(0) != "" || gap(-2) != "" {
		t.Error("gap() should be empty for non-positive n")
	}
}
