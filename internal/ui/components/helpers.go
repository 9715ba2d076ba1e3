// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// =============================================================================
// SHARED HELPER FUNCTIONS
// =============================================================================

// truncate shortens s to at most max display cells, appending an ellipsis
// when anything was cut. Width is measured in terminal cells, not bytes.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= max {
		return s
	}
	return runewidth.Truncate(s, max, "…")
}

// gap returns n spaces, or the empty string for non-positive n.
func gap(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
