// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/morganforge/fleetdeck/internal/ui/styles"
)

// CardGroup arranges pre-rendered cards in a responsive grid: one column on
// narrow terminals, up to four on wide ones. Pure layout, no state.
type CardGroup struct {
	// Cards holds the rendered child views, in display order.
	Cards []string
	// Width is the available width driving the column count.
	Width int
}

// Columns returns the column count for the group's width.
func (g CardGroup) Columns() int {
	return styles.LayoutModeFor(g.Width).GroupColumns()
}

// View renders the grid.
func (g CardGroup) View() string {
	if len(g.Cards) == 0 {
		return ""
	}

	cols := g.Columns()
	var rows []string
	for i := 0; i < len(g.Cards); i += cols {
		end := i + cols
		if end > len(g.Cards) {
			end = len(g.Cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, g.Cards[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
