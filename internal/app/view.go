// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app wires the fleetdeck admin console together: routing, the
// sidebar, and the per-section content views.
package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/morganforge/fleetdeck/internal/ui/components"
)

// =============================================================================
// VIEW
// =============================================================================

// View composes the console: header, sidebar plus content, status bar. The
// whole frame passes through zone.Scan so mouse hit zones stay registered.
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := m.renderHeader()
	body := m.renderBody()
	status := m.renderStatusBar()

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, header, body, status))
}

func (m *Model) renderHeader() string {
	title := m.theme.HeaderTitle.Render("fleetdeck")
	subtitle := m.theme.HeaderSubtitle.Render(m.sectionTitle())
	return m.theme.Header.Width(m.width).Render(title + "  " + subtitle)
}

// renderBody lays the sidebar and content side by side on desktop; on
// mobile the open sidebar overlays the content entirely.
func (m *Model) renderBody() string {
	content := m.theme.Container.
		Width(m.contentWidth()).
		Height(m.contentHeight()).
		Render(m.renderContent())

	if m.mobile {
		if overlay := m.panel.ViewOverlay(m.width, m.theme); overlay != "" {
			return overlay
		}
		return content
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.panel.View(), content)
}

// renderContent picks the view for the active section.
func (m *Model) renderContent() string {
	switch components.ActiveSection(m.route) {
	case "dashboard", "":
		return m.dash.View()
	default:
		return m.renderSectionPlaceholder()
	}
}

// renderSectionPlaceholder stands in for sections whose management views
// are not part of this console.
func (m *Model) renderSectionPlaceholder() string {
	var entry components.NavEntry
	for _, e := range components.NavEntries {
		if e.ID == m.panel.ActiveID() {
			entry = e
			break
		}
	}
	card := components.MetricCard{
		Title:   entry.Title,
		Value:   entry.Description,
		Icon:    entry.Icon,
		Options: components.CardOptions{Width: 44},
	}
	return card.View()
}

func (m *Model) renderStatusBar() string {
	if m.help.ShowAll {
		return m.theme.StatusBar.Width(m.width).Render(m.help.View(m.keys))
	}

	var parts []string
	for _, b := range m.keys.ShortHelp() {
		parts = append(parts,
			m.theme.ShortcutKey.Render(b.Help().Key)+" "+
				m.theme.ShortcutDesc.Render(b.Help().Desc))
	}
	left := strings.Join(parts, "  ")
	right := m.theme.ShortcutDesc.Render("session " + shortID(m.session.SessionID()))

	pad := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if pad < 1 {
		pad = 1
	}
	return m.theme.StatusBar.Width(m.width).
		Render(left + lipgloss.NewStyle().Width(pad).Render("") + right)
}

// =============================================================================
// LAYOUT HELPERS
// =============================================================================

const chromeHeight = 2 // header + status bar

func (m *Model) contentHeight() int {
	h := m.height - chromeHeight
	if h < 4 {
		h = 4
	}
	return h
}

func (m *Model) contentWidth() int {
	w := m.width
	if !m.mobile {
		w -= m.cfg.UI.SidebarWidth
	}
	w -= 2 // container padding
	if w < 20 {
		w = 20
	}
	return w
}

func (m *Model) sectionTitle() string {
	for _, e := range components.NavEntries {
		if e.ID == m.panel.ActiveID() {
			return e.Title
		}
	}
	return "Fleet Admin"
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
