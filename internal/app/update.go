// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app wires the fleetdeck admin console together: routing, the
// sidebar, and the per-section content views.
package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/morganforge/fleetdeck/internal/router"
	"github.com/morganforge/fleetdeck/internal/ui/components"
)

// =============================================================================
// UPDATE
// =============================================================================

// Update routes messages to the owning model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		return m, nil

	case ConfigReloadedMsg:
		if msg.Config != nil {
			m.cfg = msg.Config
			if m.ready {
				m.layout()
			}
		}
		return m, nil

	case router.RouteChangedMsg:
		m.route = msg.Path
		m.panel.Update(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

// layout recomputes the responsive presentation after a resize.
func (m *Model) layout() {
	m.theme.SetSize(m.width, m.height)

	wasMobile := m.mobile
	m.mobile = m.width < m.cfg.UI.MobileBreakpoint
	if wasMobile && !m.mobile {
		// Leaving the overlay presentation; the desktop sidebar is always
		// visible, so reset the owner's state to match.
		m.sidebarOpen = true
	}
	if !wasMobile && m.mobile {
		// The overlay starts closed so content stays readable.
		m.sidebarOpen = false
	}

	m.panel.Mobile = m.mobile
	m.panel.Open = m.sidebarOpen
	m.panel.SetSize(m.cfg.UI.SidebarWidth, m.contentHeight())

	m.dash.SetWidth(m.contentWidth())
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.ToggleSidebar):
		m.toggleSidebar()
		return m, nil

	case key.Matches(msg, m.keys.Back):
		return m, m.router.Back()

	case key.Matches(msg, m.keys.NextSection):
		return m, m.cycleSection(1)

	case key.Matches(msg, m.keys.PrevSection):
		return m, m.cycleSection(-1)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	path, handled := m.panel.HandleClick(msg)
	if !handled {
		return m, nil
	}
	if path == "" {
		// Backdrop click; the panel already invoked the toggle.
		return m, nil
	}
	if m.mobile {
		// Navigating from the overlay closes it.
		m.sidebarOpen = false
		m.panel.Open = false
	}
	return m, m.router.Navigate(path)
}

// cycleSection navigates to the neighbouring sidebar entry.
func (m *Model) cycleSection(step int) tea.Cmd {
	entries := components.NavEntries
	idx := 0
	for i, e := range entries {
		if e.ID == m.panel.ActiveID() {
			idx = i
			break
		}
	}
	next := (idx + step + len(entries)) % len(entries)
	return m.router.Navigate(entries[next].Path)
}
