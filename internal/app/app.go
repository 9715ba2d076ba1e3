// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app wires the fleetdeck admin console together: routing, the
// sidebar, and the per-section content views.
package app

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/morganforge/fleetdeck/internal/config"
	"github.com/morganforge/fleetdeck/internal/router"
	"github.com/morganforge/fleetdeck/internal/session"
	"github.com/morganforge/fleetdeck/internal/ui/components"
	"github.com/morganforge/fleetdeck/internal/ui/dashboard"
	"github.com/morganforge/fleetdeck/internal/ui/styles"
)

// =============================================================================
// MESSAGES
// =============================================================================

// ConfigReloadedMsg carries a freshly validated configuration, typically
// from the file watcher. UI settings apply on the next layout pass.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// =============================================================================
// ROOT MODEL
// =============================================================================

// Model is the root Bubble Tea model for the admin console. It owns sidebar
// visibility and the current route; the sidebar and content views only
// observe what the model passes down.
type Model struct {
	cfg     *config.Config
	theme   *styles.Theme
	router  *router.Router
	session *session.Manager

	panel *components.NavigationPanel
	dash  *dashboard.Dashboard

	keys KeyMap
	help help.Model

	width  int
	height int

	// sidebarOpen is the single visibility truth handed to the panel.
	sidebarOpen bool
	mobile      bool
	route       string
	ready       bool
}

// New creates the console model. The fleet snapshot is display data for the
// dashboard section.
func New(cfg *config.Config, sess *session.Manager, snapshot dashboard.Snapshot) *Model {
	theme := styles.NewTheme()

	panel := components.NewNavigationPanel()
	panel.SetUser(sess.CurrentUser())

	m := &Model{
		cfg:         cfg,
		theme:       theme,
		router:      router.New("/"),
		session:     sess,
		panel:       panel,
		dash:        dashboard.New(snapshot),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		sidebarOpen: true,
	}
	m.panel.OnToggle = m.toggleSidebar
	return m
}

// Init navigates to the configured default route.
func (m *Model) Init() tea.Cmd {
	return m.router.Navigate(m.cfg.UI.DefaultRoute)
}

// toggleSidebar flips the sidebar visibility. It is also the panel's
// backdrop callback.
func (m *Model) toggleSidebar() {
	m.sidebarOpen = !m.sidebarOpen
	m.panel.Open = m.sidebarOpen
}

// SidebarOpen reports the current sidebar visibility.
func (m *Model) SidebarOpen() bool {
	return m.sidebarOpen
}

// CurrentRoute returns the route the console is displaying.
func (m *Model) CurrentRoute() string {
	return m.route
}
