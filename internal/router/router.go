// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package router provides client-side path routing for the fleetdeck TUI.
//
// The router is the single source of truth for the current path. Views never
// mutate the path directly; they call Navigate and react to the
// RouteChangedMsg it emits. Each navigation produces exactly one message, so
// observers recompute route-derived state exactly once per event.
package router

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// RouteChangedMsg is emitted after every successful navigation.
type RouteChangedMsg struct {
	// Path is the new current path, e.g. "/admin/vehicles/123".
	Path string
}

// maxHistory caps the back stack so long sessions don't grow it unbounded.
const maxHistory = 100

// Router tracks the current path and a bounded navigation history.
// It is used from the single Bubble Tea update goroutine and needs no locking.
type Router struct {
	path    string
	history []string
}

// New creates a router positioned at the given initial path.
// An empty initial path defaults to "/".
func New(initial string) *Router {
	if initial == "" {
		initial = "/"
	}
	return &Router{path: normalize(initial)}
}

// CurrentPath returns the path the application is currently on.
func (r *Router) CurrentPath() string {
	return r.path
}

// Navigate moves to the given path and returns a command that delivers the
// RouteChangedMsg. Navigating to the current path is a no-op and returns nil
// so observers are not re-notified.
func (r *Router) Navigate(path string) tea.Cmd {
	path = normalize(path)
	if path == r.path {
		return nil
	}

	r.history = append(r.history, r.path)
	if len(r.history) > maxHistory {
		r.history = r.history[len(r.history)-maxHistory:]
	}
	r.path = path

	return routeChanged(path)
}

// Back returns to the previous path, if any.
func (r *Router) Back() tea.Cmd {
	if len(r.history) == 0 {
		return nil
	}

	last := len(r.history) - 1
	r.path = r.history[last]
	r.history = r.history[:last]

	return routeChanged(r.path)
}

// CanGoBack reports whether there is navigation history to return to.
func (r *Router) CanGoBack() bool {
	return len(r.history) > 0
}

func routeChanged(path string) tea.Cmd {
	return func() tea.Msg {
		return RouteChangedMsg{Path: path}
	}
}

// normalize ensures a leading slash and strips a trailing one ("/" excepted).
func normalize(path string) string {
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}
