// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session tracks the signed-in operator for the fleetdeck TUI.
//
// The manager holds an in-memory user record only. Authentication and
// authorization are performed elsewhere; consumers read the user for display
// purposes and must tolerate it being absent.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// User is the minimal identity record the UI consumes.
type User struct {
	Name  string
	Email string
}

// Manager holds the current session identity.
// Safe for concurrent use.
type Manager struct {
	mu sync.Mutex

	sessionID string
	startTime time.Time
	user      *User
}

// NewManager creates a manager with a fresh session ID and no user.
func NewManager() *Manager {
	return &Manager{
		sessionID: uuid.NewString(),
		startTime: time.Now(),
	}
}

// SessionID returns the current session ID.
func (m *Manager) SessionID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessionID
}

// StartTime returns when the session began.
func (m *Manager) StartTime() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.startTime
}

// SetUser records the signed-in user. A copy is stored so later mutation of
// the argument does not leak into the session.
func (m *Manager) SetUser(u User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = &u
}

// CurrentUser returns the signed-in user, or nil when nobody is signed in.
func (m *Manager) CurrentUser() *User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// Clear signs the user out and rotates the session ID.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = nil
	m.sessionID = uuid.NewString()
	m.startTime = time.Now()
}
