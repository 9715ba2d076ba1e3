// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"os"
	"strings"
	"testing"

	zone "github.com/lrstanley/bubblezone"

	"github.com/morganforge/fleetdeck/internal/router"
	"github.com/morganforge/fleetdeck/internal/session"
	"github.com/morganforge/fleetdeck/internal/ui/styles"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

// =============================================================================
// ACTIVE SECTION TESTS
// =============================================================================

func TestActiveSection(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/admin/dashboard", "dashboard"},
		{"/admin/drivers", "drivers"},
		{"/admin/drivers/42/trips", "drivers"},
		{"/admin/vehicles", "vehicles"},
		{"/admin/vehicles/123", "vehicles"},
		{"/admin/maintenance/upcoming", "maintenance"},
		{"/admin/settings", "settings"},
		{"/admin", ""},
		{"/", ""},
		{"", ""},
	}

	for _, tc := range tests {
		got := ActiveSection(tc.path)
		if got != tc.want {
			t.Errorf("ActiveSection(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestActiveSectionDeclaredOrderWins(t *testing.T) {
	// A path containing two segments resolves to the first declared entry.
	got := ActiveSection("/admin/dashboard/vehicles")
	if got != "dashboard" {
		t.Errorf("ActiveSection() = %q, want %q (declared order)", got, "dashboard")
	}
}

func TestUpdateRecomputesActiveOnRouteChange(t *testing.T) {
	n := NewNavigationPanel()

	n.Update(router.RouteChangedMsg{Path: "/admin/vehicles/123"})
	if n.ActiveID() != "vehicles" {
		t.Errorf("ActiveID() = %q, want %q", n.ActiveID(), "vehicles")
	}

	n.Update(router.RouteChangedMsg{Path: "/admin/drivers"})
	if n.ActiveID() != "drivers" {
		t.Errorf("ActiveID() after second route change = %q, want %q", n.ActiveID(), "drivers")
	}
}

func TestUpdateIgnoresOtherMessages(t *testing.T) {
	n := NewNavigationPanel()
	n.Update(router.RouteChangedMsg{Path: "/admin/vehicles"})

	n.Update("not a route message")
	if n.ActiveID() != "vehicles" {
		t.Error("Update() with a foreign message should not change the active section")
	}
}

// =============================================================================
// NAVIGATION TABLE TESTS
// =============================================================================

func TestNavEntriesAreUnique(t *testing.T) {
	seenID := make(map[string]bool)
	seenPath := make(map[string]bool)
	for _, e := range NavEntries {
		if seenID[e.ID] {
			t.Errorf("duplicate entry ID %q", e.ID)
		}
		if seenPath[e.Path] {
			t.Errorf("duplicate entry path %q", e.Path)
		}
		seenID[e.ID] = true
		seenPath[e.Path] = true

		if e.Segment == "" {
			t.Errorf("entry %q has no segment", e.ID)
		}
		if !strings.Contains(e.Path, e.Segment) {
			t.Errorf("entry %q path %q does not contain its segment %q", e.ID, e.Path, e.Segment)
		}
	}
}

// =============================================================================
// VISIBILITY AND BACKDROP TESTS
// =============================================================================

func TestBackdropPressInvokesToggleOnce(t *testing.T) {
	n := NewNavigationPanel()
	n.Mobile = true
	n.Open = true

	calls := 0
	n.OnToggle = func() { calls++ }

	path, handled := n.press(navTargetBackdrop)
	if !handled {
		t.Fatal("press(backdrop) should be handled")
	}
	if path != "" {
		t.Errorf("press(backdrop) path = %q, want empty", path)
	}
	if calls != 1 {
		t.Errorf("OnToggle called %d times, want exactly 1", calls)
	}
}

func TestBackdropPressWithoutCallback(t *testing.T) {
	n := NewNavigationPanel()
	// Must not panic when no callback is wired.
	if _, handled := n.press(navTargetBackdrop); !handled {
		t.Error("press(backdrop) should be handled even without a callback")
	}
}

func TestEntryPressReturnsPath(t *testing.T) {
	n := NewNavigationPanel()

	path, handled := n.press("vehicles")
	if !handled {
		t.Fatal("press(vehicles) should be handled")
	}
	if path != "/admin/vehicles" {
		t.Errorf("press(vehicles) path = %q, want %q", path, "/admin/vehicles")
	}
}

func TestUnknownPressIsUnhandled(t *testing.T) {
	n := NewNavigationPanel()
	if _, handled := n.press("no-such-entry"); handled {
		t.Error("press() on an unknown target should not be handled")
	}
}

func TestViewHiddenWhenMobileClosed(t *testing.T) {
	n := NewNavigationPanel()
	n.Mobile = true
	n.Open = false

	if n.View() != "" {
		t.Error("View() should render nothing when closed on mobile")
	}
}

func TestViewShownOnDesktopRegardlessOfOpen(t *testing.T) {
	n := NewNavigationPanel()
	n.Mobile = false
	n.Open = false

	view := n.View()
	if view == "" {
		t.Fatal("View() should render on desktop even when Open is false")
	}
	if !strings.Contains(view, "fleetdeck") {
		t.Error("View() should contain the brand header")
	}
	for _, e := range NavEntries {
		if !strings.Contains(view, e.Title) {
			t.Errorf("View() should contain entry title %q", e.Title)
		}
	}
}

func TestViewOverlayRendersBackdrop(t *testing.T) {
	n := NewNavigationPanel()
	n.Mobile = true
	n.Open = true
	n.SetSize(28, 20)

	theme := styles.NewTheme()
	overlay := n.ViewOverlay(80, theme)
	if overlay == "" {
		t.Fatal("ViewOverlay() should render when open on mobile")
	}
	if !strings.Contains(overlay, "fleetdeck") {
		t.Error("ViewOverlay() should contain the panel")
	}
	if !strings.Contains(overlay, "░") {
		t.Error("ViewOverlay() should contain the dimmed backdrop")
	}
}

func TestViewOverlayEmptyWhenClosed(t *testing.T) {
	n := NewNavigationPanel()
	n.Mobile = true
	n.Open = false

	if n.ViewOverlay(80, styles.NewTheme()) != "" {
		t.Error("ViewOverlay() should render nothing when closed")
	}
}

// =============================================================================
// IDENTITY TESTS
// =============================================================================

func TestAvatarGlyph(t *testing.T) {
	tests := []struct {
		name string
		user *session.User
		want string
	}{
		{"lowercase name", &session.User{Name: "jordan"}, "J"},
		{"uppercase name", &session.User{Name: "Dana"}, "D"},
		{"unicode name", &session.User{Name: "åsa"}, "Å"},
		{"empty name", &session.User{}, "A"},
		{"nil user", nil, "A"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := avatarGlyph(tc.user)
			if got != tc.want {
				t.Errorf("avatarGlyph() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestUserFooterFallbacks(t *testing.T) {
	n := NewNavigationPanel()

	view := n.View()
	if !strings.Contains(view, "Admin User") {
		t.Error("View() without a user should show the fallback name")
	}
	if !strings.Contains(view, "admin@example.com") {
		t.Error("View() without a user should show the fallback email")
	}
}

func TestUserFooterWithUser(t *testing.T) {
	n := NewNavigationPanel()
	n.SetSize(34, 30)
	n.SetUser(&session.User{Name: "jordan", Email: "jordan@fleet.example"})

	view := n.View()
	if !strings.Contains(view, "jordan") {
		t.Error("View() should show the user's name")
	}
	if !strings.Contains(view, "J") {
		t.Error("View() should show the derived avatar glyph")
	}
}

func TestActiveEntryHighlight(t *testing.T) {
	n := NewNavigationPanel()
	n.Update(router.RouteChangedMsg{Path: "/admin/vehicles"})

	// The active entry shows its description line; inactive entries do not.
	view := n.View()
	if !strings.Contains(view, "Vehicle registry") {
		t.Error("View() should render the active entry description")
	}
	if strings.Contains(view, "Driver roster") {
		t.Error("View() should not render inactive entry descriptions")
	}
}
