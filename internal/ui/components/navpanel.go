// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"

	"github.com/morganforge/fleetdeck/internal/router"
	"github.com/morganforge/fleetdeck/internal/session"
	"github.com/morganforge/fleetdeck/internal/ui/styles"
)

// =============================================================================
// NAVIGATION ENTRIES
// =============================================================================

// NavEntry describes one sidebar destination.
type NavEntry struct {
	ID          string // unique identifier, doubles as the section name
	Title       string
	Path        string // navigation target
	Segment     string // path segment used for active-section matching
	Icon        string
	Description string
}

// NavEntries is the fixed navigation table. It is built once at package
// initialization and must not be mutated.
var NavEntries = []NavEntry{
	{ID: "dashboard", Title: "Dashboard", Path: "/admin/dashboard", Segment: "dashboard", Icon: "◆", Description: "Fleet overview"},
	{ID: "drivers", Title: "Drivers", Path: "/admin/drivers", Segment: "drivers", Icon: "●", Description: "Driver roster"},
	{ID: "vehicles", Title: "Vehicles", Path: "/admin/vehicles", Segment: "vehicles", Icon: "▣", Description: "Vehicle registry"},
	{ID: "maintenance", Title: "Maintenance", Path: "/admin/maintenance", Segment: "maintenance", Icon: "✚", Description: "Service schedule"},
	{ID: "settings", Title: "Settings", Path: "/admin/settings", Segment: "settings", Icon: "⚙", Description: "Console settings"},
}

// ActiveSection resolves a path to the ID of the first entry (in declared
// order) whose path segment the path contains. Matching is plain substring
// containment, so "/admin/vehicles/123" resolves to "vehicles". Returns ""
// when no entry matches.
func ActiveSection(path string) string {
	for _, e := range NavEntries {
		if strings.Contains(path, e.Segment) {
			return e.ID
		}
	}
	return ""
}

// =============================================================================
// MOUSE ZONES
// =============================================================================

// ZoneNavBackdrop marks the dimmed area beside the mobile sidebar overlay.
const ZoneNavBackdrop = "navpanel.backdrop"

// navTargetBackdrop is the internal hit target for the backdrop zone.
const navTargetBackdrop = "__backdrop__"

// NavEntryZoneID returns the bubblezone ID for a navigation entry row.
func NavEntryZoneID(entryID string) string {
	return "navpanel.entry." + entryID
}

// =============================================================================
// STYLES
// =============================================================================

var (
	navBorderStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(styles.Overlay)
	navBrandStyle     = lipgloss.NewStyle().Bold(true).Foreground(styles.Cyan)
	navSubtitleStyle  = lipgloss.NewStyle().Foreground(styles.TextMuted).Italic(true)
	navItemStyle      = lipgloss.NewStyle().Foreground(styles.TextPrimary).Padding(0, 1)
	navActiveStyle    = lipgloss.NewStyle().Background(styles.Purple).Foreground(styles.TextInverse).Bold(true).Padding(0, 1)
	navDescStyle      = lipgloss.NewStyle().Foreground(styles.TextMuted).PaddingLeft(3)
	navDividerStyle   = lipgloss.NewStyle().Foreground(styles.Overlay)
	navAvatarStyle    = lipgloss.NewStyle().Background(styles.Purple).Foreground(styles.TextInverse).Bold(true).Padding(0, 1)
	navUserNameStyle  = lipgloss.NewStyle().Foreground(styles.TextPrimary).Bold(true)
	navUserEmailStyle = lipgloss.NewStyle().Foreground(styles.TextMuted)
)

// Identity fallbacks used when no user record (or field) is available.
const (
	fallbackUserName  = "Admin User"
	fallbackUserEmail = "admin@example.com"
	fallbackAvatar    = "A"
)

// =============================================================================
// NAVIGATION PANEL
// =============================================================================

// NavigationPanel renders the admin sidebar: a fixed list of route links
// with a single highlighted active entry and an identity footer.
//
// Visibility is owned by the parent: Open and Mobile are inputs, and the
// panel's only side effect is invoking OnToggle when the mobile backdrop is
// clicked. The active section is recomputed exactly once per route-change
// notification; every rendered link derives its highlight from that single
// value.
type NavigationPanel struct {
	// Open reports whether the owner wants the sidebar shown. Ignored on
	// desktop presentation, where the panel always renders.
	Open bool
	// Mobile selects the overlay presentation.
	Mobile bool
	// OnToggle is the caller-supplied visibility toggle. Invoked with no
	// arguments, once per backdrop click.
	OnToggle func()

	user   *session.User
	active string

	width  int
	height int
}

// NewNavigationPanel creates a sidebar with default dimensions and no user.
func NewNavigationPanel() *NavigationPanel {
	return &NavigationPanel{width: 28, height: 24}
}

// SetSize updates the panel dimensions.
func (n *NavigationPanel) SetSize(width, height int) {
	if width < 16 {
		width = 16
	}
	n.width = width
	n.height = height
}

// SetUser updates the identity shown in the panel footer. A nil user is
// valid and falls back to the placeholder identity.
func (n *NavigationPanel) SetUser(u *session.User) {
	n.user = u
}

// ActiveID returns the ID of the entry matching the observed route, or ""
// when no route has matched yet.
func (n *NavigationPanel) ActiveID() string {
	return n.active
}

// Update consumes route-change notifications. Other messages are ignored.
func (n *NavigationPanel) Update(msg tea.Msg) {
	if m, ok := msg.(router.RouteChangedMsg); ok {
		n.active = ActiveSection(m.Path)
	}
}

// =============================================================================
// MOUSE HANDLING
// =============================================================================

// HandleClick resolves a mouse press against the panel's zones. It returns
// the path to navigate to when an entry was clicked ("" otherwise) and
// whether the event was consumed.
func (n *NavigationPanel) HandleClick(msg tea.MouseMsg) (string, bool) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return "", false
	}
	if n.Mobile && n.Open && zone.Get(ZoneNavBackdrop).InBounds(msg) {
		return n.press(navTargetBackdrop)
	}
	for _, e := range NavEntries {
		if zone.Get(NavEntryZoneID(e.ID)).InBounds(msg) {
			return n.press(e.ID)
		}
	}
	return "", false
}

// press applies a resolved hit target: the backdrop invokes the toggle
// callback, an entry yields its navigation path.
func (n *NavigationPanel) press(target string) (string, bool) {
	if target == navTargetBackdrop {
		if n.OnToggle != nil {
			n.OnToggle()
		}
		return "", true
	}
	for _, e := range NavEntries {
		if e.ID == target {
			return e.Path, true
		}
	}
	return "", false
}

// =============================================================================
// RENDERING
// =============================================================================

// View renders the sidebar. On mobile presentation a closed panel renders
// nothing; use ViewOverlay to get the open panel with its backdrop.
func (n *NavigationPanel) View() string {
	if n.Mobile && !n.Open {
		return ""
	}
	return n.renderPanel()
}

// ViewOverlay renders the mobile overlay: the panel on the left and a
// clickable dimmed backdrop filling the rest of totalWidth. Returns "" when
// the panel is closed or not in mobile presentation.
func (n *NavigationPanel) ViewOverlay(totalWidth int, theme *styles.Theme) string {
	if !n.Mobile || !n.Open {
		return ""
	}
	panel := n.renderPanel()

	backdropWidth := totalWidth - lipgloss.Width(panel)
	if backdropWidth <= 0 {
		return panel
	}
	row := strings.Repeat("░", backdropWidth)
	lines := make([]string, lipgloss.Height(panel))
	for i := range lines {
		lines[i] = row
	}
	backdrop := theme.Backdrop.Render(strings.Join(lines, "\n"))

	return lipgloss.JoinHorizontal(lipgloss.Top, panel, zone.Mark(ZoneNavBackdrop, backdrop))
}

// renderPanel builds the bordered sidebar content.
func (n *NavigationPanel) renderPanel() string {
	innerWidth := n.width - 2 // border
	contentWidth := innerWidth - 2
	if contentWidth < 8 {
		contentWidth = 8
	}

	var b strings.Builder

	// Brand header
	b.WriteString(" " + navBrandStyle.Render("fleetdeck"))
	b.WriteString("\n")
	b.WriteString(" " + navSubtitleStyle.Render("fleet admin"))
	b.WriteString("\n")
	b.WriteString(navDividerStyle.Render(strings.Repeat("─", innerWidth)))
	b.WriteString("\n")

	// Navigation entries
	for _, e := range NavEntries {
		b.WriteString(n.renderEntry(e, contentWidth))
		b.WriteString("\n")
		if e.ID == n.active && e.Description != "" {
			b.WriteString(navDescStyle.Render(truncate(e.Description, contentWidth-2)))
			b.WriteString("\n")
		}
	}

	// Identity footer pinned to the bottom.
	footer := n.renderUserFooter(contentWidth)
	body := b.String()

	bodyLines := strings.Count(body, "\n") + 1
	footerLines := strings.Count(footer, "\n") + 2 // divider + footer
	innerHeight := n.height - 2
	fill := innerHeight - bodyLines - footerLines
	if fill < 0 {
		fill = 0
	}

	content := body + strings.Repeat("\n", fill) +
		navDividerStyle.Render(strings.Repeat("─", innerWidth)) + "\n" + footer

	return navBorderStyle.Width(innerWidth).Height(innerHeight).Render(content)
}

// renderEntry renders one navigation row; the entry matching the observed
// route gets the active highlight.
func (n *NavigationPanel) renderEntry(e NavEntry, contentWidth int) string {
	label := e.Icon + " " + e.Title
	label = truncate(label, contentWidth)

	pad := contentWidth - runewidth.StringWidth(label)
	line := label + gap(pad)

	style := navItemStyle
	if e.ID == n.active {
		style = navActiveStyle
	}
	return zone.Mark(NavEntryZoneID(e.ID), style.Render(line))
}

// renderUserFooter renders the avatar glyph, display name, and email with
// their literal fallbacks.
func (n *NavigationPanel) renderUserFooter(contentWidth int) string {
	name := fallbackUserName
	email := fallbackUserEmail
	if n.user != nil && n.user.Name != "" {
		name = n.user.Name
	}
	if n.user != nil && n.user.Email != "" {
		email = n.user.Email
	}

	avatar := navAvatarStyle.Render(avatarGlyph(n.user))
	nameCol := navUserNameStyle.Render(truncate(name, contentWidth-4)) + "\n" +
		navUserEmailStyle.Render(truncate(email, contentWidth-4))

	return lipgloss.JoinHorizontal(lipgloss.Top, " "+avatar+" ", nameCol)
}

// avatarGlyph derives the single-character avatar: the uppercased first
// character of the user's name, or "A" when no name is present.
func avatarGlyph(u *session.User) string {
	if u == nil || u.Name == "" {
		return fallbackAvatar
	}
	r := []rune(u.Name)
	return strings.ToUpper(string(r[0]))
}
