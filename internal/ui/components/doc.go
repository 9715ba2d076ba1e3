// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the visual UI components for the fleetdeck TUI.

This package contains styled components built on top of the Bubble Tea and
Lip Gloss libraries, consistent with the fleetdeck design language.

# Components

NavigationPanel (navpanel.go) - Collapsible admin sidebar with route-derived
highlighting, identity footer, and a mobile overlay backdrop.

MetricCard (metric_card.go) - Statistic display card with an optional trend
indicator, plus the DetailMetricCard variant that appends a two-column
label/value breakdown.

ProgressMetricCard (metric_progress.go) - Statistic card showing
value-out-of-total as a filled track.

CardGroup (metric_group.go) - Responsive multi-column layout container for
pre-rendered cards.

# Usage

Components are pure render values. The owning Bubble Tea model feeds them
state (route changes, user identity, sizes) and embeds their View output:

	panel := components.NewNavigationPanel()
	panel.SetSize(28, 40)
	panel.Update(router.RouteChangedMsg{Path: "/admin/vehicles"})
	view := panel.View()
*/
package components
