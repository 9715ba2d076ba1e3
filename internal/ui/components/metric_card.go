// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/morganforge/fleetdeck/internal/ui/styles"
)

// =============================================================================
// CHANGE CLASSIFICATION
// =============================================================================

// ChangeType classifies a metric's trend indicator.
type ChangeType string

const (
	ChangePositive ChangeType = "positive"
	ChangeNegative ChangeType = "negative"
	ChangeWarning  ChangeType = "warning"
	ChangeInfo     ChangeType = "info"
	ChangeNeutral  ChangeType = "neutral"
)

// changePresentation maps a change classification to its color and trend
// icon. Unrecognized values degrade to the neutral presentation: muted
// color, no icon.
func changePresentation(t ChangeType) (lipgloss.AdaptiveColor, string) {
	switch t {
	case ChangePositive:
		return styles.Emerald, styles.TrendIndicators.Up
	case ChangeNegative:
		return styles.Rose, styles.TrendIndicators.Down
	case ChangeWarning:
		return styles.Amber, styles.TrendIndicators.Warning
	case ChangeInfo:
		return styles.Cyan, styles.TrendIndicators.Info
	default:
		return styles.TextMuted, ""
	}
}

// =============================================================================
// CARD OPTIONS
// =============================================================================

// CardOptions is the enumerated extensibility point shared by the card
// family. Every supported presentation knob is an explicit field; there is
// no pass-through of arbitrary attributes.
type CardOptions struct {
	// Width is the total card width in columns. Zero means the default.
	Width int
	// Compact drops the blank line between title and value.
	Compact bool
	// BorderColor overrides the default border color when non-nil.
	BorderColor *lipgloss.AdaptiveColor
}

const defaultCardWidth = 26

func (o CardOptions) width() int {
	if o.Width <= 0 {
		return defaultCardWidth
	}
	return o.Width
}

func (o CardOptions) borderStyle() lipgloss.Style {
	border := styles.Overlay
	if o.BorderColor != nil {
		border = *o.BorderColor
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}

// =============================================================================
// METRIC CARD
// =============================================================================

var (
	cardTitleStyle = lipgloss.NewStyle().Foreground(styles.TextSecondary)
	cardValueStyle = lipgloss.NewStyle().Bold(true).Foreground(styles.TextPrimary)
	cardIconStyle  = lipgloss.NewStyle().Foreground(styles.TextMuted)
)

// MetricCard displays a single statistic: a title, a value, and an optional
// trend line. It is a pure rendering value with no state.
type MetricCard struct {
	Title string
	Value string
	// Icon is an optional glyph rendered beside the title.
	Icon string
	// Change is the optional trend text, e.g. "+12% this month".
	Change string
	// ChangeType classifies Change; unrecognized values render neutral.
	ChangeType ChangeType

	Options CardOptions
}

// View renders the card.
func (c MetricCard) View() string {
	contentWidth := c.Options.width() - 4 // border + padding
	if contentWidth < 6 {
		contentWidth = 6
	}
	return c.Options.borderStyle().Render(strings.Join(c.bodyLines(contentWidth), "\n"))
}

// bodyLines builds the shared card body, sized to contentWidth.
func (c MetricCard) bodyLines(contentWidth int) []string {
	title := truncate(c.Title, contentWidth)
	if c.Icon != "" {
		iconW := runewidth.StringWidth(c.Icon)
		title = truncate(c.Title, contentWidth-iconW-1)
		pad := contentWidth - runewidth.StringWidth(title) - iconW
		title = title + gap(pad) + cardIconStyle.Render(c.Icon)
	}

	lines := []string{cardTitleStyle.Render(title)}
	if !c.Options.Compact {
		lines = append(lines, "")
	}
	lines = append(lines, cardValueStyle.Render(truncate(c.Value, contentWidth)))

	if c.Change != "" {
		color, icon := changePresentation(c.ChangeType)
		changeStyle := lipgloss.NewStyle().Foreground(color)
		text := c.Change
		if icon != "" {
			text = icon + " " + text
		}
		lines = append(lines, changeStyle.Render(truncate(text, contentWidth)))
	}
	return lines
}

// =============================================================================
// DETAIL METRIC CARD
// =============================================================================

var (
	detailLabelStyle   = lipgloss.NewStyle().Foreground(styles.TextMuted)
	detailValueStyle   = lipgloss.NewStyle().Foreground(styles.TextPrimary)
	detailDividerStyle = lipgloss.NewStyle().Foreground(styles.Overlay)
)

// Detail is one label/value pair in a card's breakdown region. Labels carry
// no uniqueness constraint.
type Detail struct {
	Label string
	Value string
}

// DetailMetricCard is a MetricCard with an ordered breakdown rendered as a
// two-column grid below the primary body. An empty detail list omits the
// region entirely.
type DetailMetricCard struct {
	MetricCard
	Details []Detail
}

// View renders the card with its detail grid.
func (c DetailMetricCard) View() string {
	contentWidth := c.Options.width() - 4
	if contentWidth < 6 {
		contentWidth = 6
	}

	lines := c.bodyLines(contentWidth)
	if len(c.Details) > 0 {
		lines = append(lines, detailDividerStyle.Render(strings.Repeat("─", contentWidth)))
		lines = append(lines, c.detailGrid(contentWidth)...)
	}
	return c.Options.borderStyle().Render(strings.Join(lines, "\n"))
}

// detailGrid lays the detail pairs out two per row, in order.
func (c DetailMetricCard) detailGrid(contentWidth int) []string {
	colWidth := contentWidth / 2
	if colWidth < 4 {
		colWidth = 4
	}

	cell := func(d Detail) string {
		label := detailLabelStyle.Render(truncate(d.Label, colWidth-1))
		value := detailValueStyle.Render(truncate(d.Value, colWidth-1))
		return lipgloss.NewStyle().Width(colWidth).Render(label + " " + value)
	}

	var rows []string
	for i := 0; i < len(c.Details); i += 2 {
		left := cell(c.Details[i])
		if i+1 < len(c.Details) {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, left, cell(c.Details[i+1])))
		} else {
			rows = append(rows, left)
		}
	}
	return rows
}
