// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/morganforge/fleetdeck/internal/ui/styles"
)

// =============================================================================
// PROGRESS COLOR CLASSIFICATION
// =============================================================================

// ProgressColor classifies the fill color of a progress card.
type ProgressColor string

const (
	ProgressPrimary   ProgressColor = "primary"
	ProgressSecondary ProgressColor = "secondary"
	ProgressSuccess   ProgressColor = "success"
	ProgressWarning   ProgressColor = "warning"
	ProgressDanger    ProgressColor = "danger"
	ProgressInfo      ProgressColor = "info"
)

// progressFillColor maps the closed color set to the palette, defaulting to
// primary for unrecognized values.
func progressFillColor(c ProgressColor) lipgloss.AdaptiveColor {
	switch c {
	case ProgressSecondary:
		return styles.TextSecondary
	case ProgressSuccess:
		return styles.Emerald
	case ProgressWarning:
		return styles.Amber
	case ProgressDanger:
		return styles.Rose
	case ProgressInfo:
		return styles.Cyan
	default:
		return styles.Purple
	}
}

// =============================================================================
// PROGRESS METRIC CARD
// =============================================================================

const (
	progressFillChar  = "█"
	progressTrackChar = "░"
)

var progressTrackStyle = lipgloss.NewStyle().Foreground(styles.Overlay)

// ProgressMetricCard displays a value-out-of-total statistic as a filled
// track. Like MetricCard it is a pure rendering value.
type ProgressMetricCard struct {
	Title string
	Value float64
	// Total is the denominator. A zero total means "no percentage": the
	// division is never attempted and the resolved percent is 0.
	Total float64
	// Percent, when non-nil, is used verbatim — including values outside
	// [0,100] — instead of deriving from Value/Total.
	Percent *float64
	// Color selects the fill color; unrecognized values fall back to primary.
	Color ProgressColor
	Icon  string

	Options CardOptions
}

// ResolvePercent returns the percentage the card displays: the explicit
// Percent verbatim if supplied, otherwise round(100*Value/Total) when Total
// is non-zero, otherwise 0.
func (c ProgressMetricCard) ResolvePercent() float64 {
	if c.Percent != nil {
		return *c.Percent
	}
	if c.Total != 0 {
		return math.Round(100 * c.Value / c.Total)
	}
	return 0
}

// View renders the card: title, value line, and the track-and-fill bar with
// its percent label.
func (c ProgressMetricCard) View() string {
	contentWidth := c.Options.width() - 4
	if contentWidth < 6 {
		contentWidth = 6
	}

	// Reuse the base card body for title/value layout; progress cards carry
	// no change indicator.
	base := MetricCard{
		Title:   c.Title,
		Value:   c.valueText(),
		Icon:    c.Icon,
		Options: c.Options,
	}
	lines := base.bodyLines(contentWidth)

	percent := c.ResolvePercent()
	percentLabel := fmt.Sprintf("%.0f%%", percent)

	barWidth := contentWidth - len(percentLabel) - 1
	if barWidth < 4 {
		barWidth = 4
	}
	lines = append(lines, renderTrack(barWidth, percent, progressFillColor(c.Color))+" "+
		progressTrackStyle.Render(percentLabel))

	return c.Options.borderStyle().Render(strings.Join(lines, "\n"))
}

// valueText formats the primary value line, as "value / total" when a total
// is present.
func (c ProgressMetricCard) valueText() string {
	if c.Total != 0 {
		return trimFloat(c.Value) + " / " + trimFloat(c.Total)
	}
	return trimFloat(c.Value)
}

// trimFloat formats a float without trailing zeros.
func trimFloat(f float64) string {
	return fmt.Sprintf("%g", f)
}

// renderTrack draws the fill over a track of width cells. The fill length
// tracks the percent literally: values above 100 run past the right edge of
// the track, negative values draw no fill. The percent itself is never
// clamped here; only the cell count is floored at zero because a terminal
// row cannot render negative cells.
func renderTrack(width int, percent float64, fill lipgloss.AdaptiveColor) string {
	if width <= 0 {
		return ""
	}
	cells := fillCells(width, percent)
	empty := width - cells
	if empty < 0 {
		empty = 0
	}

	fillStyle := lipgloss.NewStyle().Foreground(fill)
	return fillStyle.Render(strings.Repeat(progressFillChar, cells)) +
		progressTrackStyle.Render(strings.Repeat(progressTrackChar, empty))
}

// fillCells converts a percent to a fill length over a width-cell track,
// unclamped above the track width.
func fillCells(width int, percent float64) int {
	cells := int(math.Round(float64(width) * percent / 100))
	if cells < 0 {
		return 0
	}
	return cells
}
