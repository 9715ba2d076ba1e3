// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package dashboard renders the fleet overview page from caller-supplied
// display values.
package dashboard

import (
	"fmt"

	"github.com/morganforge/fleetdeck/internal/ui/components"
)

// =============================================================================
// FLEET SNAPSHOT
// =============================================================================

// Snapshot carries the fleet-level figures the dashboard displays. The
// values are display data supplied by the caller; the dashboard performs no
// aggregation of its own.
type Snapshot struct {
	TotalVehicles  int
	ActiveVehicles int
	IdleVehicles   int
	InShopVehicles int

	TotalDrivers  int
	OnDutyDrivers int

	// OpenMaintenance counts work orders not yet closed.
	OpenMaintenance int
	// OverdueMaintenance counts work orders past their due date.
	OverdueMaintenance int

	// UtilizationTrend is the optional trend text for the vehicle card,
	// e.g. "+4% this week".
	UtilizationTrend     string
	UtilizationTrendType components.ChangeType
}

// =============================================================================
// DASHBOARD
// =============================================================================

// Dashboard lays the fleet snapshot out as a responsive card grid.
type Dashboard struct {
	snapshot Snapshot
	width    int
}

// New creates a dashboard for the given snapshot.
func New(snapshot Snapshot) *Dashboard {
	return &Dashboard{snapshot: snapshot}
}

// SetSnapshot replaces the displayed figures.
func (d *Dashboard) SetSnapshot(s Snapshot) {
	d.snapshot = s
}

// SetWidth updates the available width driving the grid's column count.
func (d *Dashboard) SetWidth(width int) {
	d.width = width
}

// View renders the snapshot as a card grid.
func (d *Dashboard) View() string {
	group := components.CardGroup{
		Cards: []string{
			d.vehicleCard(),
			d.driverCard(),
			d.maintenanceCard(),
			d.utilizationCard(),
		},
		Width: d.width,
	}
	return group.View()
}

// vehicleCard breaks the fleet down by vehicle status.
func (d *Dashboard) vehicleCard() string {
	s := d.snapshot
	return components.DetailMetricCard{
		MetricCard: components.MetricCard{
			Title:      "Vehicles",
			Value:      fmt.Sprintf("%d", s.TotalVehicles),
			Icon:       "▣",
			Change:     s.UtilizationTrend,
			ChangeType: s.UtilizationTrendType,
		},
		Details: []components.Detail{
			{Label: "Active", Value: fmt.Sprintf("%d", s.ActiveVehicles)},
			{Label: "Idle", Value: fmt.Sprintf("%d", s.IdleVehicles)},
			{Label: "In shop", Value: fmt.Sprintf("%d", s.InShopVehicles)},
		},
	}.View()
}

func (d *Dashboard) driverCard() string {
	s := d.snapshot
	return components.MetricCard{
		Title: "Drivers on duty",
		Value: fmt.Sprintf("%d of %d", s.OnDutyDrivers, s.TotalDrivers),
		Icon:  "●",
	}.View()
}

// maintenanceCard flags overdue work orders when any exist.
func (d *Dashboard) maintenanceCard() string {
	s := d.snapshot
	card := components.MetricCard{
		Title: "Open maintenance",
		Value: fmt.Sprintf("%d", s.OpenMaintenance),
		Icon:  "✚",
	}
	if s.OverdueMaintenance > 0 {
		card.Change = fmt.Sprintf("%d overdue", s.OverdueMaintenance)
		card.ChangeType = components.ChangeWarning
	}
	return card.View()
}

// utilizationCard shows active vehicles as a share of the fleet.
func (d *Dashboard) utilizationCard() string {
	s := d.snapshot
	return components.ProgressMetricCard{
		Title: "Fleet utilization",
		Value: float64(s.ActiveVehicles),
		Total: float64(s.TotalVehicles),
		Color: components.ProgressSuccess,
	}.View()
}
