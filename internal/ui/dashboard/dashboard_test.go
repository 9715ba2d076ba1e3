// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package dashboard

import (
	"strings"
	"testing"
)

func testSnapshot() Snapshot {
	return Snapshot{
		TotalVehicles:   32,
		ActiveVehicles:  24,
		IdleVehicles:    6,
		InShopVehicles:  2,
		TotalDrivers:    40,
		OnDutyDrivers:   28,
		OpenMaintenance: 5,
	}
}

func TestDashboardView(t *testing.T) {
	d := New(testSnapshot())
	d.SetWidth(120)

	view := d.View()
	for _, want := range []string{
		"Vehicles", "32",
		"Drivers on duty", "28 of 40",
		"Open maintenance", "5",
		"Fleet utilization", "24 / 32", "75%",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestDashboardVehicleBreakdown(t *testing.T) {
	d := New(testSnapshot())
	d.SetWidth(120)

	view := d.View()
	for _, want := range []string{"Active", "Idle", "In shop"} {
		if !strings.Contains(view, want) {
			t.Errorf("vehicle breakdown missing %q", want)
		}
	}
}

func TestDashboardOverdueMaintenance(t *testing.T) {
	s := testSnapshot()
	d := New(s)
	d.SetWidth(120)
	if strings.Contains(d.View(), "overdue") {
		t.Error("no overdue flag expected when nothing is overdue")
	}

	s.OverdueMaintenance = 3
	d.SetSnapshot(s)
	if !strings.Contains(d.View(), "3 overdue") {
		t.Error("overdue count should surface on the maintenance card")
	}
}

func TestDashboardNarrowWidthStacks(t *testing.T) {
	d := New(testSnapshot())
	d.SetWidth(40)

	wide := New(testSnapshot())
	wide.SetWidth(120)

	// One column produces a taller view than four columns.
	narrowRows := strings.Count(d.View(), "\n")
	wideRows := strings.Count(wide.View(), "\n")
	if narrowRows <= wideRows {
		t.Errorf("narrow rows = %d, wide rows = %d; narrow should stack", narrowRows, wideRows)
	}
}
