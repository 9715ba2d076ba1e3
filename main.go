// fleetdeck - terminal admin console for fleet operations.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/morganforge/fleetdeck/internal/app"
	"github.com/morganforge/fleetdeck/internal/config"
	"github.com/morganforge/fleetdeck/internal/session"
	"github.com/morganforge/fleetdeck/internal/ui/components"
	"github.com/morganforge/fleetdeck/internal/ui/dashboard"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("fleetdeck %s (%s, built %s)\n", Version, GitCommit, BuildDate)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Printf("config: %v (using defaults)", err)
		cfg = config.Default()
	}

	sess := session.NewManager()
	if name := os.Getenv("FLEETDECK_USER_NAME"); name != "" {
		sess.SetUser(session.User{
			Name:  name,
			Email: os.Getenv("FLEETDECK_USER_EMAIL"),
		})
	}

	// Zones must exist before the first View marks them.
	zone.NewGlobal()
	defer zone.Close()

	m := app.New(cfg, sess, demoSnapshot())

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	// Live-reload UI settings while the console runs.
	if path, err := config.FindConfigFile(); err == nil && path != "" {
		w, err := config.Watch(path, func(next *config.Config) {
			p.Send(app.ConfigReloadedMsg{Config: next})
		})
		if err != nil {
			log.Printf("config: watch %s: %v", path, err)
		} else {
			defer w.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running fleetdeck: %v\n", err)
		os.Exit(1)
	}
}

// demoSnapshot supplies the dashboard's display figures. A real deployment
// would feed these from the fleet backend.
func demoSnapshot() dashboard.Snapshot {
	return dashboard.Snapshot{
		TotalVehicles:        32,
		ActiveVehicles:       24,
		IdleVehicles:         6,
		InShopVehicles:       2,
		TotalDrivers:         40,
		OnDutyDrivers:        28,
		OpenMaintenance:      5,
		OverdueMaintenance:   1,
		UtilizationTrend:     "+4% this week",
		UtilizationTrendType: components.ChangePositive,
	}
}
