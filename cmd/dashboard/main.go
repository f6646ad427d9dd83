package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ABHISHEK0S1INGH/UserDashboard/internal/api"
	"github.com/ABHISHEK0S1INGH/UserDashboard/internal/config"
	"github.com/ABHISHEK0S1INGH/UserDashboard/internal/logging"
	"github.com/ABHISHEK0S1INGH/UserDashboard/internal/session"
	"github.com/ABHISHEK0S1INGH/UserDashboard/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, closer := logging.New(cfg.Log.Path, cfg.Log.Level)
	defer closer.Close()

	store, err := session.OpenSQLite(cfg.Session.DBPath)
	if err != nil {
		fmt.Printf("Failed to open session store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	client := api.New(cfg.API.BaseURL, cfg.API.Timeout, store, logger)

	p := tea.NewProgram(
		ui.NewModel(client, store, logger),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
