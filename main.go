package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rileylov/shortcutsdrawer/drawer"
	"github.com/rileylov/shortcutsdrawer/logging"
	"github.com/rileylov/shortcutsdrawer/ui"
)

var configFile = flag.String("config", "", "YAML file overriding the drawer tuning")
var logFile = flag.String("debug", "", "Write debug logs to file")

func main() {
	flag.Parse()

	cleanup, err := logging.SetupLogging(*logFile)
	if err != nil {
		fmt.Println("Error opening log file:", err)
		os.Exit(1)
	}
	defer cleanup()

	cfg, err := drawer.LoadConfig(*configFile)
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}
	log.Printf("starting with padding=%v threshold=%v", cfg.Padding, cfg.VelocityThreshold)

	zone.NewGlobal()

	p := tea.NewProgram(
		ui.NewHost(cfg, ui.DefaultShortcuts()),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Println("Error running program:", err)
		os.Exit(1)
	}
}
