package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eriiiic/Retirement/internal/config"
	"github.com/eriiiic/Retirement/internal/tui"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: retirement-tui <scenario-file>")
		os.Exit(1)
	}
	scenarioPath := os.Args[1]

	parser := config.NewInputParser()
	sf, err := parser.LoadFromFile(scenarioPath)
	if err != nil {
		fmt.Printf("Error loading scenario file: %v\n", err)
		os.Exit(1)
	}

	// The first scenario seeds the interactive session.
	model := tui.NewModel(sf.Scenarios[0].Name, sf.Scenarios[0].Parameters)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
