package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"wtgseal"
	"wtgseal/cli"
	"wtgseal/internal/tui"
	"wtgseal/maker"
)

func main() {
	cfg, err := cli.ParseFlags()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if cfg.Version {
		fmt.Printf("wtgseal %s\n", maker.DefaultVersion)
		return
	}

	app := wtgseal.New(cfg)

	// Stdout mode writes the generated file to stdout and must not run the
	// TUI; --no-animation runs plain for non-interactive terminals.
	if cfg.Stdout || cfg.NoAnimation {
		summary, err := app.Execute()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if !cfg.Stdout {
			fmt.Fprintf(os.Stderr, "Generated %s (%d task sets, %d tasks, %d requests)\n",
				summary.Output, summary.TaskSets, summary.Tasks, summary.Requests)
		}
		return
	}

	model := tui.New(app)
	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
