// Package wtgseal generates locust load-test files from workload
// scenarios. It composes the pure block builders from wtgseal/maker into a
// complete file and writes it to the configured destination.
package wtgseal

import (
	"fmt"
	"runtime/debug"
	"strings"

	"wtgseal/cli"
	"wtgseal/internal/scenario"
	"wtgseal/internal/source"
	"wtgseal/maker"
	"wtgseal/model"
)

// App orchestrates a single generation run.
type App struct {
	cfg            *cli.Config
	sourceProvider *source.Provider
}

// DetailedError enhances a standard error with a stack trace.
type DetailedError struct {
	Err   error
	Stack []byte
}

func (e *DetailedError) Error() string {
	return e.Err.Error()
}

// New creates a new App instance.
func New(cfg *cli.Config) *App {
	return &App{
		cfg:            cfg,
		sourceProvider: source.New(cfg.ScenarioPath),
	}
}

// Execute runs a full generation: read the scenario, assemble the locust
// file block, and write or print it.
func (a *App) Execute() (summary model.Summary, err error) {
	// Centralized panic recovery.
	defer func() {
		if r := recover(); r != nil {
			err = &DetailedError{
				Err:   fmt.Errorf("internal panic: %v", r),
				Stack: debug.Stack(),
			}
		}
	}()

	content, origin, err := a.sourceProvider.Get()
	if err != nil {
		return model.Summary{}, err
	}

	sc, err := scenario.Parse([]byte(content), origin)
	if err != nil {
		return model.Summary{}, err
	}

	block, err := Assemble(sc)
	if err != nil {
		return model.Summary{}, err
	}

	indentBy := strings.Repeat(" ", a.cfg.Indent)
	if a.cfg.Stdout {
		fmt.Print(maker.Render(block, indentBy))
		return summarize(sc, "stdout"), nil
	}

	if err := maker.Write(a.cfg.Output, block, indentBy); err != nil {
		return model.Summary{}, err
	}
	return summarize(sc, a.cfg.Output), nil
}

// Assemble composes the full locust file block for a scenario: header,
// imports, one TaskSet class per task set with its tasks, then one
// HttpLocust class per user.
func Assemble(sc *model.Scenario) (maker.Block, error) {
	blank, err := maker.BlankLines(1)
	if err != nil {
		return nil, err
	}
	sep, err := maker.BlankLines(2)
	if err != nil {
		return nil, err
	}

	block := maker.Concat(maker.Header("", "", ""), blank, maker.Imports(), sep)

	for _, ts := range sc.TaskSets {
		block = append(block, maker.TaskSet(ts.Name)...)
		for i, task := range ts.Tasks {
			if i > 0 {
				block = append(block, blank...)
			}
			taskBlock, err := maker.Task(task.Name, task.Weight, task.URIs, 1)
			if err != nil {
				return nil, err
			}
			block = append(block, taskBlock...)
		}
		block = append(block, sep...)
	}

	for i, user := range sc.Users {
		if i > 0 {
			block = append(block, sep...)
		}
		userBlock, err := maker.Locust(user.Name, user.TaskSet, user.Weight, 0)
		if err != nil {
			return nil, err
		}
		block = append(block, userBlock...)
	}
	return block, nil
}

func summarize(sc *model.Scenario, output string) model.Summary {
	summary := model.Summary{
		Output:   output,
		TaskSets: len(sc.TaskSets),
	}
	for _, ts := range sc.TaskSets {
		summary.Tasks += len(ts.Tasks)
		for _, task := range ts.Tasks {
			summary.Requests += len(task.URIs)
		}
	}
	return summary
}
