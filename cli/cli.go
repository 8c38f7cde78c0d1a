// Package cli parses command-line flags into a Config.
package cli

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Config holds all the command-line flag values.
type Config struct {
	ScenarioPath string
	Output       string
	Indent       int
	Stdout       bool
	NoAnimation  bool
	Version      bool
}

// ParseFlags defines and parses command-line flags using pflag.
func ParseFlags() (*Config, error) {
	cfg := &Config{}

	// Define flags
	pflag.StringVarP(&cfg.ScenarioPath, "file", "f", "", "Scenario file to read (default: stdin pipe or clipboard).")
	pflag.StringVarP(&cfg.Output, "output", "o", "locustfile.py", "Path of the generated locust file.")
	pflag.IntVar(&cfg.Indent, "indent", 4, "Number of spaces per indentation level in the generated file.")
	pflag.BoolVarP(&cfg.Stdout, "stdout", "s", false, "Print the generated file to stdout instead of writing it.")
	pflag.BoolVar(&cfg.NoAnimation, "no-animation", false, "Disable the loading spinner.")
	pflag.BoolVarP(&cfg.Version, "version", "V", false, "Print the wtgseal version and exit.")

	pflag.Usage = func() {
		fmt.Println("Usage: wtgseal [flags]")
		fmt.Println("\nGenerate a locust load-test file from a YAML or markdown scenario.")
		fmt.Println("\nThe scenario is read from --file, a stdin pipe, or the clipboard.")
		fmt.Println("\nExample: wtgseal -f scenario.yaml -o locustfile.py")
		fmt.Println("\nFlags:")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if cfg.Indent < 1 {
		return nil, fmt.Errorf("error: --indent must be at least 1")
	}

	return cfg, nil
}
