// Package source retrieves the scenario content for a generation run.
package source

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
)

// Provider determines and retrieves the scenario content.
type Provider struct {
	path string
}

// New creates a Provider. An empty path means stdin or clipboard.
func New(path string) *Provider {
	return &Provider{path: path}
}

// Get retrieves content from the scenario file, piped stdin, or the
// clipboard, in that order of preference. The second return value names
// the origin, which the parser uses for format detection.
func (p *Provider) Get() (string, string, error) {
	if p.path != "" {
		content, err := os.ReadFile(p.path)
		if err != nil {
			return "", "", fmt.Errorf("failed to read scenario file: %w", err)
		}
		return string(content), p.path, nil
	}

	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) == 0 {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read from stdin: %w", err)
		}
		return string(content), "stdin", nil
	}

	content, err := clipboard.ReadAll()
	if err != nil {
		return "", "", fmt.Errorf("failed to read from clipboard: %w", err)
	}
	if strings.TrimSpace(content) == "" {
		// An empty clipboard falls through to the default scenario.
		return "", "clipboard", nil
	}
	return content, "clipboard", nil
}
