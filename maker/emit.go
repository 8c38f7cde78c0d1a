package maker

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// RenderLine renders a single line record: the indentation unit repeated
// level times, the text, and a trailing newline. An empty indentBy selects
// DefaultIndent.
func RenderLine(level int, text, indentBy string) string {
	if indentBy == "" {
		indentBy = DefaultIndent
	}
	if level < 0 {
		level = 0
	}
	return strings.Repeat(indentBy, level) + text + "\n"
}

// Render renders every line of a block, in order, to one string.
func Render(block Block, indentBy string) string {
	var b strings.Builder
	for _, line := range block {
		b.WriteString(RenderLine(line.Level, line.Text, indentBy))
	}
	return b.String()
}

// Write renders block to path, truncating any existing content. Arguments
// are validated before the file is touched; I/O failures from the
// filesystem are returned as-is, without wrapping.
func Write(path string, block Block, indentBy string) error {
	if path == "" {
		return fmt.Errorf("%w: output path must not be empty", ErrInvalidArgument)
	}
	if block == nil {
		return fmt.Errorf("%w: block must be a sequence of lines", ErrInvalidArgument)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, line := range block {
		if _, err := w.WriteString(RenderLine(line.Level, line.Text, indentBy)); err != nil {
			return err
		}
	}
	return w.Flush()
}
