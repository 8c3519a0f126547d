package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// PastePrompt is shown before the credential lines are read.
const PastePrompt = "Please use Option 2 in the dialogue box on the SSO sign-on page to copy your credentials, then paste them here without any changes and press enter: "

// ErrShortInput is returned when input ends before all lines were read.
var ErrShortInput = errors.New("input ended before all credential lines were read")

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ReadLines reads exactly n lines from r. Line endings are stripped; nothing
// else about the line is changed.
func ReadLines(r io.Reader, n int) ([]string, error) {
	br := bufio.NewReader(r)
	lines := make([]string, 0, n)

	for len(lines) < n {
		line, err := br.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			if errors.Is(err, io.EOF) {
				return lines, fmt.Errorf("%w: got %d of %d", ErrShortInput, len(lines), n)
			}
			return lines, fmt.Errorf("failed to read input: %w", err)
		}
		lines = append(lines, strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"))
	}

	return lines, nil
}
