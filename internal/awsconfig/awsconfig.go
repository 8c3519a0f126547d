// Package awsconfig makes sure the AWS CLI config file carries the default
// section the rest of the tooling expects.
package awsconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/afero"
)

// DefaultConfig is the canonical default section.
const DefaultConfig = `[default]
region = eu-west-1
output = json
`

// defaultSectionRe matches the default section anywhere in the file.
var defaultSectionRe = regexp.MustCompile(`(?i)(^|\n)\[default\]\nregion\s*=\s*eu-west-1\noutput\s*=\s*(json|yaml)($|\n)`)

// Outcome describes what Ensure did to the config file.
type Outcome int

const (
	Unchanged Outcome = iota
	Created
	Appended
)

func (o Outcome) String() string {
	switch o {
	case Created:
		return "created"
	case Appended:
		return "appended"
	default:
		return "unchanged"
	}
}

// HasDefault reports whether content already contains the default section.
// CRLF line endings count as plain newlines.
func HasDefault(content string) bool {
	return defaultSectionRe.MatchString(strings.ReplaceAll(content, "\r\n", "\n"))
}

// Ensure creates the config file at path with DefaultConfig, or appends
// DefaultConfig after two newlines when the file lacks a matching section.
func Ensure(fs afero.Fs, path string) (Outcome, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if !os.IsNotExist(err) {
			return Unchanged, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return Unchanged, fmt.Errorf("failed to create config directory: %w", err)
		}
		if err := afero.WriteFile(fs, path, []byte(DefaultConfig), 0644); err != nil {
			return Unchanged, fmt.Errorf("failed to write config file: %w", err)
		}
		return Created, nil
	}

	content := string(data)
	if HasDefault(content) {
		return Unchanged, nil
	}

	content += "\n\n" + DefaultConfig
	if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
		return Unchanged, fmt.Errorf("failed to write config file: %w", err)
	}
	return Appended, nil
}
