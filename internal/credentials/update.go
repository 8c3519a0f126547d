package credentials

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Outcome describes what Update did to the credentials file.
type Outcome int

const (
	Created Outcome = iota + 1
	Appended
	Overwritten
)

func (o Outcome) String() string {
	switch o {
	case Created:
		return "created"
	case Appended:
		return "appended"
	case Overwritten:
		return "overwritten"
	default:
		return "none"
	}
}

// Update writes p into the credentials file at path.
//
// A missing file is created with the profile block. A file that does not
// mention the header gets two newlines and the block appended. Otherwise the
// three lines under the first line equal to the header are checked and
// replaced in place. The file is left untouched on any error.
func Update(fs afero.Fs, path string, p Profile) (Outcome, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	block := strings.Join(p.Lines(), "\n")

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if !os.IsNotExist(err) {
			return 0, &IOError{Op: "read", Path: path, Err: err}
		}
		if err := fs.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return 0, &IOError{Op: "create directory for", Path: path, Err: err}
		}
		if err := write(fs, path, block); err != nil {
			return 0, err
		}
		return Created, nil
	}

	content := string(data)
	if !strings.Contains(content, p.Header) {
		if err := write(fs, path, content+"\n\n"+block); err != nil {
			return 0, err
		}
		return Appended, nil
	}

	lines, err := replace(strings.Split(content, "\n"), p)
	if err != nil {
		return 0, err
	}
	if err := write(fs, path, strings.Join(lines, "\n")); err != nil {
		return 0, err
	}
	return Overwritten, nil
}

// FindHeader returns the index of the first line equal to header once
// surrounding whitespace is trimmed, or -1.
func FindHeader(lines []string, header string) int {
	for i, line := range lines {
		if strings.TrimSpace(line) == header {
			return i
		}
	}
	return -1
}

// replace overwrites the three lines following p's header.
func replace(lines []string, p Profile) ([]string, error) {
	idx := FindHeader(lines, p.Header)
	if idx < 0 {
		return nil, &StructureError{Header: p.Header, Reason: "header appears in the file but not on a line of its own"}
	}
	if idx+len(bodyFields) >= len(lines) {
		return nil, &StructureError{Header: p.Header, Reason: "fewer than three lines follow the header"}
	}

	for i, re := range existingPatterns {
		line := strings.TrimSuffix(lines[idx+1+i], "\r")
		if !re.MatchString(line) {
			return nil, &ValidationError{Field: bodyFields[i], Existing: true, Line: idx + 2 + i}
		}
	}

	updated := make([]string, len(lines))
	copy(updated, lines)
	copy(updated[idx+1:idx+4], p.Lines()[1:])
	return updated, nil
}

func write(fs afero.Fs, path, content string) error {
	if err := afero.WriteFile(fs, path, []byte(content), 0600); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}
