// Package backup takes point-in-time copies of the AWS credentials and config
// files before anything touches them.
package backup

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
)

// StampLayout is the timestamp suffix appended to backup file names.
const StampLayout = "20060102150405"

// Copy is one backup that was written.
type Copy struct {
	Source string
	Dest   string
}

// Name returns the backup file name for src taken at t.
func Name(src string, t time.Time) string {
	return filepath.Base(src) + "_" + t.Format(StampLayout)
}

// Run copies src into dir if src exists. The bool result reports whether a
// copy was made; a missing source is not an error.
func Run(fs afero.Fs, src, dir string, now time.Time) (string, bool, error) {
	exists, err := afero.Exists(fs, src)
	if err != nil {
		return "", false, fmt.Errorf("failed to stat %s: %w", src, err)
	}
	if !exists {
		return "", false, nil
	}

	data, err := afero.ReadFile(fs, src)
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", src, err)
	}

	if err := fs.MkdirAll(dir, 0700); err != nil {
		return "", false, fmt.Errorf("failed to create backup directory: %w", err)
	}

	dest := filepath.Join(dir, Name(src, now))
	if err := afero.WriteFile(fs, dest, data, 0600); err != nil {
		return "", false, fmt.Errorf("failed to write backup %s: %w", dest, err)
	}

	return dest, true, nil
}

// All backs up every source that exists, using one timestamp for the whole set.
func All(fs afero.Fs, dir string, now time.Time, sources ...string) ([]Copy, error) {
	var copies []Copy
	for _, src := range sources {
		dest, ok, err := Run(fs, src, dir, now)
		if err != nil {
			return copies, err
		}
		if ok {
			copies = append(copies, Copy{Source: src, Dest: dest})
		}
	}
	return copies, nil
}
