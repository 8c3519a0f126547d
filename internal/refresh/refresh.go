// Package refresh runs the credentials refresh: back up the AWS files, make
// sure the default config section exists, then write the pasted profile.
package refresh

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/afero"
	"github.com/vietdv277/credpaste/internal/awsconfig"
	"github.com/vietdv277/credpaste/internal/backup"
	"github.com/vietdv277/credpaste/internal/config"
	"github.com/vietdv277/credpaste/internal/credentials"
)

// LineReader supplies the four pasted credential lines.
type LineReader func() ([]string, error)

// Runner holds everything a refresh needs. Nothing is read from globals.
type Runner struct {
	Fs       afero.Fs
	Settings *config.Settings
	Logger   *slog.Logger
	Now      func() time.Time
}

// New returns a Runner on the OS filesystem.
func New(settings *config.Settings, logger *slog.Logger) *Runner {
	return &Runner{
		Fs:       afero.NewOsFs(),
		Settings: settings,
		Logger:   logger,
		Now:      time.Now,
	}
}

// Run performs backup, config check and credentials update in that order,
// stopping at the first error.
func (r *Runner) Run(ctx context.Context, read LineReader) (credentials.Profile, error) {
	if _, err := r.Backup(); err != nil {
		return credentials.Profile{}, err
	}
	if _, err := r.EnsureConfig(); err != nil {
		return credentials.Profile{}, err
	}
	return r.UpdateCredentials(ctx, read)
}

// Backup copies the credentials and config files into the backup directory.
func (r *Runner) Backup() ([]backup.Copy, error) {
	s := r.Settings
	if err := r.Fs.MkdirAll(s.BackupDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create backup directory: %w", err)
	}

	copies, err := backup.All(r.Fs, s.BackupDir, r.Now(), s.CredentialsFile, s.ConfigFile)
	for _, c := range copies {
		r.Logger.Info("Backed up file", "source", c.Source, "dest", c.Dest)
	}
	if err != nil {
		return copies, err
	}
	if len(copies) == 0 {
		r.Logger.Debug("Nothing to back up")
	}
	return copies, nil
}

// EnsureConfig creates or extends the config file with the default section.
func (r *Runner) EnsureConfig() (awsconfig.Outcome, error) {
	outcome, err := awsconfig.Ensure(r.Fs, r.Settings.ConfigFile)
	if err != nil {
		return outcome, err
	}

	switch outcome {
	case awsconfig.Created:
		r.Logger.Info("Config file not found, created default version", "path", r.Settings.ConfigFile)
	case awsconfig.Appended:
		r.Logger.Info("Config file found without default profile, default profile added", "path", r.Settings.ConfigFile)
	default:
		r.Logger.Info("Config found with default profile, no changes made", "path", r.Settings.ConfigFile)
	}
	return outcome, nil
}

// UpdateCredentials reads the pasted lines, validates them and writes the
// profile. With Settings.Verify set, the result is read back through the AWS SDK
// and any difference is logged as a warning.
func (r *Runner) UpdateCredentials(ctx context.Context, read LineReader) (credentials.Profile, error) {
	lines, err := read()
	if err != nil {
		return credentials.Profile{}, err
	}
	if len(lines) != 4 {
		return credentials.Profile{}, fmt.Errorf("expected 4 credential lines, got %d", len(lines))
	}

	p, err := credentials.Parse([4]string{lines[0], lines[1], lines[2], lines[3]})
	if err != nil {
		return credentials.Profile{}, err
	}
	log := r.Logger.With("profile", p.Name(), "account", p.AccountID(), "role", p.Role())

	outcome, err := credentials.Update(r.Fs, r.Settings.CredentialsFile, p)
	if err != nil {
		return p, err
	}

	switch outcome {
	case credentials.Created:
		log.Info("Credentials file created", "path", r.Settings.CredentialsFile)
	case credentials.Appended:
		log.Info("Profile not found in existing credentials file, added it")
	case credentials.Overwritten:
		log.Info("Profile already existed in credentials file, overwritten")
	}

	// The file is already written; a read-back difference is only reported.
	if r.Settings.Verify {
		if err := credentials.Verify(ctx, r.Settings.CredentialsFile, r.Settings.ConfigFile, p); err != nil {
			log.Warn("Profile saved but the AWS SDK reads it back differently", "error", err)
		} else {
			log.Debug("Profile loads through the AWS SDK")
		}
	}

	return p, nil
}
