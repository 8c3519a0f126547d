package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment overrides, e.g. CREDPASTE_AWS_DIR.
const EnvPrefix = "CREDPASTE"

// Setting keys shared by flags, environment and the settings file.
const (
	KeyAWSDir           = "aws_dir"
	KeyCredentialsFile  = "credentials_file"
	KeyConfigFile       = "config_file"
	KeyBackupDir        = "backup_dir"
	KeyLogDir           = "log_dir"
	KeyLogRetentionDays = "log_retention_days"
	KeyVerbose          = "verbose"
	KeyVerify           = "verify"
)

// Settings holds every path and switch a run needs. It is built once per
// invocation and handed to each step.
type Settings struct {
	AWSDir           string `yaml:"aws_dir"`
	CredentialsFile  string `yaml:"credentials_file"`
	ConfigFile       string `yaml:"config_file"`
	BackupDir        string `yaml:"backup_dir"`
	LogDir           string `yaml:"log_dir"`
	LogRetentionDays int    `yaml:"log_retention_days"`
	Verbose          bool   `yaml:"verbose"`
	Verify           bool   `yaml:"verify"`
}

// Defaults returns the settings used when nothing is overridden, rooted at awsDir.
func Defaults(awsDir string) *Settings {
	return &Settings{
		AWSDir:          awsDir,
		CredentialsFile: filepath.Join(awsDir, "credentials"),
		ConfigFile:      filepath.Join(awsDir, "config"),
		BackupDir:       filepath.Join(awsDir, "creds_backups"),
		LogDir:          filepath.Join(awsDir, "logs"),
		Verify:          true,
	}
}

// DefaultAWSDir returns ~/.aws
func DefaultAWSDir() string {
	home, err := homedir.Dir()
	if err != nil {
		return ".aws"
	}
	return filepath.Join(home, ".aws")
}

// GetSettingsDir returns the directory of the settings file (~/.config/credpaste)
func GetSettingsDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "credpaste")
	}
	home, err := homedir.Dir()
	if err != nil {
		return ".credpaste"
	}
	return filepath.Join(home, ".config", "credpaste")
}

// GetSettingsPath returns the settings file path (~/.config/credpaste/config.yaml)
func GetSettingsPath() string {
	return filepath.Join(GetSettingsDir(), "config.yaml")
}

// ReadSettingsFile points v at path and reads it if it exists.
func ReadSettingsFile(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to stat settings file: %w", err)
	}
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read settings file: %w", err)
	}
	return nil
}

// Load resolves settings from v. Paths left unset derive from the AWS
// directory, and a leading ~ is expanded.
func Load(v *viper.Viper) (*Settings, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	awsDir := DefaultAWSDir()
	if dir := v.GetString(KeyAWSDir); dir != "" {
		awsDir = dir
	}
	awsDir, err := homedir.Expand(awsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to expand %s: %w", KeyAWSDir, err)
	}

	s := Defaults(awsDir)

	paths := []struct {
		key  string
		dest *string
	}{
		{KeyCredentialsFile, &s.CredentialsFile},
		{KeyConfigFile, &s.ConfigFile},
		{KeyBackupDir, &s.BackupDir},
		{KeyLogDir, &s.LogDir},
	}
	for _, p := range paths {
		value := v.GetString(p.key)
		if value == "" {
			continue
		}
		expanded, err := homedir.Expand(value)
		if err != nil {
			return nil, fmt.Errorf("failed to expand %s: %w", p.key, err)
		}
		*p.dest = expanded
	}

	s.LogRetentionDays = v.GetInt(KeyLogRetentionDays)
	if s.LogRetentionDays < 0 {
		return nil, fmt.Errorf("%s must not be negative", KeyLogRetentionDays)
	}
	s.Verbose = v.GetBool(KeyVerbose)
	if v.IsSet(KeyVerify) {
		s.Verify = v.GetBool(KeyVerify)
	}

	return s, nil
}

// Marshal renders settings as YAML.
func Marshal(s *Settings) ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settings: %w", err)
	}
	return data, nil
}

// SaveSettings writes s to path, creating the directory if needed.
func SaveSettings(path string, s *Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := Marshal(s)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// LoadSettingsFile parses a settings file written by SaveSettings.
func LoadSettingsFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}
	return &s, nil
}
