package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vietdv277/credpaste/internal/config"
	applog "github.com/vietdv277/credpaste/internal/log"
	"github.com/vietdv277/credpaste/internal/refresh"
	"github.com/vietdv277/credpaste/internal/ui"
)

var (
	// Global flags
	settingsFile string
	noVerify     bool

	v = viper.New()

	// logger is opened by the first command that needs it and closed by Execute
	logger *applog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "credpaste",
	Short: "Paste temporary AWS SSO credentials into ~/.aws/credentials",
	Long: `credpaste stores temporary AWS credentials copied from the SSO sign-on page.

Each run:
  1. backs up ~/.aws/credentials and ~/.aws/config to ~/.aws/creds_backups
  2. adds the [default] section (eu-west-1, json) to ~/.aws/config if missing
  3. reads the four pasted lines (profile, access key, secret key, session token)
     and adds or overwrites that profile in ~/.aws/credentials

Examples:
  credpaste                      # Paste credentials interactively
  pbpaste | credpaste            # Read the four lines from stdin
  credpaste profile ls           # List profiles in the credentials file
  credpaste backup               # Only take a backup`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRefresh,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil && logger != nil {
		logger.Error(err.Error())
	}
	if logger != nil {
		logger.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&settingsFile, "settings", "", "settings file (default ~/.config/credpaste/config.yaml)")
	flags.String("aws-dir", "", "AWS directory (default ~/.aws)")
	flags.String("credentials-file", "", "credentials file (default <aws-dir>/credentials)")
	flags.String("config-file", "", "config file (default <aws-dir>/config)")
	flags.String("backup-dir", "", "backup directory (default <aws-dir>/creds_backups)")
	flags.String("log-dir", "", "daily log directory (default <aws-dir>/logs)")
	flags.Int("log-retention-days", 0, "delete daily logs older than this many days (0 keeps all)")
	flags.BoolP("verbose", "v", false, "show debug output")
	flags.BoolVar(&noVerify, "no-verify", false, "skip reading the profile back through the AWS SDK")

	// Bind flags to viper
	_ = v.BindPFlag(config.KeyAWSDir, flags.Lookup("aws-dir"))
	_ = v.BindPFlag(config.KeyCredentialsFile, flags.Lookup("credentials-file"))
	_ = v.BindPFlag(config.KeyConfigFile, flags.Lookup("config-file"))
	_ = v.BindPFlag(config.KeyBackupDir, flags.Lookup("backup-dir"))
	_ = v.BindPFlag(config.KeyLogDir, flags.Lookup("log-dir"))
	_ = v.BindPFlag(config.KeyLogRetentionDays, flags.Lookup("log-retention-days"))
	_ = v.BindPFlag(config.KeyVerbose, flags.Lookup("verbose"))
}

func initConfig() {
	path := settingsFile
	if path == "" {
		path = config.GetSettingsPath()
	}
	if err := config.ReadSettingsFile(v, path); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
}

// loadSettings resolves settings from flags, environment and the settings file.
func loadSettings() (*config.Settings, error) {
	settings, err := config.Load(v)
	if err != nil {
		return nil, err
	}
	if noVerify {
		settings.Verify = false
	}
	return settings, nil
}

// newRunner loads settings and opens the logger for commands that touch files.
func newRunner() (*refresh.Runner, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, err
	}

	logger, err = applog.New(applog.Options{
		Verbose:       settings.Verbose,
		Dir:           settings.LogDir,
		RetentionDays: settings.LogRetentionDays,
	})
	if err != nil {
		return nil, err
	}

	return refresh.New(settings, logger.Logger), nil
}

func runRefresh(cmd *cobra.Command, args []string) error {
	r, err := newRunner()
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	f, isFile := in.(*os.File)
	interactive := isFile && ui.IsTerminal(f)

	read := func() ([]string, error) {
		return ui.ReadPastedLines(in, cmd.OutOrStdout(), interactive)
	}

	p, err := r.Run(cmd.Context(), read)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nProfile %s saved to %s\n\n", ui.NameStyle.Render(p.Name()), r.Settings.CredentialsFile)
	fmt.Fprintln(out, "To use this profile in your current shell, run:")
	fmt.Fprintf(out, "  export AWS_PROFILE=%s\n", p.Name())
	return nil
}
