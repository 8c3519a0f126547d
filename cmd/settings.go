package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vietdv277/credpaste/internal/config"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or create the credpaste settings file",
	Long: `Settings are resolved from flags, then CREDPASTE_* environment variables, then
the settings file (~/.config/credpaste/config.yaml), then the defaults.

Examples:
  credpaste settings show
  credpaste settings init`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved settings as YAML",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsInitForce bool

var settingsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the resolved settings to the settings file",
	Args:  cobra.NoArgs,
	RunE:  runSettingsInit,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsInitCmd)

	settingsInitCmd.Flags().BoolVarP(&settingsInitForce, "force", "f", false, "overwrite an existing settings file")
}

func settingsPath() string {
	if settingsFile != "" {
		return settingsFile
	}
	return config.GetSettingsPath()
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	data, err := config.Marshal(settings)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", settingsPath(), data)
	return nil
}

func runSettingsInit(cmd *cobra.Command, args []string) error {
	path := settingsPath()
	if _, err := os.Stat(path); err == nil && !settingsInitForce {
		return fmt.Errorf("settings file %s already exists (use --force to overwrite)", path)
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	if err := config.SaveSettings(path, settings); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Settings written to %s\n", path)
	return nil
}
