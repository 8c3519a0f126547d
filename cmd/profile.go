package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/vietdv277/credpaste/internal/credentials"
	"github.com/vietdv277/credpaste/internal/ui"
	pkgtypes "github.com/vietdv277/credpaste/pkg/types"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Pick a profile from the credentials file",
	Long: `Pick a profile from the credentials file and print the export command for it.

When run without subcommands, shows an interactive selector.

Examples:
  credpaste profile              # Interactive profile selector
  credpaste profile ls           # List all profiles in the credentials file`,
	Args: cobra.NoArgs,
	RunE: runProfileInteractive,
}

var profileLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List profiles in the credentials file",
	Long: `List every section of the credentials file with its account, masked access key
and whether the profile has all three credential lines.

Examples:
  credpaste profile ls`,
	Args: cobra.NoArgs,
	RunE: runProfileList,
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileLsCmd)
}

func listProfiles() ([]pkgtypes.ProfileSummary, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, err
	}

	profiles, err := credentials.List(afero.NewOsFs(), settings.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

func runProfileInteractive(cmd *cobra.Command, args []string) error {
	profiles, err := listProfiles()
	if err != nil {
		return err
	}

	if len(profiles) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No profiles found in the credentials file")
		fmt.Fprintln(cmd.OutOrStdout(), "Run credpaste and paste your credentials to add one")
		return nil
	}

	selected, err := ui.SelectProfile(profiles, os.Getenv("AWS_PROFILE"))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nProfile: %s\n\n", selected.Name)
	fmt.Fprintln(out, "To use this profile in your current shell, run:")
	fmt.Fprintf(out, "  export AWS_PROFILE=%s\n", selected.Name)
	return nil
}

func runProfileList(cmd *cobra.Command, args []string) error {
	profiles, err := listProfiles()
	if err != nil {
		return err
	}

	if len(profiles) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No profiles found in the credentials file")
		return nil
	}

	ui.PrintProfileTable(cmd.OutOrStdout(), profiles, os.Getenv("AWS_PROFILE"))
	return nil
}
