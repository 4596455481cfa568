package cli

import (
	"fmt"
	"os"

	"github.com/drivepane/drivepane/internal/branding"
	"github.com/drivepane/drivepane/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` enumerates ready drives and special folders, resolves shortcut
files to their targets, and renders a synthetic drive pane for
file-manager hosts.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Warn about malformed settings up front; the core still runs
		// on defaults either way.
		data, err := os.ReadFile(config.FilePath())
		if err != nil {
			return
		}
		result, err := config.Validate(data)
		if err != nil || result.Valid {
			return
		}
		fmt.Fprintf(os.Stderr, "Warning: %s has issues:\n", config.FilePath())
		for _, issue := range result.Issues {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", issue.Path, issue.Message)
		}
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
