package cli

import (
	"fmt"
	"os"

	"github.com/drivepane/drivepane/internal/config"
	"github.com/drivepane/drivepane/internal/helper"
	"github.com/drivepane/drivepane/internal/platform"
	"github.com/drivepane/drivepane/internal/resolver"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the DrivePane setup",
	Long:  `Report enumeration capability, helper artifact state, and a live round-trip probe.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		settings := config.LoadSettings()

		if platform.HasNativeEnumeration() {
			fmt.Fprintln(out, "native enumeration: available")
		} else {
			fmt.Fprintln(out, "native enumeration: unavailable (helper required)")
		}

		helperPath := settings.HelperPath
		if helperPath != "" {
			fmt.Fprintf(out, "helper: override %s\n", helperPath)
		} else {
			var err error
			helperPath, err = helper.Ensure()
			if err != nil {
				fmt.Fprintf(out, "helper: not materialized (%v)\n", err)
			} else {
				fmt.Fprintf(out, "helper: %s (v%s)\n", helperPath, helper.EmbeddedVersion())
			}
		}
		if helperPath != "" {
			if _, err := os.Stat(helperPath); err != nil {
				fmt.Fprintf(out, "helper artifact: missing (%v)\n", err)
			}
		}

		r := resolver.New(settings)
		volumes := r.EnumerateReadyVolumes(cmd.Context())
		folders := r.EnumerateSpecialFolders(cmd.Context())
		fmt.Fprintf(out, "round-trip: %d volume(s), %d folder role(s)\n", len(volumes), len(folders))
		if len(volumes) == 0 && len(folders) == 0 {
			fmt.Fprintln(out, "round-trip: empty result; enumeration is degrading to a blank pane")
		}
		return nil
	},
}
