package cli

import (
	"encoding/json"
	"fmt"

	"github.com/drivepane/drivepane/internal/config"
	"github.com/drivepane/drivepane/internal/listing"
	"github.com/drivepane/drivepane/internal/resolver"
	"github.com/spf13/cobra"
)

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output entries as JSON")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Render the drive pane listing",
	Long:  `Enumerate ready drives and special folders and print the synthetic listing.`,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	settings := config.LoadSettings()
	renderer := listing.New(resolver.New(settings), settings)
	l := renderer.Render(cmd.Context())

	if listJSON {
		data, err := json.MarshalIndent(l, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling listing: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	for _, e := range l.Entries {
		fmt.Fprintln(cmd.OutOrStdout(), e.Record)
	}
	return nil
}
