package cli

import (
	"fmt"

	"github.com/drivepane/drivepane/internal/config"
	"github.com/drivepane/drivepane/internal/listing"
	"github.com/drivepane/drivepane/internal/resolver"
	"github.com/spf13/cobra"
)

var resolveLiteral bool

func init() {
	resolveCmd.Flags().BoolVar(&resolveLiteral, "literal", false, "Do not follow shortcuts; print paths unchanged")
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(derefCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <path>...",
	Short: "Resolve entry paths through the shortcut policy",
	Long: `Apply the per-entry resolution policy to each path: paths ending in
.lnk are resolved to their shortcut targets (best effort), everything
else passes through unchanged.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		renderer := newRenderer()
		for _, p := range args {
			fmt.Fprintln(cmd.OutOrStdout(), renderer.ResolveEntryPath(cmd.Context(), p))
		}
		return nil
	},
}

var derefCmd = &cobra.Command{
	Use:   "deref <dir>",
	Short: "Apply the virtual-directory policy to a directory",
	Long: `Print the target of the directory's reserved target.lnk shortcut if
present and shortcut-following is enabled; otherwise print the
directory unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		renderer := newRenderer()
		fmt.Fprintln(cmd.OutOrStdout(), renderer.DereferenceVirtualDirectory(cmd.Context(), args[0]))
		return nil
	},
}

// newRenderer builds a renderer from the current settings, honoring the
// --literal override.
func newRenderer() *listing.Renderer {
	settings := config.LoadSettings()
	if resolveLiteral {
		settings.FollowShortcuts = false
	}
	return listing.New(resolver.New(settings), settings)
}
