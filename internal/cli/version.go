package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version is the aires version, overridable at build time via
// -ldflags "-X aires/internal/cli.Version=...".
var Version = "0.1.0"

// NewVersionCommand creates the version command.
func NewVersionCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "version",
		Short:         "Print version information",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := formatter(cmd, rootOpts)
			if rootOpts.Format == "json" {
				return out.Success(map[string]string{
					"version": Version,
					"go":      runtime.Version(),
				}, "")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "aires %s (%s)\n", Version, runtime.Version())
			return nil
		},
	}
	return cmd
}
