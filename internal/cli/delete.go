package cli

import (
	"github.com/spf13/cobra"
)

// DeleteOptions holds flags for the delete command.
type DeleteOptions struct {
	*RootOptions
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DeleteOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "delete <path>",
		Short: "Delete the booklet stored at a path",
		Long: `Delete the booklet stored at a path.

Deleting an unknown path is a NOT_FOUND failure; the store is unchanged.

Example:
  aires delete /out/booklet_b-1_1748779200000000000.json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd, opts, args[0])
		},
	}

	return cmd
}

func runDelete(cmd *cobra.Command, opts *DeleteOptions, path string) error {
	out := formatter(cmd, opts.RootOptions)

	e, err := newEnv(opts.RootOptions)
	if err != nil {
		return err
	}
	defer e.close()

	res := e.store.Delete(cmd.Context(), path)
	if res.IsFailure() {
		return out.Failure(res.Code(), res.Message(), e.log.CorrelationID())
	}
	return out.Success("deleted "+path, e.log.CorrelationID())
}
