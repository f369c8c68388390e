package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list [directory]",
		Short: "List booklet paths in a directory",
		Long: `List booklet paths in a directory, sorted ascending.

Without an argument, the configured store.directory is listed. An empty
directory lists successfully as empty.

Example:
  aires list /out`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) == 1 {
				dir = args[0]
			}
			return runList(cmd, opts, dir)
		},
	}

	return cmd
}

func runList(cmd *cobra.Command, opts *ListOptions, dir string) error {
	out := formatter(cmd, opts.RootOptions)

	e, err := newEnv(opts.RootOptions)
	if err != nil {
		return err
	}
	defer e.close()

	if dir == "" {
		dir = e.cfg.Store.Directory
	}

	res := e.store.List(cmd.Context(), dir)
	if res.IsFailure() {
		return out.Failure(res.Code(), res.Message(), e.log.CorrelationID())
	}

	if opts.Format == "json" {
		return out.Success(map[string]any{"directory": dir, "paths": res.Value()}, e.log.CorrelationID())
	}
	for _, p := range res.Value() {
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}
	return nil
}
