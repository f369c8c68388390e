package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// StatusOptions holds flags for the status command.
type StatusOptions struct {
	*RootOptions
}

// NewStatusCommand creates the status command.
func NewStatusCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StatusOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Report store health and booklet count",
		Long: `Report store health and booklet count.

Opens the configured backend, counts stored booklets, and emits a health
check through the logging stack.

Example:
  aires status --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd, opts)
		},
	}

	return cmd
}

func runStatus(cmd *cobra.Command, opts *StatusOptions) error {
	out := formatter(cmd, opts.RootOptions)

	e, err := newEnv(opts.RootOptions)
	if err != nil {
		return err
	}
	defer e.close()

	count := 0
	if c, ok := e.store.(interface{ Len() int }); ok {
		count = c.Len()
	}
	e.log.LogHealthCheck("BookletStore", true, fmt.Sprintf("backend=%s booklets=%d", e.cfg.Store.Backend, count))

	if opts.Format == "json" {
		return out.Success(map[string]any{
			"backend":   e.cfg.Store.Backend,
			"database":  e.cfg.Store.Database,
			"directory": e.cfg.Store.Directory,
			"booklets":  count,
			"healthy":   true,
		}, e.log.CorrelationID())
	}

	fmt.Fprintf(cmd.OutOrStdout(), "backend:   %s\n", e.cfg.Store.Backend)
	if e.cfg.Store.Backend != "memory" {
		fmt.Fprintf(cmd.OutOrStdout(), "database:  %s\n", e.cfg.Store.Database)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "directory: %s\n", e.cfg.Store.Directory)
	fmt.Fprintf(cmd.OutOrStdout(), "booklets:  %d\n", count)
	fmt.Fprintf(cmd.OutOrStdout(), "healthy:   true\n")
	return nil
}
