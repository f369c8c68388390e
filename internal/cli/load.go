package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// LoadOptions holds flags for the load command.
type LoadOptions struct {
	*RootOptions
	PayloadOnly bool
}

// NewLoadCommand creates the load command.
func NewLoadCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LoadOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "load <path>",
		Short: "Load the booklet stored at a path",
		Long: `Load the booklet stored at a path.

Prints the booklet record; with --payload-only only the raw payload body
is written, suitable for piping.

Example:
  aires load /out/booklet_b-1_1748779200000000000.json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(cmd, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.PayloadOnly, "payload-only", false, "print only the raw payload")

	return cmd
}

func runLoad(cmd *cobra.Command, opts *LoadOptions, path string) error {
	out := formatter(cmd, opts.RootOptions)

	e, err := newEnv(opts.RootOptions)
	if err != nil {
		return err
	}
	defer e.close()

	res := e.store.Load(cmd.Context(), path)
	if res.IsFailure() {
		return out.Failure(res.Code(), res.Message(), e.log.CorrelationID())
	}

	b := res.Value()
	if opts.PayloadOnly {
		_, err := cmd.OutOrStdout().Write(b.Payload)
		return err
	}
	if opts.Format == "json" {
		return out.Success(b, e.log.CorrelationID())
	}

	fmt.Fprintf(cmd.OutOrStdout(), "id:        %s\n", b.ID)
	fmt.Fprintf(cmd.OutOrStdout(), "path:      %s\n", b.Path)
	fmt.Fprintf(cmd.OutOrStdout(), "directory: %s\n", b.Directory)
	fmt.Fprintf(cmd.OutOrStdout(), "saved_at:  %s\n", b.SavedAt.Format("2006-01-02T15:04:05Z07:00"))
	fmt.Fprintf(cmd.OutOrStdout(), "payload:   %d bytes\n", len(b.Payload))
	return nil
}
