package cli

import (
	"os"

	"github.com/spf13/cobra"

	"aires/internal/booklet"
)

// SaveOptions holds flags for the save command.
type SaveOptions struct {
	*RootOptions
	Dir string
	ID  string
}

// NewSaveCommand creates the save command.
func NewSaveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SaveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "save <payload-file>",
		Short: "Save a booklet payload into the store",
		Long: `Save a booklet payload into the store.

The payload file is stored opaquely under a path derived from the booklet
id and the save timestamp. The resolved path is printed on success.

Example:
  aires save booklet.json --dir /out`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSave(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.Dir, "dir", "", "target directory (defaults to store.directory from config)")
	cmd.Flags().StringVar(&opts.ID, "id", "", "booklet id (generated if omitted)")

	return cmd
}

func runSave(cmd *cobra.Command, opts *SaveOptions, payloadPath string) error {
	out := formatter(cmd, opts.RootOptions)

	payload, err := os.ReadFile(payloadPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read payload file", err)
	}

	e, err := newEnv(opts.RootOptions)
	if err != nil {
		return err
	}
	defer e.close()

	dir := opts.Dir
	if dir == "" {
		dir = e.cfg.Store.Directory
	}
	out.VerboseLog("saving %d bytes into %s", len(payload), dir)

	res := e.store.Save(cmd.Context(), &booklet.Booklet{ID: opts.ID, Payload: payload}, dir)
	if res.IsFailure() {
		return out.Failure(res.Code(), res.Message(), e.log.CorrelationID())
	}
	return out.Success(res.Value(), e.log.CorrelationID())
}
