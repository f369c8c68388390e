package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"aires/internal/booklet"
	"aires/internal/config"
	"aires/internal/logging"
)

// env is the wired runtime for one command invocation: configuration, the
// logging stack, and the booklet store.
type env struct {
	cfg   config.Config
	log   logging.Logger
	store booklet.Store
	close func() error
}

// newEnv loads configuration, builds the zap-backed logger, and opens the
// configured store backend. Callers must invoke env.close when done.
func newEnv(opts *RootOptions) (*env, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to load config", err)
		}
		cfg = loaded
	}

	// Diagnostics ride stderr through zap; without --verbose only errors
	// surface, so JSON command output stays clean either way.
	level := logging.Level(cfg.Log.Level)
	if !opts.Verbose {
		level = logging.LevelError
	}
	zl, err := logging.BuildZap(level, cfg.Log.Format)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to build logger", err)
	}
	log := logging.NewZapLogger(zl)

	e := &env{cfg: cfg, log: log}
	switch cfg.Store.Backend {
	case "memory":
		e.store = booklet.NewMemoryStore(log, nil, 0)
		e.close = func() error { return zl.Sync() }
	default:
		s, err := booklet.OpenSQLite(cfg.Store.Database, log, nil)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, fmt.Sprintf("failed to open store %s", cfg.Store.Database), err)
		}
		e.store = s
		e.close = func() error {
			err := s.Close()
			_ = zl.Sync()
			return err
		}
	}

	return e, nil
}

// formatter builds the OutputFormatter for a command.
func formatter(cmd *cobra.Command, opts *RootOptions) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}
