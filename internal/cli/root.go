// Package cli implements the gemini command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gemini/internal/config"
	"github.com/mesh-intelligence/gemini/internal/journal"
	"github.com/mesh-intelligence/gemini/internal/paths"
	"github.com/mesh-intelligence/gemini/internal/resources"
	"github.com/mesh-intelligence/gemini/internal/save"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// exitError carries the process exit code for an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func sysError(format string, args ...any) error {
	return &exitError{code: exitSysError, err: fmt.Errorf(format, args...)}
}

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	saveDir   string
	jsonMode  bool
}

// app is the state shared by the subcommands of one root command.
type app struct {
	flags  rootFlags
	cfg    config.Config
	logger *slog.Logger
}

// NewRootCmd creates the top-level "gemini" command with global flags and all
// subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "gemini",
		Short: "Manage gemini game saves and built-in data",
		Long: "gemini creates, saves and restores game state and inspects the\n" +
			"static resources compiled into the binary.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&a.flags.dataDir, "data-dir", "", "data directory for the save journal (default: platform data dir)")
	root.PersistentFlags().StringVar(&a.flags.saveDir, "save-dir", "", "save directory (default: <config root>/gemini/saves)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newNewCmd(a))
	root.AddCommand(newSaveCmd(a))
	root.AddCommand(newRenameCmd(a))
	root.AddCommand(newShowCmd(a))
	root.AddCommand(newResourcesCmd(a))
	root.AddCommand(newHistoryCmd(a))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gemini:", err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

// setup loads config.yaml and installs the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError("resolve config dir: %w", err)
	}

	cfg, err := config.Load(configDir)
	if err != nil {
		return err
	}
	a.cfg = cfg

	lvl, _ := cfg.Level()
	a.logger = newLogger(cmd.ErrOrStderr(), lvl)
	resources.SetLogger(a.logger)
	return nil
}

func newLogger(w io.Writer, lvl slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// saveDir resolves the save directory. Failing to resolve it means the
// platform has no usable config root; that is a system error.
func (a *app) saveDir() (string, error) {
	dir, err := paths.ResolveSaveDir(a.flags.saveDir, a.cfg.SaveDir)
	if err != nil {
		return "", sysError("resolve save dir: %w", err)
	}
	return dir, nil
}

// openJournal opens the journal when enabled. It returns a nil journal when
// disabled.
func (a *app) openJournal() (*journal.Journal, error) {
	if !a.cfg.Journal {
		return nil, nil
	}
	dir, err := paths.ResolveDataDir(a.flags.dataDir, a.cfg.DataDir)
	if err != nil {
		return nil, sysError("resolve data dir: %w", err)
	}
	j, err := journal.Open(dir)
	if err != nil {
		return nil, sysError("open journal: %w", err)
	}
	return j, nil
}

// manager builds a save manager wired to the logger and, when enabled, the
// journal. The returned func releases the journal.
func (a *app) manager() (*save.Manager, func(), error) {
	dir, err := a.saveDir()
	if err != nil {
		return nil, nil, err
	}

	opts := []save.Option{save.WithLogger(a.logger)}
	closeFn := func() {}

	j, err := a.openJournal()
	if err != nil {
		// The journal is a convenience; saving works without it.
		a.logger.Warn("journal unavailable", "error", err)
	} else if j != nil {
		opts = append(opts, save.WithRecorder(j))
		closeFn = func() { j.Close() }
	}

	return save.NewManager(dir, opts...), closeFn, nil
}
