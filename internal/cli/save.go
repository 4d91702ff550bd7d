package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gemini/internal/game"
	"github.com/mesh-intelligence/gemini/internal/player"
	"github.com/mesh-intelligence/gemini/internal/save"
)

func newSaveCmd(a *app) *cobra.Command {
	var playerOnly bool
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Rewrite the current save",
		Long: "Load the current save and write it back. With --player-only only the\n" +
			"player profile is rewritten.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSave(cmd, func(ctx context.Context, m *save.Manager, g *game.Game) error {
				if playerOnly {
					return m.SavePlayer(ctx, g)
				}
				return m.SaveAll(ctx, g)
			})
		},
	}
	cmd.Flags().BoolVar(&playerOnly, "player-only", false, "rewrite only the player profile")
	return cmd
}

func newRenameCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <name>",
		Short: "Rename the player and save the profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSave(cmd, func(ctx context.Context, m *save.Manager, g *game.Game) error {
				g.Player.With(func(p *player.Player) { p.Name = args[0] })
				return m.SavePlayer(ctx, g)
			})
		},
	}
}

// withSave loads the current save, runs fn against it and prints the
// resulting summary.
func (a *app) withSave(cmd *cobra.Command, fn func(context.Context, *save.Manager, *game.Game) error) error {
	m, closeFn, err := a.manager()
	if err != nil {
		return err
	}
	defer closeFn()

	g, err := loadOrReport(cmd.Context(), m)
	if err != nil {
		return err
	}
	if err := fn(cmd.Context(), m, g); err != nil {
		return sysError("save: %w", err)
	}
	return a.printSummary(cmd, g)
}

// loadOrReport loads the save. A missing or unreadable bundle is a user
// error; the wrapped cause is kept for logging.
func loadOrReport(ctx context.Context, m *save.Manager) (*game.Game, error) {
	g, err := m.Load(ctx)
	if errors.Is(err, save.ErrNoSavedGame) {
		return nil, &exitError{code: exitUserError, err: fmt.Errorf("no saved game in %s (run \"gemini new\")", m.Dir())}
	}
	if err != nil {
		return nil, sysError("load: %w", err)
	}
	return g, nil
}
