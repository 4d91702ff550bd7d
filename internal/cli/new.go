package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gemini/internal/astronomicals"
	"github.com/mesh-intelligence/gemini/internal/game"
	"github.com/mesh-intelligence/gemini/internal/player"
	"github.com/mesh-intelligence/gemini/internal/resources"
	"github.com/mesh-intelligence/gemini/internal/ship"
)

// errSaveExists is returned by new when a save would be overwritten.
var errSaveExists = errors.New("a saved game already exists (use --force to replace it)")

type newOptions struct {
	name    string
	systems int
	seed    uint64
	force   bool
}

func newNewCmd(a *app) *cobra.Command {
	var opts newOptions
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a fresh game and save it",
		Long: "Create a fresh game with a generated starter galaxy, the stock shipyard\n" +
			"and a new player profile, then write it to the save directory.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				opts.seed = uint64(time.Now().UnixNano())
			}
			return a.runNew(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.name, "name", player.DefaultName, "player name")
	cmd.Flags().IntVar(&opts.systems, "systems", 6, "number of star systems to generate")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "generator seed (default: current time)")
	cmd.Flags().BoolVar(&opts.force, "force", false, "replace an existing save")
	return cmd
}

func (a *app) runNew(cmd *cobra.Command, opts newOptions) error {
	if opts.systems < 1 {
		return fmt.Errorf("--systems must be at least 1, got %d", opts.systems)
	}

	m, closeFn, err := a.manager()
	if err != nil {
		return err
	}
	defer closeFn()

	if m.Exists() && !opts.force {
		return errSaveExists
	}

	gen, err := astronomicals.NewNameGenerator(resources.MustFetch[astronomicals.NamesResource](), opts.seed)
	if err != nil {
		return sysError("name generator: %w", err)
	}

	g := game.Fresh()
	galaxy := astronomicals.StarterGalaxy(gen, opts.systems, opts.seed)
	g.Galaxy.With(func(v *astronomicals.Galaxy) { *v = galaxy })

	// Lock order: galaxy, shipyard, player; each guard is taken alone.
	start := galaxy.Systems()[0]
	starter := game.Read(g.Shipyard, func(s *ship.Shipyard) string {
		if s.Len() == 0 {
			return ""
		}
		return s.Ships[0].Name
	})
	g.Player.With(func(p *player.Player) {
		p.Name = opts.name
		p.Location = start.ID
		p.Ship = starter
	})

	if err := m.SaveAll(cmd.Context(), g); err != nil {
		return sysError("save: %w", err)
	}

	return a.printSummary(cmd, g)
}
