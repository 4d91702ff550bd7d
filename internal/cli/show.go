package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gemini/internal/astronomicals"
	"github.com/mesh-intelligence/gemini/internal/game"
	"github.com/mesh-intelligence/gemini/internal/player"
	"github.com/mesh-intelligence/gemini/internal/ship"
)

// summary is the printable view of a game.
type summary struct {
	Player  player.Player `json:"player"`
	Systems int           `json:"systems"`
	Bodies  int           `json:"bodies"`
	Routes  int           `json:"routes"`
	Ships   []string      `json:"ships"`
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "show",
		Aliases: []string{"load"},
		Short:   "Load the current save and print a summary",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, closeFn, err := a.manager()
			if err != nil {
				return err
			}
			defer closeFn()

			g, err := loadOrReport(cmd.Context(), m)
			if err != nil {
				return err
			}
			return a.printSummary(cmd, g)
		},
	}
}

// summarize takes each subsystem's guard in turn, never two at once.
func summarize(g *game.Game) summary {
	var s summary
	g.Galaxy.With(func(gal *astronomicals.Galaxy) {
		s.Systems = len(gal.Systems())
		s.Bodies = len(gal.Bodies)
		s.Routes = len(gal.Edges)
	})
	g.Shipyard.With(func(y *ship.Shipyard) {
		for _, c := range y.Ships {
			s.Ships = append(s.Ships, c.Name)
		}
	})
	g.Player.With(func(p *player.Player) {
		s.Player = *p
	})
	return s
}

func (a *app) printSummary(cmd *cobra.Command, g *game.Game) error {
	s := summarize(g)
	out := cmd.OutOrStdout()

	if a.flags.jsonMode {
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return sysError("marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "Player:    %s (%s)\n", s.Player.Name, s.Player.ID)
	fmt.Fprintf(out, "Credits:   %d\n", s.Player.Credits)
	fmt.Fprintf(out, "Location:  %s\n", s.Player.Location)
	fmt.Fprintf(out, "Ship:      %s\n", s.Player.Ship)
	fmt.Fprintf(out, "Galaxy:    %d systems, %d bodies, %d routes\n", s.Systems, s.Bodies, s.Routes)
	fmt.Fprintf(out, "Shipyard:  %d models\n", len(s.Ships))
	return nil
}
