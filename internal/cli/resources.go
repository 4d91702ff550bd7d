package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gemini/internal/astronomicals"
	"github.com/mesh-intelligence/gemini/internal/economy"
	"github.com/mesh-intelligence/gemini/internal/resources"
	"github.com/mesh-intelligence/gemini/internal/ship"
)

// resourceInfo describes one embedded resource.
type resourceInfo struct {
	Key     string `json:"key"`
	Bytes   int    `json:"bytes"`
	Entries int    `json:"entries"`
	OK      bool   `json:"ok"`
}

// entryCounters decodes each registered resource and counts its records.
var entryCounters = map[string]func() (int, bool){
	resources.KeyAstronomicalNames: func() (int, bool) {
		r, ok := resources.Fetch[astronomicals.NamesResource]()
		return len(r.Names) + len(r.ScientificNames) + len(r.Greek) + len(r.Roman) + len(r.Decorators), ok
	},
	resources.KeyShips: func() (int, bool) {
		r, ok := resources.Fetch[ship.Resource]()
		return len(r.Ships), ok
	},
	resources.KeySchematics: func() (int, bool) {
		r, ok := resources.Fetch[economy.SchematicResource]()
		return len(r.Schematics), ok
	},
}

func newResourcesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resources",
		Short: "List the embedded resources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var infos []resourceInfo
			for _, key := range resources.Keys() {
				info := resourceInfo{Key: key, Bytes: len(resources.Get(key))}
				if count, ok := entryCounters[key]; ok {
					info.Entries, info.OK = count()
				}
				infos = append(infos, info)
			}

			out := cmd.OutOrStdout()
			if a.flags.jsonMode {
				data, err := json.MarshalIndent(infos, "", "  ")
				if err != nil {
					return sysError("marshal JSON: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}
			for _, info := range infos {
				status := "ok"
				if !info.OK {
					status = "unreadable"
				}
				fmt.Fprintf(out, "%-20s %6d bytes %4d entries  %s\n", info.Key, info.Bytes, info.Entries, status)
			}
			return nil
		},
	}
}
