package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gemini/internal/journal"
)

func newHistoryCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent save and load operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := a.openJournal()
			if err != nil {
				return err
			}
			if j == nil {
				return fmt.Errorf("the journal is disabled in config.yaml")
			}
			defer j.Close()

			entries, err := j.List(cmd.Context(), limit)
			if err != nil {
				return sysError("list journal: %w", err)
			}

			out := cmd.OutOrStdout()
			if a.flags.jsonMode {
				if entries == nil {
					entries = []journal.Entry{}
				}
				data, err := json.MarshalIndent(entries, "", "  ")
				if err != nil {
					return sysError("marshal JSON: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}
			for _, e := range entries {
				line := fmt.Sprintf("%s  %-12s %-8s", e.CreatedAt.Local().Format("2006-01-02 15:04:05"), e.Operation, e.Outcome)
				if e.Detail != "" {
					line += "  " + e.Detail
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", journal.DefaultLimit, "maximum number of entries")
	return cmd
}
