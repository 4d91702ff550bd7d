package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const modulePath = "github.com/mesh-intelligence/gemini"

// Version is the release version, overridden at link time with
// -ldflags "-X github.com/mesh-intelligence/gemini/internal/cli.Version=...".
var Version = "0.1.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the gemini version",
		Args:  cobra.NoArgs,
		// No config needed to print a version.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "gemini v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
