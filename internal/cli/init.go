package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gemini/internal/config"
	"github.com/mesh-intelligence/gemini/internal/paths"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration and save directories",
		Long:  "Write a default config.yaml if none exists and create the save directory.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd)
		},
	}
}

func (a *app) runInit(cmd *cobra.Command) error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError("resolve config dir: %w", err)
	}

	wrote, err := config.WriteIfMissing(configDir, config.Default())
	if err != nil {
		return sysError("write config: %w", err)
	}

	saveDir, err := a.saveDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(saveDir, 0o755); err != nil {
		return sysError("create save dir: %w", err)
	}

	out := cmd.OutOrStdout()
	if wrote {
		fmt.Fprintln(out, "gemini initialized successfully")
	} else {
		fmt.Fprintln(out, "gemini already initialized")
	}
	fmt.Fprintln(out, "  config:", configDir)
	fmt.Fprintln(out, "  saves: ", saveDir)
	return nil
}
