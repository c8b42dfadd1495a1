// Package fractalcmder
package fractalcmder

import (
	"github.com/spf13/cobra"

	chatcmder "github.com/fractalhq/fractal/cmd/fractal/chat"
	configcmder "github.com/fractalhq/fractal/cmd/fractal/config"
	initcmder "github.com/fractalhq/fractal/cmd/fractal/init"
	servecmder "github.com/fractalhq/fractal/cmd/fractal/serve"
	versioncmder "github.com/fractalhq/fractal/cmd/version"
)

const fractalLongDesc string = `Fractal is a branching workspace for LLM conversations.

Conversations live in a tree of nodes: branch at any point, explore
alternatives in parallel, and merge what you learned back into the parent.
Each branch inherits a frozen snapshot of its lineage's accumulated context.

Run services using:
  fractal serve        Run the API server
  fractal chat         Chat against a node through the API server`

const fractalShortDesc string = "Fractal - Branching LLM Workspaces"

func NewFractalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fractal",
		Short: fractalShortDesc,
		Long:  fractalLongDesc,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().String("config-dir", "", "Override the .fractal directory location")

	// Add subcommands
	cmd.AddCommand(servecmder.NewServeCmd())
	cmd.AddCommand(chatcmder.NewChatCmd())
	cmd.AddCommand(configcmder.NewConfigCmd())
	cmd.AddCommand(initcmder.NewInitCmd())
	cmd.AddCommand(versioncmder.NewVersionCmd())

	return cmd
}
