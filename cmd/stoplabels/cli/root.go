// Package cli holds the stoplabels command tree.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the stoplabels command. Running it without a
// subcommand starts the HTTP server.
func NewRootCommand() *cobra.Command {
	serve := newServeCommand()
	root := &cobra.Command{
		Use:          "stoplabels",
		Short:        "Turn delivery stop manifests into 4x6 shipping labels",
		SilenceUsage: true,
		RunE:         serve.RunE,
	}
	root.AddCommand(serve, newRenderCommand())
	return root
}
