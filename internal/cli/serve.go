package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrlokans/bookshelf/internal/entrypoint"
)

func NewServeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog over a local JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *opts.Config
			cfg.Database.Path = opts.databasePath()
			return entrypoint.Run(&cfg, opts.Version)
		},
	}
}
