package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mrlokans/bookshelf/internal/catalog"
	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/database"
)

// RootOptions holds global flags and configuration for all commands.
type RootOptions struct {
	Config       *config.Config
	DatabasePath string // overrides Config.Database.Path when set
	Version      string
}

func (o *RootOptions) databasePath() string {
	if o.DatabasePath != "" {
		return o.DatabasePath
	}
	return o.Config.Database.Path
}

// openCatalog opens the database, makes sure the schema exists, and returns
// a catalog service plus a function that releases the connection.
func (o *RootOptions) openCatalog() (*catalog.Service, func(), error) {
	db, err := database.NewDatabase(o.databasePath(),
		database.WithLogLevel(database.ParseLogLevel(o.Config.Database.LogLevel)))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	svc := catalog.NewService(db)
	if _, err := svc.Load(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	return svc, func() { db.Close() }, nil
}

// NewRootCommand creates the root command for the bookshelf CLI.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	opts := &RootOptions{Config: cfg, Version: version}

	cmd := &cobra.Command{
		Use:           "bookshelf",
		Short:         "Keep a personal catalog of books",
		Long:          "bookshelf maintains a local catalog of books (title, author, year, genre) stored in SQLite.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.DatabasePath, "db", "", "path to the catalog database (default $DATABASE_PATH or "+config.DefaultDatabasePath+")")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewUpdateCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))
	cmd.AddCommand(NewBackupCommand(opts))

	return cmd
}

// parseIDArg parses a book identity given on the command line.
func parseIDArg(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid book id %q", arg)
	}
	return uint(id), nil
}
