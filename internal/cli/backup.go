package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrlokans/bookshelf/internal/scheduler"
)

func NewBackupCommand(opts *RootOptions) *cobra.Command {
	var (
		dir    string
		format string
	)

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Write a timestamped backup of the catalog",
		Long:  "Write the whole catalog to a timestamped file. `bookshelf serve` does the same on $BACKUP_SCHEDULE.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeDB, err := opts.openCatalog()
			if err != nil {
				return err
			}
			defer closeDB()

			backups := scheduler.NewBackupScheduler(svc, scheduler.BackupConfig{
				Dir:    dir,
				Format: format,
			})
			path, result, err := backups.RunNow()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Backed up %d books to %s\n", result.BooksProcessed, path)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", opts.Config.Backup.Dir, "directory to write the backup into")
	cmd.Flags().StringVarP(&format, "format", "f", opts.Config.Backup.Format, "backup format (yaml|markdown)")
	return cmd
}
