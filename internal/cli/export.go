package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrlokans/bookshelf/internal/exporters"
)

func NewExportCommand(opts *RootOptions) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog as YAML or markdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			exporter, ok := exporters.ForFormat(format)
			if !ok {
				return fmt.Errorf("unknown format %q: must be yaml or markdown", format)
			}

			svc, closeDB, err := opts.openCatalog()
			if err != nil {
				return err
			}
			defer closeDB()

			books, err := svc.List()
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				file, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer file.Close()
				w = file
			}

			result, err := exporter.Export(w, books)
			if err != nil {
				return err
			}
			if output != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d books to %s\n", result.BooksProcessed, output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format (yaml|markdown)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	return cmd
}
