package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mrlokans/bookshelf/internal/entities"
)

func NewListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all books in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeDB, err := opts.openCatalog()
			if err != nil {
				return err
			}
			defer closeDB()

			books, err := svc.List()
			if err != nil {
				return err
			}
			return printBooks(cmd.OutOrStdout(), books)
		},
	}
}

func printBooks(w io.Writer, books []entities.Book) error {
	if len(books) == 0 {
		_, err := fmt.Fprintln(w, "No books in the catalog.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR\tYEAR\tGENRE")
	for _, book := range books {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", book.Identity, book.Title, book.Author, book.Year, book.Genre)
	}
	return tw.Flush()
}
