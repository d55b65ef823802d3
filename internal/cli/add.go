package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrlokans/bookshelf/internal/catalog"
)

type bookFlags struct {
	Title  string
	Author string
	Year   string
	Genre  string
}

func (f *bookFlags) register(cmd *cobra.Command, verb string) {
	cmd.Flags().StringVar(&f.Title, "title", "", verb+" title")
	cmd.Flags().StringVar(&f.Author, "author", "", verb+" author")
	cmd.Flags().StringVar(&f.Year, "year", "", verb+" publication year")
	cmd.Flags().StringVar(&f.Genre, "genre", "", verb+" genre")
}

func NewAddCommand(opts *RootOptions) *cobra.Command {
	var flags bookFlags

	cmd := &cobra.Command{
		Use:     "add --title T --author A --year Y --genre G",
		Short:   "Add a book to the catalog",
		Example: `  bookshelf add --title Dune --author "Frank Herbert" --year 1965 --genre Fantasy`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := catalog.ParseForm(flags.Title, flags.Author, flags.Year, flags.Genre)
			if err != nil {
				return err
			}

			svc, closeDB, err := opts.openCatalog()
			if err != nil {
				return err
			}
			defer closeDB()

			book, err := svc.Add(form)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", book)
			return nil
		},
	}

	flags.register(cmd, "book")
	return cmd
}
