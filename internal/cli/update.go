package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mrlokans/bookshelf/internal/catalog"
)

func NewUpdateCommand(opts *RootOptions) *cobra.Command {
	var flags bookFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a book; omitted fields keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}

			svc, closeDB, err := opts.openCatalog()
			if err != nil {
				return err
			}
			defer closeDB()

			current, err := svc.Get(id)
			if err != nil {
				return err
			}

			// Start from the stored values, as the edit form is prefilled.
			title, author, year, genre := current.Title, current.Author, strconv.Itoa(current.Year), current.Genre
			if cmd.Flags().Changed("title") {
				title = flags.Title
			}
			if cmd.Flags().Changed("author") {
				author = flags.Author
			}
			if cmd.Flags().Changed("year") {
				year = flags.Year
			}
			if cmd.Flags().Changed("genre") {
				genre = flags.Genre
			}

			form, err := catalog.ParseForm(title, author, year, genre)
			if err != nil {
				return err
			}

			book, err := svc.Update(id, form)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", book)
			return nil
		},
	}

	flags.register(cmd, "new")
	return cmd
}
