package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrlokans/bookshelf/internal/catalog"
	"github.com/mrlokans/bookshelf/internal/importers"
)

func NewImportCommand(opts *RootOptions) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Add every book listed in a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open import file: %w", err)
			}
			defer file.Close()

			entries, err := importers.ParseYAML(file)
			if err != nil {
				return err
			}

			forms := make([]catalog.Form, 0, len(entries))
			var importErrors []string
			for i, entry := range entries {
				form, err := catalog.ParseForm(entry.Title, entry.Author, entry.Year, entry.Genre)
				if err != nil {
					importErrors = append(importErrors, fmt.Sprintf("entry %d (%q): %v", i+1, entry.Title, err))
					continue
				}
				forms = append(forms, form)
			}

			imported := 0
			if !dryRun {
				svc, closeDB, err := opts.openCatalog()
				if err != nil {
					return err
				}
				defer closeDB()

				for _, form := range forms {
					if _, err := svc.Add(form); err != nil {
						if !catalog.IsUserError(err) {
							return fmt.Errorf("import aborted after %d books: %w", imported, err)
						}
						importErrors = append(importErrors, fmt.Sprintf("%q: %v", form.Title, err))
						continue
					}
					imported++
				}
			}

			if dryRun {
				fmt.Fprintf(out, "Dry run: %d/%d books would be imported\n", len(forms), len(entries))
			} else {
				fmt.Fprintf(out, "Imported %d/%d books\n", imported, len(entries))
			}
			for _, msg := range importErrors {
				fmt.Fprintf(out, "  [ERROR] %s\n", msg)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate the file without changing the catalog")
	return cmd
}
