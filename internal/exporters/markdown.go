package exporters

import (
	"fmt"
	"io"
	"strings"

	"github.com/mrlokans/bookshelf/internal/entities"
)

type MarkdownExporter struct {
	Heading string
}

func NewMarkdownExporter() *MarkdownExporter {
	return &MarkdownExporter{Heading: "Book Catalog"}
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}

// GenerateMarkdown renders the catalog as a markdown table.
func GenerateMarkdown(heading string, books []entities.Book) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "# %s\n\n", heading)

	if len(books) == 0 {
		fmt.Fprintf(&builder, "_No books in the catalog._\n")
		return builder.String()
	}

	fmt.Fprintf(&builder, "| ID | Title | Author | Year | Genre |\n")
	fmt.Fprintf(&builder, "|---:|-------|--------|-----:|-------|\n")
	for _, book := range books {
		fmt.Fprintf(&builder, "| %s | %s | %s | %d | %s |\n",
			book.Identity,
			escapeCell(book.Title),
			escapeCell(book.Author),
			book.Year,
			escapeCell(book.Genre))
	}

	noun := "books"
	if len(books) == 1 {
		noun = "book"
	}
	fmt.Fprintf(&builder, "\n%d %s\n", len(books), noun)
	return builder.String()
}

func (e *MarkdownExporter) Export(w io.Writer, books []entities.Book) (ExportResult, error) {
	if _, err := io.WriteString(w, GenerateMarkdown(e.Heading, books)); err != nil {
		return ExportResult{}, fmt.Errorf("failed to write markdown: %w", err)
	}
	return ExportResult{BooksProcessed: len(books)}, nil
}
