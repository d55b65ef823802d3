package exporters

import (
	"io"

	"github.com/mrlokans/bookshelf/internal/entities"
)

type BookExporter interface {
	Export(w io.Writer, books []entities.Book) (ExportResult, error)
}

type ExportResult struct {
	BooksProcessed int `json:"books_processed"`
}

// ForFormat returns the exporter registered under name.
func ForFormat(name string) (BookExporter, bool) {
	switch name {
	case "yaml", "yml":
		return NewYAMLExporter(), true
	case "markdown", "md":
		return NewMarkdownExporter(), true
	default:
		return nil, false
	}
}

// FileExtension returns the file extension, without the dot, used for files
// written in the named format.
func FileExtension(format string) string {
	switch format {
	case "markdown", "md":
		return "md"
	default:
		return "yaml"
	}
}
