package exporters

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// YAMLExporter writes the catalog as a YAML sequence that the importer can read back.
type YAMLExporter struct {
	Indent int
}

func NewYAMLExporter() *YAMLExporter {
	return &YAMLExporter{Indent: 2}
}

func (e *YAMLExporter) Export(w io.Writer, books []entities.Book) (ExportResult, error) {
	if books == nil {
		books = []entities.Book{}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(e.Indent)
	if err := enc.Encode(books); err != nil {
		return ExportResult{}, fmt.Errorf("failed to encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return ExportResult{}, fmt.Errorf("failed to flush yaml: %w", err)
	}

	return ExportResult{BooksProcessed: len(books)}, nil
}
