// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - catalog.Store: persistence of book records (internal/catalog/service.go).
//     Implemented by books.Repository and, through embedding, database.Database.
//
// ## Export Interfaces
//
//   - exporters.BookExporter: render the catalog to a writer (internal/exporters/generic.go)
//
// # Adding a New Export Format
//
//  1. Implement BookExporter in internal/exporters/
//
//     type CSVExporter struct{}
//
//     func (e *CSVExporter) Export(w io.Writer, books []entities.Book) (ExportResult, error)
//
//  2. Register the format name in exporters.ForFormat
//
//  3. Add a compile-time check to checks.go:
//
//     var _ exporters.BookExporter = (*exporters.CSVExporter)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go.
package interfaces
