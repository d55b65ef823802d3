package interfaces

// This file contains compile-time interface implementation checks.
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/bookshelf/internal/catalog"
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/database/books"
	"github.com/mrlokans/bookshelf/internal/exporters"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// Store implementations
var _ catalog.Store = (*database.Database)(nil)
var _ catalog.Store = (*books.Repository)(nil)

// =============================================================================
// Export
// =============================================================================

var _ exporters.BookExporter = (*exporters.YAMLExporter)(nil)
var _ exporters.BookExporter = (*exporters.MarkdownExporter)(nil)
