package http

import (
	"github.com/mrlokans/bookshelf/internal/catalog"
	"github.com/mrlokans/bookshelf/internal/database"
)

// RouterConfig contains all dependencies needed to create the HTTP router.
type RouterConfig struct {
	Catalog *catalog.Service

	// Used by the health check; may be nil
	Database *database.Database

	Version string
}
