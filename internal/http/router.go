package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	healthController := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", healthController.Status)

	booksController := NewBooksController(cfg.Catalog)
	api := router.Group("/api")
	{
		api.GET("/books", booksController.GetAllBooks)
		api.GET("/books/:id", booksController.GetBook)
		api.POST("/books", booksController.CreateBook)
		api.PUT("/books/:id", booksController.UpdateBook)
		api.DELETE("/books/:id", booksController.DeleteBook)
	}

	return router
}
