// Package database provides the data access layer for the book catalog.
//
// # Architecture
//
//	database/
//	├── database.go      # Connection setup and lifecycle
//	└── books/           # Schema and book CRUD operations
//
// A Database owns exactly one SQLite connection, opened by NewDatabase and
// released by Close. Book operations are promoted from books.Repository:
//
//	db, err := database.NewDatabase("./books.db")
//	defer db.Close()
//
//	err = db.InitSchema()
//	book := entities.NewBook("Dune", "Frank Herbert", 1965, "Fantasy")
//	err = db.CreateBook(&book)   // book.Identity is now assigned
//	all, err := db.GetAllBooks()
//
// Updating or deleting an id that is not stored is a silent no-op. Store
// failures are returned wrapped and are never retried.
package database
