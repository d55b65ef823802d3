// Package books provides database operations for the book catalog.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	err := repo.InitSchema()
//	err = repo.CreateBook(&book)
package books

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/entities"
)

var ErrBookNotFound = errors.New("book not found")

const createBooksTableSQL = `CREATE TABLE IF NOT EXISTS books (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT,
	author TEXT,
	year INTEGER,
	genre TEXT
)`

// bookRow is the stored shape of a book. Columns are mapped by name.
type bookRow struct {
	ID     uint   `gorm:"column:id;primaryKey"`
	Title  string `gorm:"column:title"`
	Author string `gorm:"column:author"`
	Year   int    `gorm:"column:year"`
	Genre  string `gorm:"column:genre"`
}

func (bookRow) TableName() string {
	return "books"
}

func (r bookRow) toBook() entities.Book {
	return entities.Book{
		Identity: entities.Assigned(r.ID),
		Title:    r.Title,
		Author:   r.Author,
		Year:     r.Year,
		Genre:    r.Genre,
	}
}

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// InitSchema creates the books table if it does not exist yet.
func (r *Repository) InitSchema() error {
	if err := r.db.Exec(createBooksTableSQL).Error; err != nil {
		return fmt.Errorf("failed to create books table: %w", err)
	}
	return nil
}

// CreateBook inserts a new book and writes the assigned id back onto it.
func (r *Repository) CreateBook(book *entities.Book) error {
	if book.Identity.IsAssigned() {
		return fmt.Errorf("cannot create book %s: %w", book.Identity, entities.ErrIdentityAssigned)
	}
	if err := book.Validate(); err != nil {
		return err
	}

	row := bookRow{
		Title:  book.Title,
		Author: book.Author,
		Year:   book.Year,
		Genre:  book.Genre,
	}
	if err := r.db.Create(&row).Error; err != nil {
		return fmt.Errorf("failed to create book: %w", err)
	}

	return book.AssignIdentity(row.ID)
}

// GetAllBooks returns every stored book ordered by id. Never returns a nil slice.
func (r *Repository) GetAllBooks() ([]entities.Book, error) {
	var rows []bookRow
	if err := r.db.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load books: %w", err)
	}

	result := make([]entities.Book, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toBook())
	}
	return result, nil
}

// GetBookByID retrieves a single book.
func (r *Repository) GetBookByID(id uint) (*entities.Book, error) {
	var row bookRow
	err := r.db.First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: id %d", ErrBookNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load book %d: %w", id, err)
	}

	book := row.toBook()
	return &book, nil
}

// UpdateBook overwrites the stored fields of an existing book.
// Updating an id that is not stored is a no-op.
func (r *Repository) UpdateBook(book *entities.Book) error {
	id, ok := book.Identity.Value()
	if !ok {
		return fmt.Errorf("cannot update book: %w", entities.ErrIdentityUnassigned)
	}
	if err := book.Validate(); err != nil {
		return err
	}

	// A map forces zero values like year 0 to be written too.
	err := r.db.Model(&bookRow{}).Where("id = ?", id).Updates(map[string]any{
		"title":  book.Title,
		"author": book.Author,
		"year":   book.Year,
		"genre":  book.Genre,
	}).Error
	if err != nil {
		return fmt.Errorf("failed to update book %d: %w", id, err)
	}
	return nil
}

// DeleteBook removes a book. Deleting an id that is not stored is a no-op.
func (r *Repository) DeleteBook(id uint) error {
	if err := r.db.Delete(&bookRow{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete book %d: %w", id, err)
	}
	return nil
}
