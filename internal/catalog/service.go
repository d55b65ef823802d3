// Package catalog is the entry point presentation layers use to drive the
// book store: it parses form input, serializes access to the single store
// connection, and runs the load/add/update/remove flows.
package catalog

import (
	"errors"
	"fmt"
	"sync"

	"github.com/mrlokans/bookshelf/internal/database/books"
	"github.com/mrlokans/bookshelf/internal/entities"
)

// ErrBookNotFound is returned when a selected identity has no stored book.
var ErrBookNotFound = books.ErrBookNotFound

// Store is the data-access contract the catalog depends on.
type Store interface {
	InitSchema() error
	CreateBook(book *entities.Book) error
	GetAllBooks() ([]entities.Book, error)
	GetBookByID(id uint) (*entities.Book, error)
	UpdateBook(book *entities.Book) error
	DeleteBook(id uint) error
}

// Service wraps a Store. The store holds one connection, so every call is
// made under mu.
type Service struct {
	mu    sync.Mutex
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Load prepares the schema and returns the current catalog.
func (s *Service) Load() ([]entities.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.InitSchema(); err != nil {
		return nil, err
	}
	return s.list()
}

func (s *Service) List() ([]entities.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.list()
}

func (s *Service) list() ([]entities.Book, error) {
	result, err := s.store.GetAllBooks()
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = []entities.Book{}
	}
	return result, nil
}

func (s *Service) Get(id uint) (entities.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, err := s.store.GetBookByID(id)
	if err != nil {
		return entities.Book{}, err
	}
	return *book, nil
}

// Add stores a new book built from the form and returns it with its identity.
func (s *Service) Add(form Form) (entities.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book := form.newBook()
	if err := s.store.CreateBook(&book); err != nil {
		return entities.Book{}, err
	}
	return book, nil
}

// Update locates the book by identity, overwrites its fields with the form,
// and stores it.
func (s *Service) Update(id uint, form Form) (entities.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, err := s.store.GetBookByID(id)
	if err != nil {
		if errors.Is(err, ErrBookNotFound) {
			return entities.Book{}, fmt.Errorf("selected book %d: %w", id, ErrBookNotFound)
		}
		return entities.Book{}, err
	}

	form.applyTo(book)
	if err := s.store.UpdateBook(book); err != nil {
		return entities.Book{}, err
	}
	return *book, nil
}

// Remove deletes the book. Removing an unknown id is not an error.
func (s *Service) Remove(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.DeleteBook(id)
}
