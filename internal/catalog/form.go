package catalog

import (
	"errors"
	"strconv"
	"strings"

	"github.com/mrlokans/bookshelf/internal/entities"
)

var (
	ErrMissingFields = errors.New("all fields are required")
	ErrInvalidYear   = errors.New("year must be a number")
)

// Form holds user-supplied book fields after parsing.
type Form struct {
	Title  string
	Author string
	Year   int
	Genre  string
}

// ParseForm trims raw text input and checks it the way the entry form does:
// every field is required and year must be an integer.
func ParseForm(title, author, year, genre string) (Form, error) {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)
	year = strings.TrimSpace(year)
	genre = strings.TrimSpace(genre)

	if title == "" || author == "" || year == "" || genre == "" {
		return Form{}, ErrMissingFields
	}

	yearInt, err := strconv.Atoi(year)
	if err != nil {
		return Form{}, ErrInvalidYear
	}

	return Form{
		Title:  title,
		Author: author,
		Year:   yearInt,
		Genre:  genre,
	}, nil
}

func (f Form) newBook() entities.Book {
	return entities.NewBook(f.Title, f.Author, f.Year, f.Genre)
}

func (f Form) applyTo(book *entities.Book) {
	book.Title = f.Title
	book.Author = f.Author
	book.Year = f.Year
	book.Genre = f.Genre
}

// IsUserError reports whether err is caused by bad input rather than the store.
func IsUserError(err error) bool {
	return errors.Is(err, ErrMissingFields) ||
		errors.Is(err, ErrInvalidYear) ||
		errors.Is(err, entities.ErrInvalidBook)
}
