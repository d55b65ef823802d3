package entities

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidBook = errors.New("invalid book")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return strings.ToLower(field.Name)
		}
		return name
	})
	return v
}

// Book is a single catalog entry.
type Book struct {
	Identity Identity `json:"id" yaml:"id"`
	Title    string   `json:"title" yaml:"title" validate:"required"`
	Author   string   `json:"author" yaml:"author" validate:"required"`
	Year     int      `json:"year" yaml:"year"`
	Genre    string   `json:"genre" yaml:"genre" validate:"required"`
}

// NewBook builds a book that has not been persisted yet.
func NewBook(title, author string, year int, genre string) Book {
	return Book{
		Identity: Unassigned(),
		Title:    title,
		Author:   author,
		Year:     year,
		Genre:    genre,
	}
}

// AssignIdentity records the id issued by the store. It may succeed only once.
func (b *Book) AssignIdentity(id uint) error {
	if b.Identity.IsAssigned() {
		return fmt.Errorf("%w: book %s", ErrIdentityAssigned, b.Identity)
	}
	if id == 0 {
		return ErrInvalidIdentity
	}
	b.Identity = Assigned(id)
	return nil
}

// Validate checks that all text fields are present.
func (b Book) Validate() error {
	err := validate.Struct(b)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidBook, err)
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, fe.Field()+" is "+fe.Tag())
	}
	return fmt.Errorf("%w: %s", ErrInvalidBook, strings.Join(problems, ", "))
}

func (b Book) String() string {
	return fmt.Sprintf("Book: %s, Title: %s, Author: %s, Year: %d, Genre: %s",
		b.Identity, b.Title, b.Author, b.Year, b.Genre)
}

// GoString renders the book as a Go literal, used by %#v.
func (b Book) GoString() string {
	identity := "entities.Unassigned()"
	if id, ok := b.Identity.Value(); ok {
		identity = fmt.Sprintf("entities.Assigned(%d)", id)
	}
	return fmt.Sprintf("entities.Book{Identity: %s, Title: %q, Author: %q, Year: %d, Genre: %q}",
		identity, b.Title, b.Author, b.Year, b.Genre)
}
