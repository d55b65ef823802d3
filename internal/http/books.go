package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/catalog"
	"github.com/mrlokans/bookshelf/internal/entities"
)

// BookRequest is the body accepted by create and update. Year may be sent as
// a JSON number or as a numeric string.
type BookRequest struct {
	Title  string      `json:"title" form:"title"`
	Author string      `json:"author" form:"author"`
	Year   json.Number `json:"year" form:"year"`
	Genre  string      `json:"genre" form:"genre"`
}

func (r BookRequest) form() (catalog.Form, error) {
	return catalog.ParseForm(r.Title, r.Author, r.Year.String(), r.Genre)
}

type BooksResponse struct {
	Books []entities.Book `json:"books"`
	Count int             `json:"count"`
}

type BooksController struct {
	catalog *catalog.Service
}

func NewBooksController(svc *catalog.Service) *BooksController {
	return &BooksController{catalog: svc}
}

// GetAllBooks lists the catalog
// GET /api/books
func (bc *BooksController) GetAllBooks(c *gin.Context) {
	books, err := bc.catalog.List()
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	c.IndentedJSON(http.StatusOK, BooksResponse{Books: books, Count: len(books)})
}

// GetBook returns a single book
// GET /api/books/:id
func (bc *BooksController) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := bc.catalog.Get(id)
	if errors.Is(err, catalog.ErrBookNotFound) {
		respondNotFound(c, "book")
		return
	}
	if err != nil {
		respondInternalError(c, err, "get book")
		return
	}
	c.IndentedJSON(http.StatusOK, book)
}

// CreateBook adds a book
// POST /api/books
func (bc *BooksController) CreateBook(c *gin.Context) {
	var req BookRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	form, err := req.form()
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	book, err := bc.catalog.Add(form)
	if catalog.IsUserError(err) {
		respondBadRequest(c, err.Error())
		return
	}
	if err != nil {
		respondInternalError(c, err, "create book")
		return
	}
	respondCreated(c, book)
}

// UpdateBook overwrites all fields of a book
// PUT /api/books/:id
func (bc *BooksController) UpdateBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req BookRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	form, err := req.form()
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	book, err := bc.catalog.Update(id, form)
	switch {
	case errors.Is(err, catalog.ErrBookNotFound):
		respondNotFound(c, "book")
	case catalog.IsUserError(err):
		respondBadRequest(c, err.Error())
	case err != nil:
		respondInternalError(c, err, "update book")
	default:
		c.IndentedJSON(http.StatusOK, book)
	}
}

// DeleteBook removes a book; unknown ids succeed
// DELETE /api/books/:id
func (bc *BooksController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := bc.catalog.Remove(id); err != nil {
		respondInternalError(c, err, "delete book")
		return
	}
	respondSuccess(c, "Book removed")
}
