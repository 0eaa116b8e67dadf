package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/BiblioDesk/BiblioDesk-Backend/src/models"
	"github.com/BiblioDesk/BiblioDesk-Backend/src/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BookController struct {
	service *services.BookService
}

func NewBookController(service *services.BookService) *BookController {
	return &BookController{service: service}
}

// GetAllBooks handles GET requests to retrieve all book records
func (c *BookController) GetAllBooks(ctx *gin.Context) {
	books, err := c.service.GetAllBooks()
	if err != nil {
		log.Printf("Error fetching books: %v\n", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch books"})
		return
	}
	ctx.JSON(http.StatusOK, books)
}

// GetAvailableBooks handles GET requests to retrieve books currently on the shelf
func (c *BookController) GetAvailableBooks(ctx *gin.Context) {
	books, err := c.service.GetAvailableBooks()
	if err != nil {
		log.Printf("Error fetching available books: %v\n", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch books"})
		return
	}
	ctx.JSON(http.StatusOK, books)
}

// SearchBooks handles GET requests to search books by a title fragment
func (c *BookController) SearchBooks(ctx *gin.Context) {
	books, err := c.service.SearchBooksByTitle(ctx.Param("title"))
	if err != nil {
		log.Printf("Error searching books: %v\n", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search data"})
		return
	}
	ctx.JSON(http.StatusOK, books)
}

// CreateBook handles POST requests to add a new book to the catalog
func (c *BookController) CreateBook(ctx *gin.Context) {
	var book models.BookModel
	if err := ctx.ShouldBindJSON(&book); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := c.service.CreateBook(&book)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Title and ISBN are required"})
		case errors.Is(err, services.ErrDuplicateISBN):
			ctx.JSON(http.StatusBadRequest, gin.H{"message": "ISBN already exists. Book not added."})
		default:
			log.Printf("Error inserting book: %v\n", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add book"})
		}
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Book added successfully", "bookId": created.Id})
}

// UpdateBook handles PUT requests to update an existing book record
func (c *BookController) UpdateBook(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
		return
	}

	var book models.BookModel
	if err := ctx.ShouldBindJSON(&book); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := c.service.UpdateBook(id, &book); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
			return
		}
		log.Printf("Error updating book: %v\n", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update book"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Book updated successfully"})
}

// DeleteBook handles DELETE requests to remove a book from the catalog
func (c *BookController) DeleteBook(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
		return
	}

	if err := c.service.DeleteBook(id); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		case errors.Is(err, services.ErrBookOnLoan):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Printf("Error deleting book: %v\n", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete book"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Book deleted successfully"})
}

// ImportBooks handles POST requests with an .xlsx upload to bulk-load the catalog
func (c *BookController) ImportBooks(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "An .xlsx file upload named 'file' is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening upload: %v\n", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}
	defer file.Close()

	result, err := c.service.ImportBooksFromExcel(file)
	if err != nil {
		log.Printf("Error importing books: %v\n", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Failed to import books"})
		return
	}

	ctx.JSON(http.StatusCreated, result)
}
