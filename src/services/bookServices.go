package services

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/BiblioDesk/BiblioDesk-Backend/src/dtos"
	"github.com/BiblioDesk/BiblioDesk-Backend/src/models"
	excelize "github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// Cache entry
type CacheEntry struct {
	Data      interface{}
	ExpiresAt time.Time
}

type BookService struct {
	db    *gorm.DB
	cache map[string]*CacheEntry
	mutex sync.RWMutex
}

func NewBookService(db *gorm.DB) *BookService {
	service := &BookService{
		db:    db,
		cache: make(map[string]*CacheEntry),
	}

	// Clean up cache every 30 minutes
	go service.cleanupCache()

	return service
}

func (s *BookService) cleanupCache() {
	ticker := time.NewTicker(30 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mutex.Lock()
		now := time.Now()
		for key, entry := range s.cache {
			if now.After(entry.ExpiresAt) {
				delete(s.cache, key)
			}
		}
		s.mutex.Unlock()
	}
}

func (s *BookService) setCache(key string, data interface{}, duration time.Duration) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.cache[key] = &CacheEntry{
		Data:      data,
		ExpiresAt: time.Now().Add(duration),
	}
}

func (s *BookService) getCache(key string) (interface{}, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	entry, exists := s.cache[key]
	if !exists || time.Now().After(entry.ExpiresAt) {
		return nil, false
	}

	return entry.Data, true
}

func (s *BookService) invalidateCache(keys ...string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, key := range keys {
		delete(s.cache, key)
	}
}

// InvalidateListCaches drops the cached book listings. The loan workflow
// calls this whenever it flips an availability flag.
func (s *BookService) InvalidateListCaches() {
	s.invalidateCache("all_books", "available_books")
}

// GetAllBooks retrieves all Book records from the database
func (s *BookService) GetAllBooks() ([]models.BookModel, error) {
	if cached, found := s.getCache("all_books"); found {
		return cached.([]models.BookModel), nil
	}

	var books []models.BookModel
	err := s.db.Find(&books).Error
	if err == nil {
		s.setCache("all_books", books, 5*time.Minute)
	}

	return books, err
}

// GetAvailableBooks retrieves only the books whose availability flag is set
func (s *BookService) GetAvailableBooks() ([]models.BookModel, error) {
	if cached, found := s.getCache("available_books"); found {
		return cached.([]models.BookModel), nil
	}

	var books []models.BookModel
	err := s.db.Where("availability = ?", true).Find(&books).Error
	if err == nil {
		s.setCache("available_books", books, 5*time.Minute)
	}

	return books, err
}

// SearchBooksByTitle returns all books whose title contains the fragment,
// matched case-insensitively and unanchored.
func (s *BookService) SearchBooksByTitle(fragment string) ([]models.BookModel, error) {
	var books []models.BookModel
	pattern := "%" + strings.ToLower(fragment) + "%"
	result := s.db.Where("LOWER(title) LIKE ?", pattern).Find(&books)
	return books, result.Error
}

// GetBookByID retrieves a Book record by its ID
func (s *BookService) GetBookByID(id int) (*models.BookModel, error) {
	var book models.BookModel
	result := s.db.First(&book, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &book, nil
}

// CreateBook creates a new Book record. Title and ISBN are required, the
// ISBN must not collide with an existing row, and availability defaults to
// true when the caller does not supply it.
func (s *BookService) CreateBook(book *models.BookModel) (*models.BookModel, error) {
	if strings.TrimSpace(book.Title) == "" || strings.TrimSpace(book.ISBN) == "" {
		return nil, ErrMissingFields
	}

	var existing models.BookModel
	err := s.db.Where("isbn = ?", book.ISBN).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateISBN
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if book.Availability == nil {
		available := true
		book.Availability = &available
	}

	if err := s.db.Create(book).Error; err != nil {
		return nil, err
	}

	s.InvalidateListCaches()
	return book, nil
}

// UpdateBook updates an existing Book record
func (s *BookService) UpdateBook(id int, updatedBook *models.BookModel) (*models.BookModel, error) {
	var book models.BookModel
	if err := s.db.First(&book, id).Error; err != nil {
		return nil, err
	}

	updatedBook.Id = id
	if err := s.db.Model(&book).Updates(updatedBook).Error; err != nil {
		return nil, err
	}

	if err := s.db.First(&book, id).Error; err != nil {
		return nil, err
	}

	s.InvalidateListCaches()
	return &book, nil
}

// DeleteBook deletes a Book record by its ID. Deletion is restricted while an
// open Issue references the book, so loans are never orphaned.
func (s *BookService) DeleteBook(id int) error {
	var book models.BookModel
	if err := s.db.First(&book, id).Error; err != nil {
		return err
	}

	var openIssues int64
	if err := s.db.Model(&models.IssueModel{}).Where("book_id = ?", id).Count(&openIssues).Error; err != nil {
		return err
	}
	if openIssues > 0 {
		return ErrBookOnLoan
	}

	if err := s.db.Delete(&models.BookModel{}, id).Error; err != nil {
		return err
	}

	s.InvalidateListCaches()
	return nil
}

// ImportBooksFromExcel bulk-loads catalog rows from an .xlsx upload. The
// first sheet is read with a Title/Author/Category/ISBN header row; rows
// missing title or ISBN, or colliding on ISBN, are skipped and reported.
func (s *BookService) ImportBooksFromExcel(r io.Reader) (*dtos.ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("invalid excel file: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("could not read sheet %s: %w", sheet, err)
	}

	result := &dtos.ImportResult{Imported: 0, Errors: []string{}}

	for i, row := range rows {
		// Header row and empty rows are skipped.
		if i == 0 || len(row) == 0 {
			continue
		}

		cell := func(idx int) string {
			if idx < len(row) {
				return strings.TrimSpace(row[idx])
			}
			return ""
		}

		title := cell(0)
		isbn := cell(3)
		if title == "" || isbn == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: title and ISBN are required", i+1))
			continue
		}

		book := models.BookModel{Title: title, ISBN: isbn}
		if author := cell(1); author != "" {
			book.Author = &author
		}
		if category := cell(2); category != "" {
			book.Category = &category
		}

		if _, err := s.CreateBook(&book); err != nil {
			if errors.Is(err, ErrDuplicateISBN) {
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: ISBN %s already exists", i+1, isbn))
				continue
			}
			return nil, err
		}
		result.Imported++
	}

	s.InvalidateListCaches()
	return result, nil
}
