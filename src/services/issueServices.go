package services

import (
	"errors"
	"time"

	"github.com/BiblioDesk/BiblioDesk-Backend/src/dtos"
	"github.com/BiblioDesk/BiblioDesk-Backend/src/models"
	"gorm.io/gorm"
)

const (
	// LoanPeriodDays is the fixed loan period; the due date is always the
	// issue date plus this many days.
	LoanPeriodDays = 15

	// FinePerDay is the penalty, in rupees, per whole day past the due date.
	FinePerDay = 10
)

type IssueService struct {
	db          *gorm.DB
	bookService *BookService // optional, to invalidate listing caches on flag flips
	now         func() time.Time
}

// NewIssueService creates a new instance of IssueService.
// bookService may be nil when no cache invalidation is needed.
func NewIssueService(db *gorm.DB, bookService *BookService) *IssueService {
	return &IssueService{
		db:          db,
		bookService: bookService,
		now:         time.Now,
	}
}

// dateOnly drops the time-of-day component and pins the calendar date to UTC,
// so values parsed from requests and values taken from the server clock
// compare on dates rather than instants. A return at 23:59 on the due date is
// not late.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// LateFine computes the penalty for a return on returnDate against dueDate.
// Both are treated as calendar dates; a partial day counts as a whole one.
func LateFine(dueDate, returnDate time.Time) int {
	due := dateOnly(dueDate)
	ret := dateOnly(returnDate)
	if !ret.After(due) {
		return 0
	}

	daysLate := int(ret.Sub(due).Hours()+23) / 24
	return daysLate * FinePerDay
}

// CreateIssue opens a loan: it verifies both referenced rows and the book's
// availability, inserts the Issue with dueDate = issueDate + 15 days, and
// marks the book unavailable. All three steps commit or roll back together.
func (s *IssueService) CreateIssue(bookId, memberId int, issueDate time.Time) (*models.IssueModel, error) {
	issue := models.IssueModel{
		BookId:    bookId,
		MemberId:  memberId,
		IssueDate: dateOnly(issueDate),
		DueDate:   dateOnly(issueDate).AddDate(0, 0, LoanPeriodDays),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var book models.BookModel
		if err := tx.First(&book, bookId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookNotFound
			}
			return err
		}
		if book.Availability != nil && !*book.Availability {
			return ErrBookUnavailable
		}

		var member models.MemberModel
		if err := tx.First(&member, memberId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMemberNotFound
			}
			return err
		}

		if err := tx.Create(&issue).Error; err != nil {
			return err
		}

		return tx.Model(&models.BookModel{}).
			Where("id = ?", bookId).
			Update("availability", false).Error
	})

	if err != nil {
		return nil, err
	}

	if s.bookService != nil {
		s.bookService.InvalidateListCaches()
	}

	return &issue, nil
}

// GetAllIssues retrieves every open loan joined with its book title and
// member name.
func (s *IssueService) GetAllIssues() ([]dtos.IssueSummaryDTO, error) {
	var issues []models.IssueModel
	result := s.db.
		Preload("Book").
		Preload("Member").
		Find(&issues)
	if result.Error != nil {
		return nil, result.Error
	}

	summaries := make([]dtos.IssueSummaryDTO, 0, len(issues))
	for _, issue := range issues {
		summary := dtos.IssueSummaryDTO{
			IssueId:   issue.Id,
			BookId:    issue.BookId,
			MemberId:  issue.MemberId,
			IssueDate: issue.IssueDate.Format(time.DateOnly),
			DueDate:   issue.DueDate.Format(time.DateOnly),
		}
		if issue.Book != nil {
			summary.BookTitle = issue.Book.Title
		}
		if issue.Member != nil {
			summary.MemberName = issue.Member.Name
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// UpdateIssue rewrites an open loan's book, member and due date.
func (s *IssueService) UpdateIssue(id int, bookId, memberId int, dueDate time.Time) (*models.IssueModel, error) {
	var issue models.IssueModel
	if err := s.db.First(&issue, id).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"book_id":   bookId,
		"member_id": memberId,
		"due_date":  dateOnly(dueDate),
	}
	if err := s.db.Model(&issue).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := s.db.First(&issue, id).Error; err != nil {
		return nil, err
	}
	return &issue, nil
}

// ReturnBook closes a loan. Inside one transaction it loads the Issue,
// computes the fine against the server clock, inserts the archive row,
// deletes the Issue and marks the book available again. The archive insert
// stays ahead of the delete so a failure can never lose the loan record.
func (s *IssueService) ReturnBook(id int) (*models.ReturnModel, error) {
	var returned models.ReturnModel

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var issue models.IssueModel
		if err := tx.First(&issue, id).Error; err != nil {
			return err
		}

		today := dateOnly(s.now())
		returned = models.ReturnModel{
			IssueId:    issue.Id,
			BookId:     issue.BookId,
			MemberId:   issue.MemberId,
			ReturnDate: today,
			Fine:       LateFine(issue.DueDate, today),
		}

		if err := tx.Create(&returned).Error; err != nil {
			return err
		}

		if err := tx.Delete(&models.IssueModel{}, issue.Id).Error; err != nil {
			return err
		}

		return tx.Model(&models.BookModel{}).
			Where("id = ?", issue.BookId).
			Update("availability", true).Error
	})

	if err != nil {
		return nil, err
	}

	if s.bookService != nil {
		s.bookService.InvalidateListCaches()
	}

	return &returned, nil
}
