package services

import (
	"time"

	"github.com/BiblioDesk/BiblioDesk-Backend/src/dtos"
	"github.com/BiblioDesk/BiblioDesk-Backend/src/models"
	"gorm.io/gorm"
)

type ReturnService struct {
	db *gorm.DB
}

// NewReturnService creates a new instance of ReturnService
func NewReturnService(db *gorm.DB) *ReturnService {
	return &ReturnService{db: db}
}

// GetAllReturns retrieves the full returns archive joined with book titles
// and member names.
func (s *ReturnService) GetAllReturns() ([]dtos.ReturnSummaryDTO, error) {
	return s.listReturns(s.db)
}

// GetReturnsByMemberID retrieves the archive rows for a single member.
func (s *ReturnService) GetReturnsByMemberID(memberId int) ([]dtos.ReturnSummaryDTO, error) {
	return s.listReturns(s.db.Where("member_id = ?", memberId))
}

func (s *ReturnService) listReturns(query *gorm.DB) ([]dtos.ReturnSummaryDTO, error) {
	var returns []models.ReturnModel
	result := query.
		Preload("Book").
		Preload("Member").
		Find(&returns)
	if result.Error != nil {
		return nil, result.Error
	}

	summaries := make([]dtos.ReturnSummaryDTO, 0, len(returns))
	for _, ret := range returns {
		summary := dtos.ReturnSummaryDTO{
			ReturnId:   ret.Id,
			IssueId:    ret.IssueId,
			BookId:     ret.BookId,
			MemberId:   ret.MemberId,
			ReturnDate: ret.ReturnDate.Format(time.DateOnly),
			Fine:       ret.Fine,
		}
		if ret.Book != nil {
			summary.BookTitle = ret.Book.Title
		}
		if ret.Member != nil {
			summary.MemberName = ret.Member.Name
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}
