package services

import (
	"strings"

	"github.com/BiblioDesk/BiblioDesk-Backend/src/models"
	"gorm.io/gorm"
)

type MemberService struct {
	db *gorm.DB
}

// NewMemberService creates a new instance of MemberService
func NewMemberService(db *gorm.DB) *MemberService {
	return &MemberService{db: db}
}

// GetAllMembers retrieves all Member records from the database
func (s *MemberService) GetAllMembers() ([]models.MemberModel, error) {
	var members []models.MemberModel
	result := s.db.Find(&members)
	if result.Error != nil {
		return nil, result.Error
	}
	return members, nil
}

// GetMemberByID retrieves a Member record by its ID
func (s *MemberService) GetMemberByID(id int) (*models.MemberModel, error) {
	var member models.MemberModel
	result := s.db.First(&member, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &member, nil
}

// CreateMember creates a new Member record. Name and contact are required.
func (s *MemberService) CreateMember(member *models.MemberModel) (*models.MemberModel, error) {
	if strings.TrimSpace(member.Name) == "" || strings.TrimSpace(member.Contact) == "" {
		return nil, ErrMissingFields
	}

	result := s.db.Create(member)
	if result.Error != nil {
		return nil, result.Error
	}
	return member, nil
}

// UpdateMember updates an existing Member record
func (s *MemberService) UpdateMember(id int, updatedMember *models.MemberModel) (*models.MemberModel, error) {
	var member models.MemberModel
	result := s.db.First(&member, id)
	if result.Error != nil {
		return nil, result.Error
	}

	// Set the ID to ensure we update the correct record
	updatedMember.Id = id

	// Use Updates instead of replacing the whole object
	result = s.db.Model(&member).Updates(updatedMember)
	if result.Error != nil {
		return nil, result.Error
	}

	// Fetch the updated record
	result = s.db.First(&member, id)
	if result.Error != nil {
		return nil, result.Error
	}

	return &member, nil
}

// DeleteMember deletes a Member record by its ID. Deletion is restricted
// while the member still has open Issues.
func (s *MemberService) DeleteMember(id int) error {
	var member models.MemberModel
	if err := s.db.First(&member, id).Error; err != nil {
		return err
	}

	var openIssues int64
	if err := s.db.Model(&models.IssueModel{}).Where("member_id = ?", id).Count(&openIssues).Error; err != nil {
		return err
	}
	if openIssues > 0 {
		return ErrMemberHasLoans
	}

	result := s.db.Delete(&models.MemberModel{}, id)
	return result.Error
}
