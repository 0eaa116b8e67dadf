package services

import (
	"testing"

	"github.com/BiblioDesk/BiblioDesk-Backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateMemberValidation(t *testing.T) {
	svc := NewMemberService(newTestDB(t))

	_, err := svc.CreateMember(&models.MemberModel{Name: "Ada"})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.CreateMember(&models.MemberModel{Contact: "555-0100"})
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestMemberContactIsNotUnique(t *testing.T) {
	svc := NewMemberService(newTestDB(t))

	createMember(t, svc, "Ada", "555-0100")
	createMember(t, svc, "Alan", "555-0100")

	members, err := svc.GetAllMembers()
	require.NoError(t, err)
	assert.Len(t, members, 2)
}

func TestUpdateMember(t *testing.T) {
	svc := NewMemberService(newTestDB(t))

	member := createMember(t, svc, "Ada", "555-0100")

	updated, err := svc.UpdateMember(member.Id, &models.MemberModel{Name: "Ada Lovelace", Contact: "555-0199"})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", updated.Name)
	assert.Equal(t, "555-0199", updated.Contact)

	_, err = svc.UpdateMember(999, &models.MemberModel{Name: "Ghost"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteMemberRestrictedWithOpenIssues(t *testing.T) {
	db := newTestDB(t)
	books := NewBookService(db)
	members := NewMemberService(db)
	issues := NewIssueService(db, books)

	book := createBook(t, books, "Dune", "isbn-1")
	member := createMember(t, members, "Paul", "555-0100")
	issue, err := issues.CreateIssue(book.Id, member.Id, date("2024-01-01"))
	require.NoError(t, err)

	err = members.DeleteMember(member.Id)
	assert.ErrorIs(t, err, ErrMemberHasLoans)

	// Returning the book lifts the restriction.
	_, err = issues.ReturnBook(issue.Id)
	require.NoError(t, err)

	assert.NoError(t, members.DeleteMember(member.Id))

	err = members.DeleteMember(member.Id)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
