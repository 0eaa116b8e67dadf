package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestLateFine(t *testing.T) {
	due := date("2024-01-16")

	testCases := []struct {
		name       string
		returnDate time.Time
		expected   int
	}{
		{"before due date", date("2024-01-10"), 0},
		{"on due date", date("2024-01-16"), 0},
		{"one day late", date("2024-01-17"), 10},
		{"ten days late", date("2024-01-26"), 100},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LateFine(due, tt.returnDate))
		})
	}
}

func TestLateFineIgnoresTimeOfDay(t *testing.T) {
	due := date("2024-01-16")

	// 23:59 on the due date is still on time.
	onTime := due.Add(23*time.Hour + 59*time.Minute)
	assert.Equal(t, 0, LateFine(due, onTime))

	// Any time on the next day counts as one whole day late.
	late := due.AddDate(0, 0, 1).Add(10 * time.Hour)
	assert.Equal(t, FinePerDay, LateFine(due, late))
}

func TestCreateIssueSetsDueDateAndFlipsAvailability(t *testing.T) {
	db := newTestDB(t)
	books := NewBookService(db)
	members := NewMemberService(db)
	issues := NewIssueService(db, books)

	book := createBook(t, books, "Dune", "isbn-1")
	member := createMember(t, members, "Paul", "555-0100")

	issue, err := issues.CreateIssue(book.Id, member.Id, date("2024-01-01"))
	require.NoError(t, err)
	assert.Equal(t, "2024-01-16", issue.DueDate.Format(time.DateOnly))

	updated, err := books.GetBookByID(book.Id)
	require.NoError(t, err)
	require.NotNil(t, updated.Availability)
	assert.False(t, *updated.Availability)
}

func TestCreateIssueRejectsUnavailableBook(t *testing.T) {
	db := newTestDB(t)
	books := NewBookService(db)
	members := NewMemberService(db)
	issues := NewIssueService(db, books)

	book := createBook(t, books, "Dune", "isbn-1")
	member := createMember(t, members, "Paul", "555-0100")
	other := createMember(t, members, "Leto", "555-0101")

	_, err := issues.CreateIssue(book.Id, member.Id, date("2024-01-01"))
	require.NoError(t, err)

	_, err = issues.CreateIssue(book.Id, other.Id, date("2024-01-02"))
	assert.ErrorIs(t, err, ErrBookUnavailable)

	// The failed attempt must not leave a second open issue.
	open, err := issues.GetAllIssues()
	require.NoError(t, err)
	assert.Len(t, open, 1)
}

func TestCreateIssueRejectsUnknownReferences(t *testing.T) {
	db := newTestDB(t)
	books := NewBookService(db)
	members := NewMemberService(db)
	issues := NewIssueService(db, books)

	book := createBook(t, books, "Dune", "isbn-1")
	member := createMember(t, members, "Paul", "555-0100")

	_, err := issues.CreateIssue(999, member.Id, date("2024-01-01"))
	assert.ErrorIs(t, err, ErrBookNotFound)

	_, err = issues.CreateIssue(book.Id, 999, date("2024-01-01"))
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestGetAllIssuesJoinsTitleAndName(t *testing.T) {
	db := newTestDB(t)
	books := NewBookService(db)
	members := NewMemberService(db)
	issues := NewIssueService(db, books)

	book := createBook(t, books, "Dune", "isbn-1")
	member := createMember(t, members, "Paul", "555-0100")
	issue, err := issues.CreateIssue(book.Id, member.Id, date("2024-01-01"))
	require.NoError(t, err)

	summaries, err := issues.GetAllIssues()
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	assert.Equal(t, issue.Id, summaries[0].IssueId)
	assert.Equal(t, "Dune", summaries[0].BookTitle)
	assert.Equal(t, "Paul", summaries[0].MemberName)
	assert.Equal(t, "2024-01-01", summaries[0].IssueDate)
	assert.Equal(t, "2024-01-16", summaries[0].DueDate)
}

func TestReturnBookClosesLoan(t *testing.T) {
	db := newTestDB(t)
	books := NewBookService(db)
	members := NewMemberService(db)
	issues := NewIssueService(db, books)
	returns := NewReturnService(db)

	book := createBook(t, books, "Dune", "isbn-1")
	member := createMember(t, members, "Paul", "555-0100")
	issue, err := issues.CreateIssue(book.Id, member.Id, date("2024-01-01"))
	require.NoError(t, err)

	// Return exactly on the due date.
	issues.now = func() time.Time { return date("2024-01-16") }

	returned, err := issues.ReturnBook(issue.Id)
	require.NoError(t, err)
	assert.Equal(t, 0, returned.Fine)
	assert.Equal(t, issue.Id, returned.IssueId)

	// The issue is gone, the archive row exists, the book is available again.
	open, err := issues.GetAllIssues()
	require.NoError(t, err)
	assert.Empty(t, open)

	archive, err := returns.GetAllReturns()
	require.NoError(t, err)
	require.Len(t, archive, 1)
	assert.Equal(t, issue.Id, archive[0].IssueId)
	assert.Equal(t, "Dune", archive[0].BookTitle)
	assert.Equal(t, "2024-01-16", archive[0].ReturnDate)

	updated, err := books.GetBookByID(book.Id)
	require.NoError(t, err)
	require.NotNil(t, updated.Availability)
	assert.True(t, *updated.Availability)
}

func TestReturnBookLateFines(t *testing.T) {
	testCases := []struct {
		name       string
		returnDate string
		expected   int
	}{
		{"on due date", "2024-01-16", 0},
		{"one day late", "2024-01-17", 10},
		{"ten days late", "2024-01-26", 100},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDB(t)
			books := NewBookService(db)
			members := NewMemberService(db)
			issues := NewIssueService(db, books)

			book := createBook(t, books, "Dune", "isbn-1")
			member := createMember(t, members, "Paul", "555-0100")
			issue, err := issues.CreateIssue(book.Id, member.Id, date("2024-01-01"))
			require.NoError(t, err)

			issues.now = func() time.Time { return date(tt.returnDate) }

			returned, err := issues.ReturnBook(issue.Id)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, returned.Fine)
		})
	}
}

func TestReturnBookTwiceReportsNotFound(t *testing.T) {
	db := newTestDB(t)
	books := NewBookService(db)
	members := NewMemberService(db)
	issues := NewIssueService(db, books)

	book := createBook(t, books, "Dune", "isbn-1")
	member := createMember(t, members, "Paul", "555-0100")
	issue, err := issues.CreateIssue(book.Id, member.Id, date("2024-01-01"))
	require.NoError(t, err)

	_, err = issues.ReturnBook(issue.Id)
	require.NoError(t, err)

	_, err = issues.ReturnBook(issue.Id)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateIssue(t *testing.T) {
	db := newTestDB(t)
	books := NewBookService(db)
	members := NewMemberService(db)
	issues := NewIssueService(db, books)

	book := createBook(t, books, "Dune", "isbn-1")
	member := createMember(t, members, "Paul", "555-0100")
	issue, err := issues.CreateIssue(book.Id, member.Id, date("2024-01-01"))
	require.NoError(t, err)

	updated, err := issues.UpdateIssue(issue.Id, book.Id, member.Id, date("2024-02-01"))
	require.NoError(t, err)
	assert.Equal(t, "2024-02-01", updated.DueDate.Format(time.DateOnly))

	_, err = issues.UpdateIssue(999, book.Id, member.Id, date("2024-02-01"))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetReturnsByMember(t *testing.T) {
	db := newTestDB(t)
	books := NewBookService(db)
	members := NewMemberService(db)
	issues := NewIssueService(db, books)
	returns := NewReturnService(db)

	book1 := createBook(t, books, "Dune", "isbn-1")
	book2 := createBook(t, books, "Hyperion", "isbn-2")
	paul := createMember(t, members, "Paul", "555-0100")
	leto := createMember(t, members, "Leto", "555-0101")

	issue1, err := issues.CreateIssue(book1.Id, paul.Id, date("2024-01-01"))
	require.NoError(t, err)
	issue2, err := issues.CreateIssue(book2.Id, leto.Id, date("2024-01-01"))
	require.NoError(t, err)

	_, err = issues.ReturnBook(issue1.Id)
	require.NoError(t, err)
	_, err = issues.ReturnBook(issue2.Id)
	require.NoError(t, err)

	all, err := returns.GetAllReturns()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := returns.GetReturnsByMemberID(paul.Id)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Paul", mine[0].MemberName)
	assert.Equal(t, "Dune", mine[0].BookTitle)
}
