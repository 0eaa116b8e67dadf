package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/BiblioDesk/BiblioDesk-Backend/src/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "library.db")), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.BookModel{},
		&models.MemberModel{},
		&models.IssueModel{},
		&models.ReturnModel{},
		&models.UserModel{},
	))

	return db
}

func createBook(t *testing.T, svc *BookService, title, isbn string) *models.BookModel {
	t.Helper()

	book, err := svc.CreateBook(&models.BookModel{Title: title, ISBN: isbn})
	require.NoError(t, err)
	return book
}

func createMember(t *testing.T, svc *MemberService, name, contact string) *models.MemberModel {
	t.Helper()

	member, err := svc.CreateMember(&models.MemberModel{Name: name, Contact: contact})
	require.NoError(t, err)
	return member
}

func date(value string) time.Time {
	d, err := time.Parse(time.DateOnly, value)
	if err != nil {
		panic(err)
	}
	return d
}
