package models

import "time"

// ReturnModel is the append-only archive row created when a loan closes.
// Rows are never updated or deleted once written.
type ReturnModel struct {
	Id         int          `json:"id" gorm:"primaryKey;autoIncrement"`
	IssueId    int          `json:"issueId" gorm:"column:issue_id;not null"`
	BookId     int          `json:"bookId" gorm:"column:book_id;not null"`
	Book       *BookModel   `json:"book,omitempty" gorm:"foreignKey:BookId;references:Id"`
	MemberId   int          `json:"memberId" gorm:"column:member_id;not null"`
	Member     *MemberModel `json:"member,omitempty" gorm:"foreignKey:MemberId;references:Id"`
	ReturnDate time.Time    `json:"returnDate" gorm:"type:date;not null"`
	Fine       int          `json:"fine" gorm:"not null"`
}
