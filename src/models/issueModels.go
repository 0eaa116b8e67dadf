package models

import "time"

// IssueModel is an open loan. It exists only while the book is out; returning
// the book archives it as a ReturnModel and deletes this row.
type IssueModel struct {
	Id        int          `json:"id" gorm:"primaryKey;autoIncrement"`
	BookId    int          `json:"bookId" gorm:"column:book_id;not null"`
	Book      *BookModel   `json:"book,omitempty" gorm:"foreignKey:BookId;references:Id"`
	MemberId  int          `json:"memberId" gorm:"column:member_id;not null"`
	Member    *MemberModel `json:"member,omitempty" gorm:"foreignKey:MemberId;references:Id"`
	IssueDate time.Time    `json:"issueDate" gorm:"type:date;not null"`
	DueDate   time.Time    `json:"dueDate" gorm:"type:date;not null"`
}
