package dtos

// ReturnSummaryDTO is one row of the returns archive listing. BookTitle and
// MemberName are blank when the referenced row was deleted after the return.
type ReturnSummaryDTO struct {
	ReturnId   int    `json:"returnId"`
	IssueId    int    `json:"issueId"`
	BookId     int    `json:"bookId"`
	BookTitle  string `json:"bookTitle"`
	MemberId   int    `json:"memberId"`
	MemberName string `json:"memberName"`
	ReturnDate string `json:"returnDate"`
	Fine       int    `json:"fine"`
}
