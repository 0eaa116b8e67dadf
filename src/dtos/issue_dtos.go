package dtos

// IssueSummaryDTO is one row of the open-loan listing: Issue joined with the
// book title and member name, dates rendered as YYYY-MM-DD.
type IssueSummaryDTO struct {
	IssueId    int    `json:"issueId"`
	BookId     int    `json:"bookId"`
	BookTitle  string `json:"bookTitle"`
	MemberId   int    `json:"memberId"`
	MemberName string `json:"memberName"`
	IssueDate  string `json:"issueDate"`
	DueDate    string `json:"dueDate"`
}

// IssueRequestDTO is the body of POST /api/issues. IssueDate arrives as a
// YYYY-MM-DD string; the due date is computed server-side.
type IssueRequestDTO struct {
	BookId    int    `json:"bookId"`
	MemberId  int    `json:"memberId"`
	IssueDate string `json:"issueDate"`
}

// IssueUpdateDTO is the body of PUT /api/issues/:id.
type IssueUpdateDTO struct {
	BookId   int    `json:"bookId"`
	MemberId int    `json:"memberId"`
	DueDate  string `json:"dueDate"`
}
