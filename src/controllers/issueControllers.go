package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/BiblioDesk/BiblioDesk-Backend/src/dtos"
	"github.com/BiblioDesk/BiblioDesk-Backend/src/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type IssueController struct {
	service *services.IssueService
}

func NewIssueController(service *services.IssueService) *IssueController {
	return &IssueController{service: service}
}

// CreateIssue handles POST requests to issue a book to a member
func (c *IssueController) CreateIssue(ctx *gin.Context) {
	var req dtos.IssueRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.BookId == 0 || req.MemberId == 0 || req.IssueDate == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Book ID, Member ID, and Issue Date are required"})
		return
	}

	issueDate, err := time.Parse(time.DateOnly, req.IssueDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Issue Date must be formatted as YYYY-MM-DD"})
		return
	}

	issue, err := c.service.CreateIssue(req.BookId, req.MemberId, issueDate)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBookNotFound),
			errors.Is(err, services.ErrMemberNotFound),
			errors.Is(err, services.ErrBookUnavailable):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Printf("Error issuing book: %v\n", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue book"})
		}
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Book issued successfully", "issueId": issue.Id})
}

// GetAllIssues handles GET requests to list all open loans joined with book
// titles and member names
func (c *IssueController) GetAllIssues(ctx *gin.Context) {
	issues, err := c.service.GetAllIssues()
	if err != nil {
		log.Printf("Error fetching issues: %v\n", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch issues"})
		return
	}
	ctx.JSON(http.StatusOK, issues)
}

// UpdateIssue handles PUT requests to edit an open loan
func (c *IssueController) UpdateIssue(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return
	}

	var req dtos.IssueUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dueDate, err := time.Parse(time.DateOnly, req.DueDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Due Date must be formatted as YYYY-MM-DD"})
		return
	}

	if _, err := c.service.UpdateIssue(id, req.BookId, req.MemberId, dueDate); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
			return
		}
		log.Printf("Error updating issue: %v\n", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update issue"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Issue updated successfully"})
}

// ReturnBook handles DELETE requests to close a loan: the issue row is
// archived as a return record and the fine, if any, is reported back
func (c *IssueController) ReturnBook(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return
	}

	returned, err := c.service.ReturnBook(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
			return
		}
		log.Printf("Error returning book: %v\n", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to return book"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Book returned successfully! Fine: Rs.%d", returned.Fine),
		"fine":    returned.Fine,
	})
}
