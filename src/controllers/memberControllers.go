package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/BiblioDesk/BiblioDesk-Backend/src/models"
	"github.com/BiblioDesk/BiblioDesk-Backend/src/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MemberController struct {
	service *services.MemberService
}

func NewMemberController(service *services.MemberService) *MemberController {
	return &MemberController{service: service}
}

// GetAllMembers handles GET requests to retrieve all member records
func (c *MemberController) GetAllMembers(ctx *gin.Context) {
	members, err := c.service.GetAllMembers()
	if err != nil {
		log.Printf("Error fetching members: %v\n", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch members"})
		return
	}
	ctx.JSON(http.StatusOK, members)
}

// CreateMember handles POST requests to register a new member
func (c *MemberController) CreateMember(ctx *gin.Context) {
	var member models.MemberModel
	if err := ctx.ShouldBindJSON(&member); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := c.service.CreateMember(&member)
	if err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Name and Contact are required"})
			return
		}
		log.Printf("Error inserting member: %v\n", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add member"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Member added successfully", "memberId": created.Id})
}

// UpdateMember handles PUT requests to update an existing member record
func (c *MemberController) UpdateMember(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	var member models.MemberModel
	if err := ctx.ShouldBindJSON(&member); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := c.service.UpdateMember(id, &member); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
			return
		}
		log.Printf("Error updating member: %v\n", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update member"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Member updated successfully"})
}

// DeleteMember handles DELETE requests to remove a member
func (c *MemberController) DeleteMember(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	if err := c.service.DeleteMember(id); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		case errors.Is(err, services.ErrMemberHasLoans):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Printf("Error deleting member: %v\n", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete member"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Member deleted successfully"})
}
