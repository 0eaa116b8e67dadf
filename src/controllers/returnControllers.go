package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/BiblioDesk/BiblioDesk-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type ReturnController struct {
	service *services.ReturnService
}

func NewReturnController(service *services.ReturnService) *ReturnController {
	return &ReturnController{service: service}
}

// GetAllReturns handles GET requests to list the full returns archive
func (c *ReturnController) GetAllReturns(ctx *gin.Context) {
	returns, err := c.service.GetAllReturns()
	if err != nil {
		log.Printf("Error fetching returned books: %v\n", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch returned books"})
		return
	}
	ctx.JSON(http.StatusOK, returns)
}

// GetReturnsByMember handles GET requests to list one member's returns
func (c *ReturnController) GetReturnsByMember(ctx *gin.Context) {
	memberId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	returns, err := c.service.GetReturnsByMemberID(memberId)
	if err != nil {
		log.Printf("Error fetching member returns: %v\n", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search data"})
		return
	}
	ctx.JSON(http.StatusOK, returns)
}
