package routes

import (
	"github.com/BiblioDesk/BiblioDesk-Backend/src/controllers"
	"github.com/BiblioDesk/BiblioDesk-Backend/src/middleware"
	"github.com/BiblioDesk/BiblioDesk-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupIssueRoutes(router *gin.Engine, service *services.IssueService, authEnabled bool) {
	controller := controllers.NewIssueController(service)

	router.GET("/api/issues", controller.GetAllIssues)

	writes := router.Group("/api")
	if authEnabled {
		writes.Use(middleware.AuthMiddleware())
	}
	{
		writes.POST("/issues", controller.CreateIssue)
		writes.PUT("/issues/:id", controller.UpdateIssue)
		// Returning a book is modeled as deleting its open issue.
		writes.DELETE("/issues/:id", controller.ReturnBook)
	}
}
