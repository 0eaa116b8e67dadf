package routes

import (
	"github.com/BiblioDesk/BiblioDesk-Backend/src/controllers"
	"github.com/BiblioDesk/BiblioDesk-Backend/src/middleware"
	"github.com/BiblioDesk/BiblioDesk-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupMemberRoutes(router *gin.Engine, service *services.MemberService, authEnabled bool) {
	controller := controllers.NewMemberController(service)

	router.GET("/api/members", controller.GetAllMembers)

	writes := router.Group("/api")
	if authEnabled {
		writes.Use(middleware.AuthMiddleware())
	}
	{
		writes.POST("/members", controller.CreateMember)
		writes.PUT("/members/:id", controller.UpdateMember)
		writes.DELETE("/members/:id", controller.DeleteMember)
	}
}
