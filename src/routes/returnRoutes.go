package routes

import (
	"github.com/BiblioDesk/BiblioDesk-Backend/src/controllers"
	"github.com/BiblioDesk/BiblioDesk-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupReturnRoutes(router *gin.Engine, service *services.ReturnService) {
	controller := controllers.NewReturnController(service)

	// Archive rows are immutable, so only read routes exist.
	returns := router.Group("/api/returns")
	{
		returns.GET("", controller.GetAllReturns)
		returns.GET("/:id", controller.GetReturnsByMember)
	}
}
