package routes

import (
	"github.com/BiblioDesk/BiblioDesk-Backend/src/controllers"
	"github.com/BiblioDesk/BiblioDesk-Backend/src/middleware"
	"github.com/BiblioDesk/BiblioDesk-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(router *gin.Engine, service *services.UserService) {
	UserController := controllers.NewUserController(service)

	// Public routes
	router.POST("/api/login", UserController.AuthenticateUser)
	router.POST("/api/register", UserController.CreateUser)
	router.GET("/api/users", UserController.GetAllUsers)

	// Protected routes
	users := router.Group("/api/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.DELETE("/:id", UserController.DeleteUser)
	}
}
