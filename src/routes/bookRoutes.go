package routes

import (
	"github.com/BiblioDesk/BiblioDesk-Backend/src/controllers"
	"github.com/BiblioDesk/BiblioDesk-Backend/src/middleware"
	"github.com/BiblioDesk/BiblioDesk-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupBookRoutes(router *gin.Engine, service *services.BookService, authEnabled bool) {
	controller := controllers.NewBookController(service)

	// Public read routes
	reads := router.Group("/api")
	{
		reads.GET("/books", controller.GetAllBooks)
		reads.GET("/available-books", controller.GetAvailableBooks)
		reads.GET("/books/search/:title", controller.SearchBooks)
		reads.GET("/books/:title", controller.SearchBooks)
	}

	// Mutating routes, token-guarded when auth is enabled
	writes := router.Group("/api")
	if authEnabled {
		writes.Use(middleware.AuthMiddleware())
	}
	{
		writes.POST("/books", controller.CreateBook)
		writes.POST("/books/import", controller.ImportBooks)
		writes.PUT("/books/:id", controller.UpdateBook)
		writes.DELETE("/books/:id", controller.DeleteBook)
	}
}
