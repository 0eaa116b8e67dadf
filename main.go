package main

import (
	"log"
	"os"

	"github.com/BiblioDesk/BiblioDesk-Backend/src/db"
	"github.com/BiblioDesk/BiblioDesk-Backend/src/middleware"
	"github.com/BiblioDesk/BiblioDesk-Backend/src/models"
	"github.com/BiblioDesk/BiblioDesk-Backend/src/routes"
	"github.com/BiblioDesk/BiblioDesk-Backend/src/seed"
	"github.com/BiblioDesk/BiblioDesk-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func main() {

	// Database connection
	db, err := db.Connect()
	if err != nil {
		log.Fatalf("Error connecting to database: %v\n", err)
	}

	// Auto-migrate models
	if err := db.AutoMigrate(
		&models.BookModel{},
		&models.MemberModel{},
		&models.IssueModel{},
		&models.ReturnModel{},
		&models.UserModel{},
	); err != nil {
		log.Fatalf("Error during auto-migration: %v\n", err)
	}

	// Default staff account
	seed.Seed(db)

	// Port and host setup
	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = ":3000"
	}

	// Auth setup: mutating routes require a token only when enabled
	middleware.SetSecretKey(os.Getenv("JWT_SECRET"))
	authEnabled := os.Getenv("AUTH_ENABLED") == "true"

	// Gin router setup
	router := gin.Default()
	router.Use(middleware.SetupCORS())

	// Services setup
	bookService := services.NewBookService(db)
	memberService := services.NewMemberService(db)
	issueService := services.NewIssueService(db, bookService)
	returnService := services.NewReturnService(db)
	userService := services.NewUserService(db)

	// Routes setup
	routes.SetupBookRoutes(router, bookService, authEnabled)
	routes.SetupMemberRoutes(router, memberService, authEnabled)
	routes.SetupIssueRoutes(router, issueService, authEnabled)
	routes.SetupReturnRoutes(router, returnService)
	routes.SetupUserRoutes(router, userService)

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	// Server run, TLS when a certificate pair is configured
	certFile := os.Getenv("TLS_CERT_FILE")
	keyFile := os.Getenv("TLS_KEY_FILE")
	if certFile != "" && keyFile != "" {
		if err := router.RunTLS(host, certFile, keyFile); err != nil {
			log.Fatalf("Error starting TLS server on %s: %v\n", host, err)
		}
		return
	}

	if err := router.Run(host); err != nil {
		log.Fatalf("Error starting server on %s: %v\n", host, err)
	}
}
