package seed

import (
	"log"
	"os"

	"github.com/BiblioDesk/BiblioDesk-Backend/src/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Seed(db *gorm.DB) {
	// Default staff account
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "librarian"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "librarian"
	}

	var user models.UserModel
	result := db.Where("username = ?", username).First(&user)
	if result.Error == nil {
		log.Printf("User '%s' already exists\n", username)
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

		newUser := models.UserModel{
			Username: username,
			Password: string(hashedPassword),
		}
		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("Failed to create user: %v\n", err)
		} else {
			log.Printf("User '%s' created\n", username)
		}
	}
}
