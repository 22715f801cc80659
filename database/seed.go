package database

import (
	"log"

	"lms/config"
	"lms/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdminUser creates the configured admin account if it does not exist
func SeedAdminUser(db *gorm.DB) {
	var existing models.User
	if err := db.Where("email = ?", config.AppConfig.AdminEmail).First(&existing).Error; err == nil {
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(config.AppConfig.AdminPassword), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing admin password: %v", err)
		return
	}

	admin := models.User{
		Name:     config.AppConfig.AdminName,
		Email:    config.AppConfig.AdminEmail,
		Password: string(hashedPassword),
		Role:     models.RoleAdmin,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Error seeding admin user: %v", err)
		return
	}

	log.Printf("Admin user created: %s", admin.Email)
}
