// Seeds an admin login. Usage:
//
//	go run ./scripts/create_admin [username] [password]
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/studentms/backend/config"
	"github.com/studentms/backend/database"
	"github.com/studentms/backend/models"
)

func main() {
	cfg := config.Load()
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	username := "admin"
	password := "admin123"
	if len(os.Args) > 1 {
		username = os.Args[1]
	}
	if len(os.Args) > 2 {
		password = os.Args[2]
	}

	var existing models.User
	if err := db.Where("username = ?", username).First(&existing).Error; err == nil {
		fmt.Println("admin user already exists:", username)
		os.Exit(0)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("failed to query users: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	u := models.User{
		Username: username,
		Password: string(hashed),
		Name:     "Administrator",
	}
	if err := db.Create(&u).Error; err != nil {
		log.Fatalf("failed to insert admin: %v", err)
	}

	fmt.Println("admin user created")
	fmt.Println("  username:", username)
	fmt.Println("  password:", password, "(change it after first login)")
}
