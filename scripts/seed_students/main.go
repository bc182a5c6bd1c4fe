// Inserts a few sample students for local development. Skips roll
// numbers that already exist, so it is safe to run repeatedly.
package main

import (
	"fmt"
	"log"

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

	samples := []models.Student{
		{RollNo: "2024001", Name: "Aarav Sharma", ClassName: "12th Science", Contact: "9876543210", Email: "aarav@gmail.com", Address: "New Delhi"},
		{RollNo: "2024002", Name: "Priya Patel", ClassName: "11th Commerce", Contact: "9876543211", Email: "priya@gmail.com", Address: "Mumbai"},
		{RollNo: "2024003", Name: "Rohan Singh", ClassName: "10th", Contact: "9876543212", Email: "rohan@gmail.com", Address: "Bangalore"},
	}

	added := 0
	for _, s := range samples {
		var count int64
		if err := db.Model(&models.Student{}).Where("roll_no = ?", s.RollNo).Count(&count).Error; err != nil {
			log.Fatalf("failed to query students: %v", err)
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&s).Error; err != nil {
			log.Fatalf("failed to insert student %s: %v", s.RollNo, err)
		}
		added++
	}
	fmt.Printf("sample data: %d students added\n", added)
}
