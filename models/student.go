package models

import "time"

type Student struct {
	ID            uint      `gorm:"primaryKey"                   json:"id"`
	RollNo        string    `gorm:"size:20;uniqueIndex;not null" json:"roll_no"`
	Name          string    `gorm:"size:100;not null"            json:"name"`
	ClassName     string    `gorm:"size:20;not null"             json:"class"`
	Contact       string    `gorm:"size:15;not null"             json:"contact"`
	Email         string    `gorm:"size:100"                     json:"email"`
	Address       string    `gorm:"type:text"                    json:"address"`
	AdmissionDate time.Time `gorm:"autoCreateTime"               json:"admission_date"`
}
