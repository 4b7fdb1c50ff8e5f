package models

import "time"

type Category struct {
	ID           uint      `gorm:"primaryKey" json:"category_id"`
	CategoryName string    `gorm:"type:varchar(100);not null" json:"category_name"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}
