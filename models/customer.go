package models

import "time"

type Customer struct {
	ID           uint      `gorm:"primaryKey" json:"customer_id"`
	CustomerName string    `gorm:"type:varchar(255);not null" json:"customer_name"`
	Email        string    `gorm:"type:varchar(255)" json:"email"`
	Phone        string    `gorm:"type:varchar(50)" json:"phone"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}
