package models

import "time"

type Table struct {
	ID          uint      `gorm:"primaryKey" json:"table_id"`
	TableNumber int       `gorm:"not null" json:"table_number"`
	Capacity    int       `gorm:"not null" json:"capacity"`
	Location    string    `gorm:"type:varchar(100)" json:"location"`
	Status      string    `gorm:"type:varchar(50);not null;default:'Available'" json:"status"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}
