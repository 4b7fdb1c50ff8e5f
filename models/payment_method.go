package models

import "time"

type PaymentMethod struct {
	ID         uint      `gorm:"primaryKey" json:"payment_id"`
	MethodName string    `gorm:"type:varchar(100);not null" json:"method_name"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}
