package models

import "time"

// Reservation menyimpan check_in/check_out sebagai string jam ("18:30:00")
// karena sumber data lama juga memakai format durasi "1 days 18:30:00".
type Reservation struct {
	ID              uint      `gorm:"primaryKey" json:"reservation_id"`
	CustomerID      uint      `gorm:"not null;index" json:"customer_id"`
	Customer        Customer  `gorm:"foreignKey:CustomerID" json:"-"`
	TableID         uint      `gorm:"not null;index" json:"table_id"`
	Table           Table     `gorm:"foreignKey:TableID" json:"-"`
	ReservationDate time.Time `gorm:"not null;index" json:"reservation_date"`
	CheckIn         string    `gorm:"type:varchar(50)" json:"check_in"`
	CheckOut        string    `gorm:"type:varchar(50)" json:"check_out"`
	PartySize       int       `gorm:"not null" json:"party_size"`
	Status          string    `gorm:"type:varchar(50);not null" json:"status"`
	SpecialRequest  string    `gorm:"type:text" json:"special_request"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}
