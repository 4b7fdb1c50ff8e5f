package models

import "time"

// Order mencatat satu transaksi pesanan. CustomerID terisi untuk member,
// GuestName untuk tamu tanpa akun; keduanya tidak pernah terisi bersamaan.
type Order struct {
	ID          uint          `gorm:"primaryKey" json:"order_id"`
	CustomerID  *uint         `gorm:"index" json:"customer_id,omitempty"`
	Customer    *Customer     `gorm:"foreignKey:CustomerID" json:"-"`
	GuestName   string        `gorm:"type:varchar(255)" json:"guest_name"`
	ServiceType string        `gorm:"type:varchar(50);not null" json:"service_type"`
	TableID     uint          `gorm:"index" json:"table_id"`
	Table       Table         `gorm:"foreignKey:TableID" json:"-"`
	PaymentID   uint          `gorm:"index" json:"payment_id"`
	Payment     PaymentMethod `gorm:"foreignKey:PaymentID" json:"-"`
	OrderStatus string        `gorm:"type:varchar(50);not null" json:"order_status"`
	OrderTime   time.Time     `gorm:"not null;index" json:"order_time"`
	CreatedAt   time.Time     `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time     `gorm:"not null" json:"updated_at"`
}
