package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderDetail struct {
	ID          uint            `gorm:"primaryKey" json:"order_detail_id"`
	OrderID     uint            `gorm:"not null;index" json:"order_id"`
	Order       Order           `gorm:"foreignKey:OrderID" json:"-"`
	MenuID      uint            `gorm:"not null;index" json:"menu_id"`
	Menu        Menu            `gorm:"foreignKey:MenuID" json:"-"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	TotalPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_price"`
	RequestNote string          `gorm:"type:text" json:"request_note"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}
