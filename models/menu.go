package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Menu struct {
	ID         uint            `gorm:"primaryKey" json:"menu_id"`
	CategoryID uint            `gorm:"not null;index" json:"category_id"`
	Category   Category        `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	ItemName   string          `gorm:"type:varchar(255);not null" json:"item_name"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	MemberOnly bool            `gorm:"not null;default:false" json:"member_only"`
	CreatedAt  time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null" json:"updated_at"`
}
