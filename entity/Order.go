package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderStatusPending  = "pending"
	OrderStatusAttended = "attended"
)

type Order struct {
	gorm.Model
	Status     string          `gorm:"not null;default:pending" json:"status"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_price"`

	CustomerID uint     `json:"customer_id"`
	Customer   Customer `json:"-"` // preload only when the contact fields are needed

	OrderItems []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// ValidOrderStatus reports whether s is one of the two recognized status values.
func ValidOrderStatus(s string) bool {
	return s == OrderStatusPending || s == OrderStatusAttended
}
