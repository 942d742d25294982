package entity

import (
	"gorm.io/gorm"
)

type Customer struct {
	gorm.Model
	Name    string `gorm:"uniqueIndex:idx_customer_identity" json:"name"`
	Phone   string `gorm:"uniqueIndex:idx_customer_identity" json:"phone"`
	Address string `gorm:"uniqueIndex:idx_customer_identity" json:"address"`

	Orders []Order `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
