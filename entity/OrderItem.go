package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Quantity int `gorm:"not null;check:quantity > 0" json:"quantity"`

	OrderID uint  `json:"order_id"`
	Order   Order `json:"-"`

	DishID uint `json:"dish_id"`
	Dish   Dish `json:"-"` // preload only when the dish name/price is needed
}
