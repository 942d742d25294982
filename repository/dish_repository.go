package repository

import (
	"gorm.io/gorm"

	"github.com/danielessuu/backend-sd3/entity"
)

type DishRepository struct {
	DB *gorm.DB
}

func NewDishRepository(db *gorm.DB) *DishRepository {
	return &DishRepository{DB: db}
}

// GET /dishes
func (r *DishRepository) ListDishes() ([]entity.Dish, error) {
	var dishes []entity.Dish
	err := r.DB.Order("id ASC").Find(&dishes).Error
	return dishes, err
}

// Used inside the order placement transaction to price a line.
func (r *DishRepository) GetDish(tx *gorm.DB, dishID uint) (*entity.Dish, error) {
	var d entity.Dish
	if err := tx.Select("id, name, price").First(&d, dishID).Error; err != nil {
		return nil, err
	}
	return &d, nil
}
