package repository

import (
	"gorm.io/gorm"

	"github.com/danielessuu/backend-sd3/entity"
)

type CustomerRepository struct {
	DB *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

// FirstOrCreate resolves the customer by the exact (name, phone, address)
// triple, creating the row when no match exists. The composite unique index
// on the triple backs this up under concurrent placements.
func (r *CustomerRepository) FirstOrCreate(tx *gorm.DB, name, phone, address string) (*entity.Customer, error) {
	var c entity.Customer
	err := tx.Where(entity.Customer{Name: name, Phone: phone, Address: address}).
		FirstOrCreate(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}
