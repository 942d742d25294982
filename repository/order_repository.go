package repository

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/danielessuu/backend-sd3/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- writes (all inside the placement transaction) ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) UpdateTotal(tx *gorm.DB, orderID uint, total decimal.Decimal) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("total_price", total).Error
}

// ---------------- reads ----------------

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// OrderRow is one order joined with its customer's contact fields.
type OrderRow struct {
	ID              uint
	Status          string
	CreatedAt       time.Time
	TotalPrice      decimal.Decimal
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
}

type OrderFilter struct {
	Status       string
	CustomerName string // case-insensitive substring
	CustomerID   uint
}

// GET /staff/orders → newest first, optionally filtered.
func (r *OrderRepository) ListOrders(f OrderFilter) ([]OrderRow, error) {
	q := r.DB.Model(&entity.Order{}).
		Select("orders.id, orders.status, orders.created_at, orders.total_price, " +
			"customers.name AS customer_name, customers.phone AS customer_phone, customers.address AS customer_address").
		Joins("JOIN customers ON customers.id = orders.customer_id")

	if f.Status != "" {
		q = q.Where("orders.status = ?", f.Status)
	}
	if f.CustomerName != "" {
		q = q.Where("LOWER(customers.name) LIKE ?", "%"+strings.ToLower(f.CustomerName)+"%")
	}
	if f.CustomerID != 0 {
		q = q.Where("orders.customer_id = ?", f.CustomerID)
	}

	var rows []OrderRow
	err := q.Order("orders.id DESC").Scan(&rows).Error
	return rows, err
}

// GetOrderRow loads a single order with its customer's contact fields.
func (r *OrderRepository) GetOrderRow(orderID uint) (*OrderRow, error) {
	var row OrderRow
	err := r.DB.Model(&entity.Order{}).
		Select("orders.id, orders.status, orders.created_at, orders.total_price, "+
			"customers.name AS customer_name, customers.phone AS customer_phone, customers.address AS customer_address").
		Joins("JOIN customers ON customers.id = orders.customer_id").
		Where("orders.id = ?", orderID).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

// ItemRow is one order line joined with its dish.
type ItemRow struct {
	OrderID  uint
	DishID   uint
	DishName string
	Quantity int
	Price    decimal.Decimal
}

// ListItems loads the lines for a set of orders, dish name and unit price included.
func (r *OrderRepository) ListItems(orderIDs []uint) ([]ItemRow, error) {
	if len(orderIDs) == 0 {
		return nil, nil
	}
	var rows []ItemRow
	err := r.DB.Model(&entity.OrderItem{}).
		Select("order_items.order_id, order_items.dish_id, dishes.name AS dish_name, "+
			"order_items.quantity, dishes.price AS price").
		Joins("JOIN dishes ON dishes.id = order_items.dish_id").
		Where("order_items.order_id IN ?", orderIDs).
		Order("order_items.id ASC").
		Scan(&rows).Error
	return rows, err
}

// PATCH /staff/orders/:id/update_status
func (r *OrderRepository) UpdateStatus(orderID uint, status string) (int64, error) {
	res := r.DB.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("status", status)
	return res.RowsAffected, res.Error
}
