package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/danielessuu/backend-sd3/entity"
	"github.com/danielessuu/backend-sd3/repository"
)

type OrderService struct {
	DB           *gorm.DB
	Repo         *repository.OrderRepository
	DishRepo     *repository.DishRepository
	CustomerRepo *repository.CustomerRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	dishRepo *repository.DishRepository,
	customerRepo *repository.CustomerRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, DishRepo: dishRepo, CustomerRepo: customerRepo}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	DishID   uint `json:"dish_id"`
	Quantity int  `json:"quantity"`
}

type PlaceOrderReq struct {
	CustomerName    string        `json:"customer_name"`
	CustomerPhone   string        `json:"customer_phone"`
	CustomerAddress string        `json:"customer_address"`
	Items           []OrderItemIn `json:"items"`
}

type ExpandedItem struct {
	DishID   uint   `json:"dish_id"`
	DishName string `json:"dish_name"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

type ExpandedOrder struct {
	OrderID         uint           `json:"order_id"`
	CustomerName    string         `json:"customer_name"`
	CustomerPhone   string         `json:"customer_phone"`
	CustomerAddress string         `json:"customer_address"`
	Status          string         `json:"status"`
	CreatedAt       time.Time      `json:"created_at"`
	TotalPrice      string         `json:"total_price"`
	Items           []ExpandedItem `json:"items"`
}

// ----- Place -----

// Place runs the whole placement as one transaction: resolve the customer,
// create the order, price and attach every line, write the total. A missing
// dish rolls everything back.
func (s *OrderService) Place(req *PlaceOrderReq) (uint, error) {
	var orderID uint

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		customer, err := s.CustomerRepo.FirstOrCreate(tx, req.CustomerName, req.CustomerPhone, req.CustomerAddress)
		if err != nil {
			return err
		}

		order := entity.Order{
			CustomerID: customer.ID,
			Status:     entity.OrderStatusPending,
			TotalPrice: decimal.Zero,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		total := decimal.Zero
		for _, it := range req.Items {
			dish, err := s.DishRepo.GetDish(tx, it.DishID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrDishNotFound
				}
				return err
			}

			oi := entity.OrderItem{
				OrderID:  order.ID,
				DishID:   dish.ID,
				Quantity: it.Quantity,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}

			total = total.Add(dish.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}

		if err := s.Repo.UpdateTotal(tx, order.ID, total); err != nil {
			return err
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return orderID, nil
}

// ----- List (staff) -----

// List returns matching orders newest-first, each expanded with its lines and
// customer contact fields. A customer filter that matches nothing is an error,
// not an empty list.
func (s *OrderService) List(f repository.OrderFilter) ([]ExpandedOrder, error) {
	rows, err := s.Repo.ListOrders(f)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 && (f.CustomerName != "" || f.CustomerID != 0) {
		return nil, ErrNoOrdersFound
	}

	ids := make([]uint, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	itemRows, err := s.Repo.ListItems(ids)
	if err != nil {
		return nil, err
	}
	itemsByOrder := make(map[uint][]ExpandedItem, len(rows))
	for _, ir := range itemRows {
		itemsByOrder[ir.OrderID] = append(itemsByOrder[ir.OrderID], ExpandedItem{
			DishID:   ir.DishID,
			DishName: ir.DishName,
			Quantity: ir.Quantity,
			Price:    ir.Price.StringFixed(2),
		})
	}

	out := make([]ExpandedOrder, 0, len(rows))
	for _, r := range rows {
		items := itemsByOrder[r.ID]
		if items == nil {
			items = []ExpandedItem{}
		}
		out = append(out, ExpandedOrder{
			OrderID:         r.ID,
			CustomerName:    r.CustomerName,
			CustomerPhone:   r.CustomerPhone,
			CustomerAddress: r.CustomerAddress,
			Status:          r.Status,
			CreatedAt:       r.CreatedAt,
			TotalPrice:      r.TotalPrice.StringFixed(2),
			Items:           items,
		})
	}
	return out, nil
}

// ----- Detail -----

func (s *OrderService) Detail(orderID uint) (*ExpandedOrder, error) {
	row, err := s.Repo.GetOrderRow(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	itemRows, err := s.Repo.ListItems([]uint{row.ID})
	if err != nil {
		return nil, err
	}
	items := make([]ExpandedItem, 0, len(itemRows))
	for _, ir := range itemRows {
		items = append(items, ExpandedItem{
			DishID:   ir.DishID,
			DishName: ir.DishName,
			Quantity: ir.Quantity,
			Price:    ir.Price.StringFixed(2),
		})
	}

	return &ExpandedOrder{
		OrderID:         row.ID,
		CustomerName:    row.CustomerName,
		CustomerPhone:   row.CustomerPhone,
		CustomerAddress: row.CustomerAddress,
		Status:          row.Status,
		CreatedAt:       row.CreatedAt,
		TotalPrice:      row.TotalPrice.StringFixed(2),
		Items:           items,
	}, nil
}

// ----- Update status -----

// UpdateStatus overwrites the status with one of the two recognized values.
// Transitions are free in both directions.
func (s *OrderService) UpdateStatus(orderID uint, status string) error {
	if !entity.ValidOrderStatus(status) {
		return ErrInvalidStatus
	}
	affected, err := s.Repo.UpdateStatus(orderID, status)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
