package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/danielessuu/backend-sd3/entity"
	"github.com/danielessuu/backend-sd3/repository"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{}, &entity.Dish{}, &entity.Customer{},
		&entity.Order{}, &entity.OrderItem{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewDishRepository(db),
		repository.NewCustomerRepository(db),
	)
}

func seedDish(t *testing.T, db *gorm.DB, name, price string) *entity.Dish {
	t.Helper()
	p, err := decimal.NewFromString(price)
	if err != nil {
		t.Fatalf("bad price %q: %v", price, err)
	}
	d := entity.Dish{Name: name, Category: "Main", Description: name, Price: p}
	if err := db.Create(&d).Error; err != nil {
		t.Fatalf("seed dish: %v", err)
	}
	return &d
}

func placeReq(items ...OrderItemIn) *PlaceOrderReq {
	return &PlaceOrderReq{
		CustomerName:    "Ana Maria",
		CustomerPhone:   "3001112233",
		CustomerAddress: "Calle 10 #5-23",
		Items:           items,
	}
}

func TestPlaceComputesExactTotal(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)
	dish := seedDish(t, db, "Bandeja", "9.99")

	orderID, err := svc.Place(placeReq(OrderItemIn{DishID: dish.ID, Quantity: 2}))
	if err != nil {
		t.Fatalf("place: %v", err)
	}

	detail, err := svc.Detail(orderID)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if detail.TotalPrice != "19.98" {
		t.Errorf("total = %q, want %q", detail.TotalPrice, "19.98")
	}
	if detail.Status != entity.OrderStatusPending {
		t.Errorf("status = %q, want pending", detail.Status)
	}
	if len(detail.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(detail.Items))
	}
	if detail.Items[0].Price != "9.99" || detail.Items[0].Quantity != 2 {
		t.Errorf("item = %+v", detail.Items[0])
	}
}

func TestPlaceMultipleLines(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)
	a := seedDish(t, db, "Empanadas", "4.75")
	b := seedDish(t, db, "Jugo", "2.95")

	orderID, err := svc.Place(placeReq(
		OrderItemIn{DishID: a.ID, Quantity: 3},
		OrderItemIn{DishID: b.ID, Quantity: 1},
	))
	if err != nil {
		t.Fatalf("place: %v", err)
	}

	detail, err := svc.Detail(orderID)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	// 3*4.75 + 2.95 = 17.20
	if detail.TotalPrice != "17.20" {
		t.Errorf("total = %q, want %q", detail.TotalPrice, "17.20")
	}
}

func TestPlaceUnknownDishRollsBack(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)
	dish := seedDish(t, db, "Arepa", "3.50")

	_, err := svc.Place(placeReq(
		OrderItemIn{DishID: dish.ID, Quantity: 1},
		OrderItemIn{DishID: 9999, Quantity: 1},
	))
	if !errors.Is(err, ErrDishNotFound) {
		t.Fatalf("err = %v, want ErrDishNotFound", err)
	}

	var orders, items int64
	db.Model(&entity.Order{}).Count(&orders)
	db.Model(&entity.OrderItem{}).Count(&items)
	if orders != 0 || items != 0 {
		t.Errorf("rows after rollback: orders=%d items=%d, want 0/0", orders, items)
	}
}

func TestPlaceReusesCustomer(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)
	dish := seedDish(t, db, "Sancocho", "10.00")

	if _, err := svc.Place(placeReq(OrderItemIn{DishID: dish.ID, Quantity: 1})); err != nil {
		t.Fatalf("first place: %v", err)
	}
	if _, err := svc.Place(placeReq(OrderItemIn{DishID: dish.ID, Quantity: 2})); err != nil {
		t.Fatalf("second place: %v", err)
	}

	var customers int64
	db.Model(&entity.Customer{}).Count(&customers)
	if customers != 1 {
		t.Errorf("customers = %d, want 1", customers)
	}

	// A different triple creates a new row.
	req := placeReq(OrderItemIn{DishID: dish.ID, Quantity: 1})
	req.CustomerPhone = "3009998877"
	if _, err := svc.Place(req); err != nil {
		t.Fatalf("third place: %v", err)
	}
	db.Model(&entity.Customer{}).Count(&customers)
	if customers != 2 {
		t.Errorf("customers = %d, want 2", customers)
	}
}

func TestListFiltersAndOrdering(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)
	dish := seedDish(t, db, "Tres Leches", "5.25")

	first, err := svc.Place(placeReq(OrderItemIn{DishID: dish.ID, Quantity: 1}))
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	req := placeReq(OrderItemIn{DishID: dish.ID, Quantity: 2})
	req.CustomerName = "Carlos Perez"
	req.CustomerPhone = "3015556677"
	second, err := svc.Place(req)
	if err != nil {
		t.Fatalf("place: %v", err)
	}

	// Unfiltered: newest first.
	all, err := svc.List(repository.OrderFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 || all[0].OrderID != second || all[1].OrderID != first {
		t.Fatalf("unexpected listing: %+v", all)
	}

	// Case-insensitive substring on the customer's name.
	got, err := svc.List(repository.OrderFilter{CustomerName: "cArLoS"})
	if err != nil {
		t.Fatalf("filtered list: %v", err)
	}
	if len(got) != 1 || got[0].CustomerName != "Carlos Perez" {
		t.Fatalf("filter result: %+v", got)
	}

	// Status filter.
	if err := svc.UpdateStatus(first, entity.OrderStatusAttended); err != nil {
		t.Fatalf("update status: %v", err)
	}
	got, err = svc.List(repository.OrderFilter{Status: entity.OrderStatusAttended})
	if err != nil {
		t.Fatalf("status list: %v", err)
	}
	if len(got) != 1 || got[0].OrderID != first {
		t.Fatalf("status filter result: %+v", got)
	}
}

func TestListNoMatchForCustomerIsError(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)

	_, err := svc.List(repository.OrderFilter{CustomerName: "nobody"})
	if !errors.Is(err, ErrNoOrdersFound) {
		t.Fatalf("err = %v, want ErrNoOrdersFound", err)
	}

	_, err = svc.List(repository.OrderFilter{CustomerID: 42})
	if !errors.Is(err, ErrNoOrdersFound) {
		t.Fatalf("err = %v, want ErrNoOrdersFound", err)
	}

	// Without a customer filter an empty store is just an empty list.
	got, err := svc.List(repository.OrderFilter{})
	if err != nil {
		t.Fatalf("unfiltered list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %d orders, want 0", len(got))
	}
}

func TestUpdateStatus(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)
	dish := seedDish(t, db, "Lulo", "2.95")

	orderID, err := svc.Place(placeReq(OrderItemIn{DishID: dish.ID, Quantity: 1}))
	if err != nil {
		t.Fatalf("place: %v", err)
	}

	if err := svc.UpdateStatus(orderID, "shipped"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("err = %v, want ErrInvalidStatus", err)
	}
	detail, _ := svc.Detail(orderID)
	if detail.Status != entity.OrderStatusPending {
		t.Errorf("status changed by rejected update: %q", detail.Status)
	}

	if err := svc.UpdateStatus(9999, entity.OrderStatusAttended); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("err = %v, want ErrOrderNotFound", err)
	}

	if err := svc.UpdateStatus(orderID, entity.OrderStatusAttended); err != nil {
		t.Fatalf("update: %v", err)
	}
	// Transitions are intentionally free in both directions.
	if err := svc.UpdateStatus(orderID, entity.OrderStatusPending); err != nil {
		t.Fatalf("reverse update: %v", err)
	}
}

func TestDetailUnknownOrder(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)

	_, err := svc.Detail(123)
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("err = %v, want ErrOrderNotFound", err)
	}
}
