package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/danielessuu/backend-sd3/pkg/resp"
	"github.com/danielessuu/backend-sd3/repository"
	"github.com/danielessuu/backend-sd3/services"
	"github.com/danielessuu/backend-sd3/utils"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{
		Service: services.NewOrderService(
			db,
			repository.NewOrderRepository(db),
			repository.NewDishRepository(db),
			repository.NewCustomerRepository(db),
		),
	}
}

// ===== Place Order =====

type OrderItemIn struct {
	DishID   uint `json:"dish_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

type PlaceOrderReq struct {
	CustomerName    string        `json:"customer_name" binding:"required"`
	CustomerPhone   string        `json:"customer_phone" binding:"required"`
	CustomerAddress string        `json:"customer_address" binding:"required"`
	Items           []OrderItemIn `json:"items" binding:"required,min=1,dive"`
}

// POST /orders
func (oc *OrderController) Place(c *gin.Context) {
	var req PlaceOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "missing required fields")
		return
	}

	items := make([]services.OrderItemIn, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, services.OrderItemIn{DishID: it.DishID, Quantity: it.Quantity})
	}

	orderID, err := oc.Service.Place(&services.PlaceOrderReq{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		Items:           items,
	})
	if err != nil {
		if errors.Is(err, services.ErrDishNotFound) {
			resp.NotFound(c, "dish not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "order created", "order_id": orderID})
}

// ===== Staff listing =====

// GET /staff/orders?status=&customer_name=&customer_id=
func (oc *OrderController) List(c *gin.Context) {
	var f repository.OrderFilter
	f.Status = c.Query("status")
	f.CustomerName = c.Query("customer_name")
	if v := c.Query("customer_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			resp.BadRequest(c, "invalid customer_id")
			return
		}
		f.CustomerID = uint(id)
	}

	orders, err := oc.Service.List(f)
	if err != nil {
		if errors.Is(err, services.ErrNoOrdersFound) {
			resp.NotFound(c, services.ErrNoOrdersFound.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// ===== Detail =====

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	order, err := oc.Service.Detail(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// ===== Update status =====

type UpdateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /staff/orders/:id/update_status
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var req UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "missing status")
		return
	}

	if err := oc.Service.UpdateStatus(uint(id), req.Status); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			resp.BadRequest(c, "invalid status")
		case errors.Is(err, services.ErrOrderNotFound):
			resp.NotFound(c, "order not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}

	logrus.Infof("order %d set to %s by staff %q", id, req.Status, utils.CurrentUsername(c))
	c.JSON(http.StatusOK, gin.H{"message": "status updated"})
}
