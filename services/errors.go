package services

import "errors"

// Sentinel errors mapped to HTTP statuses by the controllers.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrDishNotFound       = errors.New("dish not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrNoOrdersFound      = errors.New("no orders found for this customer")
	ErrInvalidStatus      = errors.New("invalid status")
)
