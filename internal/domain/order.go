package domain

import "time"

type Order struct {
	ID              int64
	OrderNumber     string
	TotalAmount     Money
	Status          string
	ShippingAddress string
	PaymentMethod   string
	PaymentStatus   string
	Notes           string
	CreatedAt       time.Time
	Items           []OrderItem
}

type OrderItem struct {
	ID              int64
	ProductName     string
	ProductImageURL string
	Quantity        int
	Price           Money
}

// OrderInput creates an order from the user's current server-side cart.
// PaymentMethod is a label passed through to the backend, not processed here.
type OrderInput struct {
	UserID          int64  `json:"userId"`
	ShippingAddress string `json:"shippingAddress" validate:"required"`
	PaymentMethod   string `json:"paymentMethod" validate:"required"`
	Notes           string `json:"notes"`
}
