package domain

import "github.com/shopspring/decimal"

type Cart struct {
	ID     int64
	UserID int64
	Items  []CartItem
}

// CartItem pairs a product snapshot with a quantity. Quantity is always >= 1;
// a zero or negative quantity is expressed as the item's removal instead.
type CartItem struct {
	ID       int64
	Product  Product
	Quantity int
}

// TotalItems sums the quantities of all items in the cart.
func (c Cart) TotalItems() int {
	var total int
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// TotalPrice sums quantity times unit price over all items.
// An empty cart totals to zero dong.
func (c Cart) TotalPrice() Money {
	total := NewMoney(decimal.Zero)
	for _, item := range c.Items {
		total = total.Add(item.Product.Price.Mul(item.Quantity))
	}
	return total
}
