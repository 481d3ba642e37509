package domain

// Product is a read-only catalog snapshot supplied by the backend.
type Product struct {
	ID           int64
	Name         string
	Price        Money
	ImageURL     string
	Category     string
	CategoryName string
	Stock        int
	Description  string
	Brand        string
}
