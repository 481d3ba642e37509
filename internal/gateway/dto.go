package gateway

import (
	"time"

	"github.com/pawmart/storefront-go/internal/domain"
	"github.com/shopspring/decimal"
)

type authResponse struct {
	ID       *int64 `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	Message  string `json:"message"`
}

type productDTO struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	ImageURL     string          `json:"imageUrl"`
	Category     string          `json:"category"`
	CategoryName string          `json:"categoryName"`
	Stock        int             `json:"stock"`
	Description  string          `json:"description"`
	Brand        string          `json:"brand"`
}

type cartItemDTO struct {
	ID       int64      `json:"id"`
	Product  productDTO `json:"product"`
	Quantity int        `json:"quantity"`
}

type cartDTO struct {
	ID     int64         `json:"id"`
	UserID int64         `json:"userId"`
	Items  []cartItemDTO `json:"items"`

	// Server-computed totals ride along in the payload but local reads
	// derive their own from Items, so they are not mapped.
	TotalItems int             `json:"totalItems"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

type cartItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type petDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Species   string    `json:"species"`
	Breed     string    `json:"breed"`
	Age       int       `json:"age"`
	Weight    float64   `json:"weight"`
	Gender    string    `json:"gender"`
	Notes     string    `json:"notes"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

type orderItemDTO struct {
	ID              int64           `json:"id"`
	ProductName     string          `json:"productName"`
	ProductImageURL string          `json:"productImageUrl"`
	Quantity        int             `json:"quantity"`
	Price           decimal.Decimal `json:"price"`
}

type orderDTO struct {
	ID              int64           `json:"id"`
	OrderNumber     string          `json:"orderNumber"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Status          string          `json:"status"`
	ShippingAddress string          `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	PaymentStatus   string          `json:"paymentStatus"`
	Notes           string          `json:"notes"`
	CreatedAt       time.Time       `json:"createdAt"`
	Items           []orderItemDTO  `json:"items"`
}

type serviceDTO struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Duration    int             `json:"duration"`
	Category    string          `json:"category"`
}

type appointmentDTO struct {
	ID           int64           `json:"id"`
	BookingCode  string          `json:"bookingCode"`
	PetName      string          `json:"petName"`
	PetSpecies   string          `json:"petSpecies"`
	PetImageURL  string          `json:"petImageUrl"`
	ServiceTitle string          `json:"serviceTitle"`
	ServicePrice decimal.Decimal `json:"servicePrice"`
	DoctorName   *string         `json:"doctorName"`
	Date         string          `json:"appointmentDate"`
	Time         string          `json:"appointmentTime"`
	Status       string          `json:"status"`
	Notes        string          `json:"notes"`
	CreatedAt    time.Time       `json:"createdAt"`
}

func mapProductToDomain(dto productDTO) domain.Product {
	return domain.Product{
		ID:           dto.ID,
		Name:         dto.Name,
		Price:        domain.NewMoney(dto.Price),
		ImageURL:     dto.ImageURL,
		Category:     dto.Category,
		CategoryName: dto.CategoryName,
		Stock:        dto.Stock,
		Description:  dto.Description,
		Brand:        dto.Brand,
	}
}

func mapProductsToDomain(dtos []productDTO) []domain.Product {
	products := make([]domain.Product, 0, len(dtos))
	for _, dto := range dtos {
		products = append(products, mapProductToDomain(dto))
	}
	return products
}

func mapCartToDomain(dto cartDTO) domain.Cart {
	items := make([]domain.CartItem, 0, len(dto.Items))
	for _, item := range dto.Items {
		items = append(items, domain.CartItem{
			ID:       item.ID,
			Product:  mapProductToDomain(item.Product),
			Quantity: item.Quantity,
		})
	}

	return domain.Cart{
		ID:     dto.ID,
		UserID: dto.UserID,
		Items:  items,
	}
}

func mapPetToDomain(dto petDTO) domain.Pet {
	return domain.Pet{
		ID:        dto.ID,
		Name:      dto.Name,
		Species:   dto.Species,
		Breed:     dto.Breed,
		Age:       dto.Age,
		Weight:    dto.Weight,
		Gender:    dto.Gender,
		Notes:     dto.Notes,
		ImageURL:  dto.ImageURL,
		CreatedAt: dto.CreatedAt,
	}
}

func mapOrderToDomain(dto orderDTO) domain.Order {
	items := make([]domain.OrderItem, 0, len(dto.Items))
	for _, item := range dto.Items {
		items = append(items, domain.OrderItem{
			ID:              item.ID,
			ProductName:     item.ProductName,
			ProductImageURL: item.ProductImageURL,
			Quantity:        item.Quantity,
			Price:           domain.NewMoney(item.Price),
		})
	}

	return domain.Order{
		ID:              dto.ID,
		OrderNumber:     dto.OrderNumber,
		TotalAmount:     domain.NewMoney(dto.TotalAmount),
		Status:          dto.Status,
		ShippingAddress: dto.ShippingAddress,
		PaymentMethod:   dto.PaymentMethod,
		PaymentStatus:   dto.PaymentStatus,
		Notes:           dto.Notes,
		CreatedAt:       dto.CreatedAt,
		Items:           items,
	}
}

func mapAppointmentToDomain(dto appointmentDTO) domain.Appointment {
	var doctor string
	if dto.DoctorName != nil {
		doctor = *dto.DoctorName
	}

	return domain.Appointment{
		ID:           dto.ID,
		BookingCode:  dto.BookingCode,
		PetName:      dto.PetName,
		PetSpecies:   dto.PetSpecies,
		PetImageURL:  dto.PetImageURL,
		ServiceTitle: dto.ServiceTitle,
		ServicePrice: domain.NewMoney(dto.ServicePrice),
		DoctorName:   doctor,
		Date:         dto.Date,
		Time:         dto.Time,
		Status:       dto.Status,
		Notes:        dto.Notes,
		CreatedAt:    dto.CreatedAt,
	}
}

func mapAppointmentsToDomain(dtos []appointmentDTO) []domain.Appointment {
	appointments := make([]domain.Appointment, 0, len(dtos))
	for _, dto := range dtos {
		appointments = append(appointments, mapAppointmentToDomain(dto))
	}
	return appointments
}
