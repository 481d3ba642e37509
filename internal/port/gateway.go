package port

import (
	"context"

	"github.com/pawmart/storefront-go/internal/domain"
)

type AuthGateway interface {
	Login(ctx context.Context, creds domain.Credentials) (domain.AuthResult, error)
	Register(ctx context.Context, reg domain.Registration) (domain.AuthResult, error)
}

// CartGateway mirrors the backend's cart endpoints. Every mutation returns
// the full cart, which callers adopt wholesale as the new local state.
type CartGateway interface {
	GetCart(ctx context.Context, userID int64) (domain.Cart, error)
	AddItem(ctx context.Context, userID, productID int64, quantity int) (domain.Cart, error)
	SetQuantity(ctx context.Context, userID, productID int64, quantity int) (domain.Cart, error)
	RemoveItem(ctx context.Context, userID, productID int64) (domain.Cart, error)
	ClearCart(ctx context.Context, userID int64) error
}

type ProductGateway interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (domain.Product, error)
	ListProductsByCategory(ctx context.Context, category string) ([]domain.Product, error)
	SearchProducts(ctx context.Context, name string) ([]domain.Product, error)
}

type PetGateway interface {
	ListPets(ctx context.Context, userID int64) ([]domain.Pet, error)
	CreatePet(ctx context.Context, input domain.PetInput) (domain.Pet, error)
	UpdatePet(ctx context.Context, petID int64, input domain.PetInput) (domain.Pet, error)
	DeletePet(ctx context.Context, petID, userID int64) error
}

type OrderGateway interface {
	CreateOrder(ctx context.Context, input domain.OrderInput) (domain.Order, error)
	ListOrders(ctx context.Context, userID int64) ([]domain.Order, error)
	GetOrder(ctx context.Context, orderID, userID int64) (domain.Order, error)
}

type AppointmentGateway interface {
	ListServices(ctx context.Context) ([]domain.Service, error)
	CreateAppointments(ctx context.Context, input domain.AppointmentInput) ([]domain.Appointment, error)
	ListAppointments(ctx context.Context, userID int64) ([]domain.Appointment, error)
	CancelAppointment(ctx context.Context, appointmentID, userID int64) ([]domain.Appointment, error)
}

// CommerceGateway is the full backend surface, implemented by the HTTP client.
type CommerceGateway interface {
	AuthGateway
	CartGateway
	ProductGateway
	PetGateway
	OrderGateway
	AppointmentGateway
}
