package port

import "github.com/pawmart/storefront-go/internal/domain"

// SessionStorage persists the signed-in user across restarts.
// Load returns (nil, nil) when no record exists; a parse error is returned
// as-is and the caller decides how to fail open.
type SessionStorage interface {
	Load() (*domain.User, error)
	Save(user domain.User) error
	Clear() error
}

// Identity is the read side of the session store consumed by the cart.
type Identity interface {
	Current() *domain.User
	OnChange(fn func(*domain.User))
}
