// Package cart keeps a local mirror of the signed-in user's server-side
// shopping cart. The server is authoritative: every mutation is a full round
// trip and the returned cart replaces local state wholesale, never a merge.
package cart

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/pawmart/storefront-go/internal/domain"
	"github.com/pawmart/storefront-go/internal/port"
)

type Aggregate struct {
	mu      sync.Mutex
	items   []domain.CartItem
	isOpen  bool
	loading bool

	gw    port.CartGateway
	ident port.Identity
	log   *slog.Logger
}

// New wires the aggregate to the session: signing in refreshes the cart from
// the backend, signing out drops local items without any network call.
func New(gw port.CartGateway, ident port.Identity, log *slog.Logger) *Aggregate {
	a := &Aggregate{
		gw:    gw,
		ident: ident,
		log:   log,
	}

	ident.OnChange(func(user *domain.User) {
		if user == nil {
			a.clearLocal()
			return
		}
		a.Refresh(context.Background())
	})

	return a
}

// Refresh replaces local items with the backend's cart for the current user.
// Best effort: a failure is logged and prior state stays untouched.
func (a *Aggregate) Refresh(ctx context.Context) {
	user := a.ident.Current()
	if user == nil {
		return
	}

	a.setLoading(true)
	defer a.setLoading(false)

	cart, err := a.gw.GetCart(ctx, user.ID)
	if err != nil {
		a.log.Warn("cart refresh failed", "user_id", user.ID, "error", err)
		return
	}
	a.replace(cart)
}

// AddItem puts one unit of the product in the cart. Without a session it
// performs no gateway call and reports ErrSignInRequired.
func (a *Aggregate) AddItem(ctx context.Context, product domain.Product) error {
	user := a.ident.Current()
	if user == nil {
		return domain.ErrSignInRequired
	}

	a.setLoading(true)
	defer a.setLoading(false)

	cart, err := a.gw.AddItem(ctx, user.ID, product.ID, 1)
	if err != nil {
		return fmt.Errorf("add %q to cart: %w", product.Name, err)
	}
	a.replace(cart)
	return nil
}

// UpdateQuantity sets the item's quantity to the literal value given.
// Anything at or below zero becomes a removal, never a stored zero.
func (a *Aggregate) UpdateQuantity(ctx context.Context, productID int64, quantity int) error {
	if quantity <= 0 {
		return a.RemoveItem(ctx, productID)
	}

	user := a.ident.Current()
	if user == nil {
		return nil
	}

	a.setLoading(true)
	defer a.setLoading(false)

	cart, err := a.gw.SetQuantity(ctx, user.ID, productID, quantity)
	if err != nil {
		return fmt.Errorf("update quantity: %w", err)
	}
	a.replace(cart)
	return nil
}

func (a *Aggregate) RemoveItem(ctx context.Context, productID int64) error {
	user := a.ident.Current()
	if user == nil {
		return nil
	}

	a.setLoading(true)
	defer a.setLoading(false)

	cart, err := a.gw.RemoveItem(ctx, user.ID, productID)
	if err != nil {
		return fmt.Errorf("remove item: %w", err)
	}
	a.replace(cart)
	return nil
}

// Clear empties the server-side cart, then the local mirror. Checkout calls
// this after the order is placed.
func (a *Aggregate) Clear(ctx context.Context) error {
	user := a.ident.Current()
	if user == nil {
		return nil
	}

	a.setLoading(true)
	defer a.setLoading(false)

	if err := a.gw.ClearCart(ctx, user.ID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	a.clearLocal()
	return nil
}

func (a *Aggregate) Items() []domain.CartItem {
	a.mu.Lock()
	defer a.mu.Unlock()

	items := make([]domain.CartItem, len(a.items))
	copy(items, a.items)
	return items
}

func (a *Aggregate) TotalItems() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return domain.Cart{Items: a.items}.TotalItems()
}

func (a *Aggregate) TotalPrice() domain.Money {
	a.mu.Lock()
	defer a.mu.Unlock()
	return domain.Cart{Items: a.items}.TotalPrice()
}

func (a *Aggregate) Loading() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loading
}

// Drawer flags are presentation-only state, no gateway involvement.

func (a *Aggregate) ToggleDrawer() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.isOpen = !a.isOpen
}

func (a *Aggregate) CloseDrawer() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.isOpen = false
}

func (a *Aggregate) IsOpen() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.isOpen
}

// replace adopts the gateway's cart as the new local state. Overlapping
// mutations are not serialized: the last response to arrive wins, matching
// the backend's last-write semantics.
func (a *Aggregate) replace(cart domain.Cart) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.items = cart.Items
}

func (a *Aggregate) clearLocal() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.items = nil
}

func (a *Aggregate) setLoading(v bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.loading = v
}
