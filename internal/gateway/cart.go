package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pawmart/storefront-go/internal/domain"
)

func (c *Client) GetCart(ctx context.Context, userID int64) (domain.Cart, error) {
	var dto cartDTO
	if err := c.do(ctx, http.MethodGet, "/cart", userQuery(userID), nil, &dto); err != nil {
		return domain.Cart{}, fmt.Errorf("get cart: %w", err)
	}
	return mapCartToDomain(dto), nil
}

func (c *Client) AddItem(ctx context.Context, userID, productID int64, quantity int) (domain.Cart, error) {
	body := cartItemRequest{ProductID: productID, Quantity: quantity}

	var dto cartDTO
	if err := c.do(ctx, http.MethodPost, "/cart/items", userQuery(userID), body, &dto); err != nil {
		return domain.Cart{}, fmt.Errorf("add item: %w", err)
	}
	return mapCartToDomain(dto), nil
}

func (c *Client) SetQuantity(ctx context.Context, userID, productID int64, quantity int) (domain.Cart, error) {
	body := cartItemRequest{ProductID: productID, Quantity: quantity}
	path := fmt.Sprintf("/cart/items/%d", productID)

	var dto cartDTO
	if err := c.do(ctx, http.MethodPut, path, userQuery(userID), body, &dto); err != nil {
		return domain.Cart{}, fmt.Errorf("set quantity: %w", err)
	}
	return mapCartToDomain(dto), nil
}

func (c *Client) RemoveItem(ctx context.Context, userID, productID int64) (domain.Cart, error) {
	path := fmt.Sprintf("/cart/items/%d", productID)

	var dto cartDTO
	if err := c.do(ctx, http.MethodDelete, path, userQuery(userID), nil, &dto); err != nil {
		return domain.Cart{}, fmt.Errorf("remove item: %w", err)
	}
	return mapCartToDomain(dto), nil
}

func (c *Client) ClearCart(ctx context.Context, userID int64) error {
	if err := c.do(ctx, http.MethodDelete, "/cart", userQuery(userID), nil, nil); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
