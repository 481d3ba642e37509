package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pawmart/storefront-go/internal/domain"
)

func (c *Client) CreateOrder(ctx context.Context, input domain.OrderInput) (domain.Order, error) {
	if err := c.validate.Validate(input); err != nil {
		return domain.Order{}, err
	}

	var dto orderDTO
	if err := c.do(ctx, http.MethodPost, "/orders", nil, input, &dto); err != nil {
		return domain.Order{}, fmt.Errorf("create order: %w", err)
	}
	return mapOrderToDomain(dto), nil
}

func (c *Client) ListOrders(ctx context.Context, userID int64) ([]domain.Order, error) {
	var dtos []orderDTO
	if err := c.do(ctx, http.MethodGet, "/orders", userQuery(userID), nil, &dtos); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	orders := make([]domain.Order, 0, len(dtos))
	for _, dto := range dtos {
		orders = append(orders, mapOrderToDomain(dto))
	}
	return orders, nil
}

func (c *Client) GetOrder(ctx context.Context, orderID, userID int64) (domain.Order, error) {
	path := fmt.Sprintf("/orders/%d", orderID)

	var dto orderDTO
	if err := c.do(ctx, http.MethodGet, path, userQuery(userID), nil, &dto); err != nil {
		return domain.Order{}, fmt.Errorf("get order: %w", err)
	}
	return mapOrderToDomain(dto), nil
}
