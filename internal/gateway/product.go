package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pawmart/storefront-go/internal/domain"
)

func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var dtos []productDTO
	if err := c.do(ctx, http.MethodGet, "/products", nil, nil, &dtos); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return mapProductsToDomain(dtos), nil
}

func (c *Client) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	var dto productDTO
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, nil, &dto); err != nil {
		return domain.Product{}, fmt.Errorf("get product: %w", err)
	}
	return mapProductToDomain(dto), nil
}

func (c *Client) ListProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	query := url.Values{"category": []string{category}}

	var dtos []productDTO
	if err := c.do(ctx, http.MethodGet, "/products", query, nil, &dtos); err != nil {
		return nil, fmt.Errorf("list products by category: %w", err)
	}
	return mapProductsToDomain(dtos), nil
}

func (c *Client) SearchProducts(ctx context.Context, name string) ([]domain.Product, error) {
	query := url.Values{"name": []string{name}}

	var dtos []productDTO
	if err := c.do(ctx, http.MethodGet, "/products/search", query, nil, &dtos); err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return mapProductsToDomain(dtos), nil
}
