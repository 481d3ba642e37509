package gateway

import (
	"context"
	"fmt"

	"github.com/pawmart/storefront-go/internal/domain"
)

func (c *Client) Login(ctx context.Context, creds domain.Credentials) (domain.AuthResult, error) {
	var resp authResponse
	if err := c.doAuth(ctx, "/auth/login", creds, &resp); err != nil {
		return domain.AuthResult{}, fmt.Errorf("login: %w", err)
	}
	return mapAuthToDomain(resp), nil
}

func (c *Client) Register(ctx context.Context, reg domain.Registration) (domain.AuthResult, error) {
	var resp authResponse
	if err := c.doAuth(ctx, "/auth/register", reg, &resp); err != nil {
		return domain.AuthResult{}, fmt.Errorf("register: %w", err)
	}
	return mapAuthToDomain(resp), nil
}

func mapAuthToDomain(resp authResponse) domain.AuthResult {
	return domain.AuthResult{
		ID:       resp.ID,
		Email:    resp.Email,
		FullName: resp.FullName,
		Phone:    resp.Phone,
		Role:     resp.Role,
		Message:  resp.Message,
	}
}
