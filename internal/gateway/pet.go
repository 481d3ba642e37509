package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pawmart/storefront-go/internal/domain"
)

func (c *Client) ListPets(ctx context.Context, userID int64) ([]domain.Pet, error) {
	var dtos []petDTO
	if err := c.do(ctx, http.MethodGet, "/pets", userQuery(userID), nil, &dtos); err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}

	pets := make([]domain.Pet, 0, len(dtos))
	for _, dto := range dtos {
		pets = append(pets, mapPetToDomain(dto))
	}
	return pets, nil
}

func (c *Client) CreatePet(ctx context.Context, input domain.PetInput) (domain.Pet, error) {
	if err := c.validate.Validate(input); err != nil {
		return domain.Pet{}, err
	}

	var dto petDTO
	if err := c.do(ctx, http.MethodPost, "/pets", nil, input, &dto); err != nil {
		return domain.Pet{}, fmt.Errorf("create pet: %w", err)
	}
	return mapPetToDomain(dto), nil
}

func (c *Client) UpdatePet(ctx context.Context, petID int64, input domain.PetInput) (domain.Pet, error) {
	if err := c.validate.Validate(input); err != nil {
		return domain.Pet{}, err
	}

	path := fmt.Sprintf("/pets/%d", petID)

	var dto petDTO
	if err := c.do(ctx, http.MethodPut, path, nil, input, &dto); err != nil {
		return domain.Pet{}, fmt.Errorf("update pet: %w", err)
	}
	return mapPetToDomain(dto), nil
}

func (c *Client) DeletePet(ctx context.Context, petID, userID int64) error {
	path := fmt.Sprintf("/pets/%d", petID)

	if err := c.do(ctx, http.MethodDelete, path, userQuery(userID), nil, nil); err != nil {
		return fmt.Errorf("delete pet: %w", err)
	}
	return nil
}
