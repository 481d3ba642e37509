package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pawmart/storefront-go/internal/domain"
)

func (c *Client) ListServices(ctx context.Context) ([]domain.Service, error) {
	var dtos []serviceDTO
	if err := c.do(ctx, http.MethodGet, "/services", nil, nil, &dtos); err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}

	services := make([]domain.Service, 0, len(dtos))
	for _, dto := range dtos {
		services = append(services, domain.Service{
			ID:          dto.ID,
			Title:       dto.Title,
			Description: dto.Description,
			Price:       domain.NewMoney(dto.Price),
			Duration:    dto.Duration,
			Category:    dto.Category,
		})
	}
	return services, nil
}

// CreateAppointments books one visit; the backend fans it out to one
// appointment per pet and returns them all.
func (c *Client) CreateAppointments(ctx context.Context, input domain.AppointmentInput) ([]domain.Appointment, error) {
	if err := c.validate.Validate(input); err != nil {
		return nil, err
	}

	var dtos []appointmentDTO
	if err := c.do(ctx, http.MethodPost, "/appointments", nil, input, &dtos); err != nil {
		return nil, fmt.Errorf("create appointments: %w", err)
	}
	return mapAppointmentsToDomain(dtos), nil
}

func (c *Client) ListAppointments(ctx context.Context, userID int64) ([]domain.Appointment, error) {
	var dtos []appointmentDTO
	if err := c.do(ctx, http.MethodGet, "/appointments", userQuery(userID), nil, &dtos); err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return mapAppointmentsToDomain(dtos), nil
}

func (c *Client) CancelAppointment(ctx context.Context, appointmentID, userID int64) ([]domain.Appointment, error) {
	path := fmt.Sprintf("/appointments/%d/cancel", appointmentID)

	var dtos []appointmentDTO
	if err := c.do(ctx, http.MethodPut, path, userQuery(userID), nil, &dtos); err != nil {
		return nil, fmt.Errorf("cancel appointment: %w", err)
	}
	return mapAppointmentsToDomain(dtos), nil
}
