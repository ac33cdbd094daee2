package contracts

import (
	"context"

	"clinicare-service/internal/app/models"
)

type AppointmentRepository interface {
	// FindByID returns (nil, nil) when no appointment matches the ID.
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	// Update applies the given column changes to one appointment. It honors a
	// transaction handle carried in ctx.
	Update(ctx context.Context, appointmentID string, changes map[string]interface{}) error
}
