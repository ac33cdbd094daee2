package contracts

import (
	"context"

	"clinicare-service/internal/app/models"
)

type DoctorRepository interface {
	// FindByID returns (nil, nil) when no doctor matches the ID.
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
}
