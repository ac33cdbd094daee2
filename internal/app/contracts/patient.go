package contracts

import (
	"context"

	"clinicare-service/internal/app/models"
)

type PatientRepository interface {
	// FindByID returns (nil, nil) when no patient matches the ID.
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
}
