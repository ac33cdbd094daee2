package contracts

import (
	"context"

	"clinicare-service/internal/app/models"
	"clinicare-service/internal/pkg/dto/requests"
	"clinicare-service/internal/pkg/dto/responses"
)

type PrescriptionRepository interface {
	// Create inserts the prescription row. It honors a transaction handle
	// carried in ctx.
	Create(ctx context.Context, prescription *models.Prescription) (*models.Prescription, error)
	// CreateMedicines batch-inserts all medicine lines. It honors a
	// transaction handle carried in ctx.
	CreateMedicines(ctx context.Context, medicines []models.Medicine) error
	FindAll(ctx context.Context) ([]models.Prescription, error)
	// FindByIDWithRelations returns (nil, nil) when no prescription matches
	// the ID; otherwise medicines, appointment, doctor and patient are loaded.
	FindByIDWithRelations(ctx context.Context, prescriptionID string) (*models.Prescription, error)
	FindByPatient(ctx context.Context, patientID string) ([]models.Prescription, error)
	FindByDoctor(ctx context.Context, doctorID string) ([]models.Prescription, error)
	Delete(ctx context.Context, prescriptionID string) error
	Update(ctx context.Context, prescriptionID string, changes map[string]interface{}) (*models.Prescription, error)
}

type PrescriptionUsecase interface {
	Create(ctx context.Context, session *models.Session, request *requests.CreatePrescription) error
	FindAll(ctx context.Context) ([]responses.Prescription, error)
	FindByID(ctx context.Context, prescriptionID string) (*responses.PrescriptionDetail, error)
	FindByPatient(ctx context.Context, session *models.Session) ([]responses.PatientPrescription, error)
	FindByDoctor(ctx context.Context, session *models.Session) ([]responses.DoctorPrescription, error)
	Delete(ctx context.Context, prescriptionID string) error
	Update(ctx context.Context, prescriptionID string, request *requests.UpdatePrescription) (*responses.Prescription, error)
}
