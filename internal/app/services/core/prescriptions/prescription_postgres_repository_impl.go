package prescriptions

import (
	"context"
	"errors"
	"sync"

	"clinicare-service/internal/app/contracts"
	"clinicare-service/internal/app/models"
	"clinicare-service/internal/app/services/shared/persistence"
	"clinicare-service/internal/pkg/constvars"
	"clinicare-service/internal/pkg/exceptions"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type prescriptionPostgresRepository struct {
	DB  *gorm.DB
	Log *zap.Logger
}

var (
	prescriptionRepositoryInstance contracts.PrescriptionRepository
	oncePrescriptionRepository     sync.Once
)

func NewPrescriptionPostgresRepository(db *gorm.DB, logger *zap.Logger) contracts.PrescriptionRepository {
	oncePrescriptionRepository.Do(func() {
		instance := &prescriptionPostgresRepository{
			DB:  db,
			Log: logger,
		}
		prescriptionRepositoryInstance = instance
	})
	return prescriptionRepositoryInstance
}

func (repo *prescriptionPostgresRepository) Create(ctx context.Context, prescription *models.Prescription) (*models.Prescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("prescriptionPostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, prescription.AppointmentID),
	)

	db := persistence.DBFromContext(ctx, repo.DB)
	if err := db.Create(prescription).Error; err != nil {
		repo.Log.Error("prescriptionPostgresRepository.Create error inserting prescription",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}

	repo.Log.Info("prescriptionPostgresRepository.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrescriptionIDKey, prescription.ID),
	)
	return prescription, nil
}

func (repo *prescriptionPostgresRepository) CreateMedicines(ctx context.Context, medicines []models.Medicine) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("prescriptionPostgresRepository.CreateMedicines called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingMedicineCountKey, len(medicines)),
	)

	if len(medicines) == 0 {
		return nil
	}

	db := persistence.DBFromContext(ctx, repo.DB)
	if err := db.Create(&medicines).Error; err != nil {
		repo.Log.Error("prescriptionPostgresRepository.CreateMedicines error inserting medicines",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBInsertData(err)
	}
	return nil
}

func (repo *prescriptionPostgresRepository) FindAll(ctx context.Context) ([]models.Prescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("prescriptionPostgresRepository.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	db := persistence.DBFromContext(ctx, repo.DB)
	var prescriptions []models.Prescription
	if err := db.Find(&prescriptions).Error; err != nil {
		repo.Log.Error("prescriptionPostgresRepository.FindAll error finding prescriptions",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	repo.Log.Info("prescriptionPostgresRepository.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPrescriptionCountKey, len(prescriptions)),
	)
	return prescriptions, nil
}

func (repo *prescriptionPostgresRepository) FindByIDWithRelations(ctx context.Context, prescriptionID string) (*models.Prescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("prescriptionPostgresRepository.FindByIDWithRelations called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID),
	)

	db := persistence.DBFromContext(ctx, repo.DB)
	var prescription models.Prescription
	err := db.
		Preload("Medicines").
		Preload("Appointment").
		Preload("Doctor").
		Preload("Patient").
		First(&prescription, "id = ?", prescriptionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		repo.Log.Error("prescriptionPostgresRepository.FindByIDWithRelations error finding prescription",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &prescription, nil
}

func (repo *prescriptionPostgresRepository) FindByPatient(ctx context.Context, patientID string) ([]models.Prescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("prescriptionPostgresRepository.FindByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	db := persistence.DBFromContext(ctx, repo.DB)
	var prescriptions []models.Prescription
	err := db.
		Preload("Medicines").
		Preload("Appointment").
		Preload("Doctor").
		Where("patient_id = ?", patientID).
		Find(&prescriptions).Error
	if err != nil {
		repo.Log.Error("prescriptionPostgresRepository.FindByPatient error finding prescriptions",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	repo.Log.Info("prescriptionPostgresRepository.FindByPatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPrescriptionCountKey, len(prescriptions)),
	)
	return prescriptions, nil
}

func (repo *prescriptionPostgresRepository) FindByDoctor(ctx context.Context, doctorID string) ([]models.Prescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("prescriptionPostgresRepository.FindByDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	db := persistence.DBFromContext(ctx, repo.DB)
	var prescriptions []models.Prescription
	err := db.
		Preload("Medicines").
		Preload("Appointment").
		Preload("Patient").
		Where("doctor_id = ?", doctorID).
		Find(&prescriptions).Error
	if err != nil {
		repo.Log.Error("prescriptionPostgresRepository.FindByDoctor error finding prescriptions",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	repo.Log.Info("prescriptionPostgresRepository.FindByDoctor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPrescriptionCountKey, len(prescriptions)),
	)
	return prescriptions, nil
}

func (repo *prescriptionPostgresRepository) Delete(ctx context.Context, prescriptionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("prescriptionPostgresRepository.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID),
	)

	db := persistence.DBFromContext(ctx, repo.DB)
	// Medicine lines go first so the parent row never leaves orphans behind.
	if err := db.Where("prescription_id = ?", prescriptionID).Delete(&models.Medicine{}).Error; err != nil {
		repo.Log.Error("prescriptionPostgresRepository.Delete error deleting medicines",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	if err := db.Delete(&models.Prescription{}, "id = ?", prescriptionID).Error; err != nil {
		repo.Log.Error("prescriptionPostgresRepository.Delete error deleting prescription",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	return nil
}

func (repo *prescriptionPostgresRepository) Update(ctx context.Context, prescriptionID string, changes map[string]interface{}) (*models.Prescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("prescriptionPostgresRepository.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID),
	)

	db := persistence.DBFromContext(ctx, repo.DB)
	if len(changes) > 0 {
		err := db.Model(&models.Prescription{}).
			Where("id = ?", prescriptionID).
			Updates(changes).Error
		if err != nil {
			repo.Log.Error("prescriptionPostgresRepository.Update error updating prescription",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrPostgresDBUpdateData(err)
		}
	}

	var prescription models.Prescription
	err := db.Preload("Medicines").First(&prescription, "id = ?", prescriptionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		repo.Log.Error("prescriptionPostgresRepository.Update error reloading prescription",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &prescription, nil
}
