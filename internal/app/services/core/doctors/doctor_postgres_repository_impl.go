package doctors

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

type doctorPostgresRepository struct {
	DB  *gorm.DB
	Log *zap.Logger
}

var (
	doctorPostgresRepositoryInstance contracts.DoctorRepository
	onceDoctorPostgresRepository     sync.Once
)

func NewDoctorPostgresRepository(db *gorm.DB, logger *zap.Logger) contracts.DoctorRepository {
	onceDoctorPostgresRepository.Do(func() {
		instance := &doctorPostgresRepository{
			DB:  db,
			Log: logger,
		}
		doctorPostgresRepositoryInstance = instance
	})
	return doctorPostgresRepositoryInstance
}

func (repo *doctorPostgresRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("doctorPostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	db := persistence.DBFromContext(ctx, repo.DB)

	var doctor models.Doctor
	err := db.Where("id = ?", doctorID).First(&doctor).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		repo.Log.Warn("doctorPostgresRepository.FindByID no rows found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
		)
		return nil, nil
	} else if err != nil {
		repo.Log.Error("doctorPostgresRepository.FindByID error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	repo.Log.Info("doctorPostgresRepository.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctor.ID),
	)
	return &doctor, nil
}
