package timeslots

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

type timeSlotPostgresRepository struct {
	DB  *gorm.DB
	Log *zap.Logger
}

var (
	timeSlotPostgresRepositoryInstance contracts.TimeSlotRepository
	onceTimeSlotPostgresRepository     sync.Once
)

func NewTimeSlotPostgresRepository(db *gorm.DB, logger *zap.Logger) contracts.TimeSlotRepository {
	onceTimeSlotPostgresRepository.Do(func() {
		instance := &timeSlotPostgresRepository{
			DB:  db,
			Log: logger,
		}
		timeSlotPostgresRepositoryInstance = instance
	})
	return timeSlotPostgresRepositoryInstance
}

func (repo *timeSlotPostgresRepository) Create(ctx context.Context, timeSlot *models.DoctorTimeSlot) (*models.DoctorTimeSlot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("timeSlotPostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, timeSlot.DoctorID),
		zap.String(constvars.LoggingDayKey, timeSlot.Day),
	)

	db := persistence.DBFromContext(ctx, repo.DB)

	// Association insert: the ScheduleDay children go in with the parent, so
	// a failure leaves no partial slot behind.
	err := db.Create(timeSlot).Error
	if err != nil {
		repo.Log.Error("timeSlotPostgresRepository.Create error executing insert",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}

	repo.Log.Info("timeSlotPostgresRepository.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTimeSlotIDKey, timeSlot.ID),
	)
	return timeSlot, nil
}

func (repo *timeSlotPostgresRepository) Delete(ctx context.Context, timeSlotID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("timeSlotPostgresRepository.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTimeSlotIDKey, timeSlotID),
	)

	db := persistence.DBFromContext(ctx, repo.DB)

	err := db.Where("id = ?", timeSlotID).Delete(&models.DoctorTimeSlot{}).Error
	if err != nil {
		repo.Log.Error("timeSlotPostgresRepository.Delete error executing delete",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTimeSlotIDKey, timeSlotID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBDeleteData(err)
	}

	repo.Log.Info("timeSlotPostgresRepository.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTimeSlotIDKey, timeSlotID),
	)
	return nil
}

func (repo *timeSlotPostgresRepository) FindByID(ctx context.Context, timeSlotID string) (*models.DoctorTimeSlot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("timeSlotPostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTimeSlotIDKey, timeSlotID),
	)

	db := persistence.DBFromContext(ctx, repo.DB)

	var timeSlot models.DoctorTimeSlot
	err := db.Where("id = ?", timeSlotID).First(&timeSlot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		repo.Log.Warn("timeSlotPostgresRepository.FindByID no rows found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTimeSlotIDKey, timeSlotID),
		)
		return nil, nil
	} else if err != nil {
		repo.Log.Error("timeSlotPostgresRepository.FindByID error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTimeSlotIDKey, timeSlotID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	repo.Log.Info("timeSlotPostgresRepository.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTimeSlotIDKey, timeSlot.ID),
	)
	return &timeSlot, nil
}

func (repo *timeSlotPostgresRepository) FindByDoctor(ctx context.Context, doctorID, day string) ([]models.DoctorTimeSlot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("timeSlotPostgresRepository.FindByDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingDayKey, day),
	)

	db := persistence.DBFromContext(ctx, repo.DB)

	query := db.Preload("TimeSlots").Where("doctor_id = ?", doctorID)
	if day != "" {
		query = query.Where("day = ?", day)
	}

	var timeSlots []models.DoctorTimeSlot
	err := query.Find(&timeSlots).Error
	if err != nil {
		repo.Log.Error("timeSlotPostgresRepository.FindByDoctor error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	repo.Log.Info("timeSlotPostgresRepository.FindByDoctor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingTimeSlotCountKey, len(timeSlots)),
	)
	return timeSlots, nil
}

func (repo *timeSlotPostgresRepository) FindAllWithDoctor(ctx context.Context) ([]models.DoctorTimeSlot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("timeSlotPostgresRepository.FindAllWithDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	db := persistence.DBFromContext(ctx, repo.DB)

	var timeSlots []models.DoctorTimeSlot
	err := db.Preload("TimeSlots").Preload("Doctor").Find(&timeSlots).Error
	if err != nil {
		repo.Log.Error("timeSlotPostgresRepository.FindAllWithDoctor error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	repo.Log.Info("timeSlotPostgresRepository.FindAllWithDoctor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingTimeSlotCountKey, len(timeSlots)),
	)
	return timeSlots, nil
}

func (repo *timeSlotPostgresRepository) FindFirstByDay(ctx context.Context, day string) (*models.DoctorTimeSlot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("timeSlotPostgresRepository.FindFirstByDay called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDayKey, day),
	)

	db := persistence.DBFromContext(ctx, repo.DB)

	var timeSlot models.DoctorTimeSlot
	err := db.Where("day = ?", day).First(&timeSlot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		repo.Log.Warn("timeSlotPostgresRepository.FindFirstByDay no rows found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDayKey, day),
		)
		return nil, nil
	} else if err != nil {
		repo.Log.Error("timeSlotPostgresRepository.FindFirstByDay error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDayKey, day),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	return &timeSlot, nil
}

func (repo *timeSlotPostgresRepository) CreateScheduleDay(ctx context.Context, scheduleDay *models.ScheduleDay) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("timeSlotPostgresRepository.CreateScheduleDay called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTimeSlotIDKey, scheduleDay.DoctorTimeSlotID),
	)

	db := persistence.DBFromContext(ctx, repo.DB)

	err := db.Create(scheduleDay).Error
	if err != nil {
		repo.Log.Error("timeSlotPostgresRepository.CreateScheduleDay error executing insert",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBInsertData(err)
	}

	repo.Log.Info("timeSlotPostgresRepository.CreateScheduleDay succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScheduleDayIDKey, scheduleDay.ID),
	)
	return nil
}

func (repo *timeSlotPostgresRepository) UpdateScheduleDay(ctx context.Context, scheduleDayID, startTime, endTime string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("timeSlotPostgresRepository.UpdateScheduleDay called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScheduleDayIDKey, scheduleDayID),
	)

	db := persistence.DBFromContext(ctx, repo.DB)

	err := db.Model(&models.ScheduleDay{}).
		Where("id = ?", scheduleDayID).
		Updates(map[string]interface{}{
			"start_time": startTime,
			"end_time":   endTime,
		}).Error
	if err != nil {
		repo.Log.Error("timeSlotPostgresRepository.UpdateScheduleDay error executing update",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingScheduleDayIDKey, scheduleDayID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBUpdateData(err)
	}

	repo.Log.Info("timeSlotPostgresRepository.UpdateScheduleDay succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScheduleDayIDKey, scheduleDayID),
	)
	return nil
}
