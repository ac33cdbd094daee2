package contracts

import (
	"context"

	"clinicare-service/internal/app/models"
	"clinicare-service/internal/pkg/dto/requests"
	"clinicare-service/internal/pkg/dto/responses"
)

type TimeSlotRepository interface {
	// Create inserts the slot together with its ScheduleDay children in one
	// statement batch; either all rows exist afterwards or none.
	Create(ctx context.Context, timeSlot *models.DoctorTimeSlot) (*models.DoctorTimeSlot, error)
	Delete(ctx context.Context, timeSlotID string) error
	// FindByID returns (nil, nil) when no slot matches the ID.
	FindByID(ctx context.Context, timeSlotID string) (*models.DoctorTimeSlot, error)
	// FindByDoctor lists a doctor's slots with children; day narrows to an
	// exact match when non-empty.
	FindByDoctor(ctx context.Context, doctorID, day string) ([]models.DoctorTimeSlot, error)
	// FindAllWithDoctor lists every slot with children and the owning doctor.
	FindAllWithDoctor(ctx context.Context) ([]models.DoctorTimeSlot, error)
	// FindFirstByDay returns (nil, nil) when no slot has the given day.
	FindFirstByDay(ctx context.Context, day string) (*models.DoctorTimeSlot, error)
	CreateScheduleDay(ctx context.Context, scheduleDay *models.ScheduleDay) error
	UpdateScheduleDay(ctx context.Context, scheduleDayID, startTime, endTime string) error
}

type TimeSlotUsecase interface {
	Create(ctx context.Context, session *models.Session, request *requests.CreateTimeSlot) (*responses.TimeSlot, error)
	Delete(ctx context.Context, timeSlotID string) error
	FindByID(ctx context.Context, timeSlotID string) (*responses.TimeSlot, error)
	FindMine(ctx context.Context, session *models.Session, filter *requests.TimeSlotFilter) ([]responses.TimeSlot, error)
	FindAll(ctx context.Context) ([]responses.TimeSlotWithDoctor, error)
	Update(ctx context.Context, session *models.Session, timeSlotID string, request *requests.UpdateTimeSlot) (*responses.TimeSlotUpdateResult, error)
}
