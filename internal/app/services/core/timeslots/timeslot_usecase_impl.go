package timeslots

import (
	"context"
	"sync"

	"clinicare-service/internal/app/contracts"
	"clinicare-service/internal/app/models"
	"clinicare-service/internal/pkg/constvars"
	"clinicare-service/internal/pkg/dto/requests"
	"clinicare-service/internal/pkg/dto/responses"
	"clinicare-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type timeSlotUsecase struct {
	TimeSlotRepository contracts.TimeSlotRepository
	DoctorRepository   contracts.DoctorRepository
	Log                *zap.Logger
}

var (
	timeSlotUsecaseInstance contracts.TimeSlotUsecase
	onceTimeSlotUsecase     sync.Once
)

func NewTimeSlotUsecase(
	timeSlotRepository contracts.TimeSlotRepository,
	doctorRepository contracts.DoctorRepository,
	logger *zap.Logger,
) contracts.TimeSlotUsecase {
	onceTimeSlotUsecase.Do(func() {
		instance := &timeSlotUsecase{
			TimeSlotRepository: timeSlotRepository,
			DoctorRepository:   doctorRepository,
			Log:                logger,
		}
		timeSlotUsecaseInstance = instance
	})
	return timeSlotUsecaseInstance
}

func (uc *timeSlotUsecase) Create(ctx context.Context, session *models.Session, request *requests.CreateTimeSlot) (*responses.TimeSlot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("timeSlotUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, session.UserID),
	)

	doctor, err := uc.resolveDoctor(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	timeSlot := &models.DoctorTimeSlot{
		DoctorID:       doctor.ID,
		Day:            request.Day,
		WeekDay:        request.WeekDay,
		MaximumPatient: request.MaximumPatient,
	}
	for _, entry := range request.TimeSlot {
		timeSlot.TimeSlots = append(timeSlot.TimeSlots, models.ScheduleDay{
			StartTime: entry.StartTime,
			EndTime:   entry.EndTime,
		})
	}

	created, err := uc.TimeSlotRepository.Create(ctx, timeSlot)
	if err != nil {
		uc.Log.Error("timeSlotUsecase.Create error creating time slot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("timeSlotUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTimeSlotIDKey, created.ID),
	)
	response := buildTimeSlotResponse(created)
	return &response, nil
}

func (uc *timeSlotUsecase) Delete(ctx context.Context, timeSlotID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("timeSlotUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTimeSlotIDKey, timeSlotID),
	)

	// No existence pre-check; the store's native behavior surfaces.
	return uc.TimeSlotRepository.Delete(ctx, timeSlotID)
}

func (uc *timeSlotUsecase) FindByID(ctx context.Context, timeSlotID string) (*responses.TimeSlot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("timeSlotUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTimeSlotIDKey, timeSlotID),
	)

	timeSlot, err := uc.TimeSlotRepository.FindByID(ctx, timeSlotID)
	if err != nil {
		return nil, err
	}
	if timeSlot == nil {
		return nil, nil
	}

	response := buildTimeSlotResponse(timeSlot)
	return &response, nil
}

func (uc *timeSlotUsecase) FindMine(ctx context.Context, session *models.Session, filter *requests.TimeSlotFilter) ([]responses.TimeSlot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("timeSlotUsecase.FindMine called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, session.UserID),
		zap.String(constvars.LoggingDayKey, filter.Day),
	)

	doctor, err := uc.resolveDoctor(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	timeSlots, err := uc.TimeSlotRepository.FindByDoctor(ctx, doctor.ID, filter.Day)
	if err != nil {
		return nil, err
	}

	response := make([]responses.TimeSlot, 0, len(timeSlots))
	for i := range timeSlots {
		response = append(response, buildTimeSlotResponse(&timeSlots[i]))
	}

	uc.Log.Info("timeSlotUsecase.FindMine succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response)),
	)
	return response, nil
}

func (uc *timeSlotUsecase) FindAll(ctx context.Context) ([]responses.TimeSlotWithDoctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("timeSlotUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	timeSlots, err := uc.TimeSlotRepository.FindAllWithDoctor(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]responses.TimeSlotWithDoctor, 0, len(timeSlots))
	for i := range timeSlots {
		item := responses.TimeSlotWithDoctor{
			TimeSlot: buildTimeSlotResponse(&timeSlots[i]),
		}
		if timeSlots[i].Doctor != nil {
			item.Doctor = responses.DoctorName{
				FirstName: timeSlots[i].Doctor.FirstName,
				LastName:  timeSlots[i].Doctor.LastName,
			}
		}
		response = append(response, item)
	}

	uc.Log.Info("timeSlotUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response)),
	)
	return response, nil
}

// Update runs two independent best-effort sub-batches. Items inside a batch
// are issued concurrently and a failing item does not roll its siblings back;
// the outcome of every item is reported back to the caller instead of a bare
// success flag.
func (uc *timeSlotUsecase) Update(ctx context.Context, session *models.Session, timeSlotID string, request *requests.UpdateTimeSlot) (*responses.TimeSlotUpdateResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("timeSlotUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, session.UserID),
		zap.String(constvars.LoggingTimeSlotIDKey, timeSlotID),
	)

	if _, err := uc.resolveDoctor(ctx, session.UserID); err != nil {
		return nil, err
	}

	result := &responses.TimeSlotUpdateResult{
		Message: constvars.TimeSlotUpdatedSuccess,
	}

	if len(request.Create) > 0 {
		// The target slot is looked up by the first item's day, matching the
		// original booking flow where one update call always targets one day.
		timeSlot, err := uc.TimeSlotRepository.FindFirstByDay(ctx, request.Create[0].Day)
		if err != nil {
			return nil, err
		}
		if timeSlot == nil {
			return nil, exceptions.ErrTimeSlotNotFound(nil)
		}

		result.Created = uc.createScheduleDays(ctx, timeSlot.ID, request.Create)
	}

	if len(request.TimeSlot) > 0 {
		result.Updated = uc.updateScheduleDays(ctx, request.TimeSlot)
	}

	uc.Log.Info("timeSlotUsecase.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("created_count", len(result.Created)),
		zap.Int("updated_count", len(result.Updated)),
	)
	return result, nil
}

func (uc *timeSlotUsecase) createScheduleDays(ctx context.Context, timeSlotID string, items []requests.CreateScheduleDay) []responses.ScheduleDayItemResult {
	results := make([]responses.ScheduleDayItemResult, len(items))

	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func(index int, item requests.CreateScheduleDay) {
			defer wg.Done()

			scheduleDay := &models.ScheduleDay{
				DoctorTimeSlotID: timeSlotID,
				StartTime:        item.StartTime,
				EndTime:          item.EndTime,
			}
			if err := uc.TimeSlotRepository.CreateScheduleDay(ctx, scheduleDay); err != nil {
				results[index] = responses.ScheduleDayItemResult{
					Index: index,
					Error: exceptions.ErrScheduleDayCreate(err).ClientMessage,
				}
				return
			}
			results[index] = responses.ScheduleDayItemResult{
				Index:   index,
				ID:      scheduleDay.ID,
				Applied: true,
			}
		}(i, item)
	}
	wg.Wait()

	return results
}

func (uc *timeSlotUsecase) updateScheduleDays(ctx context.Context, items []requests.UpdateScheduleDay) []responses.ScheduleDayItemResult {
	results := make([]responses.ScheduleDayItemResult, len(items))

	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func(index int, item requests.UpdateScheduleDay) {
			defer wg.Done()

			if err := uc.TimeSlotRepository.UpdateScheduleDay(ctx, item.ID, item.StartTime, item.EndTime); err != nil {
				results[index] = responses.ScheduleDayItemResult{
					Index: index,
					ID:    item.ID,
					Error: exceptions.ErrScheduleDayUpdate(err).ClientMessage,
				}
				return
			}
			results[index] = responses.ScheduleDayItemResult{
				Index:   index,
				ID:      item.ID,
				Applied: true,
			}
		}(i, item)
	}
	wg.Wait()

	return results
}

func (uc *timeSlotUsecase) resolveDoctor(ctx context.Context, userID string) (*models.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	doctor, err := uc.DoctorRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		uc.Log.Warn("timeSlotUsecase doctor account not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, userID),
		)
		return nil, exceptions.ErrDoctorNotFound(nil)
	}
	return doctor, nil
}

func buildTimeSlotResponse(timeSlot *models.DoctorTimeSlot) responses.TimeSlot {
	response := responses.TimeSlot{
		ID:             timeSlot.ID,
		DoctorID:       timeSlot.DoctorID,
		Day:            timeSlot.Day,
		WeekDay:        timeSlot.WeekDay,
		MaximumPatient: timeSlot.MaximumPatient,
	}
	for _, scheduleDay := range timeSlot.TimeSlots {
		response.TimeSlot = append(response.TimeSlot, responses.ScheduleDay{
			ID:               scheduleDay.ID,
			DoctorTimeSlotID: scheduleDay.DoctorTimeSlotID,
			StartTime:        scheduleDay.StartTime,
			EndTime:          scheduleDay.EndTime,
		})
	}
	return response
}
