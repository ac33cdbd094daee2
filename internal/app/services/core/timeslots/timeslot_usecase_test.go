package timeslots

import (
	"context"
	"errors"
	"testing"

	"clinicare-service/internal/app/models"
	"clinicare-service/internal/pkg/constvars"
	"clinicare-service/internal/pkg/dto/requests"
	"clinicare-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockTimeSlotRepository struct {
	mock.Mock
}

func (m *mockTimeSlotRepository) Create(ctx context.Context, timeSlot *models.DoctorTimeSlot) (*models.DoctorTimeSlot, error) {
	args := m.Called(ctx, timeSlot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DoctorTimeSlot), args.Error(1)
}

func (m *mockTimeSlotRepository) Delete(ctx context.Context, timeSlotID string) error {
	args := m.Called(ctx, timeSlotID)
	return args.Error(0)
}

func (m *mockTimeSlotRepository) FindByID(ctx context.Context, timeSlotID string) (*models.DoctorTimeSlot, error) {
	args := m.Called(ctx, timeSlotID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DoctorTimeSlot), args.Error(1)
}

func (m *mockTimeSlotRepository) FindByDoctor(ctx context.Context, doctorID, day string) ([]models.DoctorTimeSlot, error) {
	args := m.Called(ctx, doctorID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DoctorTimeSlot), args.Error(1)
}

func (m *mockTimeSlotRepository) FindAllWithDoctor(ctx context.Context) ([]models.DoctorTimeSlot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DoctorTimeSlot), args.Error(1)
}

func (m *mockTimeSlotRepository) FindFirstByDay(ctx context.Context, day string) (*models.DoctorTimeSlot, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DoctorTimeSlot), args.Error(1)
}

func (m *mockTimeSlotRepository) CreateScheduleDay(ctx context.Context, scheduleDay *models.ScheduleDay) error {
	args := m.Called(ctx, scheduleDay)
	return args.Error(0)
}

func (m *mockTimeSlotRepository) UpdateScheduleDay(ctx context.Context, scheduleDayID, startTime, endTime string) error {
	args := m.Called(ctx, scheduleDayID, startTime, endTime)
	return args.Error(0)
}

type mockDoctorRepository struct {
	mock.Mock
}

func (m *mockDoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func newTestTimeSlotUsecase(timeSlotRepo *mockTimeSlotRepository, doctorRepo *mockDoctorRepository) *timeSlotUsecase {
	return &timeSlotUsecase{
		TimeSlotRepository: timeSlotRepo,
		DoctorRepository:   doctorRepo,
		Log:                zap.NewNop(),
	}
}

func doctorSession() *models.Session {
	return &models.Session{SessionID: "s1", UserID: "doc-1", Role: constvars.ClinicareRoleDoctor}
}

func TestTimeSlotUsecaseCreate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		timeSlotRepo := new(mockTimeSlotRepository)
		doctorRepo := new(mockDoctorRepository)
		uc := newTestTimeSlotUsecase(timeSlotRepo, doctorRepo)

		doctorRepo.On("FindByID", mock.Anything, "doc-1").Return(&models.Doctor{ID: "doc-1"}, nil)
		timeSlotRepo.On("Create", mock.Anything, mock.MatchedBy(func(ts *models.DoctorTimeSlot) bool {
			return ts.DoctorID == "doc-1" && ts.Day == "2026-09-07" && len(ts.TimeSlots) == 2
		})).Return(&models.DoctorTimeSlot{
			ID:             "ts-1",
			DoctorID:       "doc-1",
			Day:            "2026-09-07",
			WeekDay:        "Monday",
			MaximumPatient: 8,
			TimeSlots: []models.ScheduleDay{
				{ID: "sd-1", StartTime: "09:00", EndTime: "09:30"},
				{ID: "sd-2", StartTime: "09:30", EndTime: "10:00"},
			},
		}, nil)

		response, err := uc.Create(context.Background(), doctorSession(), &requests.CreateTimeSlot{
			Day:            "2026-09-07",
			WeekDay:        "Monday",
			MaximumPatient: 8,
			TimeSlot: []requests.TimeSlotEntry{
				{StartTime: "09:00", EndTime: "09:30"},
				{StartTime: "09:30", EndTime: "10:00"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "ts-1", response.ID)
		assert.Len(t, response.TimeSlot, 2)
		timeSlotRepo.AssertExpectations(t)
	})

	t.Run("Doctor not found", func(t *testing.T) {
		timeSlotRepo := new(mockTimeSlotRepository)
		doctorRepo := new(mockDoctorRepository)
		uc := newTestTimeSlotUsecase(timeSlotRepo, doctorRepo)

		doctorRepo.On("FindByID", mock.Anything, "doc-1").Return(nil, nil)

		_, err := uc.Create(context.Background(), doctorSession(), &requests.CreateTimeSlot{
			Day:            "2026-09-07",
			WeekDay:        "Monday",
			MaximumPatient: 8,
			TimeSlot:       []requests.TimeSlotEntry{{StartTime: "09:00", EndTime: "09:30"}},
		})
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientDoctorNotFound, customErr.ClientMessage)
		timeSlotRepo.AssertNotCalled(t, "Create")
	})
}

func TestTimeSlotUsecaseFindMine(t *testing.T) {
	timeSlotRepo := new(mockTimeSlotRepository)
	doctorRepo := new(mockDoctorRepository)
	uc := newTestTimeSlotUsecase(timeSlotRepo, doctorRepo)

	doctorRepo.On("FindByID", mock.Anything, "doc-1").Return(&models.Doctor{ID: "doc-1"}, nil)
	timeSlotRepo.On("FindByDoctor", mock.Anything, "doc-1", "2026-09-07").Return([]models.DoctorTimeSlot{
		{ID: "ts-1", DoctorID: "doc-1", Day: "2026-09-07"},
	}, nil)

	response, err := uc.FindMine(context.Background(), doctorSession(), &requests.TimeSlotFilter{Day: "2026-09-07"})
	require.NoError(t, err)
	require.Len(t, response, 1)
	assert.Equal(t, "2026-09-07", response[0].Day)
}

func TestTimeSlotUsecaseUpdate(t *testing.T) {
	t.Run("Target slot resolved by first create item's day", func(t *testing.T) {
		timeSlotRepo := new(mockTimeSlotRepository)
		doctorRepo := new(mockDoctorRepository)
		uc := newTestTimeSlotUsecase(timeSlotRepo, doctorRepo)

		doctorRepo.On("FindByID", mock.Anything, "doc-1").Return(&models.Doctor{ID: "doc-1"}, nil)
		timeSlotRepo.On("FindFirstByDay", mock.Anything, "2026-09-07").Return(&models.DoctorTimeSlot{ID: "ts-1"}, nil)
		timeSlotRepo.On("CreateScheduleDay", mock.Anything, mock.MatchedBy(func(sd *models.ScheduleDay) bool {
			return sd.DoctorTimeSlotID == "ts-1"
		})).Return(nil)

		result, err := uc.Update(context.Background(), doctorSession(), "ignored-id", &requests.UpdateTimeSlot{
			Create: []requests.CreateScheduleDay{
				{Day: "2026-09-07", StartTime: "10:00", EndTime: "10:30"},
				{Day: "2026-09-07", StartTime: "10:30", EndTime: "11:00"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, constvars.TimeSlotUpdatedSuccess, result.Message)
		require.Len(t, result.Created, 2)
		for _, item := range result.Created {
			assert.True(t, item.Applied, "every create should have applied")
			assert.Empty(t, item.Error)
		}
	})

	t.Run("No slot for the requested day", func(t *testing.T) {
		timeSlotRepo := new(mockTimeSlotRepository)
		doctorRepo := new(mockDoctorRepository)
		uc := newTestTimeSlotUsecase(timeSlotRepo, doctorRepo)

		doctorRepo.On("FindByID", mock.Anything, "doc-1").Return(&models.Doctor{ID: "doc-1"}, nil)
		timeSlotRepo.On("FindFirstByDay", mock.Anything, "2030-01-01").Return(nil, nil)

		_, err := uc.Update(context.Background(), doctorSession(), "ts-1", &requests.UpdateTimeSlot{
			Create: []requests.CreateScheduleDay{{Day: "2030-01-01", StartTime: "10:00", EndTime: "10:30"}},
		})
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.ErrClientTimeSlotNotFound, customErr.ClientMessage)
	})

	t.Run("Failing item does not roll back siblings", func(t *testing.T) {
		timeSlotRepo := new(mockTimeSlotRepository)
		doctorRepo := new(mockDoctorRepository)
		uc := newTestTimeSlotUsecase(timeSlotRepo, doctorRepo)

		doctorRepo.On("FindByID", mock.Anything, "doc-1").Return(&models.Doctor{ID: "doc-1"}, nil)
		timeSlotRepo.On("UpdateScheduleDay", mock.Anything, "sd-ok", "11:00", "11:30").Return(nil)
		timeSlotRepo.On("UpdateScheduleDay", mock.Anything, "sd-bad", "12:00", "12:30").Return(errors.New("constraint violation"))

		result, err := uc.Update(context.Background(), doctorSession(), "ts-1", &requests.UpdateTimeSlot{
			TimeSlot: []requests.UpdateScheduleDay{
				{ID: "sd-ok", StartTime: "11:00", EndTime: "11:30"},
				{ID: "sd-bad", StartTime: "12:00", EndTime: "12:30"},
			},
		})
		require.NoError(t, err, "per-item failures do not fail the call")
		assert.Equal(t, constvars.TimeSlotUpdatedSuccess, result.Message)
		require.Len(t, result.Updated, 2)

		assert.True(t, result.Updated[0].Applied)
		assert.False(t, result.Updated[1].Applied)
		assert.Equal(t, constvars.ErrClientScheduleDayUpdate, result.Updated[1].Error)
	})
}

func TestTimeSlotUsecaseFindAll(t *testing.T) {
	timeSlotRepo := new(mockTimeSlotRepository)
	doctorRepo := new(mockDoctorRepository)
	uc := newTestTimeSlotUsecase(timeSlotRepo, doctorRepo)

	timeSlotRepo.On("FindAllWithDoctor", mock.Anything).Return([]models.DoctorTimeSlot{
		{
			ID:       "ts-1",
			DoctorID: "doc-1",
			Day:      "2026-09-07",
			Doctor:   &models.Doctor{ID: "doc-1", FirstName: "Sarah", LastName: "Connor"},
		},
	}, nil)

	response, err := uc.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, response, 1)
	assert.Equal(t, "Sarah", response[0].Doctor.FirstName)
	assert.Equal(t, "Connor", response[0].Doctor.LastName)
}
