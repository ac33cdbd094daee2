package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinicare-service/internal/app/config"
	"clinicare-service/internal/app/delivery/http/controllers"
	"clinicare-service/internal/app/delivery/http/middlewares"
	"clinicare-service/internal/app/models"
	"clinicare-service/internal/app/services/core/session"
	"clinicare-service/internal/pkg/constvars"
	"clinicare-service/internal/pkg/dto/requests"
	"clinicare-service/internal/pkg/dto/responses"
	"clinicare-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockTimeSlotUsecase struct {
	mock.Mock
}

func (m *MockTimeSlotUsecase) Create(ctx context.Context, session *models.Session, request *requests.CreateTimeSlot) (*responses.TimeSlot, error) {
	args := m.Called(ctx, session, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.TimeSlot), args.Error(1)
}

func (m *MockTimeSlotUsecase) Delete(ctx context.Context, timeSlotID string) error {
	args := m.Called(ctx, timeSlotID)
	return args.Error(0)
}

func (m *MockTimeSlotUsecase) FindByID(ctx context.Context, timeSlotID string) (*responses.TimeSlot, error) {
	args := m.Called(ctx, timeSlotID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.TimeSlot), args.Error(1)
}

func (m *MockTimeSlotUsecase) FindMine(ctx context.Context, session *models.Session, filter *requests.TimeSlotFilter) ([]responses.TimeSlot, error) {
	args := m.Called(ctx, session, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.TimeSlot), args.Error(1)
}

func (m *MockTimeSlotUsecase) FindAll(ctx context.Context) ([]responses.TimeSlotWithDoctor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.TimeSlotWithDoctor), args.Error(1)
}

func (m *MockTimeSlotUsecase) Update(ctx context.Context, session *models.Session, timeSlotID string, request *requests.UpdateTimeSlot) (*responses.TimeSlotUpdateResult, error) {
	args := m.Called(ctx, session, timeSlotID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.TimeSlotUpdateResult), args.Error(1)
}

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

const testJWTSecret = "test-secret"

func newTimeSlotTestRouter(t *testing.T, mockUsecase *MockTimeSlotUsecase, mockRedis *MockRedisRepository) chi.Router {
	t.Helper()

	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			WriteRequestsPerMinute: 100,
			WriteBlockTimeInMinute: 1,
		},
		JWT: config.JWT{
			Secret:        testJWTSecret,
			ExpTimeInHour: 1,
		},
	}

	middlewareInstance := middlewares.NewMiddlewares(logger, mockRedis, internalConfig)
	sessionService := session.NewSessionService(logger)
	timeSlotController := &controllers.TimeSlotController{
		Log:             logger,
		TimeSlotUsecase: mockUsecase,
		SessionService:  sessionService,
	}

	router := chi.NewRouter()
	router.Use(middlewareInstance.RequestIDMiddleware)
	attachTimeSlotRoutes(router, middlewareInstance, NewWriteLimiter(internalConfig), timeSlotController)
	return router
}

func bearerToken(t *testing.T, sessionID string) string {
	t.Helper()

	token, err := utils.GenerateJWT(sessionID, testJWTSecret, 1)
	require.NoError(t, err)
	return "Bearer " + token
}

func sessionJSON(t *testing.T, userID, role string) string {
	t.Helper()

	data, err := json.Marshal(models.Session{SessionID: "sess-1", UserID: userID, Role: role})
	require.NoError(t, err)
	return string(data)
}

func TestTimeSlotRouterCreate(t *testing.T) {
	t.Run("Authenticated create", func(t *testing.T) {
		mockUsecase := new(MockTimeSlotUsecase)
		mockRedis := new(MockRedisRepository)
		router := newTimeSlotTestRouter(t, mockUsecase, mockRedis)

		mockRedis.On("Get", mock.Anything, "sess-1").Return(sessionJSON(t, "doc-1", constvars.ClinicareRoleDoctor), nil)
		mockUsecase.On("Create", mock.Anything, mock.MatchedBy(func(s *models.Session) bool {
			return s.UserID == "doc-1"
		}), mock.AnythingOfType("*requests.CreateTimeSlot")).Return(&responses.TimeSlot{ID: "ts-1"}, nil)

		body, _ := json.Marshal(requests.CreateTimeSlot{
			Day:            "2026-09-07",
			WeekDay:        "Monday",
			MaximumPatient: 8,
			TimeSlot:       []requests.TimeSlotEntry{{StartTime: "09:00", EndTime: "09:30"}},
		})

		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(body))
		req.RemoteAddr = "203.0.113.10:4000"
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		req.Header.Set(constvars.HeaderAuthorization, bearerToken(t, "sess-1"))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Missing bearer token", func(t *testing.T) {
		mockUsecase := new(MockTimeSlotUsecase)
		mockRedis := new(MockRedisRepository)
		router := newTimeSlotTestRouter(t, mockUsecase, mockRedis)

		req := httptest.NewRequest("POST", "/", bytes.NewBufferString("{}"))
		req.RemoteAddr = "203.0.113.10:4000"

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockUsecase.AssertNotCalled(t, "Create")
	})

	t.Run("Session missing in redis", func(t *testing.T) {
		mockUsecase := new(MockTimeSlotUsecase)
		mockRedis := new(MockRedisRepository)
		router := newTimeSlotTestRouter(t, mockUsecase, mockRedis)

		mockRedis.On("Get", mock.Anything, "sess-gone").Return("", nil)

		req := httptest.NewRequest("POST", "/", bytes.NewBufferString("{}"))
		req.RemoteAddr = "203.0.113.10:4000"
		req.Header.Set(constvars.HeaderAuthorization, bearerToken(t, "sess-gone"))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Validation failure", func(t *testing.T) {
		mockUsecase := new(MockTimeSlotUsecase)
		mockRedis := new(MockRedisRepository)
		router := newTimeSlotTestRouter(t, mockUsecase, mockRedis)

		mockRedis.On("Get", mock.Anything, "sess-1").Return(sessionJSON(t, "doc-1", constvars.ClinicareRoleDoctor), nil)

		// 25:00 is not a clock time
		body, _ := json.Marshal(requests.CreateTimeSlot{
			Day:            "2026-09-07",
			WeekDay:        "Monday",
			MaximumPatient: 8,
			TimeSlot:       []requests.TimeSlotEntry{{StartTime: "25:00", EndTime: "09:30"}},
		})

		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(body))
		req.RemoteAddr = "203.0.113.10:4000"
		req.Header.Set(constvars.HeaderAuthorization, bearerToken(t, "sess-1"))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockUsecase.AssertNotCalled(t, "Create")
	})
}

func TestTimeSlotRouterReads(t *testing.T) {
	t.Run("Find by ID rejects malformed UUID", func(t *testing.T) {
		mockUsecase := new(MockTimeSlotUsecase)
		mockRedis := new(MockRedisRepository)
		router := newTimeSlotTestRouter(t, mockUsecase, mockRedis)

		mockRedis.On("Get", mock.Anything, "sess-1").Return(sessionJSON(t, "doc-1", constvars.ClinicareRoleDoctor), nil)

		req := httptest.NewRequest("GET", "/not-a-uuid", nil)
		req.RemoteAddr = "203.0.113.10:4000"
		req.Header.Set(constvars.HeaderAuthorization, bearerToken(t, "sess-1"))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockUsecase.AssertNotCalled(t, "FindByID")
	})

	t.Run("Find mine forwards day filter", func(t *testing.T) {
		mockUsecase := new(MockTimeSlotUsecase)
		mockRedis := new(MockRedisRepository)
		router := newTimeSlotTestRouter(t, mockUsecase, mockRedis)

		mockRedis.On("Get", mock.Anything, "sess-1").Return(sessionJSON(t, "doc-1", constvars.ClinicareRoleDoctor), nil)
		mockUsecase.On("FindMine", mock.Anything, mock.Anything, mock.MatchedBy(func(f *requests.TimeSlotFilter) bool {
			return f.Day == "2026-09-07"
		})).Return([]responses.TimeSlot{{ID: "ts-1", Day: "2026-09-07"}}, nil)

		req := httptest.NewRequest("GET", "/my?day=2026-09-07", nil)
		req.RemoteAddr = "203.0.113.10:4000"
		req.Header.Set(constvars.HeaderAuthorization, bearerToken(t, "sess-1"))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var response responses.ResponseDTO
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.True(t, response.Success)
		assert.Equal(t, constvars.GetTimeSlotSuccess, response.Message)
		mockUsecase.AssertExpectations(t)
	})
}
