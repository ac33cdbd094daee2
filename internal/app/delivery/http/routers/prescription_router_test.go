package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinicare-service/internal/app/config"
	"clinicare-service/internal/app/delivery/http/controllers"
	"clinicare-service/internal/app/delivery/http/middlewares"
	"clinicare-service/internal/app/models"
	"clinicare-service/internal/app/services/core/session"
	"clinicare-service/internal/pkg/constvars"
	"clinicare-service/internal/pkg/dto/requests"
	"clinicare-service/internal/pkg/dto/responses"
	"clinicare-service/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockPrescriptionUsecase struct {
	mock.Mock
}

func (m *MockPrescriptionUsecase) Create(ctx context.Context, session *models.Session, request *requests.CreatePrescription) error {
	args := m.Called(ctx, session, request)
	return args.Error(0)
}

func (m *MockPrescriptionUsecase) FindAll(ctx context.Context) ([]responses.Prescription, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.Prescription), args.Error(1)
}

func (m *MockPrescriptionUsecase) FindByID(ctx context.Context, prescriptionID string) (*responses.PrescriptionDetail, error) {
	args := m.Called(ctx, prescriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.PrescriptionDetail), args.Error(1)
}

func (m *MockPrescriptionUsecase) FindByPatient(ctx context.Context, session *models.Session) ([]responses.PatientPrescription, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.PatientPrescription), args.Error(1)
}

func (m *MockPrescriptionUsecase) FindByDoctor(ctx context.Context, session *models.Session) ([]responses.DoctorPrescription, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.DoctorPrescription), args.Error(1)
}

func (m *MockPrescriptionUsecase) Delete(ctx context.Context, prescriptionID string) error {
	args := m.Called(ctx, prescriptionID)
	return args.Error(0)
}

func (m *MockPrescriptionUsecase) Update(ctx context.Context, prescriptionID string, request *requests.UpdatePrescription) (*responses.Prescription, error) {
	args := m.Called(ctx, prescriptionID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Prescription), args.Error(1)
}

func newPrescriptionTestRouter(t *testing.T, mockUsecase *MockPrescriptionUsecase, mockRedis *MockRedisRepository) chi.Router {
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
	prescriptionController := &controllers.PrescriptionController{
		Log:                 logger,
		PrescriptionUsecase: mockUsecase,
		SessionService:      sessionService,
	}

	router := chi.NewRouter()
	router.Use(middlewareInstance.RequestIDMiddleware)
	attachPrescriptionRoutes(router, middlewareInstance, NewWriteLimiter(internalConfig), prescriptionController)
	return router
}

func TestPrescriptionRouterCreate(t *testing.T) {
	t.Run("Issued with success message", func(t *testing.T) {
		mockUsecase := new(MockPrescriptionUsecase)
		mockRedis := new(MockRedisRepository)
		router := newPrescriptionTestRouter(t, mockUsecase, mockRedis)

		mockRedis.On("Get", mock.Anything, "sess-1").Return(sessionJSON(t, "doc-1", constvars.ClinicareRoleDoctor), nil)
		mockUsecase.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*requests.CreatePrescription")).Return(nil)

		body, _ := json.Marshal(requests.CreatePrescription{
			AppointmentID: uuid.NewString(),
			Diseases:      "Migraine",
			Medicine: []requests.MedicineEntry{
				{Medicine: "Sumatriptan", Dosage: "50mg", Duration: "7 days", Frequency: "as needed"},
			},
		})

		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(body))
		req.RemoteAddr = "203.0.113.11:4000"
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		req.Header.Set(constvars.HeaderAuthorization, bearerToken(t, "sess-1"))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var response responses.ResponseDTO
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.True(t, response.Success)
		assert.Equal(t, constvars.PrescriptionCreatedSuccess, response.Message)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Empty medicine list rejected", func(t *testing.T) {
		mockUsecase := new(MockPrescriptionUsecase)
		mockRedis := new(MockRedisRepository)
		router := newPrescriptionTestRouter(t, mockUsecase, mockRedis)

		mockRedis.On("Get", mock.Anything, "sess-1").Return(sessionJSON(t, "doc-1", constvars.ClinicareRoleDoctor), nil)

		body, _ := json.Marshal(requests.CreatePrescription{
			AppointmentID: uuid.NewString(),
		})

		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(body))
		req.RemoteAddr = "203.0.113.11:4000"
		req.Header.Set(constvars.HeaderAuthorization, bearerToken(t, "sess-1"))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockUsecase.AssertNotCalled(t, "Create")
	})

	t.Run("Appointment missing surfaces 404", func(t *testing.T) {
		mockUsecase := new(MockPrescriptionUsecase)
		mockRedis := new(MockRedisRepository)
		router := newPrescriptionTestRouter(t, mockUsecase, mockRedis)

		mockRedis.On("Get", mock.Anything, "sess-1").Return(sessionJSON(t, "doc-1", constvars.ClinicareRoleDoctor), nil)
		mockUsecase.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(exceptions.ErrAppointmentNotFound(nil))

		body, _ := json.Marshal(requests.CreatePrescription{
			AppointmentID: uuid.NewString(),
			Medicine: []requests.MedicineEntry{
				{Medicine: "Sumatriptan", Dosage: "50mg", Duration: "7 days", Frequency: "as needed"},
			},
		})

		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(body))
		req.RemoteAddr = "203.0.113.11:4000"
		req.Header.Set(constvars.HeaderAuthorization, bearerToken(t, "sess-1"))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)

		var errResponse exceptions.CustomError
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResponse))
		assert.False(t, errResponse.Success)
		assert.Equal(t, constvars.ErrClientAppointmentNotFound, errResponse.ClientMessage)
	})
}
