package controllers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"clinicare-service/internal/app/contracts"
	"clinicare-service/internal/app/models"
	"clinicare-service/internal/pkg/constvars"
	"clinicare-service/internal/pkg/dto/requests"
	"clinicare-service/internal/pkg/exceptions"
	"clinicare-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type TimeSlotController struct {
	Log             *zap.Logger
	TimeSlotUsecase contracts.TimeSlotUsecase
	SessionService  contracts.SessionService
}

var (
	timeSlotControllerInstance *TimeSlotController
	onceTimeSlotController     sync.Once
)

func NewTimeSlotController(logger *zap.Logger, timeSlotUsecase contracts.TimeSlotUsecase, sessionService contracts.SessionService) *TimeSlotController {
	onceTimeSlotController.Do(func() {
		instance := &TimeSlotController{
			Log:             logger,
			TimeSlotUsecase: timeSlotUsecase,
			SessionService:  sessionService,
		}
		timeSlotControllerInstance = instance
	})
	return timeSlotControllerInstance
}

func (ctrl *TimeSlotController) CreateTimeSlot(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("TimeSlotController.CreateTimeSlot requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("TimeSlotController.CreateTimeSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := ctrl.sessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.CreateTimeSlot)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("TimeSlotController.CreateTimeSlot error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("TimeSlotController.CreateTimeSlot validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.TimeSlotUsecase.Create(ctx, session, request)
	if err != nil {
		ctrl.Log.Error("TimeSlotController.CreateTimeSlot error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("TimeSlotController.CreateTimeSlot succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.TimeSlotCreatedSuccess, response)
}

func (ctrl *TimeSlotController) UpdateTimeSlotByID(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("TimeSlotController.UpdateTimeSlotByID requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("TimeSlotController.UpdateTimeSlotByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := ctrl.sessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateTimeSlot)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("TimeSlotController.UpdateTimeSlotByID error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("TimeSlotController.UpdateTimeSlotByID validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	timeSlotID := chi.URLParam(r, constvars.URLParamTimeSlotID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.TimeSlotUsecase.Update(ctx, session, timeSlotID, request)
	if err != nil {
		ctrl.Log.Error("TimeSlotController.UpdateTimeSlotByID error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("TimeSlotController.UpdateTimeSlotByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTimeSlotIDKey, timeSlotID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TimeSlotUpdatedSuccess, response)
}

func (ctrl *TimeSlotController) FindMyTimeSlots(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("TimeSlotController.FindMyTimeSlots requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("TimeSlotController.FindMyTimeSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := ctrl.sessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	filter := &requests.TimeSlotFilter{
		Day: r.URL.Query().Get("day"),
	}
	if err := utils.ValidateStruct(filter); err != nil {
		ctrl.Log.Error("TimeSlotController.FindMyTimeSlots validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.TimeSlotUsecase.FindMine(ctx, session, filter)
	if err != nil {
		ctrl.Log.Error("TimeSlotController.FindMyTimeSlots error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("TimeSlotController.FindMyTimeSlots succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTimeSlotSuccess, response)
}

func (ctrl *TimeSlotController) FindAllTimeSlots(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("TimeSlotController.FindAllTimeSlots requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("TimeSlotController.FindAllTimeSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.TimeSlotUsecase.FindAll(ctx)
	if err != nil {
		ctrl.Log.Error("TimeSlotController.FindAllTimeSlots error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("TimeSlotController.FindAllTimeSlots succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAllTimeSlotSuccess, response)
}

func (ctrl *TimeSlotController) FindTimeSlotByID(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("TimeSlotController.FindTimeSlotByID requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("TimeSlotController.FindTimeSlotByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	timeSlotID := chi.URLParam(r, constvars.URLParamTimeSlotID)
	if err := utils.ValidateUUID(timeSlotID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamTimeSlotID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.TimeSlotUsecase.FindByID(ctx, timeSlotID)
	if err != nil {
		ctrl.Log.Error("TimeSlotController.FindTimeSlotByID error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if response == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTimeSlotNotFound(nil))
		return
	}

	ctrl.Log.Info("TimeSlotController.FindTimeSlotByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTimeSlotIDKey, timeSlotID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTimeSlotSuccess, response)
}

func (ctrl *TimeSlotController) DeleteTimeSlotByID(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("TimeSlotController.DeleteTimeSlotByID requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("TimeSlotController.DeleteTimeSlotByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	timeSlotID := chi.URLParam(r, constvars.URLParamTimeSlotID)
	if err := utils.ValidateUUID(timeSlotID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamTimeSlotID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.TimeSlotUsecase.Delete(ctx, timeSlotID); err != nil {
		ctrl.Log.Error("TimeSlotController.DeleteTimeSlotByID error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("TimeSlotController.DeleteTimeSlotByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTimeSlotIDKey, timeSlotID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TimeSlotDeletedSuccess, nil)
}

func (ctrl *TimeSlotController) sessionFromContext(r *http.Request) (*models.Session, error) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		return nil, exceptions.ErrMissingSessionData(nil)
	}
	return ctrl.SessionService.ParseSessionData(r.Context(), sessionData)
}
