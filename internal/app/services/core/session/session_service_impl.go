package session

import (
	"context"
	"sync"

	"clinicare-service/internal/app/contracts"
	"clinicare-service/internal/app/models"
	"clinicare-service/internal/pkg/constvars"
	"clinicare-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type sessionService struct {
	Log *zap.Logger
}

var (
	sessionServiceInstance contracts.SessionService
	onceSessionService     sync.Once
)

func NewSessionService(logger *zap.Logger) contracts.SessionService {
	onceSessionService.Do(func() {
		sessionServiceInstance = &sessionService{
			Log: logger,
		}
	})
	return sessionServiceInstance
}

func (s *sessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	var session models.Session
	err := json.Unmarshal([]byte(sessionData), &session)
	if err != nil {
		s.Log.Error("sessionService.ParseSessionData error unmarshalling session data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSessionDataCannotParse(err)
	}

	if session.UserID == "" {
		s.Log.Error("sessionService.ParseSessionData session has no user ID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrSessionInvalid(nil)
	}

	return &session, nil
}
