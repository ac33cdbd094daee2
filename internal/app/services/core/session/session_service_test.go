package session

import (
	"context"
	"testing"

	"clinicare-service/internal/pkg/constvars"
	"clinicare-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseSessionData(t *testing.T) {
	service := &sessionService{Log: zap.NewNop()}

	t.Run("Valid session", func(t *testing.T) {
		session, err := service.ParseSessionData(context.Background(), `{"session_id":"s1","user_id":"doc-1","role":"doctor"}`)
		require.NoError(t, err)
		assert.Equal(t, "doc-1", session.UserID)
		assert.Equal(t, constvars.ClinicareRoleDoctor, session.Role)
		assert.True(t, session.IsDoctor())
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		_, err := service.ParseSessionData(context.Background(), "{not json")
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})

	t.Run("Missing user ID", func(t *testing.T) {
		_, err := service.ParseSessionData(context.Background(), `{"session_id":"s1","role":"doctor"}`)
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})
}
