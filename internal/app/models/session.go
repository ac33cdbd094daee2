package models

import "clinicare-service/internal/pkg/constvars"

// Session is the authenticated identity stored in redis and attached to the
// request context by the authentication middleware.
type Session struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
}

func (s *Session) IsDoctor() bool {
	return s.Role == constvars.ClinicareRoleDoctor
}

func (s *Session) IsPatient() bool {
	return s.Role == constvars.ClinicareRolePatient
}
