package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":   "is required",
	"email":      "must be a valid email",
	"min":        "must be at least %s characters long",
	"max":        "maximum at %s characters long",
	"numeric":    "must be a number",
	"len":        "must be %s characters long",
	"oneof":      "must be one of [%s]",
	"gt":         "must be greater than %s",
	"gte":        "must be greater than or equal to %s",
	"lt":         "must be less than %s",
	"lte":        "must be less than or equal to %s",
	"uuid":       "must be a valid UUID",
	"dive":       "has an invalid element",
	"clock_time": "must be a clock time in HH:MM format",
	"week_day":   "must be a valid week day name",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "cannot process the request"
	ErrClientSomethingWrongWithApplication = "something went wrong with the application"
	ErrClientNotAuthorized                 = "you are not authorized"
	ErrClientNotLoggedIn                   = "you are not logged in"
	ErrClientServerLongRespond             = "server takes too long to respond"

	ErrClientDoctorNotFound       = "Doctor Account is not found !!"
	ErrClientPatientNotFound      = "Patient Account is not found !!"
	ErrClientAppointmentNotFound  = "Appointment is not found !!"
	ErrClientTimeSlotNotFound     = "Time Slot is not found !!"
	ErrClientPrescriptionNotFound = "Prescription is not found !!"
	ErrClientScheduleDayCreate    = "Failed to create"
	ErrClientScheduleDayUpdate    = "Failed to Update"
)

// Error messages for developers
const (
	ErrDevValidationFailed           = "request validation failed"
	ErrDevCannotParseJSON            = "failed to parse JSON body"
	ErrDevCannotMarshalJSON          = "failed to marshal JSON"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevMissingRequestID           = "request ID not found in request context"
	ErrDevMissingSessionData         = "session data not found in request context"
	ErrDevURLParamIDValidationFailed = "URL parameter '%s' validation failed"

	ErrDevAuthTokenMissing       = "authorization token is missing"
	ErrDevAuthTokenInvalid       = "authorization token is invalid or expired"
	ErrDevAuthSigningMethod      = "unexpected JWT signing method"
	ErrDevAuthInvalidSession     = "session is invalid or already expired"
	ErrDevAuthGenerateToken      = "failed to generate token"
	ErrDevSessionDataCannotParse = "failed to parse session data"

	ErrDevDoctorNotExists       = "doctor with the given ID does not exist"
	ErrDevPatientNotExists      = "patient with the given ID does not exist"
	ErrDevAppointmentNotExists  = "appointment with the given ID does not exist"
	ErrDevTimeSlotNotExists     = "doctor time slot with the given day does not exist"
	ErrDevPrescriptionNotExists = "prescription with the given ID does not exist"

	ErrDevPostgresDBFindData   = "failed to find data in postgres"
	ErrDevPostgresDBInsertData = "failed to insert data into postgres"
	ErrDevPostgresDBUpdateData = "failed to update data in postgres"
	ErrDevPostgresDBDeleteData = "failed to delete data from postgres"
	ErrDevPostgresDBTxFailed   = "postgres transaction failed and was rolled back"

	ErrDevRedisGet    = "failed to get value from redis"
	ErrDevRedisSet    = "failed to set value in redis"
	ErrDevRedisDelete = "failed to delete value from redis"
)
