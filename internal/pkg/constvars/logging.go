package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingSessionDataKey    = "session_data"
	LoggingQueryParamsKey    = "query_params"
	LoggingResponseKey       = "response"
	LoggingRequestKey        = "request"
	LoggingResponseLengthKey = "response_length"

	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"

	LoggingDoctorIDKey          = "doctor_id"
	LoggingPatientIDKey         = "patient_id"
	LoggingAppointmentIDKey     = "appointment_id"
	LoggingTimeSlotIDKey        = "time_slot_id"
	LoggingScheduleDayIDKey     = "schedule_day_id"
	LoggingPrescriptionIDKey    = "prescription_id"
	LoggingTimeSlotCountKey     = "time_slot_count"
	LoggingPrescriptionCountKey = "prescription_count"
	LoggingMedicineCountKey     = "medicine_count"
	LoggingDayKey               = "day"
)
