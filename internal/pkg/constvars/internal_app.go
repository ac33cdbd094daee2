package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "CLNCR_SVC_"
)

const (
	ResourceTimeSlots     = "timeslots"
	ResourcePrescriptions = "prescriptions"
)

const (
	URLParamTimeSlotID     = "timeSlotID"
	URLParamPrescriptionID = "prescriptionID"
)

const (
	ClinicareRoleDoctor  = "doctor"
	ClinicareRolePatient = "patient"
	ClinicareRoleAdmin   = "admin"
)

const (
	AppointmentPrescriptionIssued = "issued"
)

var WeekDays = map[string]bool{
	"Saturday":  true,
	"Sunday":    true,
	"Monday":    true,
	"Tuesday":   true,
	"Wednesday": true,
	"Thursday":  true,
	"Friday":    true,
}
