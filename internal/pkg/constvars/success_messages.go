package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Time-slot messages
	TimeSlotCreatedSuccess = "Successfully Created DoctorTimeSlot"
	TimeSlotUpdatedSuccess = "Successfully Updated"
	TimeSlotDeletedSuccess = "Successfully Deleted Time Slot"
	GetTimeSlotSuccess     = "Successfully Get Time Slot"
	GetAllTimeSlotSuccess  = "Successfully Get All Time Slot"

	// Prescription messages
	PrescriptionCreatedSuccess = "Successfully Prescription Created"
	PrescriptionUpdatedSuccess = "Successfully Prescription Updated"
	PrescriptionDeletedSuccess = "Successfully Prescription Deleted"
	GetPrescriptionSuccess     = "Successfully Get Prescription"
	GetAllPrescriptionSuccess  = "Successfully Get All Prescriptions"
)
