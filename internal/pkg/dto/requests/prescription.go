package requests

import "time"

type CreatePrescription struct {
	AppointmentID string          `json:"appointmentId" validate:"required,uuid"`
	Diseases      string          `json:"diseases"`
	Test          string          `json:"test"`
	Instruction   string          `json:"instruction"`
	FollowUpDate  *time.Time      `json:"followUpDate"`
	Status        string          `json:"status" validate:"omitempty,oneof=pending scheduled completed cancelled"`
	PatientType   string          `json:"patientType" validate:"omitempty,oneof=new returning"`
	Medicine      []MedicineEntry `json:"medicine" validate:"required,min=1,dive"`
}

type MedicineEntry struct {
	Medicine  string `json:"medicine" validate:"required"`
	Dosage    string `json:"dosage" validate:"required"`
	Duration  string `json:"duration" validate:"required"`
	Frequency string `json:"frequency" validate:"required"`
}

// UpdatePrescription is a partial update; only non-nil fields are applied.
type UpdatePrescription struct {
	Diseases     *string    `json:"diseases"`
	Test         *string    `json:"test"`
	Instruction  *string    `json:"instruction"`
	FollowUpDate *time.Time `json:"followUpDate"`
}
