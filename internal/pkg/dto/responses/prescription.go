package responses

import "time"

type Medicine struct {
	ID             string `json:"id"`
	PrescriptionID string `json:"prescriptionId"`
	Medicine       string `json:"medicine"`
	Dosage         string `json:"dosage"`
	Duration       string `json:"duration"`
	Frequency      string `json:"frequency"`
}

type Prescription struct {
	ID            string     `json:"id"`
	DoctorID      string     `json:"doctorId"`
	PatientID     string     `json:"patientId"`
	AppointmentID string     `json:"appointmentId"`
	Diseases      string     `json:"diseases,omitempty"`
	Test          string     `json:"test,omitempty"`
	Instruction   string     `json:"instruction,omitempty"`
	FollowUpDate  *time.Time `json:"followUpDate,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

type Appointment struct {
	ID                 string `json:"id"`
	DoctorID           string `json:"doctorId"`
	PatientID          string `json:"patientId"`
	ScheduleDate       string `json:"scheduleDate"`
	ScheduleTime       string `json:"scheduleTime"`
	Status             string `json:"status"`
	PatientType        string `json:"patientType,omitempty"`
	PrescriptionStatus string `json:"prescriptionStatus,omitempty"`
	IsFollowUp         bool   `json:"isFollowUp"`
}

type AppointmentSchedule struct {
	ScheduleDate string `json:"scheduleDate"`
	ScheduleTime string `json:"scheduleTime"`
}

// DoctorProfile is the restricted doctor projection joined into the
// prescription detail view.
type DoctorProfile struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Designation    string `json:"designation"`
	Email          string `json:"email"`
	College        string `json:"college"`
	Address        string `json:"address"`
	Country        string `json:"country"`
	State          string `json:"state"`
	Specialization string `json:"specialization"`
}

type DoctorSummary struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Designation string `json:"designation"`
}

// PatientProfile is the restricted patient projection joined into the
// prescription detail view.
type PatientProfile struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Gender      string `json:"gender"`
	DateOfBirth string `json:"dateOfBirth"`
	Email       string `json:"email"`
	BloodGroup  string `json:"bloodGroup"`
	Address     string `json:"address"`
}

type Patient struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Gender      string `json:"gender"`
	DateOfBirth string `json:"dateOfBirth"`
	BloodGroup  string `json:"bloodGroup"`
	Address     string `json:"address"`
}

type PrescriptionDetail struct {
	Prescription
	Medicines   []Medicine      `json:"medicines"`
	Appointment *Appointment    `json:"appointment,omitempty"`
	Doctor      *DoctorProfile  `json:"doctor,omitempty"`
	Patient     *PatientProfile `json:"patient,omitempty"`
}

type PatientPrescription struct {
	Prescription
	Doctor      DoctorSummary       `json:"doctor"`
	Appointment AppointmentSchedule `json:"appointment"`
}

type DoctorPrescription struct {
	Prescription
	Medicines []Medicine `json:"medicines"`
	Patient   Patient    `json:"patient"`
}
