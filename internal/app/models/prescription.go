package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Prescription struct {
	ID            string       `gorm:"type:uuid;primaryKey" json:"id"`
	DoctorID      string       `gorm:"type:uuid;index" json:"doctorId"`
	Doctor        *Doctor      `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	PatientID     string       `gorm:"type:uuid;index" json:"patientId"`
	Patient       *Patient     `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	AppointmentID string       `gorm:"type:uuid;uniqueIndex" json:"appointmentId"`
	Appointment   *Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
	Diseases      string       `json:"diseases"`
	Test          string       `json:"test"`
	Instruction   string       `json:"instruction"`
	FollowUpDate  *time.Time   `json:"followUpDate"`
	Medicines     []Medicine   `gorm:"foreignKey:PrescriptionID" json:"medicines"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

type Medicine struct {
	ID             string    `gorm:"type:uuid;primaryKey" json:"id"`
	PrescriptionID string    `gorm:"type:uuid;index" json:"prescriptionId"`
	Medicine       string    `json:"medicine"`
	Dosage         string    `json:"dosage"`
	Duration       string    `json:"duration"`
	Frequency      string    `json:"frequency"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (p *Prescription) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func (m *Medicine) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
