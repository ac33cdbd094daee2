package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID                 string    `gorm:"type:uuid;primaryKey" json:"id"`
	DoctorID           string    `gorm:"type:uuid;index" json:"doctorId"`
	PatientID          string    `gorm:"type:uuid;index" json:"patientId"`
	ScheduleDate       string    `json:"scheduleDate"`
	ScheduleTime       string    `json:"scheduleTime"`
	Status             string    `json:"status"`
	PatientType        string    `json:"patientType"`
	PrescriptionStatus string    `json:"prescriptionStatus"`
	IsFollowUp         bool      `json:"isFollowUp"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
