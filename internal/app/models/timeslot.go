package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DoctorTimeSlot is a doctor's declared availability window for one calendar
// day; its ScheduleDay children are created together with the parent.
type DoctorTimeSlot struct {
	ID             string        `gorm:"type:uuid;primaryKey" json:"id"`
	DoctorID       string        `gorm:"type:uuid;index" json:"doctorId"`
	Doctor         *Doctor       `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Day            string        `gorm:"index" json:"day"`
	WeekDay        string        `json:"weekDay"`
	MaximumPatient int           `json:"maximumPatient"`
	TimeSlots      []ScheduleDay `gorm:"foreignKey:DoctorTimeSlotID" json:"timeSlot"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// ScheduleDay is one start/end sub-interval of a DoctorTimeSlot.
type ScheduleDay struct {
	ID               string    `gorm:"type:uuid;primaryKey" json:"id"`
	DoctorTimeSlotID string    `gorm:"type:uuid;index" json:"doctorTimeSlotId"`
	StartTime        string    `json:"startTime"`
	EndTime          string    `json:"endTime"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func (t *DoctorTimeSlot) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

func (s *ScheduleDay) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
