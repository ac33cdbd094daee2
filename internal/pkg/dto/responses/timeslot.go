package responses

type ScheduleDay struct {
	ID               string `json:"id"`
	DoctorTimeSlotID string `json:"doctorTimeSlotId"`
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime"`
}

type TimeSlot struct {
	ID             string        `json:"id"`
	DoctorID       string        `json:"doctorId"`
	Day            string        `json:"day"`
	WeekDay        string        `json:"weekDay"`
	MaximumPatient int           `json:"maximumPatient"`
	TimeSlot       []ScheduleDay `json:"timeSlot,omitempty"`
}

type DoctorName struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type TimeSlotWithDoctor struct {
	TimeSlot
	Doctor DoctorName `json:"doctor"`
}

// ScheduleDayItemResult reports the outcome of one item inside an update
// sub-batch; siblings that already went through are not rolled back when an
// item fails.
type ScheduleDayItemResult struct {
	Index   int    `json:"index"`
	ID      string `json:"id,omitempty"`
	Applied bool   `json:"applied"`
	Error   string `json:"error,omitempty"`
}

type TimeSlotUpdateResult struct {
	Message string                  `json:"message"`
	Created []ScheduleDayItemResult `json:"created,omitempty"`
	Updated []ScheduleDayItemResult `json:"updated,omitempty"`
}
