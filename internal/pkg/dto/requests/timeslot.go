package requests

type CreateTimeSlot struct {
	Day            string          `json:"day" validate:"required"`
	WeekDay        string          `json:"weekDay" validate:"required,week_day"`
	MaximumPatient int             `json:"maximumPatient" validate:"required,gt=0"`
	TimeSlot       []TimeSlotEntry `json:"timeSlot" validate:"required,min=1,dive"`
}

type TimeSlotEntry struct {
	StartTime string `json:"startTime" validate:"required,clock_time"`
	EndTime   string `json:"endTime" validate:"required,clock_time"`
}

// TimeSlotFilter narrows getMyTimeSlot down to an exact day match when set.
type TimeSlotFilter struct {
	Day string `json:"day"`
}

// UpdateTimeSlot carries two independent sub-batches: Create inserts new
// schedule days under the slot matching the first item's day, TimeSlot edits
// existing schedule days by ID.
type UpdateTimeSlot struct {
	Create   []CreateScheduleDay `json:"create" validate:"omitempty,dive"`
	TimeSlot []UpdateScheduleDay `json:"timeSlot" validate:"omitempty,dive"`
}

type CreateScheduleDay struct {
	Day       string `json:"day" validate:"required"`
	StartTime string `json:"startTime" validate:"required,clock_time"`
	EndTime   string `json:"endTime" validate:"required,clock_time"`
}

type UpdateScheduleDay struct {
	ID        string `json:"id" validate:"required,uuid"`
	StartTime string `json:"startTime" validate:"required,clock_time"`
	EndTime   string `json:"endTime" validate:"required,clock_time"`
}
