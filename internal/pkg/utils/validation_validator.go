package utils

import (
	"regexp"

	"clinicare-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var clockTimeRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

func init() {
	validate = validator.New()
	validate.RegisterValidation("clock_time", validateClockTime)
	validate.RegisterValidation("week_day", validateWeekDay)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func ValidateUUID(value string) error {
	return validate.Var(value, "required,uuid")
}

func validateClockTime(fl validator.FieldLevel) bool {
	return clockTimeRegex.MatchString(fl.Field().String())
}

func validateWeekDay(fl validator.FieldLevel) bool {
	return constvars.WeekDays[fl.Field().String()]
}
