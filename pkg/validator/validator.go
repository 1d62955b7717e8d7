package validator

import (
	"regexp"

	playground "github.com/go-playground/validator/v10"
)

var (
	clockTimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	dateKeyPattern   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Validator wraps go-playground validation with booking-specific rules.
type Validator struct {
	v *playground.Validate
}

func New() *Validator {
	v := playground.New(playground.WithRequiredStructEnabled())
	// Registration only fails for empty tag names.
	_ = v.RegisterValidation("clocktime", isClockTime)
	_ = v.RegisterValidation("datekey", isDateKey)
	return &Validator{v: v}
}

// Validate runs struct validation and returns the first rule violation.
func (v *Validator) Validate(obj interface{}) error {
	return v.v.Struct(obj)
}

// isClockTime accepts zero-padded "HH:MM" strings within a single day.
func isClockTime(fl playground.FieldLevel) bool {
	return clockTimePattern.MatchString(fl.Field().String())
}

// isDateKey accepts "YYYY-MM-DD" date strings.
func isDateKey(fl playground.FieldLevel) bool {
	return dateKeyPattern.MatchString(fl.Field().String())
}
