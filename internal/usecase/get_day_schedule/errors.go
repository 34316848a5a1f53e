package get_day_schedule

import "errors"

var (
	// ErrMissingDate возвращается, когда дата не указана
	ErrMissingDate = errors.New("date is required")

	// ErrInvalidDate возвращается при дате не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")
)
