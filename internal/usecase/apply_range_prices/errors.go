package apply_range_prices

import "errors"

var (
	// ErrMissingDates возвращается, когда не указана начальная или конечная дата
	ErrMissingDates = errors.New("start and end dates are required")

	// ErrInvertedRange возвращается, когда начальная дата позже конечной
	ErrInvertedRange = errors.New("start date must not be after end date")

	// ErrNoPricesProvided возвращается, когда все десять цен пустые
	ErrNoPricesProvided = errors.New("at least one bucket price is required")

	// ErrInvalidDate возвращается при дате не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")
)
