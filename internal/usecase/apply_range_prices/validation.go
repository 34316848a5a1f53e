package apply_range_prices

import "fmt"

// validateRequest проверяет запрос в фиксированном порядке с остановкой на
// первой ошибке: наличие дат, порядок дат, наличие хотя бы одной цены.
// Вся валидация выполняется до любой мутации хранилища.
func validateRequest(req *Request) error {
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return ErrMissingDates
	}

	start, err := req.StartDate.Time()
	if err != nil {
		return fmt.Errorf("%w: start %q", ErrInvalidDate, req.StartDate)
	}
	end, err := req.EndDate.Time()
	if err != nil {
		return fmt.Errorf("%w: end %q", ErrInvalidDate, req.EndDate)
	}

	if start.After(end) {
		return ErrInvertedRange
	}

	if req.Buckets.AllBlank() {
		return ErrNoPricesProvided
	}

	return nil
}
