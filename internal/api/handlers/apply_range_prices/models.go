package apply_range_prices

import (
	"github.com/rakanz/chalet-booking-service/internal/domain"
	applyRangePrices "github.com/rakanz/chalet-booking-service/internal/usecase/apply_range_prices"
)

// ApplyRangePricesRequest HTTP request model: границы диапазона и десять
// опциональных корзинных цен
type ApplyRangePricesRequest struct {
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	WeekdayMorning  string `json:"weekdayMorning,omitempty"`
	WeekdayEvening  string `json:"weekdayEvening,omitempty"`
	WeekdayFullDay  string `json:"weekdayFullDay,omitempty"`
	ThursdayEvening string `json:"thursdayEvening,omitempty"`
	FridayMorning   string `json:"fridayMorning,omitempty"`
	FridayEvening   string `json:"fridayEvening,omitempty"`
	FridayFullDay   string `json:"fridayFullDay,omitempty"`
	SaturdayMorning string `json:"saturdayMorning,omitempty"`
	SaturdayEvening string `json:"saturdayEvening,omitempty"`
	SaturdayFullDay string `json:"saturdayFullDay,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в модель use case
func (r *ApplyRangePricesRequest) ToUseCaseRequest() *applyRangePrices.Request {
	return &applyRangePrices.Request{
		StartDate: domain.DateKey(r.StartDate),
		EndDate:   domain.DateKey(r.EndDate),
		Buckets: applyRangePrices.BucketPrices{
			WeekdayMorning:  r.WeekdayMorning,
			WeekdayEvening:  r.WeekdayEvening,
			WeekdayFullDay:  r.WeekdayFullDay,
			ThursdayEvening: r.ThursdayEvening,
			FridayMorning:   r.FridayMorning,
			FridayEvening:   r.FridayEvening,
			FridayFullDay:   r.FridayFullDay,
			SaturdayMorning: r.SaturdayMorning,
			SaturdayEvening: r.SaturdayEvening,
			SaturdayFullDay: r.SaturdayFullDay,
		},
	}
}

// ApplyRangePricesResponse HTTP response model
type ApplyRangePricesResponse struct {
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	DaysProcessed int    `json:"daysProcessed"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *applyRangePrices.Response) *ApplyRangePricesResponse {
	return &ApplyRangePricesResponse{
		StartDate:     resp.StartDate.String(),
		EndDate:       resp.EndDate.String(),
		DaysProcessed: resp.DaysProcessed,
	}
}
