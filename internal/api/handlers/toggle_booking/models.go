package toggle_booking

import (
	"github.com/rakanz/chalet-booking-service/internal/service/bookings/models"
)

// ToggleBookingRequest HTTP request model
type ToggleBookingRequest struct {
	Slot string `json:"slot"`
}

// DayBookingsResponse HTTP response model
type DayBookingsResponse struct {
	Date         string               `json:"date"`
	BookedSlots  []string             `json:"bookedSlots"`
	Availability AvailabilityResponse `json:"availability"`
}

// AvailabilityResponse флаги доступности слотов на дату
type AvailabilityResponse struct {
	MorningAvailable bool `json:"morningAvailable"`
	EveningAvailable bool `json:"eveningAvailable"`
	FullDayAvailable bool `json:"fullDayAvailable"`
}

// FromServiceModel конвертирует модель сервиса в HTTP response
func FromServiceModel(day *models.DayBookings) *DayBookingsResponse {
	booked := make([]string, len(day.BookedSlots))
	for i, slot := range day.BookedSlots {
		booked[i] = string(slot)
	}

	return &DayBookingsResponse{
		Date:        day.Date.String(),
		BookedSlots: booked,
		Availability: AvailabilityResponse{
			MorningAvailable: day.Availability.Morning,
			EveningAvailable: day.Availability.Evening,
			FullDayAvailable: day.Availability.FullDay,
		},
	}
}
