package models

import (
	"github.com/rakanz/chalet-booking-service/internal/domain"
)

// DayBookings is the resolved booking state of one date: the stored booked
// set plus the derived per-slot availability.
type DayBookings struct {
	Date         domain.DateKey
	BookedSlots  []domain.SlotKind
	Availability domain.Availability
}
