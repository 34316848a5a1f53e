package bookings

import "errors"

var (
	// ErrUnknownSlot возвращается при неизвестном типе слота
	ErrUnknownSlot = errors.New("bookings.service: unknown slot kind")
)
