package domain

import (
	"fmt"
	"time"
)

// Default day-of-week rates. The weekend price band begins at Thursday
// evening: Thursday morning and full-day still carry the weekday rate.
//
//	slot      Sun-Wed  Thu  Fri  Sat
//	morning   150      150  170  170
//	evening   150      170  170  170
//	full_day  220      220  270  270
const (
	rateMorningWeekday = 150
	rateMorningPeak    = 170
	rateEveningWeekday = 150
	rateEveningPeak    = 170
	rateFullDayWeekday = 220
	rateFullDayPeak    = 270
)

func formatPrice(amount int) string {
	return fmt.Sprintf("%d %s", amount, Currency)
}

// DefaultPrice returns the base price label for the given date and slot.
// This table is the single source of truth for default pricing; no other
// component may hardcode prices. An empty or malformed date resolves to the
// slot's static fallback label, so the function is total.
func DefaultPrice(date DateKey, slot SlotKind) string {
	wd, ok := date.Weekday()
	if !ok {
		return FallbackPrice(slot)
	}

	switch slot {
	case SlotMorning:
		if wd == time.Friday || wd == time.Saturday {
			return formatPrice(rateMorningPeak)
		}
		return formatPrice(rateMorningWeekday)
	case SlotEvening:
		if wd == time.Thursday || wd == time.Friday || wd == time.Saturday {
			return formatPrice(rateEveningPeak)
		}
		return formatPrice(rateEveningWeekday)
	case SlotFullDay:
		if wd == time.Friday || wd == time.Saturday {
			return formatPrice(rateFullDayPeak)
		}
		return formatPrice(rateFullDayWeekday)
	default:
		return FallbackPrice(slot)
	}
}

// FallbackPrice returns the static label shown when no date is selected.
func FallbackPrice(slot SlotKind) string {
	switch slot {
	case SlotMorning:
		return FallbackPriceMorning
	case SlotEvening:
		return FallbackPriceEvening
	case SlotFullDay:
		return FallbackPriceFullDay
	default:
		return "N/A"
	}
}

// SessionTime returns the display label for the slot's time window.
func SessionTime(slot SlotKind) string {
	switch slot {
	case SlotMorning:
		return SessionTimeMorning
	case SlotEvening:
		return SessionTimeEvening
	case SlotFullDay:
		return SessionTimeFullDay
	default:
		return ""
	}
}
