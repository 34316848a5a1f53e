package apply_range_prices

import (
	"strings"
	"time"

	"github.com/rakanz/chalet-booking-service/internal/domain"
)

// BucketPrices supplies up to ten optional price strings, one per
// (day-bucket x slot) combination. "Weekday" means Sunday-Wednesday for the
// evening slot but Sunday-Thursday for morning and full-day: only Thursday
// evening breaks out into its own bucket, mirroring the default price table.
type BucketPrices struct {
	WeekdayMorning  string
	WeekdayEvening  string
	WeekdayFullDay  string
	ThursdayEvening string
	FridayMorning   string
	FridayEvening   string
	FridayFullDay   string
	SaturdayMorning string
	SaturdayEvening string
	SaturdayFullDay string
}

// AllBlank reports whether every bucket field is empty after trimming.
func (b BucketPrices) AllBlank() bool {
	for _, price := range []string{
		b.WeekdayMorning, b.WeekdayEvening, b.WeekdayFullDay,
		b.ThursdayEvening,
		b.FridayMorning, b.FridayEvening, b.FridayFullDay,
		b.SaturdayMorning, b.SaturdayEvening, b.SaturdayFullDay,
	} {
		if strings.TrimSpace(price) != "" {
			return false
		}
	}
	return true
}

// ForDay selects the bucket price of each slot for the given day of week:
//
//	day      morning  evening          full_day
//	Sun-Wed  weekday  weekday          weekday
//	Thu      weekday  thursdayEvening  weekday
//	Fri      friday   friday           friday
//	Sat      saturday saturday         saturday
func (b BucketPrices) ForDay(wd time.Weekday) map[domain.SlotKind]string {
	switch wd {
	case time.Thursday:
		return map[domain.SlotKind]string{
			domain.SlotMorning: b.WeekdayMorning,
			domain.SlotEvening: b.ThursdayEvening,
			domain.SlotFullDay: b.WeekdayFullDay,
		}
	case time.Friday:
		return map[domain.SlotKind]string{
			domain.SlotMorning: b.FridayMorning,
			domain.SlotEvening: b.FridayEvening,
			domain.SlotFullDay: b.FridayFullDay,
		}
	case time.Saturday:
		return map[domain.SlotKind]string{
			domain.SlotMorning: b.SaturdayMorning,
			domain.SlotEvening: b.SaturdayEvening,
			domain.SlotFullDay: b.SaturdayFullDay,
		}
	default:
		return map[domain.SlotKind]string{
			domain.SlotMorning: b.WeekdayMorning,
			domain.SlotEvening: b.WeekdayEvening,
			domain.SlotFullDay: b.WeekdayFullDay,
		}
	}
}

// Request модель запроса на массовое применение цен к диапазону дат
type Request struct {
	StartDate domain.DateKey
	EndDate   domain.DateKey
	Buckets   BucketPrices
}

// Response модель ответа после применения диапазона
type Response struct {
	StartDate     domain.DateKey
	EndDate       domain.DateKey
	DaysProcessed int
}
