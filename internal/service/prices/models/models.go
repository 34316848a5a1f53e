package models

import (
	"github.com/rakanz/chalet-booking-service/internal/domain"
)

// SlotPrice is the resolved price of one slot on one date.
type SlotPrice struct {
	Slot       domain.SlotKind
	Price      string
	Overridden bool
}

// DayPrices holds the effective price of every slot for one date, in
// display order.
type DayPrices struct {
	Date  domain.DateKey
	Slots []SlotPrice
}

// CatalogSlot describes one bookable slot kind independent of any date:
// its session time window and the static fallback price label shown before
// a date is selected.
type CatalogSlot struct {
	Slot          domain.SlotKind
	SessionTime   string
	FallbackPrice string
}
