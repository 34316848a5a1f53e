package domain

// Availability holds the per-slot bookable flags for one date.
type Availability struct {
	Morning bool
	Evening bool
	FullDay bool
}

// For returns the flag for a single slot kind.
func (a Availability) For(slot SlotKind) bool {
	switch slot {
	case SlotMorning:
		return a.Morning
	case SlotEvening:
		return a.Evening
	case SlotFullDay:
		return a.FullDay
	default:
		return true
	}
}

// AllFree reports whether every slot is still bookable.
func (a Availability) AllFree() bool {
	return a.Morning && a.Evening && a.FullDay
}

// ResolveAvailability maps the booked set of one date to per-slot flags.
// A full-day booking exclusively occupies the date. Otherwise each half
// blocks itself, and full-day is offered only while both halves are free.
// An empty or nil set means everything is available.
func ResolveAvailability(booked []SlotKind) Availability {
	if ContainsSlot(booked, SlotFullDay) {
		return Availability{}
	}

	a := Availability{
		Morning: !ContainsSlot(booked, SlotMorning),
		Evening: !ContainsSlot(booked, SlotEvening),
	}
	a.FullDay = a.Morning && a.Evening
	return a
}

// NormalizeSlots enforces the booked-set invariants in one place: unknown
// kinds are dropped, duplicates collapse, and a set containing full_day
// collapses to exactly {full_day}. The result is in display order.
func NormalizeSlots(slots []SlotKind) []SlotKind {
	if ContainsSlot(slots, SlotFullDay) {
		return []SlotKind{SlotFullDay}
	}

	normalized := make([]SlotKind, 0, 2)
	for _, kind := range []SlotKind{SlotMorning, SlotEvening} {
		if ContainsSlot(slots, kind) {
			normalized = append(normalized, kind)
		}
	}
	return normalized
}
