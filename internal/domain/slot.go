package domain

import "fmt"

// SlotKind represents one of the three bookable periods of a chalet day.
// The string values are the wire format used in JSON bodies and in the
// seed/export configuration documents.
type SlotKind string

const (
	SlotMorning SlotKind = "morning"
	SlotEvening SlotKind = "evening"
	SlotFullDay SlotKind = "full_day"
)

// AllSlots lists every slot kind in display order.
var AllSlots = []SlotKind{SlotMorning, SlotEvening, SlotFullDay}

// IsValid returns true if the slot kind is one of the three known values.
func (s SlotKind) IsValid() bool {
	return s == SlotMorning || s == SlotEvening || s == SlotFullDay
}

// ParseSlotKind parses a wire-format slot name
func ParseSlotKind(v string) (SlotKind, error) {
	s := SlotKind(v)
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSlot, v)
	}
	return s, nil
}

// ContainsSlot reports whether the slot set contains the given kind
func ContainsSlot(slots []SlotKind, kind SlotKind) bool {
	for _, s := range slots {
		if s == kind {
			return true
		}
	}
	return false
}
