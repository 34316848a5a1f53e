package domain

// AppConfig is the entire persistable state of the system: per-date booked
// slots and per-date price overrides. It is seeded once at startup, mutated
// in place for the lifetime of the session and exported manually by the
// operator; there is no automatic persistence.
//
// Invariants:
//   - a date key never maps to an empty slot set or an empty override map
//   - a booked set containing full_day contains nothing else
//   - an override never equals the currently computed default price
type AppConfig struct {
	BookedSlots  map[DateKey][]SlotKind          `json:"bookedSlots"`
	CustomPrices map[DateKey]map[SlotKind]string `json:"customPrices"`
}

// NewAppConfig returns an empty configuration with both maps allocated.
func NewAppConfig() AppConfig {
	return AppConfig{
		BookedSlots:  make(map[DateKey][]SlotKind),
		CustomPrices: make(map[DateKey]map[SlotKind]string),
	}
}
