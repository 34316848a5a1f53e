package state

import (
	"strings"
	"sync"

	"github.com/rakanz/chalet-booking-service/internal/domain"
)

// Store — единственный владелец состояния приложения (бронирования и
// ценовые переопределения). Все операции чтения отдают копии, никогда
// живые ссылки; каждая мутация коммитится атомарно под одним мьютексом.
type Store struct {
	mu        sync.RWMutex
	bookings  map[domain.DateKey][]domain.SlotKind
	overrides map[domain.DateKey]map[domain.SlotKind]string
}

// NewStore создает пустое хранилище состояния
func NewStore() *Store {
	return &Store{
		bookings:  make(map[domain.DateKey][]domain.SlotKind),
		overrides: make(map[domain.DateKey]map[domain.SlotKind]string),
	}
}

// BookedSlots returns a copy of the booked set for the date. An absent date
// yields an empty set.
func (s *Store) BookedSlots(date domain.DateKey) []domain.SlotKind {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slots := s.bookings[date]
	out := make([]domain.SlotKind, len(slots))
	copy(out, slots)
	return out
}

// SetBookedSlots replaces the booked set for the date. The set is normalized
// before storing; an empty result deletes the date key entirely so empty
// entries are never persisted. An empty date key is ignored.
func (s *Store) SetBookedSlots(date domain.DateKey, slots []domain.SlotKind) {
	if date.IsZero() {
		return
	}

	normalized := domain.NormalizeSlots(slots)

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(normalized) == 0 {
		delete(s.bookings, date)
		return
	}
	s.bookings[date] = normalized
}

// DeleteBookings removes the date's booked set unconditionally.
func (s *Store) DeleteBookings(date domain.DateKey) {
	if date.IsZero() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.bookings, date)
}

// Override returns the stored override price for (date, slot), if any.
func (s *Store) Override(date domain.DateKey, slot domain.SlotKind) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	price, ok := s.overrides[date][slot]
	return price, ok
}

// DayOverrides returns a copy of the override map for the date. An absent
// date yields an empty map.
func (s *Store) DayOverrides(date domain.DateKey) map[domain.SlotKind]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copyDayOverrides(s.overrides[date])
}

// ReplaceDayOverrides replaces the override map for one date. Blank values
// are dropped; an empty result deletes the date key entirely. An empty date
// key is ignored.
func (s *Store) ReplaceDayOverrides(date domain.DateKey, prices map[domain.SlotKind]string) {
	if date.IsZero() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.replaceDayOverridesLocked(date, prices)
}

// ApplyOverrideChanges commits a set of per-date override replacements as a
// single atomic write, so concurrent readers never observe a partially
// applied range.
func (s *Store) ApplyOverrideChanges(changes map[domain.DateKey]map[domain.SlotKind]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for date, prices := range changes {
		if date.IsZero() {
			continue
		}
		s.replaceDayOverridesLocked(date, prices)
	}
}

// Snapshot returns a deep copy of the entire application state, suitable for
// the operator-facing export document.
func (s *Store) Snapshot() domain.AppConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cfg := domain.NewAppConfig()
	for date, slots := range s.bookings {
		out := make([]domain.SlotKind, len(slots))
		copy(out, slots)
		cfg.BookedSlots[date] = out
	}
	for date, prices := range s.overrides {
		cfg.CustomPrices[date] = copyDayOverrides(prices)
	}
	return cfg
}

func (s *Store) replaceDayOverridesLocked(date domain.DateKey, prices map[domain.SlotKind]string) {
	cleaned := make(map[domain.SlotKind]string, len(prices))
	for slot, price := range prices {
		price = strings.TrimSpace(price)
		if !slot.IsValid() || price == "" {
			continue
		}
		cleaned[slot] = price
	}

	if len(cleaned) == 0 {
		delete(s.overrides, date)
		return
	}
	s.overrides[date] = cleaned
}

func copyDayOverrides(prices map[domain.SlotKind]string) map[domain.SlotKind]string {
	out := make(map[domain.SlotKind]string, len(prices))
	for slot, price := range prices {
		out[slot] = price
	}
	return out
}
