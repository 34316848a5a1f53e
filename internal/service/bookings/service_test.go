package bookings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakanz/chalet-booking-service/internal/domain"
	"github.com/rakanz/chalet-booking-service/internal/infra/storage/state"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestService() (*Service, *state.Store) {
	store := state.NewStore()
	return NewService(store, nopLogger{}), store
}

func TestToggleSlot_OnThenOffRestoresOriginalState(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()
	date := domain.DateKey("2025-06-05")

	before := svc.DayBookings(ctx, date)

	_, err := svc.ToggleSlot(ctx, date, domain.SlotMorning)
	require.NoError(t, err)
	_, err = svc.ToggleSlot(ctx, date, domain.SlotMorning)
	require.NoError(t, err)

	after := svc.DayBookings(ctx, date)
	assert.Equal(t, before.BookedSlots, after.BookedSlots)
	assert.Equal(t, before.Availability, after.Availability)
	assert.NotContains(t, store.Snapshot().BookedSlots, date)
}

func TestToggleSlot_MorningBlocksMorningAndFullDay(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	result, err := svc.ToggleSlot(ctx, "2025-06-05", domain.SlotMorning)
	require.NoError(t, err)

	assert.Equal(t, domain.Availability{Morning: false, Evening: true, FullDay: false}, result.Availability)
}

func TestToggleSlot_FullDayBlocksEverything(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	result, err := svc.ToggleSlot(ctx, "2025-06-05", domain.SlotFullDay)
	require.NoError(t, err)

	assert.Equal(t, domain.Availability{}, result.Availability)
	assert.Equal(t, []domain.SlotKind{domain.SlotFullDay}, result.BookedSlots)
}

// Toggling full_day on top of partial bookings silently discards them.
// This is accepted current behavior, pinned here for product review.
func TestToggleSlot_FullDayOverwritesPartialBookings(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	date := domain.DateKey("2025-06-05")

	_, err := svc.ToggleSlot(ctx, date, domain.SlotMorning)
	require.NoError(t, err)
	_, err = svc.ToggleSlot(ctx, date, domain.SlotEvening)
	require.NoError(t, err)

	result, err := svc.ToggleSlot(ctx, date, domain.SlotFullDay)
	require.NoError(t, err)

	assert.Equal(t, []domain.SlotKind{domain.SlotFullDay}, result.BookedSlots)
}

func TestToggleSlot_FullDayTwiceClearsDate(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()
	date := domain.DateKey("2025-06-05")

	_, err := svc.ToggleSlot(ctx, date, domain.SlotFullDay)
	require.NoError(t, err)
	result, err := svc.ToggleSlot(ctx, date, domain.SlotFullDay)
	require.NoError(t, err)

	assert.Empty(t, result.BookedSlots)
	assert.True(t, result.Availability.AllFree())
	assert.NotContains(t, store.Snapshot().BookedSlots, date)
}

// Toggling a half slot while full_day is booked downgrades the booking:
// full_day is removed, the half slot becomes booked.
func TestToggleSlot_HalfSlotDowngradesFullDay(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	date := domain.DateKey("2025-06-05")

	_, err := svc.ToggleSlot(ctx, date, domain.SlotFullDay)
	require.NoError(t, err)

	result, err := svc.ToggleSlot(ctx, date, domain.SlotMorning)
	require.NoError(t, err)

	assert.Equal(t, []domain.SlotKind{domain.SlotMorning}, result.BookedSlots)
	assert.Equal(t, domain.Availability{Morning: false, Evening: true, FullDay: false}, result.Availability)
}

func TestToggleSlot_EmptyDateIsSilentNoop(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	result, err := svc.ToggleSlot(ctx, "", domain.SlotMorning)
	require.NoError(t, err)

	assert.Empty(t, result.BookedSlots)
	assert.Empty(t, store.Snapshot().BookedSlots)
}

func TestToggleSlot_UnknownSlot(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.ToggleSlot(context.Background(), "2025-06-05", domain.SlotKind("midnight"))
	assert.ErrorIs(t, err, ErrUnknownSlot)
}

func TestClearDate_RemovesAllBookings(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()
	date := domain.DateKey("2025-06-05")

	_, err := svc.ToggleSlot(ctx, date, domain.SlotMorning)
	require.NoError(t, err)
	_, err = svc.ToggleSlot(ctx, date, domain.SlotEvening)
	require.NoError(t, err)

	result := svc.ClearDate(ctx, date)

	assert.Empty(t, result.BookedSlots)
	assert.True(t, result.Availability.AllFree())
	assert.NotContains(t, store.Snapshot().BookedSlots, date)
}

func TestClearDate_NeverTouchesPriceOverrides(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()
	date := domain.DateKey("2025-06-05")

	store.ReplaceDayOverrides(date, map[domain.SlotKind]string{domain.SlotMorning: "160 JOD"})
	_, err := svc.ToggleSlot(ctx, date, domain.SlotMorning)
	require.NoError(t, err)

	svc.ClearDate(ctx, date)

	price, ok := store.Override(date, domain.SlotMorning)
	assert.True(t, ok)
	assert.Equal(t, "160 JOD", price)
}
