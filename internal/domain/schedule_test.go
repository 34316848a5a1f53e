package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveAvailability_EmptySet(t *testing.T) {
	assert.Equal(t, Availability{Morning: true, Evening: true, FullDay: true}, ResolveAvailability(nil))
	assert.Equal(t, Availability{Morning: true, Evening: true, FullDay: true}, ResolveAvailability([]SlotKind{}))
}

func TestResolveAvailability_FullDayBlocksEverything(t *testing.T) {
	a := ResolveAvailability([]SlotKind{SlotFullDay})

	assert.False(t, a.Morning)
	assert.False(t, a.Evening)
	assert.False(t, a.FullDay)
}

func TestResolveAvailability_MorningBooked(t *testing.T) {
	a := ResolveAvailability([]SlotKind{SlotMorning})

	assert.Equal(t, Availability{Morning: false, Evening: true, FullDay: false}, a)
}

func TestResolveAvailability_EveningBooked(t *testing.T) {
	a := ResolveAvailability([]SlotKind{SlotEvening})

	assert.Equal(t, Availability{Morning: true, Evening: false, FullDay: false}, a)
}

func TestResolveAvailability_BothHalvesBooked(t *testing.T) {
	a := ResolveAvailability([]SlotKind{SlotMorning, SlotEvening})

	assert.False(t, a.Morning)
	assert.False(t, a.Evening)
	assert.False(t, a.FullDay)
}

func TestAvailability_For(t *testing.T) {
	a := Availability{Morning: false, Evening: true, FullDay: false}

	assert.False(t, a.For(SlotMorning))
	assert.True(t, a.For(SlotEvening))
	assert.False(t, a.For(SlotFullDay))
}

func TestNormalizeSlots_FullDayIsExclusive(t *testing.T) {
	normalized := NormalizeSlots([]SlotKind{SlotMorning, SlotFullDay, SlotEvening})

	assert.Equal(t, []SlotKind{SlotFullDay}, normalized)
}

func TestNormalizeSlots_DeduplicatesAndOrders(t *testing.T) {
	normalized := NormalizeSlots([]SlotKind{SlotEvening, SlotMorning, SlotEvening})

	assert.Equal(t, []SlotKind{SlotMorning, SlotEvening}, normalized)
}

func TestNormalizeSlots_DropsUnknownKinds(t *testing.T) {
	normalized := NormalizeSlots([]SlotKind{SlotMorning, SlotKind("midnight")})

	assert.Equal(t, []SlotKind{SlotMorning}, normalized)
}

func TestNormalizeSlots_Empty(t *testing.T) {
	assert.Empty(t, NormalizeSlots(nil))
}

func TestParseSlotKind(t *testing.T) {
	slot, err := ParseSlotKind("full_day")
	assert.NoError(t, err)
	assert.Equal(t, SlotFullDay, slot)

	_, err = ParseSlotKind("midnight")
	assert.ErrorIs(t, err, ErrUnknownSlot)
}
