package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateKey_Weekday(t *testing.T) {
	wd, ok := DateKey("2025-06-05").Weekday()
	assert.True(t, ok)
	assert.Equal(t, time.Thursday, wd)

	_, ok = DateKey("").Weekday()
	assert.False(t, ok)

	_, ok = DateKey("not-a-date").Weekday()
	assert.False(t, ok)
}

func TestDatesInRange_Inclusive(t *testing.T) {
	dates, err := DatesInRange("2025-06-01", "2025-06-07")
	require.NoError(t, err)

	require.Len(t, dates, 7)
	assert.Equal(t, DateKey("2025-06-01"), dates[0])
	assert.Equal(t, DateKey("2025-06-07"), dates[6])
}

func TestDatesInRange_SingleDay(t *testing.T) {
	dates, err := DatesInRange("2025-06-05", "2025-06-05")
	require.NoError(t, err)

	assert.Equal(t, []DateKey{"2025-06-05"}, dates)
}

func TestDatesInRange_CrossesMonthBoundary(t *testing.T) {
	dates, err := DatesInRange("2025-06-29", "2025-07-02")
	require.NoError(t, err)

	assert.Equal(t, []DateKey{"2025-06-29", "2025-06-30", "2025-07-01", "2025-07-02"}, dates)
}

func TestDatesInRange_MalformedDate(t *testing.T) {
	_, err := DatesInRange("06/01/2025", "2025-06-07")
	assert.ErrorIs(t, err, ErrMalformedDate)
}
