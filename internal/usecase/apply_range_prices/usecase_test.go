package apply_range_prices

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

func newTestUseCase() (*UseCase, *state.Store) {
	store := state.NewStore()
	return NewUseCase(store, nopLogger{}), store
}

// 2025-06-01 is a Sunday, so 2025-06-01..07 covers exactly one full week:
// Sun Mon Tue Wed Thu Fri Sat.
func TestExecute_WeekdayBucketHitsSundayThroughThursday(t *testing.T) {
	uc, store := newTestUseCase()

	resp, err := uc.Execute(context.Background(), &Request{
		StartDate: "2025-06-01",
		EndDate:   "2025-06-07",
		Buckets:   BucketPrices{WeekdayMorning: "160 JOD"},
	})
	require.NoError(t, err)
	assert.Equal(t, 7, resp.DaysProcessed)

	for _, date := range []domain.DateKey{"2025-06-01", "2025-06-02", "2025-06-03", "2025-06-04", "2025-06-05"} {
		price, ok := store.Override(date, domain.SlotMorning)
		require.True(t, ok, "expected morning override on %s", date)
		assert.Equal(t, "160 JOD", price)
	}

	// Friday and Saturday have their own buckets, which were left blank.
	for _, date := range []domain.DateKey{"2025-06-06", "2025-06-07"} {
		_, ok := store.Override(date, domain.SlotMorning)
		assert.False(t, ok, "unexpected morning override on %s", date)
	}

	// Other slots stay untouched everywhere.
	snapshot := store.Snapshot()
	for date, overrides := range snapshot.CustomPrices {
		assert.Equal(t, map[domain.SlotKind]string{domain.SlotMorning: "160 JOD"}, overrides,
			"unexpected overrides on %s", date)
	}
}

func TestExecute_ThursdayEveningBucketHitsOnlyThursdays(t *testing.T) {
	uc, store := newTestUseCase()

	_, err := uc.Execute(context.Background(), &Request{
		StartDate: "2025-06-01",
		EndDate:   "2025-06-07",
		Buckets:   BucketPrices{ThursdayEvening: "200 JOD"},
	})
	require.NoError(t, err)

	price, ok := store.Override("2025-06-05", domain.SlotEvening)
	require.True(t, ok)
	assert.Equal(t, "200 JOD", price)

	assert.Len(t, store.Snapshot().CustomPrices, 1)
}

// A bucket price equal to the day's default removes an existing override
// for that slot instead of writing a redundant one.
func TestApplyRange_DefaultPriceRemovesExistingOverride(t *testing.T) {
	uc, store := newTestUseCase()

	store.ReplaceDayOverrides("2025-06-02", map[domain.SlotKind]string{
		domain.SlotMorning: "999 JOD",
	})

	// Monday morning default is 150 JOD.
	_, err := uc.Execute(context.Background(), &Request{
		StartDate: "2025-06-02",
		EndDate:   "2025-06-02",
		Buckets:   BucketPrices{WeekdayMorning: "150 JOD"},
	})
	require.NoError(t, err)

	_, ok := store.Override("2025-06-02", domain.SlotMorning)
	assert.False(t, ok)
	assert.NotContains(t, store.Snapshot().CustomPrices, domain.DateKey("2025-06-02"))
}

func TestExecute_BlankBucketsPreserveExistingOverrides(t *testing.T) {
	uc, store := newTestUseCase()

	store.ReplaceDayOverrides("2025-06-02", map[domain.SlotKind]string{
		domain.SlotEvening: "180 JOD",
	})

	_, err := uc.Execute(context.Background(), &Request{
		StartDate: "2025-06-01",
		EndDate:   "2025-06-03",
		Buckets:   BucketPrices{WeekdayMorning: "160 JOD"},
	})
	require.NoError(t, err)

	price, ok := store.Override("2025-06-02", domain.SlotEvening)
	require.True(t, ok)
	assert.Equal(t, "180 JOD", price)
}

func TestExecute_InvertedRangeLeavesStoreUntouched(t *testing.T) {
	uc, store := newTestUseCase()

	store.ReplaceDayOverrides("2025-06-02", map[domain.SlotKind]string{
		domain.SlotMorning: "999 JOD",
	})
	before := store.Snapshot()

	_, err := uc.Execute(context.Background(), &Request{
		StartDate: "2025-06-07",
		EndDate:   "2025-06-01",
		Buckets:   BucketPrices{WeekdayMorning: "160 JOD"},
	})
	assert.ErrorIs(t, err, ErrInvertedRange)

	assert.Equal(t, before, store.Snapshot())
}

func TestExecute_ValidationOrder(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "missing dates reported before blank buckets",
			req:     &Request{},
			wantErr: ErrMissingDates,
		},
		{
			name: "missing end date",
			req: &Request{
				StartDate: "2025-06-01",
				Buckets:   BucketPrices{WeekdayMorning: "160 JOD"},
			},
			wantErr: ErrMissingDates,
		},
		{
			name: "malformed start date",
			req: &Request{
				StartDate: "01/06/2025",
				EndDate:   "2025-06-07",
				Buckets:   BucketPrices{WeekdayMorning: "160 JOD"},
			},
			wantErr: ErrInvalidDate,
		},
		{
			name: "inverted range reported before blank buckets",
			req: &Request{
				StartDate: "2025-06-07",
				EndDate:   "2025-06-01",
			},
			wantErr: ErrInvertedRange,
		},
		{
			name: "all buckets blank",
			req: &Request{
				StartDate: "2025-06-01",
				EndDate:   "2025-06-07",
				Buckets:   BucketPrices{WeekdayMorning: "   "},
			},
			wantErr: ErrNoPricesProvided,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_SingleDayRange(t *testing.T) {
	uc, store := newTestUseCase()

	resp, err := uc.Execute(context.Background(), &Request{
		StartDate: "2025-06-06", // Friday
		EndDate:   "2025-06-06",
		Buckets:   BucketPrices{FridayFullDay: "300 JOD"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.DaysProcessed)

	price, ok := store.Override("2025-06-06", domain.SlotFullDay)
	require.True(t, ok)
	assert.Equal(t, "300 JOD", price)
}
