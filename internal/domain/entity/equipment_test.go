package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)

func TestNextCheckDate_EmptyLogIsDueImmediately(t *testing.T) {
	eq := Equipment{Kind: KindParaglider, CheckCycle: 6}

	next, ok := eq.NextCheckDate(testNow)
	require.True(t, ok)
	assert.Equal(t, testNow, next)
}

func TestNextCheckDate_AddsCycleToLastEntry(t *testing.T) {
	checkDate := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	eq := Equipment{
		Kind:       KindReserve,
		CheckCycle: 6,
		CheckLog:   []Check{NewCheck(checkDate)},
	}

	next, ok := eq.NextCheckDate(testNow)
	require.True(t, ok)
	assert.Equal(t, checkDate.AddDate(0, 6, 0), next)
}

func TestNextCheckDate_UsesInsertionOrderNotLatestDate(t *testing.T) {
	older := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	// The newer check was entered first; the last log entry is the older
	// one and that is the one the due date derives from.
	eq := Equipment{
		Kind:       KindHarness,
		CheckCycle: 12,
		CheckLog:   []Check{NewCheck(newer), NewCheck(older)},
	}

	next, ok := eq.NextCheckDate(testNow)
	require.True(t, ok)
	assert.Equal(t, older.AddDate(0, 12, 0), next)
}

func TestNextCheckDate_CycleZeroTurnsCheckingOff(t *testing.T) {
	eq := Equipment{
		Kind:       KindParaglider,
		CheckCycle: 0,
		CheckLog:   []Check{NewCheck(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))},
	}

	_, ok := eq.NextCheckDate(testNow)
	assert.False(t, ok)
}

func TestUrgency_CycleZeroIsAlwaysNever(t *testing.T) {
	eq := Equipment{Kind: KindParaglider, CheckCycle: 0}
	assert.Equal(t, UrgencyNever, eq.Urgency(testNow, DefaultSoonWindow))

	eq.CheckLog = []Check{NewCheck(testNow.AddDate(-10, 0, 0))}
	assert.Equal(t, UrgencyNever, eq.Urgency(testNow, DefaultSoonWindow))
}

func TestUrgency_Boundaries(t *testing.T) {
	tests := []struct {
		name      string
		cycle     int
		lastCheck time.Time
		want      CheckUrgency
	}{
		{
			// Due date exactly now (Apr 1 + 1 month).
			name:      "due now",
			cycle:     1,
			lastCheck: time.Date(2023, 4, 1, 12, 0, 0, 0, time.UTC),
			want:      UrgencyNow,
		},
		{
			name:      "overdue",
			cycle:     1,
			lastCheck: time.Date(2023, 3, 1, 12, 0, 0, 0, time.UTC),
			want:      UrgencyNow,
		},
		{
			// Dec 31 + 5 months = May 31, exactly 30 days out.
			name:      "due in 30 days",
			cycle:     5,
			lastCheck: time.Date(2022, 12, 31, 12, 0, 0, 0, time.UTC),
			want:      UrgencySoon,
		},
		{
			// Jan 1 + 5 months = Jun 1, one day past the window.
			name:      "due in 31 days",
			cycle:     5,
			lastCheck: time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC),
			want:      UrgencyLater,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eq := Equipment{
				Kind:       KindParaglider,
				CheckCycle: tt.cycle,
				CheckLog:   []Check{NewCheck(tt.lastCheck)},
			}
			assert.Equal(t, tt.want, eq.Urgency(testNow, DefaultSoonWindow))
		})
	}
}

func TestUrgency_EmptyLogIsDueNow(t *testing.T) {
	eq := Equipment{Kind: KindReserve, CheckCycle: 12}
	assert.Equal(t, UrgencyNow, eq.Urgency(testNow, DefaultSoonWindow))
}

func TestUrgency_DeterministicForSameNow(t *testing.T) {
	eq := Equipment{
		Kind:       KindParaglider,
		CheckCycle: 3,
		CheckLog:   []Check{NewCheck(testNow.AddDate(0, -2, 0))},
	}

	first := eq.Urgency(testNow, DefaultSoonWindow)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, eq.Urgency(testNow, DefaultSoonWindow))
	}
}

func TestLastCheck(t *testing.T) {
	eq := Equipment{Kind: KindParaglider, CheckCycle: 6}
	assert.Nil(t, eq.LastCheck())

	first := NewCheck(testNow.AddDate(0, -6, 0))
	second := NewCheck(testNow.AddDate(0, -3, 0))
	eq.CheckLog = []Check{first, second}

	last := eq.LastCheck()
	require.NotNil(t, last)
	assert.Equal(t, second.ID, last.ID)
}
