package workclock_test

import (
	"testing"

	"go-worktime/internal/workclock"

	"github.com/stretchr/testify/assert"
)

func TestRoundEmployerFavor(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		checkIn bool
		want    string
	}{
		{"check-in rounds up", "08:03", true, "08:05"},
		{"check-in rounds up to ten", "08:07", true, "08:10"},
		{"check-in on grid unchanged", "08:05", true, "08:05"},
		{"check-in on hour unchanged", "08:00", true, "08:00"},
		{"check-in crosses hour", "08:58", true, "09:00"},
		{"check-in wraps midnight", "23:58", true, "00:00"},
		{"check-out rounds down", "17:43", false, "17:40"},
		{"check-out rounds down to 45", "17:47", false, "17:45"},
		{"check-out near hour end", "17:59", false, "17:55"},
		{"check-out on grid unchanged", "17:45", false, "17:45"},
		{"check-out just past hour", "17:01", false, "17:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := workclock.RoundEmployerFavor(mustClock(t, tc.in), tc.checkIn)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestGrossHours(t *testing.T) {
	cases := []struct {
		name    string
		in, out string
		want    float64
	}{
		{"regular day", "08:00", "17:00", 9.0},
		{"short day", "09:00", "14:00", 5.0},
		{"overnight shift", "22:00", "06:00", 8.0},
		{"overnight one minute short", "23:59", "00:01", 2.0 / 60},
		{"fractional", "08:30", "12:15", 3.75},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := workclock.GrossHours(mustClock(t, tc.in), mustClock(t, tc.out))
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestBreakMinutes(t *testing.T) {
	// exactly six hours is the exclusive boundary: no break yet
	assert.Equal(t, 0, workclock.BreakMinutes(6.0))
	assert.Equal(t, 30, workclock.BreakMinutes(6.01))
	assert.Equal(t, 30, workclock.BreakMinutes(7.0))
	assert.Equal(t, 30, workclock.BreakMinutes(8.0))
	assert.Equal(t, 30, workclock.BreakMinutes(9.5))
	assert.Equal(t, 0, workclock.BreakMinutes(5.0))
	assert.Equal(t, 0, workclock.BreakMinutes(0))
}

func TestNetHours(t *testing.T) {
	t.Run("derived break", func(t *testing.T) {
		net, breakMin, gross, err := workclock.NetHours(mustClock(t, "08:00"), mustClock(t, "17:00"), nil)
		assert.NoError(t, err)
		assert.InDelta(t, 9.0, gross, 1e-9)
		assert.Equal(t, 30, breakMin)
		assert.InDelta(t, 8.5, net, 1e-9)
	})

	t.Run("no break under threshold", func(t *testing.T) {
		net, breakMin, gross, err := workclock.NetHours(mustClock(t, "09:00"), mustClock(t, "14:00"), nil)
		assert.NoError(t, err)
		assert.InDelta(t, 5.0, gross, 1e-9)
		assert.Equal(t, 0, breakMin)
		assert.InDelta(t, 5.0, net, 1e-9)
	})

	t.Run("manual override", func(t *testing.T) {
		override := 45
		net, breakMin, gross, err := workclock.NetHours(mustClock(t, "08:00"), mustClock(t, "17:00"), &override)
		assert.NoError(t, err)
		assert.InDelta(t, 9.0, gross, 1e-9)
		assert.Equal(t, 45, breakMin)
		assert.InDelta(t, 8.25, net, 1e-9)
	})

	t.Run("zero override suppresses statutory break", func(t *testing.T) {
		override := 0
		net, breakMin, _, err := workclock.NetHours(mustClock(t, "08:00"), mustClock(t, "17:00"), &override)
		assert.NoError(t, err)
		assert.Equal(t, 0, breakMin)
		assert.InDelta(t, 9.0, net, 1e-9)
	})

	t.Run("negative override rejected", func(t *testing.T) {
		override := -1
		_, _, _, err := workclock.NetHours(mustClock(t, "08:00"), mustClock(t, "17:00"), &override)
		assert.ErrorIs(t, err, workclock.ErrInvalidBreakOverride)
	})

	t.Run("oversized override rejected", func(t *testing.T) {
		override := 1441
		_, _, _, err := workclock.NetHours(mustClock(t, "08:00"), mustClock(t, "17:00"), &override)
		assert.ErrorIs(t, err, workclock.ErrInvalidBreakOverride)
	})

	t.Run("overnight gross", func(t *testing.T) {
		_, breakMin, gross, err := workclock.NetHours(mustClock(t, "22:00"), mustClock(t, "06:00"), nil)
		assert.NoError(t, err)
		assert.InDelta(t, 8.0, gross, 1e-9)
		assert.Equal(t, 30, breakMin)
	})
}
