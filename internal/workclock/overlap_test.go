package workclock_test

import (
	"testing"

	"go-worktime/internal/workclock"

	"github.com/stretchr/testify/assert"
)

func mustClock(t *testing.T, s string) workclock.Clock {
	t.Helper()
	c, err := workclock.ParseClock(s)
	assert.NoError(t, err)
	return c
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                   string
		s1, e1, s2, e2         string
		want                   bool
	}{
		{"touching boundaries", "08:00", "12:00", "12:00", "17:00", false},
		{"partial overlap", "08:00", "13:00", "11:00", "17:00", true},
		{"containment", "08:00", "18:00", "11:00", "14:00", true},
		{"identical ranges", "09:00", "17:00", "09:00", "17:00", true},
		{"disjoint same day", "08:00", "10:00", "11:00", "12:00", false},
		{"overnight vs afternoon", "22:00", "06:00", "08:00", "17:00", false},
		{"overnight vs early morning tail", "22:00", "06:00", "04:00", "12:00", true},
		{"two overnight overlapping", "22:00", "02:00", "23:00", "03:00", true},
		{"two overnight disjoint", "22:00", "02:00", "03:00", "06:00", false},
		{"overnight touching morning entry", "22:00", "06:00", "06:00", "12:00", false},
		{"day range ending where overnight starts", "17:00", "22:00", "22:00", "06:00", false},
		{"day range crossing overnight start", "17:00", "23:00", "22:00", "06:00", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s1 := mustClock(t, tc.s1)
			e1 := mustClock(t, tc.e1)
			s2 := mustClock(t, tc.s2)
			e2 := mustClock(t, tc.e2)

			assert.Equal(t, tc.want, workclock.Overlaps(s1, e1, s2, e2))
			// overlap is symmetric
			assert.Equal(t, tc.want, workclock.Overlaps(s2, e2, s1, e1))
		})
	}
}
