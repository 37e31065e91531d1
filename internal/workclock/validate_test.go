package workclock_test

import (
	"testing"
	"time"

	"go-worktime/internal/workclock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	assert.NoError(t, err)
	return d
}

func clockPtr(t *testing.T, s string) *workclock.Clock {
	t.Helper()
	c := mustClock(t, s)
	return &c
}

func punch(t *testing.T, userID uuid.UUID, date, in, out string) workclock.Entry {
	t.Helper()
	return workclock.Entry{
		ID:       uuid.New(),
		UserID:   userID,
		Date:     day(t, date),
		CheckIn:  mustClock(t, in),
		CheckOut: clockPtr(t, out),
	}
}

func TestValidateEntry(t *testing.T) {
	userID := uuid.New()

	t.Run("success no existing entries", func(t *testing.T) {
		err := workclock.ValidateEntry(punch(t, userID, "2026-03-02", "08:00", "17:00"), nil)
		assert.NoError(t, err)
	})

	t.Run("success back to back entries", func(t *testing.T) {
		existing := []workclock.Entry{punch(t, userID, "2026-03-02", "08:00", "12:00")}
		err := workclock.ValidateEntry(punch(t, userID, "2026-03-02", "12:00", "17:00"), existing)
		assert.NoError(t, err)
	})

	t.Run("negative overlap across companies", func(t *testing.T) {
		other := punch(t, userID, "2026-03-02", "08:00", "13:00")
		other.CompanyID = uuid.New()
		candidate := punch(t, userID, "2026-03-02", "11:00", "17:00")
		candidate.CompanyID = uuid.New()

		err := workclock.ValidateEntry(candidate, []workclock.Entry{other})

		var conflict *workclock.ConflictError
		assert.ErrorAs(t, err, &conflict)
		assert.Equal(t, other.ID, conflict.EntryID)
		assert.Equal(t, other.CompanyID, conflict.CompanyID)
		assert.False(t, conflict.Open)
	})

	t.Run("different user never conflicts", func(t *testing.T) {
		existing := []workclock.Entry{punch(t, uuid.New(), "2026-03-02", "08:00", "17:00")}
		err := workclock.ValidateEntry(punch(t, userID, "2026-03-02", "09:00", "12:00"), existing)
		assert.NoError(t, err)
	})

	t.Run("different day never conflicts", func(t *testing.T) {
		existing := []workclock.Entry{punch(t, userID, "2026-03-01", "08:00", "17:00")}
		err := workclock.ValidateEntry(punch(t, userID, "2026-03-02", "08:00", "17:00"), existing)
		assert.NoError(t, err)
	})

	t.Run("update excludes itself", func(t *testing.T) {
		existing := punch(t, userID, "2026-03-02", "08:00", "17:00")
		candidate := existing
		candidate.CheckOut = clockPtr(t, "16:00")

		err := workclock.ValidateEntry(candidate, []workclock.Entry{existing})
		assert.NoError(t, err)
	})

	t.Run("negative open entry blocks later punch", func(t *testing.T) {
		open := workclock.Entry{
			ID:      uuid.New(),
			UserID:  userID,
			Date:    day(t, "2026-03-02"),
			CheckIn: mustClock(t, "08:00"),
		}
		err := workclock.ValidateEntry(punch(t, userID, "2026-03-02", "10:00", "12:00"), []workclock.Entry{open})

		var conflict *workclock.ConflictError
		assert.ErrorAs(t, err, &conflict)
		assert.True(t, conflict.Open)
	})

	t.Run("punch before open check-in allowed", func(t *testing.T) {
		open := workclock.Entry{
			ID:      uuid.New(),
			UserID:  userID,
			Date:    day(t, "2026-03-02"),
			CheckIn: mustClock(t, "13:00"),
		}
		err := workclock.ValidateEntry(punch(t, userID, "2026-03-02", "08:00", "12:00"), []workclock.Entry{open})
		assert.NoError(t, err)
	})

	t.Run("half day leave coexists with afternoon punch", func(t *testing.T) {
		leave := workclock.Entry{
			ID:        uuid.New(),
			UserID:    userID,
			Date:      day(t, "2026-03-02"),
			IsHalfDay: true,
			HalfDay: &workclock.Window{
				Start: mustClock(t, "08:00"),
				End:   mustClock(t, "12:00"),
			},
		}
		err := workclock.ValidateEntry(punch(t, userID, "2026-03-02", "13:00", "17:00"), []workclock.Entry{leave})
		assert.NoError(t, err)
	})

	t.Run("negative half day leave blocks morning punch", func(t *testing.T) {
		leave := workclock.Entry{
			ID:        uuid.New(),
			UserID:    userID,
			Date:      day(t, "2026-03-02"),
			IsHalfDay: true,
			HalfDay: &workclock.Window{
				Start: mustClock(t, "08:00"),
				End:   mustClock(t, "12:00"),
			},
		}
		var conflict *workclock.ConflictError
		err := workclock.ValidateEntry(punch(t, userID, "2026-03-02", "09:00", "11:00"), []workclock.Entry{leave})
		assert.ErrorAs(t, err, &conflict)
		assert.False(t, conflict.Open)
	})

	t.Run("negative half day candidate without window", func(t *testing.T) {
		candidate := workclock.Entry{
			ID:        uuid.New(),
			UserID:    userID,
			Date:      day(t, "2026-03-02"),
			IsHalfDay: true,
		}
		err := workclock.ValidateEntry(candidate, nil)
		assert.ErrorIs(t, err, workclock.ErrMissingHalfDayWindow)
	})

	t.Run("multi day leave checks every inclusive day", func(t *testing.T) {
		end := day(t, "2026-03-05")
		candidate := workclock.Entry{
			ID:       uuid.New(),
			UserID:   userID,
			Date:     day(t, "2026-03-02"),
			EndDate:  &end,
			IsAllDay: true,
		}

		// collision sits on the last day of the four-day span
		existing := []workclock.Entry{punch(t, userID, "2026-03-05", "08:00", "12:00")}

		var conflict *workclock.ConflictError
		err := workclock.ValidateEntry(candidate, existing)
		assert.ErrorAs(t, err, &conflict)
		assert.Equal(t, day(t, "2026-03-05"), conflict.Day)
	})

	t.Run("multi day leave clear of adjacent days", func(t *testing.T) {
		end := day(t, "2026-03-05")
		candidate := workclock.Entry{
			ID:       uuid.New(),
			UserID:   userID,
			Date:     day(t, "2026-03-02"),
			EndDate:  &end,
			IsAllDay: true,
		}
		existing := []workclock.Entry{
			punch(t, userID, "2026-03-01", "08:00", "17:00"),
			punch(t, userID, "2026-03-06", "08:00", "17:00"),
		}
		assert.NoError(t, workclock.ValidateEntry(candidate, existing))
	})

	t.Run("negative end date before start", func(t *testing.T) {
		end := day(t, "2026-03-01")
		candidate := workclock.Entry{
			ID:       uuid.New(),
			UserID:   userID,
			Date:     day(t, "2026-03-02"),
			EndDate:  &end,
			IsAllDay: true,
		}
		err := workclock.ValidateEntry(candidate, nil)
		assert.ErrorIs(t, err, workclock.ErrInvalidTimeRange)
	})

	t.Run("negative zero length punch", func(t *testing.T) {
		err := workclock.ValidateEntry(punch(t, userID, "2026-03-02", "09:00", "09:00"), nil)
		assert.ErrorIs(t, err, workclock.ErrInvalidTimeRange)
	})

	t.Run("idempotent verdict", func(t *testing.T) {
		existing := []workclock.Entry{punch(t, userID, "2026-03-02", "08:00", "13:00")}
		candidate := punch(t, userID, "2026-03-02", "11:00", "17:00")

		first := workclock.ValidateEntry(candidate, existing)
		second := workclock.ValidateEntry(candidate, existing)
		assert.Error(t, first)
		assert.Equal(t, first, second)
	})
}
