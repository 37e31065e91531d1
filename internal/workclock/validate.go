package workclock

import (
	"time"

	"github.com/google/uuid"
)

// dayEnd is the conservative end assumed for open punches and the end
// of a full-day leave window.
var dayEnd = Clock{Hour: 23, Minute: 59}

// Entry is the engine's view of one punch or leave span. It carries
// just enough identity for conflict reporting; persistence stays with
// the caller.
type Entry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CompanyID uuid.UUID
	Sequence  int
	Date      time.Time  // calendar day, clock part ignored
	EndDate   *time.Time // inclusive, set for multi-day leave only
	CheckIn   Clock
	CheckOut  *Clock // nil while still clocked in
	IsAllDay  bool
	IsHalfDay bool
	HalfDay   *Window
}

// Window is a slice of the working day. Which half a half-day leave
// covers is company policy, so the caller always supplies the window
// explicitly instead of the engine assuming morning or afternoon.
type Window struct {
	Start Clock
	End   Clock
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (e Entry) lastDay() time.Time {
	if e.EndDate != nil {
		return *e.EndDate
	}
	return e.Date
}

func (e Entry) coversDay(day time.Time) bool {
	return !day.Before(truncateDay(e.Date)) && !day.After(truncateDay(e.lastDay()))
}

// window resolves the clock range the entry occupies on any day it
// covers.
func (e Entry) window() (Window, error) {
	switch {
	case e.IsHalfDay:
		if e.HalfDay == nil {
			return Window{}, ErrMissingHalfDayWindow
		}
		if e.HalfDay.End.Minutes() <= e.HalfDay.Start.Minutes() {
			return Window{}, ErrInvalidTimeRange
		}
		return *e.HalfDay, nil
	case e.IsAllDay:
		return Window{Start: Clock{}, End: dayEnd}, nil
	case e.CheckOut == nil:
		// Open punch: its true end is unknown, assume it runs to end
		// of day until the clock-out arrives.
		return Window{Start: e.CheckIn, End: dayEnd}, nil
	default:
		if e.CheckOut.Equal(e.CheckIn) {
			return Window{}, ErrInvalidTimeRange
		}
		return Window{Start: e.CheckIn, End: *e.CheckOut}, nil
	}
}

// ValidateEntry decides whether the candidate may be inserted or
// updated given a caller-supplied snapshot of the user's existing
// entries. Entries from every company count: the same person cannot be
// booked twice at the same instant no matter who employs them. The
// check runs once per calendar day in the candidate's inclusive
// [Date, EndDate] span; the first collision is returned as a
// *ConflictError. The function never persists anything and re-running
// it with the same inputs always yields the same verdict.
func ValidateEntry(candidate Entry, existing []Entry) error {
	start := truncateDay(candidate.Date)
	end := start
	if candidate.EndDate != nil {
		end = truncateDay(*candidate.EndDate)
		if end.Before(start) {
			return ErrInvalidTimeRange
		}
	}

	win, err := candidate.window()
	if err != nil {
		return err
	}

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		for _, ex := range existing {
			if candidate.ID != uuid.Nil && ex.ID == candidate.ID {
				continue // updating an entry never conflicts with itself
			}
			if ex.UserID != candidate.UserID {
				continue
			}
			if !ex.coversDay(day) {
				continue
			}
			exWin, err := ex.window()
			if err != nil {
				// An existing row that cannot be resolved to a window
				// was validated when it was written; it cannot block
				// the candidate.
				continue
			}
			if Overlaps(win.Start, win.End, exWin.Start, exWin.End) {
				return &ConflictError{
					EntryID:   ex.ID,
					CompanyID: ex.CompanyID,
					Day:       day,
					Open:      ex.CheckOut == nil && !ex.IsAllDay && !ex.IsHalfDay,
				}
			}
		}
	}
	return nil
}
