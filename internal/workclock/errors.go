package workclock

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeRange     = errors.New("invalid time range")
	ErrInvalidBreakOverride = errors.New("break override must be between 0 and 1440 minutes")
	ErrMissingHalfDayWindow = errors.New("half-day entry requires an explicit half-day window")
)

// ConflictError identifies the existing entry a candidate collides
// with. Open marks collisions with an entry that has not been clocked
// out yet.
type ConflictError struct {
	EntryID   uuid.UUID
	CompanyID uuid.UUID
	Day       time.Time
	Open      bool
}

func (e *ConflictError) Error() string {
	if e.Open {
		return fmt.Sprintf("conflicts with open entry %s on %s", e.EntryID, e.Day.Format("2006-01-02"))
	}
	return fmt.Sprintf("overlaps entry %s on %s", e.EntryID, e.Day.Format("2006-01-02"))
}
