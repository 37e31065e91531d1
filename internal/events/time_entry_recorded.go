package events

import "time"

const TimeEntryLifecycleTopic = "worktime.time-entry.lifecycle.v1"

const (
	TimeEntryClockedIn   = "time_entry.clocked_in"
	TimeEntryClockedOut  = "time_entry.clocked_out"
	TimeEntryLeaveBooked = "time_entry.leave_booked"
)

// TimeEntryRecordedEvent is emitted whenever a punch or leave entry is
// written. Downstream payroll consumes it to pick up gross minutes
// without polling.
type TimeEntryRecordedEvent struct {
	EventType    string    `json:"event_type"`
	EntryID      string    `json:"entry_id"`
	RecordID     string    `json:"record_id"`
	UserID       string    `json:"user_id"`
	CompanyID    string    `json:"company_id"`
	WorkDate     string    `json:"work_date"`
	GrossMinutes *int      `json:"gross_minutes,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}
