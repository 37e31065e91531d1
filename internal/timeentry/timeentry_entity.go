package timeentry

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimeRecord is the daily envelope for one user at one company. The
// composite unique index guarantees at most one record per user per
// date per company; the same user may still hold records at other
// companies on the same date.
type TimeRecord struct {
	ID        uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID      `gorm:"column:company_id;type:uuid;not null;uniqueIndex:uq_time_records_user_date_company"`
	UserID    uuid.UUID      `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_time_records_user_date_company"`
	WorkDate  time.Time      `gorm:"column:work_date;type:date;not null;uniqueIndex:uq_time_records_user_date_company"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
	Entries   []TimeEntry    `gorm:"foreignKey:RecordID;references:ID"`
}

func (TimeRecord) TableName() string {
	return "time_records"
}

const (
	entryTypeWork  = "WORK"
	entryTypeLeave = "LEAVE"
)

// TimeEntry is one punch or leave span inside a daily record. Clock
// values are stored as HH:MM text with optional timezone labels; a
// missing check-out means the user is still clocked in. EndDate
// stretches a leave entry across multiple calendar days.
type TimeEntry struct {
	ID            uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	RecordID      uuid.UUID      `gorm:"column:record_id;type:uuid;not null;uniqueIndex:uq_time_entries_record_sequence"`
	Sequence      int            `gorm:"column:sequence;not null;uniqueIndex:uq_time_entries_record_sequence"`
	EntryType     string         `gorm:"column:entry_type;type:varchar(20);not null;default:WORK"`
	CheckIn       string         `gorm:"column:check_in;type:varchar(5);not null"`
	CheckInTZ     *string        `gorm:"column:check_in_tz;type:varchar(64)"`
	CheckOut      *string        `gorm:"column:check_out;type:varchar(5)"`
	CheckOutTZ    *string        `gorm:"column:check_out_tz;type:varchar(64)"`
	GrossMinutes  *int           `gorm:"column:gross_minutes"`
	BreakMinutes  *int           `gorm:"column:break_minutes"`
	BreakOverride *int           `gorm:"column:break_override"`
	EndDate       *time.Time     `gorm:"column:end_date;type:date"`
	IsAllDay      bool           `gorm:"column:is_all_day;not null;default:false"`
	IsHalfDay     bool           `gorm:"column:is_half_day;not null;default:false"`
	HalfDayStart  *string        `gorm:"column:half_day_start;type:varchar(5)"`
	HalfDayEnd    *string        `gorm:"column:half_day_end;type:varchar(5)"`
	Source        string         `gorm:"column:source;type:varchar(30);not null;default:MANUAL"`
	Notes         *string        `gorm:"column:notes;type:text"`
	CreatedAt     time.Time      `gorm:"column:created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at;index"`
	Record        *TimeRecord    `gorm:"foreignKey:RecordID;references:ID"`
}

func (TimeEntry) TableName() string {
	return "time_entries"
}
