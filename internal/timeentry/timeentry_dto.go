package timeentry

type ClockInRequest struct {
	Time     string  `json:"time"` // HH:MM, server clock when empty
	Timezone *string `json:"timezone"`
	Source   string  `json:"source"`
	Notes    *string `json:"notes"`
}

type ClockOutRequest struct {
	Time          string  `json:"time"` // HH:MM, server clock when empty
	Timezone      *string `json:"timezone"`
	BreakOverride *int    `json:"break_override_minutes"`
	Notes         *string `json:"notes"`
}

type CreateLeaveRequest struct {
	Date         string  `json:"date" binding:"required"`
	EndDate      *string `json:"end_date"`
	IsHalfDay    bool    `json:"is_half_day"`
	HalfDayStart *string `json:"half_day_start"`
	HalfDayEnd   *string `json:"half_day_end"`
	Notes        *string `json:"notes"`
}

type UpdateTimeEntryRequest struct {
	CheckIn       string  `json:"check_in" binding:"required"`
	CheckOut      *string `json:"check_out"`
	BreakOverride *int    `json:"break_override_minutes"`
	Notes         *string `json:"notes"`
}

type TimeEntryResponse struct {
	ID            string   `json:"id"`
	RecordID      string   `json:"record_id"`
	CompanyID     string   `json:"company_id"`
	UserID        string   `json:"user_id"`
	WorkDate      string   `json:"work_date"`
	Sequence      int      `json:"sequence"`
	EntryType     string   `json:"entry_type"`
	CheckIn       string   `json:"check_in"`
	CheckInTZ     *string  `json:"check_in_tz,omitempty"`
	CheckOut      *string  `json:"check_out,omitempty"`
	CheckOutTZ    *string  `json:"check_out_tz,omitempty"`
	GrossMinutes  *int     `json:"gross_minutes,omitempty"`
	BreakMinutes  *int     `json:"break_minutes,omitempty"`
	GrossHours    *float64 `json:"gross_hours,omitempty"`
	NetHours      *float64 `json:"net_hours,omitempty"`
	EndDate       *string  `json:"end_date,omitempty"`
	IsAllDay      bool     `json:"is_all_day"`
	IsHalfDay     bool     `json:"is_half_day"`
	HalfDayStart  *string  `json:"half_day_start,omitempty"`
	HalfDayEnd    *string  `json:"half_day_end,omitempty"`
	Source        string   `json:"source"`
	Notes         *string  `json:"notes,omitempty"`
}

type CompanyDaySummary struct {
	CompanyID    string  `json:"company_id"`
	Entries      int     `json:"entries"`
	GrossHours   float64 `json:"gross_hours"`
	BreakMinutes int     `json:"break_minutes"`
	NetHours     float64 `json:"net_hours"`
}

type DaySummaryResponse struct {
	UserID            string              `json:"user_id"`
	WorkDate          string              `json:"work_date"`
	Companies         []CompanyDaySummary `json:"companies"`
	TotalGrossHours   float64             `json:"total_gross_hours"`
	TotalBreakMinutes int                 `json:"total_break_minutes"`
	TotalNetHours     float64             `json:"total_net_hours"`
	OpenEntries       int                 `json:"open_entries"`
}
