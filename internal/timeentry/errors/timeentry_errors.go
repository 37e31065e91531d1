package timeentryerrors

import (
	"net/http"

	"go-worktime/internal/shared/apperror"
)

var (
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
		http.StatusBadRequest,
	)
	ErrInvalidEntryID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid time entry id",
		http.StatusBadRequest,
	)
	ErrInvalidTimeFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid clock time, expected HH:MM",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidTimeRange = apperror.New(
		apperror.CodeInvalidInput,
		"check-out must not equal check-in and end_date must not precede date",
		http.StatusBadRequest,
	)
	ErrInvalidBreakOverride = apperror.New(
		apperror.CodeInvalidInput,
		"break_override_minutes must be between 0 and 1440",
		http.StatusBadRequest,
	)
	ErrMissingHalfDayWindow = apperror.New(
		apperror.CodeInvalidInput,
		"half_day_start and half_day_end are required for half-day leave",
		http.StatusBadRequest,
	)
	ErrEntryNotFound = apperror.New(
		apperror.CodeNotFound,
		"time entry not found",
		http.StatusNotFound,
	)
	ErrNoOpenEntry = apperror.New(
		apperror.CodeInvalidState,
		"no open time entry to clock out",
		http.StatusBadRequest,
	)
	ErrEntryOverlap = apperror.New(
		apperror.CodeConflict,
		"time entry overlaps an existing entry",
		http.StatusConflict,
	)
	ErrOpenEntryConflict = apperror.New(
		apperror.CodeConflict,
		"user already has an open time entry in this period",
		http.StatusConflict,
	)
	ErrLeaveNotEditable = apperror.New(
		apperror.CodeInvalidState,
		"leave entries cannot be edited, delete and re-create instead",
		http.StatusBadRequest,
	)
	ErrRecordAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"daily time record already exists",
		http.StatusConflict,
	)
)
