package timeentry

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go-worktime/internal/shared/apperror"
	timeentryerrors "go-worktime/internal/timeentry/errors"
	"go-worktime/internal/workclock"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapEngineError translates workclock verdicts into the caller-visible
// error vocabulary. Conflicts keep the colliding entry wrapped so
// callers can still errors.As their way to its identity.
func mapEngineError(err error) error {
	if err == nil {
		return nil
	}

	var conflict *workclock.ConflictError
	if errors.As(err, &conflict) {
		if conflict.Open {
			return apperror.Wrap(
				err,
				apperror.CodeConflict,
				fmt.Sprintf("user already has an open time entry %s on %s",
					conflict.EntryID, conflict.Day.Format("2006-01-02")),
				http.StatusConflict,
			)
		}
		return apperror.Wrap(
			err,
			apperror.CodeConflict,
			fmt.Sprintf("time entry overlaps existing entry %s on %s",
				conflict.EntryID, conflict.Day.Format("2006-01-02")),
			http.StatusConflict,
		)
	}

	switch {
	case errors.Is(err, workclock.ErrInvalidTimeRange):
		return timeentryerrors.ErrInvalidTimeRange
	case errors.Is(err, workclock.ErrInvalidBreakOverride):
		return timeentryerrors.ErrInvalidBreakOverride
	case errors.Is(err, workclock.ErrMissingHalfDayWindow):
		return timeentryerrors.ErrMissingHalfDayWindow
	default:
		return err
	}
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return timeentryerrors.ErrEntryNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "uq_time_records_user_date_company":
				return timeentryerrors.ErrRecordAlreadyExists
			case "uq_time_entries_record_sequence":
				return timeentryerrors.ErrEntryOverlap
			}
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_time_records_user_date_company") {
		return timeentryerrors.ErrRecordAlreadyExists
	}

	return err
}
