package timeentry

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"go-worktime/internal/events"
	"go-worktime/internal/messaging/kafka"
	"go-worktime/internal/shared/contextutil"
	"go-worktime/internal/shared/counter"
	timeentryerrors "go-worktime/internal/timeentry/errors"
	"go-worktime/internal/workclock"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	sourceManual = "MANUAL"

	summaryKeyPrefix = "worktime:summary:"
	summaryCacheTTL  = 10 * time.Minute
)

func daySummaryKey(userID string, date time.Time) string {
	return fmt.Sprintf("%s%s:%s", summaryKeyPrefix, userID, date.Format("2006-01-02"))
}

//go:generate mockgen -source=timeentry_service.go -destination=mock/timeentry_service_mock.go -package=mock
type Service interface {
	ClockIn(ctx context.Context, companyID, userID string, req ClockInRequest) (TimeEntryResponse, error)
	ClockOut(ctx context.Context, companyID, userID string, req ClockOutRequest) (TimeEntryResponse, error)
	CreateLeave(ctx context.Context, companyID, userID string, req CreateLeaveRequest) (TimeEntryResponse, error)
	Update(ctx context.Context, companyID, userID, id string, req UpdateTimeEntryRequest) (TimeEntryResponse, error)
	Delete(ctx context.Context, companyID, id string) error
	GetByID(ctx context.Context, companyID, id string) (TimeEntryResponse, error)
	GetAll(ctx context.Context, companyID, actorID string, canReadAll bool) ([]TimeEntryResponse, error)
	DaySummary(ctx context.Context, userID, date string) (DaySummaryResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	seq    counter.Repository
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, seq counter.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("timeentry.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timeentry.service")
	}
	return &service{db: db, repo: repo, seq: seq, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func NewServiceWithOutbox(db *sql.DB, repo Repository, seq counter.Repository, rdb *redis.Client, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	svc := NewService(db, repo, seq, rdb, logger...).(*service)
	svc.outbox = outbox
	return svc
}

func (s *service) ClockIn(ctx context.Context, companyID, userID string, req ClockInRequest) (TimeEntryResponse, error) {
	s.logger.Debug("clock in requested",
		zap.String("company_id", companyID),
		zap.String("user_id", userID),
		zap.String("time", req.Time),
	)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return TimeEntryResponse{}, timeentryerrors.ErrInvalidCompanyID
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return TimeEntryResponse{}, timeentryerrors.ErrInvalidUserID
	}

	clock, workDate, err := resolveClock(req.Time)
	if err != nil {
		return TimeEntryResponse{}, err
	}
	rounded := workclock.RoundEmployerFavor(clock, true)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("clock in begin tx failed", zap.Error(err))
		return TimeEntryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := lockUserEntries(ctx, tx, userID); err != nil {
		s.logger.Error("clock in user lock failed", zap.Error(err))
		return TimeEntryResponse{}, err
	}

	existingRows, err := qtx.FindEntriesForUserBetween(ctx, userID, workDate, workDate)
	if err != nil {
		s.logger.Error("clock in load existing entries failed", zap.Error(err))
		return TimeEntryResponse{}, err
	}

	candidate := workclock.Entry{
		UserID:    userUUID,
		CompanyID: companyUUID,
		Date:      workDate,
		CheckIn:   rounded,
	}
	if err := workclock.ValidateEntry(candidate, engineEntries(existingRows)); err != nil {
		s.logger.Warn("clock in rejected",
			zap.String("user_id", userID),
			zap.String("work_date", workDate.Format("2006-01-02")),
			zap.Error(err),
		)
		return TimeEntryResponse{}, mapEngineError(err)
	}

	rec, err := qtx.FindRecord(ctx, companyID, userID, workDate)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return TimeEntryResponse{}, err
		}
		rec = &TimeRecord{
			ID:        uuid.New(),
			CompanyID: companyUUID,
			UserID:    userUUID,
			WorkDate:  workDate,
		}
		if err := qtx.CreateRecord(ctx, rec); err != nil {
			return TimeEntryResponse{}, mapRepositoryError(err)
		}
	}

	seqNum, err := s.seq.NextSequence(ctx, rec.ID.String())
	if err != nil {
		s.logger.Error("clock in sequence allocation failed", zap.Error(err))
		return TimeEntryResponse{}, err
	}

	source := req.Source
	if source == "" {
		source = sourceManual
	}

	e := &TimeEntry{
		ID:        uuid.New(),
		RecordID:  rec.ID,
		Sequence:  seqNum,
		EntryType: entryTypeWork,
		CheckIn:   rounded.String(),
		CheckInTZ: req.Timezone,
		Source:    source,
		Notes:     req.Notes,
	}
	if err := qtx.CreateEntry(ctx, e); err != nil {
		s.logger.Error("clock in persist failed", zap.Error(err))
		return TimeEntryResponse{}, mapRepositoryError(err)
	}

	if err := s.stageEntryEvent(ctx, tx, events.TimeEntryClockedIn, e, rec); err != nil {
		s.logger.Error("clock in stage event failed", zap.Error(err))
		return TimeEntryResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("clock in commit failed", zap.Error(err))
		return TimeEntryResponse{}, err
	}
	s.invalidateSummary(ctx, userID, workDate, workDate)
	s.logger.Info("clock in success",
		zap.String("entry_id", e.ID.String()),
		zap.String("user_id", userID),
		zap.String("work_date", workDate.Format("2006-01-02")),
	)

	e.Record = rec
	return mapToResponse(*e), nil
}

func (s *service) ClockOut(ctx context.Context, companyID, userID string, req ClockOutRequest) (TimeEntryResponse, error) {
	s.logger.Debug("clock out requested",
		zap.String("company_id", companyID),
		zap.String("user_id", userID),
		zap.String("time", req.Time),
	)

	if _, err := uuid.Parse(companyID); err != nil {
		return TimeEntryResponse{}, timeentryerrors.ErrInvalidCompanyID
	}
	if _, err := uuid.Parse(userID); err != nil {
		return TimeEntryResponse{}, timeentryerrors.ErrInvalidUserID
	}

	clock, _, err := resolveClock(req.Time)
	if err != nil {
		return TimeEntryResponse{}, err
	}
	rounded := workclock.RoundEmployerFavor(clock, false)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("clock out begin tx failed", zap.Error(err))
		return TimeEntryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := lockUserEntries(ctx, tx, userID); err != nil {
		s.logger.Error("clock out user lock failed", zap.Error(err))
		return TimeEntryResponse{}, err
	}

	e, err := qtx.FindOpenEntry(ctx, companyID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TimeEntryResponse{}, timeentryerrors.ErrNoOpenEntry
		}
		return TimeEntryResponse{}, err
	}
	rec := e.Record

	in, err := workclock.ParseClock(e.CheckIn)
	if err != nil {
		return TimeEntryResponse{}, fmt.Errorf("stored check-in %q unreadable: %w", e.CheckIn, err)
	}

	_, breakMin, gross, err := workclock.NetHours(in, rounded, req.BreakOverride)
	if err != nil {
		return TimeEntryResponse{}, mapEngineError(err)
	}
	grossMinutes := int(math.Round(gross * 60))

	existingRows, err := qtx.FindEntriesForUserBetween(ctx, userID, rec.WorkDate, rec.WorkDate)
	if err != nil {
		return TimeEntryResponse{}, err
	}

	candidate := workclock.Entry{
		ID:        e.ID,
		UserID:    rec.UserID,
		CompanyID: rec.CompanyID,
		Date:      rec.WorkDate,
		CheckIn:   in,
		CheckOut:  &rounded,
	}
	if err := workclock.ValidateEntry(candidate, engineEntries(existingRows)); err != nil {
		s.logger.Warn("clock out rejected",
			zap.String("entry_id", e.ID.String()),
			zap.Error(err),
		)
		return TimeEntryResponse{}, mapEngineError(err)
	}

	out := rounded.String()
	e.CheckOut = &out
	e.CheckOutTZ = req.Timezone
	e.GrossMinutes = &grossMinutes
	e.BreakMinutes = &breakMin
	e.BreakOverride = req.BreakOverride
	if req.Notes != nil {
		e.Notes = req.Notes
	}

	if err := qtx.UpdateEntry(ctx, e); err != nil {
		s.logger.Error("clock out persist failed", zap.Error(err))
		return TimeEntryResponse{}, mapRepositoryError(err)
	}

	if err := s.stageEntryEvent(ctx, tx, events.TimeEntryClockedOut, e, rec); err != nil {
		s.logger.Error("clock out stage event failed", zap.Error(err))
		return TimeEntryResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("clock out commit failed", zap.Error(err))
		return TimeEntryResponse{}, err
	}
	s.invalidateSummary(ctx, userID, rec.WorkDate, rec.WorkDate)
	s.logger.Info("clock out success",
		zap.String("entry_id", e.ID.String()),
		zap.Int("gross_minutes", grossMinutes),
		zap.Int("break_minutes", breakMin),
	)

	return mapToResponse(*e), nil
}

func (s *service) CreateLeave(ctx context.Context, companyID, userID string, req CreateLeaveRequest) (TimeEntryResponse, error) {
	s.logger.Debug("create leave requested",
		zap.String("company_id", companyID),
		zap.String("user_id", userID),
		zap.String("date", req.Date),
		zap.Bool("half_day", req.IsHalfDay),
	)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return TimeEntryResponse{}, timeentryerrors.ErrInvalidCompanyID
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return TimeEntryResponse{}, timeentryerrors.ErrInvalidUserID
	}

	startDate, err := parseDate(req.Date)
	if err != nil {
		return TimeEntryResponse{}, err
	}
	var endDate *time.Time
	if req.EndDate != nil && *req.EndDate != "" {
		d, err := parseDate(*req.EndDate)
		if err != nil {
			return TimeEntryResponse{}, err
		}
		endDate = &d
	}

	var halfDay *workclock.Window
	if req.IsHalfDay {
		// Which half a half-day covers is company policy; the caller
		// always spells the window out, it is never inferred here.
		if req.HalfDayStart == nil || req.HalfDayEnd == nil {
			return TimeEntryResponse{}, timeentryerrors.ErrMissingHalfDayWindow
		}
		start, err := parseClockText(*req.HalfDayStart)
		if err != nil {
			return TimeEntryResponse{}, err
		}
		end, err := parseClockText(*req.HalfDayEnd)
		if err != nil {
			return TimeEntryResponse{}, err
		}
		halfDay = &workclock.Window{Start: start, End: end}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create leave begin tx failed", zap.Error(err))
		return TimeEntryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := lockUserEntries(ctx, tx, userID); err != nil {
		s.logger.Error("create leave user lock failed", zap.Error(err))
		return TimeEntryResponse{}, err
	}

	lastDay := startDate
	if endDate != nil {
		lastDay = *endDate
	}
	existingRows, err := qtx.FindEntriesForUserBetween(ctx, userID, startDate, lastDay)
	if err != nil {
		s.logger.Error("create leave load existing entries failed", zap.Error(err))
		return TimeEntryResponse{}, err
	}

	candidate := workclock.Entry{
		UserID:    userUUID,
		CompanyID: companyUUID,
		Date:      startDate,
		EndDate:   endDate,
		IsAllDay:  !req.IsHalfDay,
		IsHalfDay: req.IsHalfDay,
		HalfDay:   halfDay,
	}
	if err := workclock.ValidateEntry(candidate, engineEntries(existingRows)); err != nil {
		s.logger.Warn("create leave rejected",
			zap.String("user_id", userID),
			zap.String("date", req.Date),
			zap.Error(err),
		)
		return TimeEntryResponse{}, mapEngineError(err)
	}

	rec, err := qtx.FindRecord(ctx, companyID, userID, startDate)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return TimeEntryResponse{}, err
		}
		rec = &TimeRecord{
			ID:        uuid.New(),
			CompanyID: companyUUID,
			UserID:    userUUID,
			WorkDate:  startDate,
		}
		if err := qtx.CreateRecord(ctx, rec); err != nil {
			return TimeEntryResponse{}, mapRepositoryError(err)
		}
	}

	seqNum, err := s.seq.NextSequence(ctx, rec.ID.String())
	if err != nil {
		return TimeEntryResponse{}, err
	}

	e := &TimeEntry{
		ID:        uuid.New(),
		RecordID:  rec.ID,
		Sequence:  seqNum,
		EntryType: entryTypeLeave,
		EndDate:   endDate,
		IsAllDay:  !req.IsHalfDay,
		IsHalfDay: req.IsHalfDay,
		Source:    sourceManual,
		Notes:     req.Notes,
	}
	if req.IsHalfDay {
		e.CheckIn = halfDay.Start.String()
		out := halfDay.End.String()
		e.CheckOut = &out
		e.HalfDayStart = req.HalfDayStart
		e.HalfDayEnd = req.HalfDayEnd
	} else {
		e.CheckIn = "00:00"
		out := "23:59"
		e.CheckOut = &out
	}

	if err := qtx.CreateEntry(ctx, e); err != nil {
		s.logger.Error("create leave persist failed", zap.Error(err))
		return TimeEntryResponse{}, mapRepositoryError(err)
	}

	if err := s.stageEntryEvent(ctx, tx, events.TimeEntryLeaveBooked, e, rec); err != nil {
		return TimeEntryResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create leave commit failed", zap.Error(err))
		return TimeEntryResponse{}, err
	}
	s.invalidateSummary(ctx, userID, startDate, lastDay)
	s.logger.Info("create leave success",
		zap.String("entry_id", e.ID.String()),
		zap.String("user_id", userID),
		zap.String("date", req.Date),
	)

	e.Record = rec
	return mapToResponse(*e), nil
}

func (s *service) Update(ctx context.Context, companyID, userID, id string, req UpdateTimeEntryRequest) (TimeEntryResponse, error) {
	s.logger.Debug("update entry requested",
		zap.String("entry_id", id),
		zap.String("company_id", companyID),
		zap.String("user_id", userID),
	)

	if _, err := uuid.Parse(companyID); err != nil {
		return TimeEntryResponse{}, timeentryerrors.ErrInvalidCompanyID
	}
	if _, err := uuid.Parse(id); err != nil {
		return TimeEntryResponse{}, timeentryerrors.ErrInvalidEntryID
	}

	in, err := parseClockText(req.CheckIn)
	if err != nil {
		return TimeEntryResponse{}, err
	}
	var outClock *workclock.Clock
	if req.CheckOut != nil && *req.CheckOut != "" {
		c, err := parseClockText(*req.CheckOut)
		if err != nil {
			return TimeEntryResponse{}, err
		}
		outClock = &c
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update entry begin tx failed", zap.Error(err))
		return TimeEntryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e, err := qtx.FindEntryByID(ctx, companyID, id)
	if err != nil {
		return TimeEntryResponse{}, mapRepositoryError(err)
	}
	if e.EntryType != entryTypeWork {
		return TimeEntryResponse{}, timeentryerrors.ErrLeaveNotEditable
	}
	rec := e.Record

	if err := lockUserEntries(ctx, tx, rec.UserID.String()); err != nil {
		s.logger.Error("update entry user lock failed", zap.Error(err))
		return TimeEntryResponse{}, err
	}

	existingRows, err := qtx.FindEntriesForUserBetween(ctx, rec.UserID.String(), rec.WorkDate, rec.WorkDate)
	if err != nil {
		return TimeEntryResponse{}, err
	}

	candidate := workclock.Entry{
		ID:        e.ID,
		UserID:    rec.UserID,
		CompanyID: rec.CompanyID,
		Date:      rec.WorkDate,
		CheckIn:   in,
		CheckOut:  outClock,
	}
	if err := workclock.ValidateEntry(candidate, engineEntries(existingRows)); err != nil {
		s.logger.Warn("update entry rejected",
			zap.String("entry_id", id),
			zap.Error(err),
		)
		return TimeEntryResponse{}, mapEngineError(err)
	}

	e.CheckIn = in.String()
	if outClock != nil {
		_, breakMin, gross, err := workclock.NetHours(in, *outClock, req.BreakOverride)
		if err != nil {
			return TimeEntryResponse{}, mapEngineError(err)
		}
		grossMinutes := int(math.Round(gross * 60))
		out := outClock.String()
		e.CheckOut = &out
		e.GrossMinutes = &grossMinutes
		e.BreakMinutes = &breakMin
		e.BreakOverride = req.BreakOverride
	} else {
		// correction reopened the entry
		e.CheckOut = nil
		e.GrossMinutes = nil
		e.BreakMinutes = nil
		e.BreakOverride = nil
	}
	if req.Notes != nil {
		e.Notes = req.Notes
	}

	if err := qtx.UpdateEntry(ctx, e); err != nil {
		s.logger.Error("update entry persist failed",
			zap.String("entry_id", id),
			zap.Error(err),
		)
		return TimeEntryResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update entry commit failed",
			zap.String("entry_id", id),
			zap.Error(err),
		)
		return TimeEntryResponse{}, err
	}
	s.invalidateSummary(ctx, rec.UserID.String(), rec.WorkDate, rec.WorkDate)
	s.logger.Info("update entry success", zap.String("entry_id", id))

	return mapToResponse(*e), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e, err := qtx.FindEntryByID(ctx, companyID, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	rec := e.Record

	if err := lockUserEntries(ctx, tx, rec.UserID.String()); err != nil {
		return err
	}

	if err := qtx.DeleteEntry(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	lastDay := rec.WorkDate
	if e.EndDate != nil {
		lastDay = *e.EndDate
	}
	s.invalidateSummary(ctx, rec.UserID.String(), rec.WorkDate, lastDay)
	return nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (TimeEntryResponse, error) {
	e, err := s.repo.FindEntryByID(ctx, companyID, id)
	if err != nil {
		return TimeEntryResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*e), nil
}

func (s *service) GetAll(ctx context.Context, companyID, actorID string, canReadAll bool) ([]TimeEntryResponse, error) {
	var (
		rows []TimeEntry
		err  error
	)
	if canReadAll {
		rows, err = s.repo.FindAllByCompany(ctx, companyID)
	} else {
		if _, parseErr := uuid.Parse(actorID); parseErr != nil {
			return nil, timeentryerrors.ErrInvalidUserID
		}
		rows, err = s.repo.FindAllByCompanyAndUser(ctx, companyID, actorID)
	}
	if err != nil {
		return nil, err
	}
	res := make([]TimeEntryResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) DaySummary(ctx context.Context, userID, date string) (DaySummaryResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return DaySummaryResponse{}, timeentryerrors.ErrInvalidUserID
	}
	day, err := parseDate(date)
	if err != nil {
		return DaySummaryResponse{}, err
	}

	cacheKey := daySummaryKey(userID, day)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var resp DaySummaryResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	// singleflight collapses concurrent cache misses into one query
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		rows, err := s.repo.FindEntriesForUserBetween(ctx, userID, day, day)
		if err != nil {
			return nil, err
		}

		resp := buildDaySummary(userID, day, rows)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, summaryCacheTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		return DaySummaryResponse{}, err
	}
	return v.(DaySummaryResponse), nil
}

func buildDaySummary(userID string, day time.Time, rows []TimeEntry) DaySummaryResponse {
	resp := DaySummaryResponse{
		UserID:    userID,
		WorkDate:  day.Format("2006-01-02"),
		Companies: []CompanyDaySummary{},
	}

	index := map[string]int{}
	for _, e := range rows {
		if e.Record == nil {
			continue
		}
		companyID := e.Record.CompanyID.String()
		i, ok := index[companyID]
		if !ok {
			i = len(resp.Companies)
			index[companyID] = i
			resp.Companies = append(resp.Companies, CompanyDaySummary{CompanyID: companyID})
		}
		resp.Companies[i].Entries++

		if e.EntryType == entryTypeWork && e.CheckOut == nil {
			resp.OpenEntries++
			continue
		}
		if e.GrossMinutes == nil {
			continue
		}
		breakMin := 0
		if e.BreakMinutes != nil {
			breakMin = *e.BreakMinutes
		}
		gross := float64(*e.GrossMinutes) / 60
		net := gross - float64(breakMin)/60

		resp.Companies[i].GrossHours += gross
		resp.Companies[i].BreakMinutes += breakMin
		resp.Companies[i].NetHours += net
		resp.TotalGrossHours += gross
		resp.TotalBreakMinutes += breakMin
		resp.TotalNetHours += net
	}
	return resp
}

func (s *service) invalidateSummary(ctx context.Context, userID string, from, to time.Time) {
	if s.rdb == nil {
		return
	}
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		key := daySummaryKey(userID, day)
		if err := s.rdb.Del(ctx, key).Err(); err != nil {
			s.logger.Warn("invalidate summary cache failed", zap.String("key", key), zap.Error(err))
		}
	}
}

func (s *service) stageEntryEvent(ctx context.Context, tx *sql.Tx, eventType string, e *TimeEntry, rec *TimeRecord) error {
	if s.outbox == nil {
		return nil
	}

	payload, err := json.Marshal(events.TimeEntryRecordedEvent{
		EventType:    eventType,
		EntryID:      e.ID.String(),
		RecordID:     rec.ID.String(),
		UserID:       rec.UserID.String(),
		CompanyID:    rec.CompanyID.String(),
		WorkDate:     rec.WorkDate.Format("2006-01-02"),
		GrossMinutes: e.GrossMinutes,
		OccurredAt:   time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "time_entry",
		AggregateID:   e.ID.String(),
		EventType:     eventType,
		Topic:         events.TimeEntryLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

// lockUserEntries takes a per-user advisory lock for the rest of the
// transaction, serializing fetch-validate-write sequences so two
// concurrent submissions for the same user cannot both pass
// validation and then both commit overlapping entries.
func lockUserEntries(ctx context.Context, tx *sql.Tx, userID string) error {
	_, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", userID)
	return err
}

// resolveClock parses HH:MM request text, or falls back to the server
// clock, and returns the UTC work date alongside.
func resolveClock(v string) (workclock.Clock, time.Time, error) {
	now := time.Now().UTC()
	workDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if v == "" {
		return workclock.NewClock(now.Hour(), now.Minute()), workDate, nil
	}
	c, err := parseClockText(v)
	if err != nil {
		return workclock.Clock{}, time.Time{}, err
	}
	return c, workDate, nil
}

func parseClockText(v string) (workclock.Clock, error) {
	c, err := workclock.ParseClock(v)
	if err != nil {
		return workclock.Clock{}, timeentryerrors.ErrInvalidTimeFormat
	}
	return c, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, timeentryerrors.ErrInvalidDateFormat
	}
	return t, nil
}

// engineEntries converts stored rows into the validation engine's
// shape. Rows whose clock text cannot be parsed were valid when
// written; they are skipped rather than blocking the candidate.
func engineEntries(rows []TimeEntry) []workclock.Entry {
	out := make([]workclock.Entry, 0, len(rows))
	for _, e := range rows {
		if e.Record == nil {
			continue
		}
		in, err := workclock.ParseClock(e.CheckIn)
		if err != nil {
			continue
		}
		entry := workclock.Entry{
			ID:        e.ID,
			UserID:    e.Record.UserID,
			CompanyID: e.Record.CompanyID,
			Sequence:  e.Sequence,
			Date:      e.Record.WorkDate,
			EndDate:   e.EndDate,
			CheckIn:   in,
			IsAllDay:  e.IsAllDay,
			IsHalfDay: e.IsHalfDay,
		}
		if e.CheckOut != nil {
			if co, err := workclock.ParseClock(*e.CheckOut); err == nil {
				entry.CheckOut = &co
			}
		}
		if e.IsHalfDay && e.HalfDayStart != nil && e.HalfDayEnd != nil {
			start, errStart := workclock.ParseClock(*e.HalfDayStart)
			end, errEnd := workclock.ParseClock(*e.HalfDayEnd)
			if errStart == nil && errEnd == nil {
				entry.HalfDay = &workclock.Window{Start: start, End: end}
			}
		}
		out = append(out, entry)
	}
	return out
}

func mapToResponse(e TimeEntry) TimeEntryResponse {
	resp := TimeEntryResponse{
		ID:           e.ID.String(),
		RecordID:     e.RecordID.String(),
		Sequence:     e.Sequence,
		EntryType:    e.EntryType,
		CheckIn:      e.CheckIn,
		CheckInTZ:    e.CheckInTZ,
		CheckOut:     e.CheckOut,
		CheckOutTZ:   e.CheckOutTZ,
		GrossMinutes: e.GrossMinutes,
		BreakMinutes: e.BreakMinutes,
		IsAllDay:     e.IsAllDay,
		IsHalfDay:    e.IsHalfDay,
		HalfDayStart: e.HalfDayStart,
		HalfDayEnd:   e.HalfDayEnd,
		Source:       e.Source,
		Notes:        e.Notes,
	}
	if e.Record != nil {
		resp.CompanyID = e.Record.CompanyID.String()
		resp.UserID = e.Record.UserID.String()
		resp.WorkDate = e.Record.WorkDate.Format("2006-01-02")
	}
	if e.EndDate != nil {
		v := e.EndDate.Format("2006-01-02")
		resp.EndDate = &v
	}
	if e.GrossMinutes != nil {
		gross := float64(*e.GrossMinutes) / 60
		breakMin := 0
		if e.BreakMinutes != nil {
			breakMin = *e.BreakMinutes
		}
		net := gross - float64(breakMin)/60
		resp.GrossHours = &gross
		resp.NetHours = &net
	}
	return resp
}
