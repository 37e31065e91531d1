package timeentry

import (
	"context"
	"database/sql"
	"time"

	"go-worktime/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=timeentry_repo.go -destination=mock/timeentry_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateRecord(ctx context.Context, rec *TimeRecord) error
	FindRecord(ctx context.Context, companyID, userID string, date time.Time) (*TimeRecord, error)
	CreateEntry(ctx context.Context, e *TimeEntry) error
	UpdateEntry(ctx context.Context, e *TimeEntry) error
	DeleteEntry(ctx context.Context, companyID, id string) error
	FindEntryByID(ctx context.Context, companyID, id string) (*TimeEntry, error)
	FindOpenEntry(ctx context.Context, companyID, userID string) (*TimeEntry, error)
	FindEntriesForUserBetween(ctx context.Context, userID string, from, to time.Time) ([]TimeEntry, error)
	FindAllByCompany(ctx context.Context, companyID string) ([]TimeEntry, error)
	FindAllByCompanyAndUser(ctx context.Context, companyID, userID string) ([]TimeEntry, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) CreateRecord(ctx context.Context, rec *TimeRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) FindRecord(ctx context.Context, companyID, userID string, date time.Time) (*TimeRecord, error) {
	var rec TimeRecord
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("user_id = ?", userID).
		Where("work_date = ?", date.Format("2006-01-02")).
		First(&rec).Error
	return &rec, err
}

func (r *repository) CreateEntry(ctx context.Context, e *TimeEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) UpdateEntry(ctx context.Context, e *TimeEntry) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) DeleteEntry(ctx context.Context, companyID, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Where("record_id IN (?)",
			r.db.Model(&TimeRecord{}).Select("id").Scopes(tenant.Scope(companyID)),
		).
		Delete(&TimeEntry{}).Error
}

func (r *repository) FindEntryByID(ctx context.Context, companyID, id string) (*TimeEntry, error) {
	var e TimeEntry
	err := r.db.WithContext(ctx).
		Joins("JOIN time_records ON time_records.id = time_entries.record_id").
		Where("time_entries.id = ?", id).
		Scopes(tenant.ScopeTable("time_records", companyID)).
		Preload("Record").
		First(&e).Error
	return &e, err
}

// FindOpenEntry returns the most recent entry without a check-out for
// the user at one company. Ordered by work date so an overnight shift
// started yesterday is still found this morning.
func (r *repository) FindOpenEntry(ctx context.Context, companyID, userID string) (*TimeEntry, error) {
	var e TimeEntry
	err := r.db.WithContext(ctx).
		Joins("JOIN time_records ON time_records.id = time_entries.record_id").
		Scopes(tenant.ScopeTable("time_records", companyID)).
		Where("time_records.user_id = ?", userID).
		Where("time_entries.entry_type = ?", entryTypeWork).
		Where("time_entries.check_out IS NULL").
		Where("time_records.deleted_at IS NULL").
		Order("time_records.work_date DESC, time_entries.sequence DESC").
		Preload("Record").
		First(&e).Error
	return &e, err
}

// FindEntriesForUserBetween loads every entry of the user whose day
// span intersects [from, to], across ALL companies. This is the
// visibility window conflict validation runs against.
func (r *repository) FindEntriesForUserBetween(ctx context.Context, userID string, from, to time.Time) ([]TimeEntry, error) {
	var rows []TimeEntry
	err := r.db.WithContext(ctx).
		Joins("JOIN time_records ON time_records.id = time_entries.record_id").
		Where("time_records.user_id = ?", userID).
		Where("time_records.deleted_at IS NULL").
		Where("time_records.work_date <= ? AND COALESCE(time_entries.end_date, time_records.work_date) >= ?",
			to.Format("2006-01-02"), from.Format("2006-01-02")).
		Preload("Record").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]TimeEntry, error) {
	var rows []TimeEntry
	err := r.db.WithContext(ctx).
		Joins("JOIN time_records ON time_records.id = time_entries.record_id").
		Scopes(tenant.ScopeTable("time_records", companyID)).
		Order("time_records.work_date DESC, time_entries.sequence ASC").
		Preload("Record").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByCompanyAndUser(ctx context.Context, companyID, userID string) ([]TimeEntry, error) {
	var rows []TimeEntry
	err := r.db.WithContext(ctx).
		Joins("JOIN time_records ON time_records.id = time_entries.record_id").
		Scopes(tenant.ScopeTable("time_records", companyID)).
		Where("time_records.user_id = ?", userID).
		Order("time_records.work_date DESC, time_entries.sequence ASC").
		Preload("Record").
		Find(&rows).Error
	return rows, err
}
