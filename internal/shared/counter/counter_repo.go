package counter

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock/counter_repo_mock.go -package=mock . Repository
type Repository interface {
	NextSequence(ctx context.Context, recordID string) (int, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// NextSequence hands out the next entry sequence for a daily record.
// Raw SQL with an atomic UPSERT so two concurrent punches for the same
// record never receive the same number.
func (r *repository) NextSequence(ctx context.Context, recordID string) (int, error) {
	var nextValue int

	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO time_record_counters (record_id, last_value, updated_at)
		VALUES (?, 1, now())
		ON CONFLICT (record_id) DO UPDATE
		SET last_value = time_record_counters.last_value + 1, updated_at = now()
		RETURNING last_value
	`, recordID).Scan(&nextValue).Error

	if err != nil {
		return 0, err
	}

	return nextValue, nil
}
