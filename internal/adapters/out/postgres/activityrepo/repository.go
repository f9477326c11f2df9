package activityrepo

import (
	"context"
	"time"

	"shopadmin/internal/core/domain/model/activity"
	"shopadmin/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormActivityRepository implements ActivityRepository using GORM.
type GormActivityRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormActivityRepository creates a new GORM activity log repository.
func NewGormActivityRepository(db *gorm.DB, tracker aggregateTracker) *GormActivityRepository {
	return &GormActivityRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves an activity log entry to the database.
func (r *GormActivityRepository) Add(ctx context.Context, entry *activity.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}

// DeleteOlderThan prunes entries created before the cutoff and returns the
// number of deleted rows.
func (r *GormActivityRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&EntryDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
