package ports

import (
	"context"
	"time"

	"shopadmin/internal/core/domain/model/activity"
)

// ActivityRepository defines the persistence contract for the admin
// activity log. Entries are append-only; the only destructive operation is
// retention pruning.
type ActivityRepository interface {
	// Add persists an activity log entry.
	// Called inside the same transaction as the mutation it records.
	Add(ctx context.Context, entry *activity.Entry) error

	// DeleteOlderThan removes entries created before the cutoff.
	// Returns the number of pruned entries.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
