// Package activityrepo provides data transfer objects and mapping functions
// for the append-only admin activity log.
package activityrepo

import (
	"time"

	"shopadmin/internal/core/domain/model/activity"

	"github.com/google/uuid"
)

// EntryDTO represents the database structure for persisting activity log
// entries.
type EntryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ActorID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Action     string    `gorm:"type:varchar(64);not null;index"`
	EntityType string    `gorm:"type:varchar(32);not null"`
	EntityID   string    `gorm:"type:varchar(64);not null"`
	Detail     string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"not null;index"`
}

// TableName specifies the database table name for activity entries.
func (EntryDTO) TableName() string {
	return "activity_log"
}

// fromDomain converts an activity entry to its database representation.
func fromDomain(entry *activity.Entry) EntryDTO {
	return EntryDTO{
		ID:         entry.ID().Bytes(),
		ActorID:    entry.ActorID().Bytes(),
		Action:     entry.Action(),
		EntityType: entry.EntityType(),
		EntityID:   entry.EntityID(),
		Detail:     entry.Detail(),
		CreatedAt:  entry.CreatedAt(),
	}
}
