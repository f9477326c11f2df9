package queries

import (
	"context"
	"time"

	"shopadmin/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActivityLogQueryHandler retrieves the paginated activity log,
// newest entries first, with actor names resolved.
type GetActivityLogQueryHandler struct {
	db *gorm.DB
}

// NewGetActivityLogQueryHandler creates a handler for activity log queries.
func NewGetActivityLogQueryHandler(db *gorm.DB) GetActivityLogQueryHandler {
	return GetActivityLogQueryHandler{db: db}
}

// Handle executes the activity log query.
func (h GetActivityLogQueryHandler) Handle(
	ctx context.Context,
	query GetActivityLogQuery,
) ([]GetActivityLogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var actorFilter uuid.UUID
	if query.ActorID() != nil {
		actorFilter = query.ActorID().Bytes()
	}

	entries := make([]GetActivityLogQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			a.actor_id,
			COALESCE(u.name, '') AS actor_name,
			a.action,
			a.entity_type,
			a.entity_id,
			a.detail,
			a.created_at
		FROM activity_log a
		LEFT JOIN users u ON u.id = a.actor_id
		WHERE (? OR a.actor_id = ?)
		  AND (? = '' OR a.action = ?)
		ORDER BY a.created_at DESC
		LIMIT ? OFFSET ?
	`, query.ActorID() == nil, actorFilter,
		query.Action(), query.Action(),
		query.Limit(), query.Offset()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActivityLogQueryResponse
		var id, actorID uuid.UUID
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&actorID,
			&resp.ActorName,
			&resp.Action,
			&resp.EntityType,
			&resp.EntityID,
			&resp.Detail,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = entryID

		actor, actorErr := kernel.UUIDFromBytes(actorID[:])
		if actorErr != nil {
			return nil, actorErr
		}
		resp.ActorID = actor
		resp.CreatedAt = createdAt

		entries = append(entries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
