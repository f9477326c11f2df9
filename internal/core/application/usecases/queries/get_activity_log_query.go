package queries

import (
	"errors"
	"time"

	"shopadmin/internal/core/domain/model/kernel"
	"shopadmin/internal/pkg/guard"
)

var (
	ErrGetActivityLogQueryIsNotConstructed = errors.New(
		"GetActivityLogQuery must be created via NewGetActivityLogQuery constructor",
	)
)

// GetActivityLogQuery retrieves a page of the admin activity log,
// optionally filtered by actor and action name.
type GetActivityLogQuery struct {
	actorID *kernel.UUID
	action  string
	limit   int
	offset  int

	guard guard.ConstructorGuard
}

// NewGetActivityLogQuery creates an activity log query. A nil actor and an
// empty action mean no filter.
func NewGetActivityLogQuery(
	actorID *kernel.UUID,
	action string,
	limit, offset int,
) (GetActivityLogQuery, error) {
	if actorID != nil {
		if err := actorID.Validate(); err != nil {
			return GetActivityLogQuery{}, err
		}
	}

	return GetActivityLogQuery{
		actorID: actorID,
		action:  action,
		limit:   clampLimit(limit),
		offset:  max(offset, 0),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActivityLogQuery) Validate() error {
	return q.guard.Validate(ErrGetActivityLogQueryIsNotConstructed)
}

// ActorID returns the optional actor filter.
func (q GetActivityLogQuery) ActorID() *kernel.UUID { return q.actorID }

// Action returns the optional action filter, empty for none.
func (q GetActivityLogQuery) Action() string { return q.action }

// Limit returns the page size.
func (q GetActivityLogQuery) Limit() int { return q.limit }

// Offset returns the page offset.
func (q GetActivityLogQuery) Offset() int { return q.offset }

// GetActivityLogQueryResponse is one activity log row, with the actor's
// name resolved for display.
type GetActivityLogQueryResponse struct {
	ID         kernel.UUID
	ActorID    kernel.UUID
	ActorName  string
	Action     string
	EntityType string
	EntityID   string
	Detail     string
	CreatedAt  time.Time
}
