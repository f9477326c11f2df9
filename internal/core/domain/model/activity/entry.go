// Package activity contains the admin activity log entry: an immutable
// record of who did what to which entity, written in the same transaction
// as the mutation it describes.
package activity

import (
	"errors"
	"time"

	"shopadmin/internal/core/domain/model/kernel"
	"shopadmin/internal/pkg/errs"
)

// ErrEntryIsNotConstructed is returned when an Entry was not created through
// NewEntry or RestoreEntry.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry")

// Action names for the operations the admin panel records.
const (
	ActionOrderStatusChanged  = "order.status_changed"
	ActionOrderCancelled      = "order.cancelled"
	ActionOrderShipperChanged = "order.shipper_changed"
	ActionOrderCodConfirmed   = "order.cod_confirmed"
	ActionProductCreated      = "product.created"
	ActionProductUpdated      = "product.updated"
	ActionProductStockAdjust  = "product.stock_adjusted"
	ActionProductDeactivated  = "product.deactivated"
	ActionUserCreated         = "user.created"
	ActionUserRoleChanged     = "user.role_changed"
	ActionUserBlocked         = "user.blocked"
	ActionUserUnblocked       = "user.unblocked"
)

// Entry is one admin activity log record.
type Entry struct {
	id         kernel.UUID
	actorID    kernel.UUID
	action     string
	entityType string
	entityID   string
	detail     string
	createdAt  time.Time

	isConstructed bool
}

// NewEntry creates an activity log entry timestamped now.
func NewEntry(actorID kernel.UUID, action, entityType, entityID, detail string) (*Entry, error) {
	if err := actorID.Validate(); err != nil {
		return nil, err
	}
	if action == "" {
		return nil, errs.NewValueIsRequiredError("action")
	}
	if entityType == "" {
		return nil, errs.NewValueIsRequiredError("entity type")
	}

	return &Entry{
		id:            kernel.NewUUID(),
		actorID:       actorID,
		action:        action,
		entityType:    entityType,
		entityID:      entityID,
		detail:        detail,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreEntry reconstructs an entry from persistence.
func RestoreEntry(
	id kernel.UUID,
	actorID kernel.UUID,
	action, entityType, entityID, detail string,
	createdAt time.Time,
) (*Entry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := actorID.Validate(); err != nil {
		return nil, err
	}

	return &Entry{
		id:            id,
		actorID:       actorID,
		action:        action,
		entityType:    entityType,
		entityID:      entityID,
		detail:        detail,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Entry was properly constructed.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry identifier.
func (e *Entry) ID() kernel.UUID { return e.id }

// ActorID returns the admin user who performed the action.
func (e *Entry) ActorID() kernel.UUID { return e.actorID }

// Action returns the recorded action name.
func (e *Entry) Action() string { return e.action }

// EntityType returns the type of the affected entity.
func (e *Entry) EntityType() string { return e.entityType }

// EntityID returns the identifier of the affected entity.
func (e *Entry) EntityID() string { return e.entityID }

// Detail returns the human-readable detail line.
func (e *Entry) Detail() string { return e.detail }

// CreatedAt returns the entry timestamp.
func (e *Entry) CreatedAt() time.Time { return e.createdAt }
