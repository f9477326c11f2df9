package queries

import (
	"errors"

	"shopadmin/internal/core/domain/model/kernel"
	"shopadmin/internal/core/domain/model/user"
	"shopadmin/internal/pkg/guard"
)

var (
	ErrGetUsersQueryIsNotConstructed = errors.New(
		"GetUsersQuery must be created via NewGetUsersQuery constructor",
	)
)

// GetUsersQuery retrieves a page of user accounts, optionally filtered
// by role.
type GetUsersQuery struct {
	role   *user.Role
	limit  int
	offset int

	guard guard.ConstructorGuard
}

// NewGetUsersQuery creates a user list query. A nil role means no filter.
func NewGetUsersQuery(role *user.Role, limit, offset int) (GetUsersQuery, error) {
	if role != nil {
		if err := role.Validate(); err != nil {
			return GetUsersQuery{}, err
		}
	}

	return GetUsersQuery{
		role:   role,
		limit:  clampLimit(limit),
		offset: max(offset, 0),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUsersQuery) Validate() error {
	return q.guard.Validate(ErrGetUsersQueryIsNotConstructed)
}

// Role returns the optional role filter.
func (q GetUsersQuery) Role() *user.Role { return q.role }

// Limit returns the page size.
func (q GetUsersQuery) Limit() int { return q.limit }

// Offset returns the page offset.
func (q GetUsersQuery) Offset() int { return q.offset }

// GetUsersQueryResponse is one row of the admin user list.
type GetUsersQueryResponse struct {
	ID      kernel.UUID
	Email   string
	Name    string
	Role    string
	Blocked bool
}
