// Package user contains the user aggregate: admin-panel accounts, their
// roles, and the blocked flag that locks a user out of the platform.
package user

import (
	"errors"
	"fmt"
	"strings"

	"shopadmin/internal/core/domain/model/kernel"
	"shopadmin/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

	// ErrUserBlocked is returned when an operation requires an unblocked user.
	ErrUserBlocked = errors.New("user is blocked")
)

// Role is the permission level of a user account.
type Role string

const (
	// RoleAdmin has full access to the admin panel.
	RoleAdmin Role = "admin"

	// RoleStaff manages orders and products but not users.
	RoleStaff Role = "staff"

	// RoleShipper delivers orders; may only mark their own orders delivered.
	RoleShipper Role = "shipper"

	// RoleCustomer is a storefront account with no admin access.
	RoleCustomer Role = "customer"
)

// Validate checks if the Role value is one of the known roles.
func (r Role) Validate() error {
	switch r {
	case RoleAdmin, RoleStaff, RoleShipper, RoleCustomer:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"role is invalid",
			fmt.Errorf("%q is not a valid role", string(r)),
		)
	}
}

// CanAccessAdminPanel reports whether the role may log in to the admin API.
func (r Role) CanAccessAdminPanel() bool {
	return r == RoleAdmin || r == RoleStaff || r == RoleShipper
}

// User is the aggregate root for a platform account.
//
// Invariants:
//   - Must have a valid identifier, email, name, and password hash
//   - Role is one of the known roles
//   - Blocked users cannot be assigned as shippers or authenticate
type User struct {
	id           kernel.UUID
	email        string
	name         string
	passwordHash string
	role         Role
	blocked      bool

	isConstructed bool
}

// NewUser creates a new unblocked user with validation.
// The password hash must already be computed by the caller; the aggregate
// never sees plaintext credentials.
func NewUser(id kernel.UUID, email, name, passwordHash string, role Role) (*User, error) {
	u := &User{
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setName(name),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a user from persistence.
func RestoreUser(id kernel.UUID, email, name, passwordHash string, role Role, blocked bool) (*User, error) {
	u, err := NewUser(id, email, name, passwordHash, role)
	if err != nil {
		return nil, err
	}
	u.blocked = blocked
	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID { return u.id }

// Email returns the user's email address.
func (u *User) Email() string { return u.email }

// Name returns the user's display name.
func (u *User) Name() string { return u.name }

// PasswordHash returns the stored password hash.
func (u *User) PasswordHash() string { return u.passwordHash }

// Role returns the user's role.
func (u *User) Role() Role { return u.role }

// IsBlocked reports whether the user is locked out.
func (u *User) IsBlocked() bool { return u.blocked }

// ChangeRole updates the user's role.
func (u *User) ChangeRole(role Role) error {
	return u.setRole(role)
}

// Block locks the user out of the platform.
func (u *User) Block() {
	u.blocked = true
}

// Unblock restores a blocked user.
func (u *User) Unblock() {
	u.blocked = false
}

// CanBeAssignedAsShipper reports whether the user may be assigned to
// deliver an order: shipper role and not blocked.
func (u *User) CanBeAssignedAsShipper() bool {
	return u.role == RoleShipper && !u.blocked
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an email address", email))
	}
	u.email = email
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
