package user_test

import (
	"testing"

	"shopadmin/internal/core/domain/model/kernel"
	"shopadmin/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(t *testing.T, role user.Role) *user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), "shipper@example.com", "Trần Văn B", "$2a$12$hash", role)
	require.NoError(t, err)
	return u
}

func TestNewUser(t *testing.T) {
	t.Run("creates unblocked user", func(t *testing.T) {
		u := newTestUser(t, user.RoleStaff)

		assert.False(t, u.IsBlocked())
		assert.Equal(t, user.RoleStaff, u.Role())
	})

	t.Run("normalizes email", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), "  Admin@Example.COM ", "Admin", "hash", user.RoleAdmin)

		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", u.Email())
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "not-an-email", "Admin", "hash", user.RoleAdmin)
		require.Error(t, err)
	})

	t.Run("rejects empty password hash", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "a@b.com", "Admin", "", user.RoleAdmin)
		require.Error(t, err)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "a@b.com", "Admin", "hash", user.Role("superuser"))
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var u user.User
		require.ErrorIs(t, u.Validate(), user.ErrUserIsNotConstructed)
	})
}

func TestRole(t *testing.T) {
	t.Run("admin panel access", func(t *testing.T) {
		assert.True(t, user.RoleAdmin.CanAccessAdminPanel())
		assert.True(t, user.RoleStaff.CanAccessAdminPanel())
		assert.True(t, user.RoleShipper.CanAccessAdminPanel())
		assert.False(t, user.RoleCustomer.CanAccessAdminPanel())
	})

	t.Run("validation", func(t *testing.T) {
		for _, r := range []user.Role{user.RoleAdmin, user.RoleStaff, user.RoleShipper, user.RoleCustomer} {
			require.NoError(t, r.Validate())
		}
		require.Error(t, user.Role("").Validate())
	})
}

func TestUser_RoleAndBlocking(t *testing.T) {
	t.Run("changes role", func(t *testing.T) {
		u := newTestUser(t, user.RoleCustomer)

		require.NoError(t, u.ChangeRole(user.RoleShipper))
		assert.Equal(t, user.RoleShipper, u.Role())
	})

	t.Run("rejects invalid role change", func(t *testing.T) {
		u := newTestUser(t, user.RoleStaff)

		require.Error(t, u.ChangeRole(user.Role("root")))
		assert.Equal(t, user.RoleStaff, u.Role())
	})

	t.Run("block and unblock", func(t *testing.T) {
		u := newTestUser(t, user.RoleShipper)

		u.Block()
		assert.True(t, u.IsBlocked())

		u.Unblock()
		assert.False(t, u.IsBlocked())
	})
}

func TestUser_CanBeAssignedAsShipper(t *testing.T) {
	t.Run("unblocked shipper can be assigned", func(t *testing.T) {
		u := newTestUser(t, user.RoleShipper)
		assert.True(t, u.CanBeAssignedAsShipper())
	})

	t.Run("blocked shipper cannot be assigned", func(t *testing.T) {
		u := newTestUser(t, user.RoleShipper)
		u.Block()
		assert.False(t, u.CanBeAssignedAsShipper())
	})

	t.Run("non-shipper roles cannot be assigned", func(t *testing.T) {
		for _, role := range []user.Role{user.RoleAdmin, user.RoleStaff, user.RoleCustomer} {
			u := newTestUser(t, role)
			assert.False(t, u.CanBeAssignedAsShipper(), "%s", role)
		}
	})
}
