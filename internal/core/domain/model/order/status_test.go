package order_test

import (
	"fmt"
	"testing"

	"shopadmin/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []order.Status {
	return []order.Status{
		order.Pending,
		order.Confirmed,
		order.Processing,
		order.Shipping,
		order.Delivered,
		order.Completed,
		order.Cancelled,
	}
}

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 2, int(order.Confirmed))
		assert.Equal(t, 3, int(order.Processing))
		assert.Equal(t, 4, int(order.Shipping))
		assert.Equal(t, 5, int(order.Delivered))
		assert.Equal(t, 6, int(order.Completed))
		assert.Equal(t, 7, int(order.Cancelled))
	})

	t.Run("should have distinct values", func(t *testing.T) {
		statuses := allStatuses()
		for i, status1 := range statuses {
			for j, status2 := range statuses {
				if i != j {
					assert.NotEqual(t, status1, status2)
				}
			}
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		for _, status := range allStatuses() {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
	})

	t.Run("should reject out of range status", func(t *testing.T) {
		require.Error(t, order.Status(42).Validate())
	})
}

func TestStatus_Names(t *testing.T) {
	t.Run("code names", func(t *testing.T) {
		assert.Equal(t, "Pending", order.Pending.String())
		assert.Equal(t, "Cancelled", order.Cancelled.String())
		assert.Equal(t, "Unknown", order.Status(42).String())
	})

	t.Run("display names", func(t *testing.T) {
		assert.Equal(t, "Chờ xác nhận", order.Pending.DisplayName())
		assert.Equal(t, "Đã xác nhận", order.Confirmed.DisplayName())
		assert.Equal(t, "Đang xử lý", order.Processing.DisplayName())
		assert.Equal(t, "Đang giao", order.Shipping.DisplayName())
		assert.Equal(t, "Đã giao", order.Delivered.DisplayName())
		assert.Equal(t, "Đã hoàn thành", order.Completed.DisplayName())
		assert.Equal(t, "Đã hủy", order.Cancelled.DisplayName())
	})
}

func TestStatusFromName(t *testing.T) {
	t.Run("resolves code names", func(t *testing.T) {
		for _, status := range allStatuses() {
			got, err := order.StatusFromName(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, got)
		}
	})

	t.Run("resolves display names", func(t *testing.T) {
		for _, status := range allStatuses() {
			got, err := order.StatusFromName(status.DisplayName())
			require.NoError(t, err)
			assert.Equal(t, status, got)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := order.StatusFromName("Nonexistent")
		require.Error(t, err)
	})
}

func TestStatus_TransitionTable(t *testing.T) {
	allowedEdges := map[order.Status][]order.Status{
		order.Pending:    {order.Confirmed, order.Cancelled},
		order.Confirmed:  {order.Processing, order.Shipping, order.Cancelled},
		order.Processing: {order.Shipping, order.Cancelled},
		order.Shipping:   {order.Delivered},
		order.Delivered:  {order.Completed},
		order.Completed:  {},
		order.Cancelled:  {},
	}

	t.Run("table contains exactly the allowed edges", func(t *testing.T) {
		for _, from := range allStatuses() {
			expected := allowedEdges[from]
			for _, to := range allStatuses() {
				shouldAllow := false
				for _, e := range expected {
					if e == to {
						shouldAllow = true
					}
				}
				assert.Equal(t, shouldAllow, from.CanTransitionTo(to),
					"edge %s -> %s", from, to)
			}
		}
	})

	t.Run("terminal states have no outgoing edges", func(t *testing.T) {
		assert.True(t, order.Completed.IsTerminal())
		assert.True(t, order.Cancelled.IsTerminal())
		assert.Empty(t, order.Completed.NextStatuses())
		assert.Empty(t, order.Cancelled.NextStatuses())
	})

	t.Run("completed order can never be cancelled", func(t *testing.T) {
		assert.False(t, order.Completed.CanTransitionTo(order.Cancelled))
	})

	t.Run("non-terminal states are not terminal", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Confirmed, order.Processing, order.Shipping, order.Delivered,
		} {
			assert.False(t, s.IsTerminal(), "%s", s)
		}
	})

	t.Run("NextStatuses matches CanTransitionTo", func(t *testing.T) {
		for _, from := range allStatuses() {
			for _, to := range from.NextStatuses() {
				assert.True(t, from.CanTransitionTo(to))
			}
		}
	})
}
