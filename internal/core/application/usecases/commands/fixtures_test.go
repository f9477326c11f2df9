package commands_test

import (
	"testing"
	"time"

	"shopadmin/internal/core/domain/model/kernel"
	"shopadmin/internal/core/domain/model/order"
	"shopadmin/internal/core/domain/model/product"
	"shopadmin/internal/core/domain/model/user"

	"github.com/stretchr/testify/require"
)

func codMethod(t *testing.T) order.PaymentMethod {
	t.Helper()
	method, err := order.NewPaymentMethod(1, "COD")
	require.NoError(t, err)
	return method
}

func bankMethod(t *testing.T) order.PaymentMethod {
	t.Helper()
	method, err := order.NewPaymentMethod(2, "Bank transfer")
	require.NoError(t, err)
	return method
}

func testItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), 2, 45000)
	require.NoError(t, err)
	return []order.Item{item}
}

// orderAt restores an order in the given state for handler tests.
func orderAt(
	t *testing.T,
	status order.Status,
	method order.PaymentMethod,
	paymentStatus order.PaymentStatus,
	shipperID *kernel.UUID,
) *order.Order {
	t.Helper()
	ord, err := order.RestoreOrder(
		kernel.NewUUID(),
		"Nguyen Van A",
		testItems(t),
		status,
		shipperID,
		method,
		paymentStatus,
		nil,
		time.Now().UTC().Add(-time.Hour),
	)
	require.NoError(t, err)
	return ord
}

func testProduct(t *testing.T, stock int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), "Eau de Parfum 50ml", "Maison Test", "", 45000, stock)
	require.NoError(t, err)
	return p
}

func testShipper(t *testing.T) *user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), "shipper@example.com", "Shipper One", "hash", user.RoleShipper)
	require.NoError(t, err)
	return u
}
