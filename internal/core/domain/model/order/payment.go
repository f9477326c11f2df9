package order

import (
	"fmt"
	"strings"

	"shopadmin/internal/pkg/errs"
)

// PaymentStatus represents the settlement state of an order's payment.
// Values match the strings persisted in the payment_status column.
type PaymentStatus string

const (
	// PaymentPending means no payment has been received yet.
	PaymentPending PaymentStatus = "Pending"

	// PaymentPaid means the payment has been settled.
	PaymentPaid PaymentStatus = "Paid"

	// PaymentFailed means a payment attempt failed.
	PaymentFailed PaymentStatus = "Failed"
)

// Validate checks if the PaymentStatus value is one of the known states.
func (p PaymentStatus) Validate() error {
	switch p {
	case PaymentPending, PaymentPaid, PaymentFailed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status is invalid",
			fmt.Errorf("%q is not a valid payment status", string(p)),
		)
	}
}

// PaymentMethod is a value object describing how an order is paid.
// The method catalog lives in the payment_methods table; the aggregate only
// needs the identifier and the display name.
type PaymentMethod struct {
	id   int
	name string
}

// NewPaymentMethod creates a payment method reference.
// The id must be positive and the name non-empty.
func NewPaymentMethod(id int, name string) (PaymentMethod, error) {
	if id <= 0 {
		return PaymentMethod{}, errs.NewValueIsInvalidErrorWithCause(
			"payment method id",
			fmt.Errorf("%d is not a valid payment method id", id),
		)
	}
	if name == "" {
		return PaymentMethod{}, errs.NewValueIsRequiredError("payment method name")
	}

	return PaymentMethod{id: id, name: name}, nil
}

// ID returns the payment method identifier.
func (m PaymentMethod) ID() int {
	return m.id
}

// Name returns the payment method display name.
func (m PaymentMethod) Name() string {
	return m.name
}

// IsCod reports whether the method is cash-on-delivery.
// Detection is by name so renamed or re-seeded COD rows keep working,
// matching how the storefront identifies the method.
func (m PaymentMethod) IsCod() bool {
	return strings.Contains(strings.ToLower(m.name), "cod")
}

// Validate checks that the payment method was properly constructed.
func (m PaymentMethod) Validate() error {
	if m.id <= 0 || m.name == "" {
		return errs.NewValueIsRequiredError("payment method must be created via NewPaymentMethod")
	}
	return nil
}
