package order

import (
	"errors"
	"fmt"
	"time"

	"shopadmin/internal/core/domain/model/kernel"
	"shopadmin/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrCancellationReasonIsRequired is returned when cancelling without a reason.
	ErrCancellationReasonIsRequired = errors.New("cancellation reason is required")

	// ErrShipperChangeNotAllowed is returned when assigning or unassigning a shipper
	// after the order has entered the shipping phase.
	ErrShipperChangeNotAllowed = errors.New("shipper can only be changed before the order is shipping")

	// ErrCodConfirmationNotAllowed is returned when confirming a COD payment for an
	// order that does not satisfy the confirmation gate.
	ErrCodConfirmationNotAllowed = errors.New("COD payment can only be confirmed for a delivered COD order with pending payment")
)

// Item is a line of an order: a product, the quantity ordered, and the unit
// price captured at order time.
type Item struct {
	productID  kernel.UUID
	quantity   int
	priceCents int64
}

// NewItem creates an order line. Quantity must be positive and the captured
// unit price non-negative.
func NewItem(productID kernel.UUID, quantity int, priceCents int64) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if priceCents < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"price is invalid",
			fmt.Errorf("%d is negative", priceCents),
		)
	}

	return Item{productID: productID, quantity: quantity, priceCents: priceCents}, nil
}

// ProductID returns the product the line refers to.
func (i Item) ProductID() kernel.UUID { return i.productID }

// Quantity returns the ordered quantity.
func (i Item) Quantity() int { return i.quantity }

// PriceCents returns the captured unit price in cents.
func (i Item) PriceCents() int64 { return i.priceCents }

// Order is the aggregate root for a customer order as seen by the admin
// backend. It owns the status state machine, the shipper assignment, the
// payment settlement state, and the cancellation metadata.
//
// Invariants:
//   - Must have a valid unique identifier and a non-empty customer name
//   - Must have at least one item
//   - Status transitions follow the adjacency table plus per-edge guards
//   - A shipper may only be set or cleared before the order is shipping
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id                 kernel.UUID
	customerName       string
	items              []Item
	status             Status
	shipperID          *kernel.UUID
	paymentMethod      PaymentMethod
	paymentStatus      PaymentStatus
	cancellationReason *string
	createdAt          time.Time

	isConstructed bool
}

// NewOrder creates a new pending order with validation.
//
// The order starts in Pending status with a Pending payment and no shipper.
func NewOrder(
	id kernel.UUID,
	customerName string,
	items []Item,
	paymentMethod PaymentMethod,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		paymentStatus: PaymentPending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerName(customerName),
		order.setItems(items),
		order.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence.
// All fields are validated; an order whose stored status or payment state is
// unknown fails restoration rather than circulating as a broken aggregate.
func RestoreOrder(
	id kernel.UUID,
	customerName string,
	items []Item,
	status Status,
	shipperID *kernel.UUID,
	paymentMethod PaymentMethod,
	paymentStatus PaymentStatus,
	cancellationReason *string,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		status:             status,
		paymentStatus:      paymentStatus,
		shipperID:          shipperID,
		cancellationReason: cancellationReason,
		createdAt:          createdAt,
		isConstructed:      true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerName(customerName),
		order.setItems(items),
		order.setPaymentMethod(paymentMethod),
		status.Validate(),
		paymentStatus.Validate(),
	); err != nil {
		return nil, err
	}

	if shipperID != nil {
		if err := shipperID.Validate(); err != nil {
			return nil, err
		}
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// CustomerName returns the name the order was placed under.
func (o *Order) CustomerName() string { return o.customerName }

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current status of the order.
func (o *Order) Status() Status { return o.status }

// Shipper returns the assigned shipper's ID, or nil if unassigned.
func (o *Order) Shipper() *kernel.UUID { return o.shipperID }

// PaymentMethod returns the order's payment method.
func (o *Order) PaymentMethod() PaymentMethod { return o.paymentMethod }

// PaymentStatus returns the settlement state of the order's payment.
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }

// CancellationReason returns the recorded cancellation reason, or nil.
func (o *Order) CancellationReason() *string { return o.cancellationReason }

// CreatedAt returns the order's creation time.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// TotalCents returns the order total in cents.
func (o *Order) TotalCents() int64 {
	var total int64
	for _, item := range o.items {
		total += item.priceCents * int64(item.quantity)
	}
	return total
}

// ValidateStatusChange decides whether the order may move to target.
//
// The decision is made in three layers:
//  1. Identity: a no-op change is always valid and silent.
//  2. Graph membership: the adjacency table is the single source of truth
//     for which edges exist; terminal states have no outgoing edges.
//  3. Per-edge guards: shipper assignment and payment settlement rules,
//     plus advisory notes for edges with operational side effects.
//
// The method is pure: it never mutates the order, and the caller decides
// how to present warnings and whether to proceed.
func (o *Order) ValidateStatusChange(target Status) TransitionResult {
	if target == o.status {
		return allowed()
	}

	if o.status.IsTerminal() {
		return rejected(fmt.Sprintf(
			"order is in terminal status %q and cannot change", o.status.DisplayName()))
	}

	if !o.status.CanTransitionTo(target) {
		return rejected(fmt.Sprintf(
			"cannot transition from %q to %q", o.status.DisplayName(), target.DisplayName()))
	}

	switch target {
	case Shipping:
		if o.shipperID == nil {
			return rejected("a shipper must be assigned before the order can be marked as shipping")
		}
		if !o.paymentMethod.IsCod() && o.paymentStatus != PaymentPaid {
			return rejected("non-COD orders must be paid before shipping")
		}
	case Completed:
		if o.paymentStatus != PaymentPaid {
			return rejected("order must be paid before it can be completed")
		}
	case Cancelled:
		if o.paymentStatus == PaymentPaid {
			return allowedWithNote(SeverityWarning,
				"order has already been paid; cancelling it will require a refund")
		}
	case Confirmed:
		if o.status == Pending {
			return allowedWithNote(SeverityInfo,
				"verify stock availability before confirming the order")
		}
	case Delivered:
		return allowedWithNote(SeverityInfo,
			"product stock will be deducted for the delivered items")
	}

	return allowed()
}

// ChangeStatus validates and applies a status transition.
//
// Returns the TransitionResult alongside the error so callers can surface
// the message. Warning-severity results are applied; enforcing caller
// acknowledgment is the application layer's responsibility via
// ValidateStatusChange.
func (o *Order) ChangeStatus(target Status) (TransitionResult, error) {
	if err := target.Validate(); err != nil {
		return rejected(err.Error()), err
	}

	result := o.ValidateStatusChange(target)
	if !result.IsValid {
		return result, errs.NewValueIsInvalidErrorWithCause("status transition", errors.New(result.Message))
	}

	o.status = target
	return result, nil
}

// Cancel transitions the order to Cancelled and records the reason.
// The transition is validated like any other status change, so paid orders
// produce a refund warning and shipped orders are rejected.
func (o *Order) Cancel(reason string) (TransitionResult, error) {
	if reason == "" {
		return rejected(ErrCancellationReasonIsRequired.Error()), ErrCancellationReasonIsRequired
	}

	result, err := o.ChangeStatus(Cancelled)
	if err != nil {
		return result, err
	}

	o.cancellationReason = &reason
	return result, nil
}

// AssignShipper sets the shipper responsible for delivering the order.
// Reassignment is allowed while the order has not entered the shipping
// phase; afterwards the assignment is frozen.
func (o *Order) AssignShipper(shipperID kernel.UUID) error {
	if err := shipperID.Validate(); err != nil {
		return err
	}
	if o.status != Pending && o.status != Confirmed && o.status != Processing {
		return ErrShipperChangeNotAllowed
	}

	o.shipperID = &shipperID
	return nil
}

// UnassignShipper clears the shipper assignment.
// Allowed under the same conditions as AssignShipper.
func (o *Order) UnassignShipper() error {
	if o.status != Pending && o.status != Confirmed && o.status != Processing {
		return ErrShipperChangeNotAllowed
	}

	o.shipperID = nil
	return nil
}

// CanConfirmCodPayment reports whether the "mark as paid" action applies:
// the order is COD, delivered, and its payment is still pending.
// Any single deviation disables the action.
func (o *Order) CanConfirmCodPayment() bool {
	return o.paymentMethod.IsCod() &&
		o.status == Delivered &&
		o.paymentStatus == PaymentPending
}

// ConfirmCodPayment marks a delivered COD order as paid.
// Returns ErrCodConfirmationNotAllowed when the gate is closed.
func (o *Order) ConfirmCodPayment() error {
	if !o.CanConfirmCodPayment() {
		return ErrCodConfirmationNotAllowed
	}

	o.paymentStatus = PaymentPaid
	return nil
}

// MarkPaid records an external payment settlement (e.g. gateway callback).
func (o *Order) MarkPaid() {
	o.paymentStatus = PaymentPaid
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	o.customerName = name
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}
