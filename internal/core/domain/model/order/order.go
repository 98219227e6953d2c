package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fishmarket/internal/core/domain/model/kernel"
	"fishmarket/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrMissingVerificationCode is returned on a delivered attempt against an
	// order that never received a code. This indicates a data inconsistency
	// (the code is issued at the out_for_delivery transition) and needs manual
	// intervention, not a retry.
	ErrMissingVerificationCode = errors.New("order has no verification code")

	// ErrVerificationMismatch is returned when the entered code does not
	// exactly match the stored one. The order is left unchanged and the
	// attempt can be retried with the correct code.
	ErrVerificationMismatch = errors.New("verification code does not match")
)

// Order is the aggregate root for a customer's placed purchase. It is created
// from a cart snapshot and from then on only its status, verification code
// and updated_at change, driven by the state machine methods below.
//
// Invariants:
//   - total amount equals the sum of line totals at creation and is immutable
//   - the verification code is absent until the order first goes out for
//     delivery, and once set never changes
//   - status only moves along the §transition graph edges of Status
//   - orders are never deleted; cancellation is a terminal status
type Order struct {
	id               kernel.UUID
	customerID       kernel.UUID
	items            []Item
	totalAmount      float64
	status           Status
	paymentMethod    PaymentMethod
	paymentStatus    PaymentStatus
	deliveryAddress  DeliveryAddress
	deliveryPhone    string
	deliveryNotes    string
	verificationCode VerificationCode
	version          int
	createdAt        time.Time
	updatedAt        time.Time

	isConstructed bool
}

// NewOrder creates a pending order from a cart snapshot. The total amount is
// computed from the line totals; payment status starts pending and the
// verification code unset.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	address DeliveryAddress,
	phone string,
	notes string,
	paymentMethod PaymentMethod,
	items []Item,
) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:        Pending,
		paymentStatus: PaymentPending,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setDeliveryAddress(address),
		o.setDeliveryPhone(phone),
		o.setPaymentMethod(paymentMethod),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.deliveryNotes = strings.TrimSpace(notes)
	return o, nil
}

// RestoreOrder reconstructs an order from persistence without recomputing the
// total or re-running creation-time validation of immutable fields.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	address DeliveryAddress,
	phone string,
	notes string,
	paymentMethod PaymentMethod,
	paymentStatus PaymentStatus,
	status Status,
	items []Item,
	totalAmount float64,
	verificationCode string,
	version int,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		address.Validate(),
		paymentMethod.Validate(),
		paymentStatus.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	code := VerificationCode(verificationCode)
	if code != "" {
		if err := code.Validate(); err != nil {
			return nil, err
		}
	}

	if version < 1 {
		return nil, errs.NewVersionIsInvalidError("order version",
			fmt.Errorf("%d is not a valid version", version))
	}

	return &Order{
		id:               id,
		customerID:       customerID,
		items:            items,
		totalAmount:      totalAmount,
		status:           status,
		paymentMethod:    paymentMethod,
		paymentStatus:    paymentStatus,
		deliveryAddress:  address,
		deliveryPhone:    phone,
		deliveryNotes:    notes,
		verificationCode: code,
		version:          version,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
		isConstructed:    true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
// Called when reconstructing orders from persistence to ensure integrity.
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
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Items returns the immutable order lines.
func (o *Order) Items() []Item {
	return o.items
}

// TotalAmount returns the creation-time sum of line totals.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// Status returns the current state in the order lifecycle.
func (o *Order) Status() Status {
	return o.status
}

// PaymentMethod returns the stored payment label.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// PaymentStatus returns the stored settlement label.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// DeliveryAddress returns the destination address.
func (o *Order) DeliveryAddress() DeliveryAddress {
	return o.deliveryAddress
}

// DeliveryPhone returns the contact phone for delivery.
func (o *Order) DeliveryPhone() string {
	return o.deliveryPhone
}

// DeliveryNotes returns optional instructions for the delivery agent.
func (o *Order) DeliveryNotes() string {
	return o.deliveryNotes
}

// VerificationCode returns the issued code, or "" while the order has not
// gone out for delivery yet. Customers see it in order history; admins see
// the same stored value for reference.
func (o *Order) VerificationCode() VerificationCode {
	return o.verificationCode
}

// Version returns the optimistic-concurrency token for stale-write detection.
func (o *Order) Version() int {
	return o.version
}

// CreatedAt returns the placement timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last state-change timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Confirm moves a pending order to confirmed.
func (o *Order) Confirm() error {
	return o.transition(Confirmed)
}

// StartPreparing moves a confirmed order to preparing.
func (o *Order) StartPreparing() error {
	return o.transition(Preparing)
}

// StartDelivery moves a preparing order to out_for_delivery and issues the
// delivery verification code.
//
// The code is generated exactly once per order: if one is already set, the
// existing code is preserved and the supplied one ignored. Returns the code
// that is now in effect, for display to the admin.
func (o *Order) StartDelivery(code VerificationCode) (VerificationCode, error) {
	if o.verificationCode == "" {
		if err := code.Validate(); err != nil {
			return "", err
		}
	}

	if err := o.transition(OutForDelivery); err != nil {
		return "", err
	}

	if o.verificationCode == "" {
		o.verificationCode = code
	}
	return o.verificationCode, nil
}

// CompleteDelivery moves an out_for_delivery order to delivered, gated on the
// verification code.
//
// Fails with ErrInvalidTransition when the order is not out for delivery,
// ErrMissingVerificationCode when no code was ever issued, and
// ErrVerificationMismatch when enteredCode is not exactly string-equal to the
// stored code. No state changes on failure.
func (o *Order) CompleteDelivery(enteredCode string) error {
	if _, err := o.status.TransitionTo(Delivered); err != nil {
		return err
	}

	if o.verificationCode == "" {
		return ErrMissingVerificationCode
	}

	if enteredCode != string(o.verificationCode) {
		return ErrVerificationMismatch
	}

	if err := o.transition(Delivered); err != nil {
		return err
	}

	// Cash settles at the doorstep. Online payments are reconciled by the
	// gateway callback, not here.
	if o.paymentMethod == PaymentCashOnDelivery && o.paymentStatus == PaymentPending {
		o.paymentStatus = PaymentPaid
	}
	return nil
}

// Cancel terminates the order from any non-terminal state.
func (o *Order) Cancel() error {
	return o.transition(Cancelled)
}

// RequestTransition dispatches to the appropriate state-machine method for
// the target status. enteredCode is consulted only for the delivered
// transition; code is consumed only when going out for delivery. Returns the
// verification code in effect after an out_for_delivery transition, ""
// otherwise.
func (o *Order) RequestTransition(target Status, enteredCode string, code VerificationCode) (VerificationCode, error) {
	switch target {
	case Confirmed:
		return "", o.Confirm()
	case Preparing:
		return "", o.StartPreparing()
	case OutForDelivery:
		return o.StartDelivery(code)
	case Delivered:
		return "", o.CompleteDelivery(enteredCode)
	case Cancelled:
		return "", o.Cancel()
	default:
		if err := target.Validate(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.status, target)
	}
}

func (o *Order) transition(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = time.Now().UTC()
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setDeliveryAddress(address DeliveryAddress) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setDeliveryPhone(phone string) error {
	if err := ValidatePhone(phone); err != nil {
		return err
	}
	o.deliveryPhone = strings.TrimSpace(phone)
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}

	total := 0.0
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		total += item.TotalPrice()
	}

	o.items = items
	o.totalAmount = total
	return nil
}

// ValidatePhone applies the minimal contactability check: at least 10 digits,
// ignoring spaces, dashes and a leading plus.
func ValidatePhone(phone string) error {
	digits := 0
	for _, r := range strings.TrimSpace(phone) {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '-' || r == '+':
		default:
			return errs.NewValueIsInvalidErrorWithCause("delivery phone",
				fmt.Errorf("unexpected character %q", r))
		}
	}
	if digits < 10 {
		return errs.NewValueIsInvalidErrorWithCause("delivery phone",
			fmt.Errorf("%d digits is fewer than 10", digits))
	}
	return nil
}
