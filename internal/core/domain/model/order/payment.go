package order

import (
	"fmt"

	"fishmarket/internal/pkg/errs"
)

// PaymentMethod is how the customer intends to pay. It is stored as a label
// only; no gateway integration happens in this system.
type PaymentMethod string

const (
	// PaymentCashOnDelivery is settled with the delivery agent.
	PaymentCashOnDelivery PaymentMethod = "cod"

	// PaymentOnline is settled outside this system.
	PaymentOnline PaymentMethod = "online"
)

// PaymentMethodFromString validates the stored vocabulary ("cod" | "online").
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentCashOnDelivery, PaymentOnline:
		return PaymentMethod(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("payment method",
			fmt.Errorf("%q is not a known payment method", s))
	}
}

// Validate checks the payment method vocabulary.
func (m PaymentMethod) Validate() error {
	_, err := PaymentMethodFromString(string(m))
	return err
}

// PaymentStatus tracks settlement as a label. Orders are created pending.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// PaymentStatusFromString validates the stored vocabulary.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case PaymentPending, PaymentPaid, PaymentFailed:
		return PaymentStatus(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%q is not a known payment status", s))
	}
}

// Validate checks the payment status vocabulary.
func (s PaymentStatus) Validate() error {
	_, err := PaymentStatusFromString(string(s))
	return err
}
