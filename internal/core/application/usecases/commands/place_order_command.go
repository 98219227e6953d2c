package commands

import (
	"errors"
	"fmt"

	"fishmarket/internal/core/domain/model/kernel"
	"fishmarket/internal/core/domain/model/order"
	"fishmarket/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)

	// ErrInvalidDeliveryInfo is returned when the delivery address or phone
	// fails the minimal presence checks. Retryable after the caller corrects
	// the input.
	ErrInvalidDeliveryInfo = errors.New("delivery information is invalid")
)

// PlaceOrderCommand represents a checkout request: convert the user's
// current cart into an order delivered to the given address.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	userID        kernel.UUID
	address       order.DeliveryAddress
	phone         string
	notes         string
	paymentMethod order.PaymentMethod

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates identifiers, the delivery address and phone
// (failures surface as ErrInvalidDeliveryInfo) and the payment method label.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	userID kernel.UUID,
	street, area, city, pincode, landmark string,
	phone string,
	notes string,
	paymentMethod string,
) (PlaceOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), userID.Validate()); err != nil {
		return PlaceOrderCommand{}, err
	}

	address, err := order.NewDeliveryAddress(street, area, city, pincode, landmark)
	if err != nil {
		return PlaceOrderCommand{}, fmt.Errorf("%w: %w", ErrInvalidDeliveryInfo, err)
	}
	if err = order.ValidatePhone(phone); err != nil {
		return PlaceOrderCommand{}, fmt.Errorf("%w: %w", ErrInvalidDeliveryInfo, err)
	}

	method, err := order.PaymentMethodFromString(paymentMethod)
	if err != nil {
		return PlaceOrderCommand{}, err
	}

	return PlaceOrderCommand{
		orderID:       orderID,
		userID:        userID,
		address:       address,
		phone:         phone,
		notes:         notes,
		paymentMethod: method,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be created under.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the customer checking out.
func (c PlaceOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// Address returns the validated delivery address.
func (c PlaceOrderCommand) Address() order.DeliveryAddress {
	return c.address
}

// Phone returns the delivery contact phone.
func (c PlaceOrderCommand) Phone() string {
	return c.phone
}

// Notes returns optional delivery instructions.
func (c PlaceOrderCommand) Notes() string {
	return c.notes
}

// PaymentMethod returns the payment label.
func (c PlaceOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}
