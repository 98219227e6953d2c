package order

import (
	"errors"
	"strings"

	"fishmarket/internal/pkg/errs"
	"fishmarket/internal/pkg/guard"
)

var (
	ErrDeliveryAddressIsNotConstructed = errors.New(
		"DeliveryAddress must be created via NewDeliveryAddress constructor")
)

// DeliveryAddress is the structured destination for an order. Street, area,
// city and pincode are required; landmark is optional. The value object only
// enforces presence; address verification is a fulfillment concern.
type DeliveryAddress struct {
	street   string
	area     string
	city     string
	pincode  string
	landmark string

	guard guard.ConstructorGuard
}

// NewDeliveryAddress validates and creates a delivery address.
func NewDeliveryAddress(street, area, city, pincode, landmark string) (DeliveryAddress, error) {
	street = strings.TrimSpace(street)
	area = strings.TrimSpace(area)
	city = strings.TrimSpace(city)
	pincode = strings.TrimSpace(pincode)

	var err error
	switch {
	case street == "":
		err = errs.NewValueIsRequiredError("street")
	case area == "":
		err = errs.NewValueIsRequiredError("area")
	case city == "":
		err = errs.NewValueIsRequiredError("city")
	case pincode == "":
		err = errs.NewValueIsRequiredError("pincode")
	}
	if err != nil {
		return DeliveryAddress{}, err
	}

	return DeliveryAddress{
		street:   street,
		area:     area,
		city:     city,
		pincode:  pincode,
		landmark: strings.TrimSpace(landmark),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the address was created through the constructor.
func (a DeliveryAddress) Validate() error {
	return a.guard.Validate(ErrDeliveryAddressIsNotConstructed)
}

// Street returns the street line.
func (a DeliveryAddress) Street() string {
	return a.street
}

// Area returns the area or locality.
func (a DeliveryAddress) Area() string {
	return a.area
}

// City returns the city.
func (a DeliveryAddress) City() string {
	return a.city
}

// Pincode returns the postal code.
func (a DeliveryAddress) Pincode() string {
	return a.pincode
}

// Landmark returns the optional landmark hint, empty when not provided.
func (a DeliveryAddress) Landmark() string {
	return a.landmark
}
