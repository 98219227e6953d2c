// Package product contains the catalog product model. The cart and order
// modules reference products read-only and snapshot their price; only the
// admin catalog-management operations mutate them.
package product

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fishmarket/internal/core/domain/model/kernel"
	"fishmarket/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// Unit is how a product is priced and measured.
type Unit string

const (
	UnitKg    Unit = "kg"
	UnitPiece Unit = "piece"
	UnitGram  Unit = "gram"
)

// Validate checks the unit vocabulary.
func (u Unit) Validate() error {
	switch u {
	case UnitKg, UnitPiece, UnitGram:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("unit",
			fmt.Errorf("%q is not a known unit", string(u)))
	}
}

// Categories lists the storefront's catalog sections.
func Categories() []string {
	return []string{
		"Fresh Fish",
		"Prawns & Shrimp",
		"Crabs",
		"Dried Fish",
		"Fish Curry Cut",
	}
}

func validateCategory(category string) error {
	for _, c := range Categories() {
		if c == category {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("category",
		fmt.Errorf("%q is not a known category", category))
}

// Product is a catalog entry. Price is per unit (per kg for weighed
// products). Cart and order lines hold a reference plus a price snapshot, so
// mutating a product never rewrites history.
type Product struct {
	id            kernel.UUID
	name          string
	description   string
	price         float64
	category      string
	stockQuantity float64
	unit          Unit
	isAvailable   bool
	imageURL      string
	createdAt     time.Time
	updatedAt     time.Time

	isConstructed bool
}

// NewProduct creates a catalog entry.
func NewProduct(
	id kernel.UUID,
	name string,
	description string,
	price float64,
	category string,
	stockQuantity float64,
	unit Unit,
	imageURL string,
) (*Product, error) {
	now := time.Now().UTC()
	p := &Product{
		isAvailable:   true,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.setCategory(category),
		p.setStockQuantity(stockQuantity),
		p.setUnit(unit),
	); err != nil {
		return nil, err
	}

	p.description = strings.TrimSpace(description)
	p.imageURL = strings.TrimSpace(imageURL)
	return p, nil
}

// RestoreProduct reconstructs a catalog entry from persistence.
func RestoreProduct(
	id kernel.UUID,
	name string,
	description string,
	price float64,
	category string,
	stockQuantity float64,
	unit Unit,
	isAvailable bool,
	imageURL string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Product, error) {
	p, err := NewProduct(id, name, description, price, category, stockQuantity, unit, imageURL)
	if err != nil {
		return nil, err
	}

	p.isAvailable = isAvailable
	p.createdAt = createdAt
	p.updatedAt = updatedAt
	return p, nil
}

// Validate ensures the product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the display name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the catalog description.
func (p *Product) Description() string {
	return p.description
}

// Price returns the per-unit price.
func (p *Product) Price() float64 {
	return p.price
}

// Category returns the catalog section.
func (p *Product) Category() string {
	return p.category
}

// StockQuantity returns remaining stock, in the product's unit.
func (p *Product) StockQuantity() float64 {
	return p.stockQuantity
}

// Unit returns the pricing unit.
func (p *Product) Unit() Unit {
	return p.unit
}

// IsAvailable reports whether the product is currently purchasable.
func (p *Product) IsAvailable() bool {
	return p.isAvailable
}

// ImageURL returns the CDN image location, empty when none was uploaded.
func (p *Product) ImageURL() string {
	return p.imageURL
}

// CreatedAt returns when the product was added to the catalog.
func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns the last catalog-change timestamp.
func (p *Product) UpdatedAt() time.Time {
	return p.updatedAt
}

// Update replaces the admin-editable fields.
func (p *Product) Update(
	name string,
	description string,
	price float64,
	category string,
	stockQuantity float64,
	unit Unit,
	imageURL string,
) error {
	if err := errors.Join(
		p.setName(name),
		p.setPrice(price),
		p.setCategory(category),
		p.setStockQuantity(stockQuantity),
		p.setUnit(unit),
	); err != nil {
		return err
	}

	p.description = strings.TrimSpace(description)
	p.imageURL = strings.TrimSpace(imageURL)
	p.updatedAt = time.Now().UTC()
	return nil
}

// SetAvailability toggles whether the product shows in the storefront.
func (p *Product) SetAvailability(available bool) {
	p.isAvailable = available
	p.updatedAt = time.Now().UTC()
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is not greater than 0", price))
	}
	p.price = price
	return nil
}

func (p *Product) setCategory(category string) error {
	if err := validateCategory(category); err != nil {
		return err
	}
	p.category = category
	return nil
}

func (p *Product) setStockQuantity(stock float64) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock quantity",
			fmt.Errorf("%v is negative", stock))
	}
	p.stockQuantity = stock
	return nil
}

func (p *Product) setUnit(unit Unit) error {
	if err := unit.Validate(); err != nil {
		return err
	}
	p.unit = unit
	return nil
}
