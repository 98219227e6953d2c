// Package orderrepo persists order aggregates. It maps between the domain
// model and the orders/order_items tables, and implements the
// compare-and-swap write that turns a stale update into
// ports.ErrConcurrentModification.
package orderrepo

import (
	"time"

	"fishmarket/internal/core/domain/model/kernel"
	"fishmarket/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database row for an order. The status is stored as its
// lowercase snake_case wire label so SQL reads and dashboards stay legible
// without a lookup table.
type OrderDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID `gorm:"type:uuid;index"`
	TotalAmount      float64
	Status           string `gorm:"index"`
	PaymentMethod    string
	PaymentStatus    string
	Street           string
	Area             string
	City             string
	Pincode          string
	Landmark         string
	DeliveryPhone    string
	DeliveryNotes    string
	VerificationCode *string
	Version          int
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName overrides GORM's default naming to "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is the database row for one order line. Lines are written once
// with the order and never updated afterwards.
type OrderItemDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	ProductID  uuid.UUID `gorm:"type:uuid"`
	Quantity   float64
	UnitPrice  float64
	TotalPrice float64
}

// TableName overrides GORM's default naming to "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
// Item row keys are generated here; they are storage identity only and carry
// no domain meaning.
func fromDomain(aggregate *order.Order) OrderDTO {
	var code *string
	if c := aggregate.VerificationCode(); c != "" {
		s := string(c)
		code = &s
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:         uuid.New(),
			OrderID:    aggregate.ID().Bytes(),
			ProductID:  item.ProductID().Bytes(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice(),
			TotalPrice: item.TotalPrice(),
		})
	}

	address := aggregate.DeliveryAddress()
	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		CustomerID:       aggregate.CustomerID().Bytes(),
		TotalAmount:      aggregate.TotalAmount(),
		Status:           aggregate.Status().String(),
		PaymentMethod:    string(aggregate.PaymentMethod()),
		PaymentStatus:    string(aggregate.PaymentStatus()),
		Street:           address.Street(),
		Area:             address.Area(),
		City:             address.City(),
		Pincode:          address.Pincode(),
		Landmark:         address.Landmark(),
		DeliveryPhone:    aggregate.DeliveryPhone(),
		DeliveryNotes:    aggregate.DeliveryNotes(),
		VerificationCode: code,
		Version:          aggregate.Version(),
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
		Items:            items,
	}
}

// toDomain reconstructs the aggregate from its rows via RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	address, err := order.NewDeliveryAddress(dto.Street, dto.Area, dto.City, dto.Pincode, dto.Landmark)
	if err != nil {
		return nil, err
	}

	paymentMethod, err := order.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.RestoreItem(productID, itemDTO.Quantity, itemDTO.UnitPrice, itemDTO.TotalPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	code := ""
	if dto.VerificationCode != nil {
		code = *dto.VerificationCode
	}

	return order.RestoreOrder(
		id,
		customerID,
		address,
		dto.DeliveryPhone,
		dto.DeliveryNotes,
		paymentMethod,
		paymentStatus,
		status,
		items,
		dto.TotalAmount,
		code,
		dto.Version,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
