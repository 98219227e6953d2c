package cartrepo

import (
	"context"
	"errors"

	"fishmarket/internal/core/domain/model/cart"
	"fishmarket/internal/core/domain/model/kernel"
	"fishmarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCartRepository implements ports.CartRepository using GORM.
type GormCartRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB, tracker aggregateTracker) *GormCartRepository {
	return &GormCartRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new cart line.
func (r *GormCartRepository) Add(ctx context.Context, item *cart.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// Update persists a quantity change.
func (r *GormCartRepository) Update(ctx context.Context, item *cart.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	result := r.db.WithContext(ctx).Model(&CartItemDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"quantity":   dto.Quantity,
			"updated_at": dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cart_item", item.ID().String())
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// Get retrieves a cart line by ID.
func (r *GormCartRepository) Get(ctx context.Context, id kernel.UUID) (*cart.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CartItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cart_item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByUserAndProduct retrieves the user's line for a product.
func (r *GormCartRepository) GetByUserAndProduct(
	ctx context.Context,
	userID, productID kernel.UUID,
) (*cart.Item, error) {
	if err := errors.Join(userID.Validate(), productID.Validate()); err != nil {
		return nil, err
	}

	var dto CartItemDTO
	err := r.db.WithContext(ctx).
		First(&dto, "user_id = ? AND product_id = ?", userID.Bytes(), productID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cart_item", productID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByUser retrieves the user's cart, newest first.
func (r *GormCartRepository) GetAllByUser(ctx context.Context, userID kernel.UUID) ([]*cart.Item, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CartItemDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "user_id = ?", userID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	items := make([]*cart.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, itemErr := toDomain(dto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return items, nil
}

// Delete removes a single line. Deleting an absent line is not an error.
func (r *GormCartRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&CartItemDTO{}, "id = ?", id.Bytes()).Error
}

// DeleteAllByUser empties the user's cart. Idempotent.
func (r *GormCartRepository) DeleteAllByUser(ctx context.Context, userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&CartItemDTO{}, "user_id = ?", userID.Bytes()).Error
}
