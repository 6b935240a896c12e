package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"relstore/internal/infrastructure/persistence/models"
	"relstore/internal/shared/constants"
	"relstore/internal/shared/db"
	apperrors "relstore/internal/shared/errors"
	"relstore/internal/shared/logger"
)

// OrderRepository stores orders and the attributed orders/products join.
// Join rows are addressed by the full (order_id, product_id) pair; there is
// no surrogate key to reach them by.
type OrderRepository struct {
	db     *gorm.DB
	tm     *db.TransactionManager
	logger logger.Interface
}

func NewOrderRepository(gdb *gorm.DB, logger logger.Interface) *OrderRepository {
	return &OrderRepository{
		db:     gdb,
		tm:     db.NewTransactionManager(gdb),
		logger: logger,
	}
}

func (r *OrderRepository) Create(ctx context.Context, order *models.OrderModel) error {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		r.logger.Errorw("failed to create order", "error", err)
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id uint) (*models.OrderModel, error) {
	var order models.OrderModel
	if err := r.db.WithContext(ctx).First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("order not found")
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &order, nil
}

// Delete removes the order and its product join rows in one transaction.
// Products themselves are left in place.
func (r *OrderRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).
			Delete(&models.OrderProductModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete order products: %w", err)
		}

		result := tx.Delete(&models.OrderModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete order: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFoundError("order not found")
		}
		return nil
	})
}

// AddProduct inserts a join row for the pair. Both sides must exist; the
// uniqueness check and the insert run in one transaction, and a duplicate
// pair is a conflict. A zero quantity takes the default; negative values are
// rejected with the same bound SetQuantity enforces.
func (r *OrderRepository) AddProduct(ctx context.Context, orderID, productID uint, quantity int) error {
	if quantity < 0 {
		return apperrors.NewValidationError("quantity must be at least 1")
	}

	err := r.tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		tx := db.GetTxFromContext(txCtx, r.db)

		var count int64
		if err := tx.Model(&models.OrderModel{}).Where("id = ?", orderID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check order: %w", err)
		}
		if count == 0 {
			return apperrors.NewNotFoundError("order not found")
		}

		if err := tx.Model(&models.ProductModel{}).Where("id = ?", productID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check product: %w", err)
		}
		if count == 0 {
			return apperrors.NewNotFoundError("product not found")
		}

		join := &models.OrderProductModel{
			OrderID:   orderID,
			ProductID: productID,
			Quantity:  quantity,
		}
		if err := tx.Create(join).Error; err != nil {
			if apperrors.IsDuplicateError(err) {
				return apperrors.NewConflictError("product already on order")
			}
			return fmt.Errorf("failed to create order product: %w", err)
		}
		return nil
	})

	if err != nil {
		if apperrors.IsConflictError(err) || apperrors.IsNotFoundError(err) {
			return err
		}
		r.logger.Errorw("failed to add product to order", "error", err, "order_id", orderID, "product_id", productID)
		return err
	}

	r.logger.Infow("product added to order", "order_id", orderID, "product_id", productID, "quantity", quantity)
	return nil
}

// GetJoin returns the join row for the pair.
func (r *OrderRepository) GetJoin(ctx context.Context, orderID, productID uint) (*models.OrderProductModel, error) {
	var join models.OrderProductModel
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND product_id = ?", orderID, productID).
		Take(&join).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("order product not found")
		}
		return nil, fmt.Errorf("failed to get order product: %w", err)
	}
	return &join, nil
}

// SetQuantity updates the quantity on the join row for the pair.
func (r *OrderRepository) SetQuantity(ctx context.Context, orderID, productID uint, quantity int) error {
	if quantity < 1 {
		return apperrors.NewValidationError("quantity must be at least 1")
	}

	result := r.db.WithContext(ctx).Model(&models.OrderProductModel{}).
		Where("order_id = ? AND product_id = ?", orderID, productID).
		Update("quantity", quantity)
	if result.Error != nil {
		r.logger.Errorw("failed to set quantity", "error", result.Error, "order_id", orderID, "product_id", productID)
		return fmt.Errorf("failed to set quantity: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("order product not found")
	}
	return nil
}

// DeleteJoin removes the join row for the pair.
func (r *OrderRepository) DeleteJoin(ctx context.Context, orderID, productID uint) error {
	result := r.db.WithContext(ctx).
		Where("order_id = ? AND product_id = ?", orderID, productID).
		Delete(&models.OrderProductModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete order product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("order product not found")
	}
	return nil
}

// Products lists the order's products through the join.
func (r *OrderRepository) Products(ctx context.Context, orderID uint) ([]*models.ProductModel, error) {
	var products []*models.ProductModel
	err := r.db.WithContext(ctx).
		Table(constants.TableProducts).
		Select("products.*").
		Joins("JOIN "+constants.TableOrderProducts+" ON order_products.product_id = products.id").
		Where("order_products.order_id = ?", orderID).
		Order("products.id ASC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list order products: %w", err)
	}
	return products, nil
}
