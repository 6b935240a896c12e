package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"relstore/internal/shared/constants"
)

// OrderModel represents the database persistence model for orders.
type OrderModel struct {
	ID        uint   `gorm:"primarykey"`
	OrderUID  string `gorm:"type:varchar(36);uniqueIndex:idx_orders_uid;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (OrderModel) TableName() string {
	return constants.TableOrders
}

// BeforeCreate hook for GORM
func (o *OrderModel) BeforeCreate(tx *gorm.DB) error {
	if o.OrderUID == "" {
		o.OrderUID = uuid.NewString()
	}
	return nil
}

// ProductModel represents the database persistence model for products.
type ProductModel struct {
	ID        uint    `gorm:"primarykey"`
	Name      string  `gorm:"size:255"`
	Price     float64 `gorm:"type:decimal(10,2)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (ProductModel) TableName() string {
	return constants.TableProducts
}

// OrderProductModel is the attributed orders/products join row. Its identity
// is the composite (order_id, product_id) pair; there is no surrogate key,
// so every lookup, update, and delete addresses the full pair.
type OrderProductModel struct {
	OrderID   uint `gorm:"primaryKey;autoIncrement:false"`
	ProductID uint `gorm:"primaryKey;autoIncrement:false"`
	Quantity  int  `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (OrderProductModel) TableName() string {
	return constants.TableOrderProducts
}

// BeforeCreate hook for GORM
func (op *OrderProductModel) BeforeCreate(tx *gorm.DB) error {
	if op.Quantity == 0 {
		op.Quantity = constants.DefaultOrderQuantity
	}
	return nil
}
