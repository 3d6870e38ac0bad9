package models

import "time"

// OrderItem snapshots quantity and unit price at order-creation time.
// UnitPrice is never recomputed from the product afterwards, so later
// catalog price changes leave historical orders untouched.
type OrderItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	OrderID   uint      `json:"order_id" gorm:"not null;index"`
	ProductID uint      `json:"product_id" gorm:"not null"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	UnitPrice float64   `json:"unit_price" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
