package models

import "time"

type Order struct {
	ID                  uint        `json:"id" gorm:"primaryKey"`
	UserID              uint        `json:"user_id" gorm:"not null;index"`
	TotalAmount         float64     `json:"total_amount" gorm:"not null"`
	Status              string      `json:"status" gorm:"default:'pending'"` // pending, confirmed, preparing, ready, delivered, cancelled
	DeliveryDate        *time.Time  `json:"delivery_date"`
	SpecialInstructions string      `json:"special_instructions" gorm:"type:text"`
	Items               []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// nextStatus maps each state to the one it may advance to. Cancelled
// is reachable from any non-terminal state and has no successor.
var nextStatus = map[OrderStatus]OrderStatus{
	OrderPending:   OrderConfirmed,
	OrderConfirmed: OrderPreparing,
	OrderPreparing: OrderReady,
	OrderReady:     OrderDelivered,
}

// ValidStatus reports whether s is a member of the status enumeration.
func ValidStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderPending, OrderConfirmed, OrderPreparing, OrderReady, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// CanTransition reports whether an order may move from one status to
// the next. Terminal states (delivered, cancelled) admit no moves.
func CanTransition(from, to OrderStatus) bool {
	if from == OrderDelivered || from == OrderCancelled {
		return false
	}
	if to == OrderCancelled {
		return true
	}
	return nextStatus[from] == to
}
