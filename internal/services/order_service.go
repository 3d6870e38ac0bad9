package services

import (
	"errors"
	"fmt"
	"time"

	"bakery_shop/internal/apperrors"
	"bakery_shop/internal/models"
	"bakery_shop/internal/repository"

	"gorm.io/gorm"
)

type OrderService interface {
	PlaceOrder(userID uint, specialInstructions string, deliveryDate *time.Time) (*models.Order, error)
	ListForUser(userID uint) ([]models.Order, error)
	GetByID(id, requesterID uint) (*models.Order, error)

	// Admin surface; callers are gated upstream.
	ListAll() ([]models.Order, error)
	SetStatus(orderID uint, status string) (*models.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderService{orderRepo: orderRepo}
}

// PlaceOrder converts the user's cart into an order. The repository
// runs the conversion in one transaction; unit prices are frozen at
// the moment of the call.
func (s *orderService) PlaceOrder(userID uint, specialInstructions string, deliveryDate *time.Time) (*models.Order, error) {
	return s.orderRepo.CreateFromCart(userID, specialInstructions, deliveryDate)
}

func (s *orderService) ListForUser(userID uint) ([]models.Order, error) {
	return s.orderRepo.GetByUser(userID)
}

// GetByID returns the order only to its owner. An order owned by
// someone else is reported as not found so order IDs leak nothing.
func (s *orderService) GetByID(id, requesterID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order not found", apperrors.ErrNotFound)
		}
		return nil, err
	}
	if order.UserID != requesterID {
		return nil, fmt.Errorf("%w: order not found", apperrors.ErrNotFound)
	}
	return order, nil
}

func (s *orderService) ListAll() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// SetStatus advances an order through the lifecycle
// pending -> confirmed -> preparing -> ready -> delivered, with
// cancelled reachable from any non-terminal state.
func (s *orderService) SetStatus(orderID uint, status string) (*models.Order, error) {
	if !models.ValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, status)
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order not found", apperrors.ErrNotFound)
		}
		return nil, err
	}

	if !models.CanTransition(models.OrderStatus(order.Status), models.OrderStatus(status)) {
		return nil, fmt.Errorf("%w: cannot transition from %s to %s", apperrors.ErrValidation, order.Status, status)
	}

	order.Status = status
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}
