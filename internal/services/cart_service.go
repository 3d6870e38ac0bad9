package services

import (
	"errors"
	"fmt"

	"bakery_shop/internal/apperrors"
	"bakery_shop/internal/models"
	"bakery_shop/internal/repository"

	"gorm.io/gorm"
)

// CartView is a user's cart with its total computed from current
// product prices at read time. Orders freeze prices; carts do not.
type CartView struct {
	Items []models.CartItem `json:"items"`
	Total float64           `json:"total"`
}

type CartService interface {
	GetCart(userID uint) (*CartView, error)
	AddToCart(userID, productID uint, quantity int) (*models.CartItem, error)
	RemoveFromCart(userID, itemID uint) error
	ClearCart(userID uint) error
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{cartRepo: cartRepo, productRepo: productRepo}
}

func (s *cartService) GetCart(userID uint) (*CartView, error) {
	items, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}

	var total float64
	for _, item := range items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return &CartView{Items: items, Total: total}, nil
}

// AddToCart merges into the existing (user, product) row by
// incrementing quantity, otherwise inserts a new row.
func (s *cartService) AddToCart(userID, productID uint, quantity int) (*models.CartItem, error) {
	if productID == 0 {
		return nil, fmt.Errorf("%w: product id required", apperrors.ErrValidation)
	}
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", apperrors.ErrValidation)
	}

	if _, err := s.productRepo.GetByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product not found", apperrors.ErrNotFound)
		}
		return nil, err
	}

	item, err := s.cartRepo.GetByUserAndProduct(userID, productID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		item = &models.CartItem{
			UserID:    userID,
			ProductID: productID,
			Quantity:  quantity,
		}
		if err := s.cartRepo.Create(item); err != nil {
			return nil, err
		}
		return item, nil
	}

	item.Quantity += quantity
	if err := s.cartRepo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveFromCart deletes one cart item. An item belonging to another
// user is reported as not found, same as a missing one.
func (s *cartService) RemoveFromCart(userID, itemID uint) error {
	item, err := s.cartRepo.GetByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: item not found", apperrors.ErrNotFound)
		}
		return err
	}
	if item.UserID != userID {
		return fmt.Errorf("%w: item not found", apperrors.ErrNotFound)
	}
	return s.cartRepo.Delete(itemID)
}

func (s *cartService) ClearCart(userID uint) error {
	return s.cartRepo.ClearForUser(userID)
}
