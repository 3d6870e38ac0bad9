package services

import (
	"errors"
	"fmt"

	"bakery_shop/internal/apperrors"
	"bakery_shop/internal/models"
	"bakery_shop/internal/repository"

	"gorm.io/gorm"
)

type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Stock       int
	ImageURL    string
}

// ProductPatch enumerates the updatable product fields; a nil pointer
// leaves the field untouched.
type ProductPatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Stock       *int     `json:"stock"`
	IsAvailable *bool    `json:"is_available"`
	ImageURL    *string  `json:"image_url"`
}

type ProductService interface {
	ListAvailable(category string) ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Create(input ProductInput) (*models.Product, error)
	Update(id uint, patch ProductPatch) (*models.Product, error)
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) ListAvailable(category string) ([]models.Product, error) {
	return s.productRepo.GetAvailable(category)
}

func (s *productService) GetByID(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product not found", apperrors.ErrNotFound)
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) Create(input ProductInput) (*models.Product, error) {
	if input.Name == "" || input.Category == "" {
		return nil, fmt.Errorf("%w: name and category are required", apperrors.ErrValidation)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", apperrors.ErrValidation)
	}
	if input.Stock < 0 {
		return nil, fmt.Errorf("%w: stock must not be negative", apperrors.ErrValidation)
	}

	product := &models.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Stock:       input.Stock,
		IsAvailable: true,
		ImageURL:    input.ImageURL,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Update(id uint, patch ProductPatch) (*models.Product, error) {
	product, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Price != nil && *patch.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", apperrors.ErrValidation)
	}
	if patch.Stock != nil && *patch.Stock < 0 {
		return nil, fmt.Errorf("%w: stock must not be negative", apperrors.ErrValidation)
	}

	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Description != nil {
		product.Description = *patch.Description
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.Category != nil {
		product.Category = *patch.Category
	}
	if patch.Stock != nil {
		product.Stock = *patch.Stock
	}
	if patch.IsAvailable != nil {
		product.IsAvailable = *patch.IsAvailable
	}
	if patch.ImageURL != nil {
		product.ImageURL = *patch.ImageURL
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}
