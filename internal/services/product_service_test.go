package services

import (
	"testing"

	"bakery_shop/internal/apperrors"
	"bakery_shop/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductService_ListAvailable(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProductService(repository.NewProductRepository(db))

	cake := seedProduct(t, db, "Chocolate Cake", "Cakes", 35.99, 20)
	seedProduct(t, db, "Croissants", "Pastries", 12.99, 40)
	retired := seedProduct(t, db, "Seasonal Stollen", "Cakes", 29.99, 0)
	retired.IsAvailable = false
	require.NoError(t, db.Save(retired).Error)

	t.Run("hides retired products", func(t *testing.T) {
		products, err := svc.ListAvailable("")
		require.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("filters by category", func(t *testing.T) {
		products, err := svc.ListAvailable("Cakes")
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, cake.ID, products[0].ID)
	})
}

func TestProductService_Create(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProductService(repository.NewProductRepository(db))

	t.Run("creates an available product", func(t *testing.T) {
		product, err := svc.Create(ProductInput{
			Name:     "Baguette",
			Price:    4.50,
			Category: "Bread",
			Stock:    12,
		})
		require.NoError(t, err)
		assert.True(t, product.IsAvailable)
	})

	t.Run("negative price fails validation", func(t *testing.T) {
		_, err := svc.Create(ProductInput{Name: "Free Cake", Price: -1, Category: "Cakes"})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("missing name fails validation", func(t *testing.T) {
		_, err := svc.Create(ProductInput{Price: 5, Category: "Bread"})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestProductService_Update(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProductService(repository.NewProductRepository(db))
	product := seedProduct(t, db, "Macarons", "Pastries", 18.99, 25)

	t.Run("applies only the fields present", func(t *testing.T) {
		price := 21.99
		updated, err := svc.Update(product.ID, ProductPatch{Price: &price})
		require.NoError(t, err)
		assert.InDelta(t, 21.99, updated.Price, 1e-9)
		assert.Equal(t, "Macarons", updated.Name)
		assert.Equal(t, 25, updated.Stock)
	})

	t.Run("can retire a product", func(t *testing.T) {
		available := false
		updated, err := svc.Update(product.ID, ProductPatch{IsAvailable: &available})
		require.NoError(t, err)
		assert.False(t, updated.IsAvailable)

		products, err := svc.ListAvailable("")
		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("missing product", func(t *testing.T) {
		name := "Ghost"
		_, err := svc.Update(9999, ProductPatch{Name: &name})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}
