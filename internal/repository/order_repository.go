package repository

import (
	"time"

	"bakery_shop/internal/apperrors"
	"bakery_shop/internal/models"

	"gorm.io/gorm"
)

type OrderRepository interface {
	CreateFromCart(userID uint, specialInstructions string, deliveryDate *time.Time) (*models.Order, error)
	GetByID(id uint) (*models.Order, error)
	GetByUser(userID uint) ([]models.Order, error)
	GetAll() ([]models.Order, error)
	Update(order *models.Order) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// CreateFromCart converts the user's cart into an order inside a single
// transaction: the cart is read, the order and its items are written
// with unit prices frozen at the current product price, and the cart
// rows are deleted. Either everything commits or nothing does, so a
// racing call from the same user finds an empty cart and fails with
// ErrEmptyCart instead of double-charging.
func (r *orderRepository) CreateFromCart(userID uint, specialInstructions string, deliveryDate *time.Time) (*models.Order, error) {
	var order *models.Order

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var cartItems []models.CartItem
		if err := tx.Preload("Product").Where("user_id = ?", userID).Find(&cartItems).Error; err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return apperrors.ErrEmptyCart
		}

		var total float64
		for _, item := range cartItems {
			total += item.Product.Price * float64(item.Quantity)
		}

		order = &models.Order{
			UserID:              userID,
			TotalAmount:         total,
			Status:              string(models.OrderPending),
			DeliveryDate:        deliveryDate,
			SpecialInstructions: specialInstructions,
		}
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for _, item := range cartItems {
			orderItem := models.OrderItem{
				OrderID:   order.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: item.Product.Price,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
			order.Items = append(order.Items, orderItem)
		}

		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").Where("user_id = ?", userID).Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) Update(order *models.Order) error {
	return r.db.Save(order).Error
}
