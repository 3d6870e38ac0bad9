package repository

import (
	"time"

	"bakery_shop/internal/models"

	"gorm.io/gorm"
)

// Row types scanned out of the aggregation queries.

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type DailyRevenueRow struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Orders  int64   `json:"orders"`
}

type TopProductRow struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	QuantitySold int64   `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

type TopCustomerRow struct {
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	Orders     int64   `json:"orders"`
	TotalSpent float64 `json:"total_spent"`
}

type CategoryStatRow struct {
	Name         string  `json:"name"`
	ItemsSold    int64   `json:"items_sold"`
	Revenue      float64 `json:"revenue"`
	AveragePrice float64 `json:"average_price"`
}

// ReportRepository is the read-only aggregation layer behind the admin
// dashboard. Every method is a side-effect-free query; monetary sums
// coalesce to 0 when no rows match.
type ReportRepository interface {
	CountOrders() (int64, error)
	SumRevenue() (float64, error)
	CountProducts() (int64, error)
	CountCustomers() (int64, error)
	CountCustomersSince(t time.Time) (int64, error)
	OrdersByStatus() ([]StatusCount, error)
	RecentOrders(limit int) ([]models.Order, error)
	DailyRevenueSince(t time.Time) ([]DailyRevenueRow, error)
	TopProducts(limit int) ([]TopProductRow, error)
	TopCustomers(limit int) ([]TopCustomerRow, error)
	LowStockProducts(threshold int) ([]models.Product, error)
	OutOfStockCount() (int64, error)
	InventoryValue() (float64, error)
	AverageOrderValue() (float64, error)
	CountOrdersSince(t time.Time) (int64, error)
	SumRevenueSince(t time.Time) (float64, error)
	CountOrdersBetween(start, end time.Time) (int64, error)
	SumRevenueBetween(start, end time.Time) (float64, error)
	DeliveredOrders() ([]models.Order, error)
	CategoryStats() ([]CategoryStatRow, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) CountOrders() (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).Count(&count).Error
	return count, err
}

func (r *reportRepository) SumRevenue() (float64, error) {
	var total float64
	err := r.db.Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *reportRepository) CountProducts() (int64, error) {
	var count int64
	err := r.db.Model(&models.Product{}).Count(&count).Error
	return count, err
}

func (r *reportRepository) CountCustomers() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("is_admin = ?", false).Count(&count).Error
	return count, err
}

func (r *reportRepository) CountCustomersSince(t time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("is_admin = ? AND created_at >= ?", false, t).
		Count(&count).Error
	return count, err
}

func (r *reportRepository) OrdersByStatus() ([]StatusCount, error) {
	var rows []StatusCount
	err := r.db.Model(&models.Order{}).
		Select("status, COUNT(id) as count").
		Group("status").
		Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) RecentOrders(limit int) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Order("created_at DESC").Limit(limit).Find(&orders).Error
	return orders, err
}

func (r *reportRepository) DailyRevenueSince(t time.Time) ([]DailyRevenueRow, error) {
	var rows []DailyRevenueRow
	err := r.db.Model(&models.Order{}).
		Select("DATE(created_at) as date, COALESCE(SUM(total_amount), 0) as revenue, COUNT(id) as orders").
		Where("created_at >= ?", t).
		Group("DATE(created_at)").
		Order("date ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) TopProducts(limit int) ([]TopProductRow, error) {
	var rows []TopProductRow
	err := r.db.Table("order_items").
		Select("products.id as id, products.name as name, products.price as price, " +
			"SUM(order_items.quantity) as quantity_sold, " +
			"SUM(order_items.quantity * order_items.unit_price) as revenue").
		Joins("JOIN products ON products.id = order_items.product_id").
		Group("products.id, products.name, products.price").
		Order("quantity_sold DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) TopCustomers(limit int) ([]TopCustomerRow, error) {
	var rows []TopCustomerRow
	err := r.db.Table("orders").
		Select("users.username as username, users.email as email, " +
			"COUNT(orders.id) as orders, COALESCE(SUM(orders.total_amount), 0) as total_spent").
		Joins("JOIN users ON users.id = orders.user_id").
		Group("users.id, users.username, users.email").
		Order("total_spent DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) LowStockProducts(threshold int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("stock <= ?", threshold).Find(&products).Error
	return products, err
}

func (r *reportRepository) OutOfStockCount() (int64, error) {
	var count int64
	err := r.db.Model(&models.Product{}).Where("stock = ?", 0).Count(&count).Error
	return count, err
}

func (r *reportRepository) InventoryValue() (float64, error) {
	var total float64
	err := r.db.Model(&models.Product{}).
		Select("COALESCE(SUM(price * stock), 0)").
		Scan(&total).Error
	return total, err
}

func (r *reportRepository) AverageOrderValue() (float64, error) {
	var avg float64
	err := r.db.Model(&models.Order{}).
		Select("COALESCE(AVG(total_amount), 0)").
		Scan(&avg).Error
	return avg, err
}

func (r *reportRepository) CountOrdersSince(t time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).Where("created_at >= ?", t).Count(&count).Error
	return count, err
}

func (r *reportRepository) SumRevenueSince(t time.Time) (float64, error) {
	var total float64
	err := r.db.Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("created_at >= ?", t).
		Scan(&total).Error
	return total, err
}

func (r *reportRepository) CountOrdersBetween(start, end time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).
		Where("created_at >= ? AND created_at <= ?", start, end).
		Count(&count).Error
	return count, err
}

func (r *reportRepository) SumRevenueBetween(start, end time.Time) (float64, error) {
	var total float64
	err := r.db.Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("created_at >= ? AND created_at <= ?", start, end).
		Scan(&total).Error
	return total, err
}

func (r *reportRepository) DeliveredOrders() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("status = ?", string(models.OrderDelivered)).Find(&orders).Error
	return orders, err
}

func (r *reportRepository) CategoryStats() ([]CategoryStatRow, error) {
	var rows []CategoryStatRow
	err := r.db.Table("order_items").
		Select("products.category as name, COUNT(order_items.id) as items_sold, " +
			"SUM(order_items.quantity * order_items.unit_price) as revenue, " +
			"AVG(products.price) as average_price").
		Joins("JOIN products ON products.id = order_items.product_id").
		Group("products.category").
		Scan(&rows).Error
	return rows, err
}
