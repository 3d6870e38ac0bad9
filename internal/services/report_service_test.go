package services

import (
	"testing"
	"time"

	"bakery_shop/internal/models"
	"bakery_shop/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newReportService(db *gorm.DB) ReportService {
	return NewReportService(repository.NewReportRepository(db))
}

func seedOrder(t *testing.T, db *gorm.DB, userID uint, total float64, status string, createdAt time.Time) *models.Order {
	order := &models.Order{
		UserID:      userID,
		TotalAmount: total,
		Status:      status,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	require.NoError(t, db.Create(order).Error)
	return order
}

func TestReportService_EmptyStore(t *testing.T) {
	db := setupTestDB(t)
	svc := newReportService(db)

	t.Run("overview defaults to zero", func(t *testing.T) {
		overview, err := svc.Overview()
		require.NoError(t, err)
		assert.Zero(t, overview.TotalOrders)
		assert.Zero(t, overview.TotalRevenue)
		assert.Zero(t, overview.TotalProducts)
		assert.Zero(t, overview.TotalCustomers)
		assert.Empty(t, overview.OrdersByStatus)
		assert.Empty(t, overview.RecentOrders)
	})

	t.Run("average order value is zero on zero orders", func(t *testing.T) {
		analytics, err := svc.OrderAnalytics()
		require.NoError(t, err)
		assert.Zero(t, analytics.AverageOrderValue)
		assert.Zero(t, analytics.AverageProcessingDays)
		assert.Zero(t, analytics.RevenueThisMonth)
	})

	t.Run("growth is zero when previous month is zero", func(t *testing.T) {
		summary, err := svc.PerformanceSummary()
		require.NoError(t, err)
		assert.Zero(t, summary.Growth.RevenuePercent)
		assert.Zero(t, summary.Growth.OrdersPercent)
	})

	t.Run("inventory value is zero with no products", func(t *testing.T) {
		stats, err := svc.InventoryStats(5)
		require.NoError(t, err)
		assert.Zero(t, stats.TotalInventoryValue)
		assert.Zero(t, stats.OutOfStockCount)
		assert.Empty(t, stats.LowStockItems)
	})
}

func TestReportService_PerformanceSummary(t *testing.T) {
	db := setupTestDB(t)
	svc := newReportService(db)
	user := seedUser(t, db, "alice", false)

	now := time.Now().UTC()
	currentStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	seedOrder(t, db, user.ID, 35.99, "pending", now)
	seedOrder(t, db, user.ID, 10.00, "delivered", currentStart.Add(-time.Hour))

	summary, err := svc.PerformanceSummary()
	require.NoError(t, err)

	assert.InDelta(t, 35.99, summary.CurrentMonth.Revenue, 1e-9)
	assert.Equal(t, int64(1), summary.CurrentMonth.Orders)
	assert.InDelta(t, 10.00, summary.LastMonth.Revenue, 1e-9)
	assert.Equal(t, int64(1), summary.LastMonth.Orders)
	assert.InDelta(t, 259.9, summary.Growth.RevenuePercent, 1e-9)
	assert.Zero(t, summary.Growth.OrdersPercent)
}

func TestReportService_TopProducts(t *testing.T) {
	db := setupTestDB(t)
	svc := newReportService(db)
	user := seedUser(t, db, "alice", false)
	cake := seedProduct(t, db, "Chocolate Cake", "Cakes", 35.99, 20)
	croissants := seedProduct(t, db, "Croissants", "Pastries", 12.99, 40)

	order := seedOrder(t, db, user.ID, 5*35.99+3*12.99, "pending", time.Now().UTC())
	require.NoError(t, db.Create(&models.OrderItem{OrderID: order.ID, ProductID: cake.ID, Quantity: 5, UnitPrice: 35.99}).Error)
	require.NoError(t, db.Create(&models.OrderItem{OrderID: order.ID, ProductID: croissants.ID, Quantity: 3, UnitPrice: 12.99}).Error)

	t.Run("limit 1 returns only the best seller", func(t *testing.T) {
		rows, err := svc.TopProducts(1)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, cake.ID, rows[0].ID)
		assert.Equal(t, int64(5), rows[0].QuantitySold)
		assert.InDelta(t, 5*35.99, rows[0].Revenue, 1e-9)
	})

	t.Run("default limit covers both", func(t *testing.T) {
		rows, err := svc.TopProducts(0)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, cake.ID, rows[0].ID)
		assert.Equal(t, croissants.ID, rows[1].ID)
	})
}

func TestReportService_Overview(t *testing.T) {
	db := setupTestDB(t)
	svc := newReportService(db)
	alice := seedUser(t, db, "alice", false)
	seedUser(t, db, "bob", false)
	seedUser(t, db, "admin", true)
	seedProduct(t, db, "Chocolate Cake", "Cakes", 35.99, 20)

	now := time.Now().UTC()
	seedOrder(t, db, alice.ID, 20, "pending", now.Add(-3*time.Hour))
	seedOrder(t, db, alice.ID, 30, "pending", now.Add(-2*time.Hour))
	seedOrder(t, db, alice.ID, 50, "delivered", now.Add(-time.Hour))

	overview, err := svc.Overview()
	require.NoError(t, err)

	assert.Equal(t, int64(3), overview.TotalOrders)
	assert.InDelta(t, 100, overview.TotalRevenue, 1e-9)
	assert.Equal(t, int64(1), overview.TotalProducts)
	assert.Equal(t, int64(2), overview.TotalCustomers) // admin excluded
	assert.Equal(t, int64(2), overview.OrdersByStatus["pending"])
	assert.Equal(t, int64(1), overview.OrdersByStatus["delivered"])
	require.Len(t, overview.RecentOrders, 3)
	assert.InDelta(t, 50, overview.RecentOrders[0].TotalAmount, 1e-9)
}

func TestReportService_CustomerStats(t *testing.T) {
	db := setupTestDB(t)
	svc := newReportService(db)
	alice := seedUser(t, db, "alice", false)
	bob := seedUser(t, db, "bob", false)
	seedUser(t, db, "admin", true)

	now := time.Now().UTC()
	seedOrder(t, db, alice.ID, 100, "delivered", now)
	seedOrder(t, db, bob.ID, 40, "pending", now)
	seedOrder(t, db, bob.ID, 20, "pending", now)

	stats, err := svc.CustomerStats()
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalCustomers)
	assert.Equal(t, int64(2), stats.NewThisMonth)
	require.Len(t, stats.TopCustomers, 2)
	assert.Equal(t, "alice", stats.TopCustomers[0].Username)
	assert.InDelta(t, 100, stats.TopCustomers[0].TotalSpent, 1e-9)
	assert.Equal(t, "bob", stats.TopCustomers[1].Username)
	assert.Equal(t, int64(2), stats.TopCustomers[1].Orders)
}

func TestReportService_InventoryStats(t *testing.T) {
	db := setupTestDB(t)
	svc := newReportService(db)

	seedProduct(t, db, "Chocolate Cake", "Cakes", 35.99, 20)
	seedProduct(t, db, "Macarons", "Pastries", 18.99, 3)
	seedProduct(t, db, "Stollen", "Cakes", 29.99, 0)

	stats, err := svc.InventoryStats(5)
	require.NoError(t, err)

	require.Len(t, stats.LowStockItems, 2)
	assert.Equal(t, int64(1), stats.OutOfStockCount)
	assert.InDelta(t, 35.99*20+18.99*3, stats.TotalInventoryValue, 1e-9)
	assert.Equal(t, int64(3), stats.TotalProducts)
}

func TestReportService_OrderAnalytics(t *testing.T) {
	db := setupTestDB(t)
	svc := newReportService(db)
	user := seedUser(t, db, "alice", false)

	now := time.Now().UTC()
	seedOrder(t, db, user.ID, 10, "pending", now)
	delivered := seedOrder(t, db, user.ID, 20, "delivered", now.Add(-72*time.Hour))
	// Two days between creation and the delivery update.
	require.NoError(t, db.Model(&models.Order{}).Where("id = ?", delivered.ID).
		Update("updated_at", delivered.CreatedAt.Add(48*time.Hour)).Error)

	analytics, err := svc.OrderAnalytics()
	require.NoError(t, err)

	assert.InDelta(t, 15, analytics.AverageOrderValue, 1e-9)
	assert.Equal(t, int64(1), analytics.StatusBreakdown["pending"])
	assert.Equal(t, int64(1), analytics.StatusBreakdown["delivered"])
	assert.InDelta(t, 2.0, analytics.AverageProcessingDays, 0.01)
}

func TestReportService_SalesTrendAndRevenue(t *testing.T) {
	db := setupTestDB(t)
	svc := newReportService(db)
	user := seedUser(t, db, "alice", false)

	now := time.Now().UTC()
	seedOrder(t, db, user.ID, 25, "pending", now.Add(-time.Hour))
	seedOrder(t, db, user.ID, 15, "pending", now.Add(-time.Hour))
	seedOrder(t, db, user.ID, 99, "pending", now.AddDate(0, 0, -40))

	t.Run("sales trend excludes orders outside the window", func(t *testing.T) {
		trend, err := svc.SalesTrend(30)
		require.NoError(t, err)
		assert.Equal(t, 30, trend.PeriodDays)

		var revenue float64
		var orders int64
		for _, row := range trend.SalesData {
			revenue += row.Revenue
			orders += row.Orders
		}
		assert.InDelta(t, 40, revenue, 1e-9)
		assert.Equal(t, int64(2), orders)
	})

	t.Run("revenue defaults to the month window", func(t *testing.T) {
		stats, err := svc.RevenueByPeriod("")
		require.NoError(t, err)
		assert.Equal(t, "month", stats.Period)
		require.NotEmpty(t, stats.Data)
	})

	t.Run("year window includes everything", func(t *testing.T) {
		stats, err := svc.RevenueByPeriod("year")
		require.NoError(t, err)

		var revenue float64
		for _, row := range stats.Data {
			revenue += row.Revenue
		}
		assert.InDelta(t, 139, revenue, 1e-9)
	})
}

func TestReportService_CategoryStats(t *testing.T) {
	db := setupTestDB(t)
	svc := newReportService(db)
	user := seedUser(t, db, "alice", false)
	cake := seedProduct(t, db, "Chocolate Cake", "Cakes", 35.99, 20)
	macarons := seedProduct(t, db, "Macarons", "Pastries", 18.99, 25)

	order := seedOrder(t, db, user.ID, 2*35.99+18.99, "pending", time.Now().UTC())
	require.NoError(t, db.Create(&models.OrderItem{OrderID: order.ID, ProductID: cake.ID, Quantity: 2, UnitPrice: 35.99}).Error)
	require.NoError(t, db.Create(&models.OrderItem{OrderID: order.ID, ProductID: macarons.ID, Quantity: 1, UnitPrice: 18.99}).Error)

	rows, err := svc.CategoryStats()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byName := map[string]repositoryCategoryRow{}
	for _, row := range rows {
		byName[row.Name] = repositoryCategoryRow{row.ItemsSold, row.Revenue, row.AveragePrice}
	}
	assert.Equal(t, int64(1), byName["Cakes"].items)
	assert.InDelta(t, 2*35.99, byName["Cakes"].revenue, 1e-9)
	assert.InDelta(t, 35.99, byName["Cakes"].avgPrice, 1e-9)
	assert.InDelta(t, 18.99, byName["Pastries"].revenue, 1e-9)
}

type repositoryCategoryRow struct {
	items    int64
	revenue  float64
	avgPrice float64
}
