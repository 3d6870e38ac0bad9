package services

import (
	"math"
	"time"

	"bakery_shop/internal/models"
	"bakery_shop/internal/repository"
)

type Overview struct {
	TotalOrders    int64            `json:"total_orders"`
	TotalRevenue   float64          `json:"total_revenue"`
	TotalProducts  int64            `json:"total_products"`
	TotalCustomers int64            `json:"total_customers"`
	OrdersByStatus map[string]int64 `json:"orders_by_status"`
	RecentOrders   []models.Order   `json:"recent_orders"`
}

type RevenueStats struct {
	Period string                       `json:"period"`
	Data   []repository.DailyRevenueRow `json:"data"`
}

type CustomerStats struct {
	TotalCustomers int64                       `json:"total_customers"`
	NewThisMonth   int64                       `json:"new_this_month"`
	TopCustomers   []repository.TopCustomerRow `json:"top_customers"`
}

type LowStockItem struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Stock int     `json:"stock"`
	Price float64 `json:"price"`
}

type InventoryStats struct {
	LowStockItems       []LowStockItem `json:"low_stock_items"`
	OutOfStockCount     int64          `json:"out_of_stock_count"`
	TotalInventoryValue float64        `json:"total_inventory_value"`
	TotalProducts       int64          `json:"total_products"`
}

type OrderAnalytics struct {
	AverageOrderValue     float64          `json:"average_order_value"`
	StatusBreakdown       map[string]int64 `json:"status_breakdown"`
	OrdersThisMonth       int64            `json:"orders_this_month"`
	RevenueThisMonth      float64          `json:"revenue_this_month"`
	AverageProcessingDays float64          `json:"average_processing_days"`
}

type SalesTrend struct {
	PeriodDays int                          `json:"period_days"`
	SalesData  []repository.DailyRevenueRow `json:"sales_data"`
}

type MonthMetrics struct {
	Revenue float64 `json:"revenue"`
	Orders  int64   `json:"orders"`
}

type GrowthMetrics struct {
	RevenuePercent float64 `json:"revenue_percent"`
	OrdersPercent  float64 `json:"orders_percent"`
}

type PerformanceSummary struct {
	CurrentMonth MonthMetrics  `json:"current_month"`
	LastMonth    MonthMetrics  `json:"last_month"`
	Growth       GrowthMetrics `json:"growth"`
}

// ReportService produces the admin dashboard metrics. Every method is
// a deterministic read; admin gating happens upstream in middleware.
type ReportService interface {
	Overview() (*Overview, error)
	RevenueByPeriod(period string) (*RevenueStats, error)
	TopProducts(limit int) ([]repository.TopProductRow, error)
	CustomerStats() (*CustomerStats, error)
	InventoryStats(threshold int) (*InventoryStats, error)
	OrderAnalytics() (*OrderAnalytics, error)
	SalesTrend(days int) (*SalesTrend, error)
	CategoryStats() ([]repository.CategoryStatRow, error)
	PerformanceSummary() (*PerformanceSummary, error)
}

type reportService struct {
	reportRepo repository.ReportRepository
}

func NewReportService(reportRepo repository.ReportRepository) ReportService {
	return &reportService{reportRepo: reportRepo}
}

func (s *reportService) Overview() (*Overview, error) {
	totalOrders, err := s.reportRepo.CountOrders()
	if err != nil {
		return nil, err
	}
	totalRevenue, err := s.reportRepo.SumRevenue()
	if err != nil {
		return nil, err
	}
	totalProducts, err := s.reportRepo.CountProducts()
	if err != nil {
		return nil, err
	}
	totalCustomers, err := s.reportRepo.CountCustomers()
	if err != nil {
		return nil, err
	}
	byStatus, err := s.reportRepo.OrdersByStatus()
	if err != nil {
		return nil, err
	}
	recent, err := s.reportRepo.RecentOrders(5)
	if err != nil {
		return nil, err
	}

	return &Overview{
		TotalOrders:    totalOrders,
		TotalRevenue:   totalRevenue,
		TotalProducts:  totalProducts,
		TotalCustomers: totalCustomers,
		OrdersByStatus: statusMap(byStatus),
		RecentOrders:   recent,
	}, nil
}

// RevenueByPeriod returns per-day revenue within a lookback window of
// 1, 7, 30 or 365 days for day, week, month and year respectively.
// Unknown keywords fall back to month.
func (s *reportService) RevenueByPeriod(period string) (*RevenueStats, error) {
	var days int
	switch period {
	case "day":
		days = 1
	case "week":
		days = 7
	case "year":
		days = 365
	default:
		period = "month"
		days = 30
	}

	start := time.Now().UTC().AddDate(0, 0, -days)
	rows, err := s.reportRepo.DailyRevenueSince(start)
	if err != nil {
		return nil, err
	}
	return &RevenueStats{Period: period, Data: rows}, nil
}

func (s *reportService) TopProducts(limit int) ([]repository.TopProductRow, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.reportRepo.TopProducts(limit)
}

func (s *reportService) CustomerStats() (*CustomerStats, error) {
	total, err := s.reportRepo.CountCustomers()
	if err != nil {
		return nil, err
	}
	newThisMonth, err := s.reportRepo.CountCustomersSince(monthStart(time.Now().UTC()))
	if err != nil {
		return nil, err
	}
	top, err := s.reportRepo.TopCustomers(10)
	if err != nil {
		return nil, err
	}

	return &CustomerStats{
		TotalCustomers: total,
		NewThisMonth:   newThisMonth,
		TopCustomers:   top,
	}, nil
}

func (s *reportService) InventoryStats(threshold int) (*InventoryStats, error) {
	if threshold <= 0 {
		threshold = 5
	}

	lowStock, err := s.reportRepo.LowStockProducts(threshold)
	if err != nil {
		return nil, err
	}
	outOfStock, err := s.reportRepo.OutOfStockCount()
	if err != nil {
		return nil, err
	}
	value, err := s.reportRepo.InventoryValue()
	if err != nil {
		return nil, err
	}
	totalProducts, err := s.reportRepo.CountProducts()
	if err != nil {
		return nil, err
	}

	items := make([]LowStockItem, 0, len(lowStock))
	for _, p := range lowStock {
		items = append(items, LowStockItem{ID: p.ID, Name: p.Name, Stock: p.Stock, Price: p.Price})
	}

	return &InventoryStats{
		LowStockItems:       items,
		OutOfStockCount:     outOfStock,
		TotalInventoryValue: value,
		TotalProducts:       totalProducts,
	}, nil
}

func (s *reportService) OrderAnalytics() (*OrderAnalytics, error) {
	avg, err := s.reportRepo.AverageOrderValue()
	if err != nil {
		return nil, err
	}
	byStatus, err := s.reportRepo.OrdersByStatus()
	if err != nil {
		return nil, err
	}

	start := monthStart(time.Now().UTC())
	ordersThisMonth, err := s.reportRepo.CountOrdersSince(start)
	if err != nil {
		return nil, err
	}
	revenueThisMonth, err := s.reportRepo.SumRevenueSince(start)
	if err != nil {
		return nil, err
	}

	delivered, err := s.reportRepo.DeliveredOrders()
	if err != nil {
		return nil, err
	}
	var avgDays float64
	if len(delivered) > 0 {
		var totalSeconds float64
		for _, order := range delivered {
			totalSeconds += order.UpdatedAt.Sub(order.CreatedAt).Seconds()
		}
		avgDays = totalSeconds / float64(len(delivered)) / 86400
	}

	return &OrderAnalytics{
		AverageOrderValue:     avg,
		StatusBreakdown:       statusMap(byStatus),
		OrdersThisMonth:       ordersThisMonth,
		RevenueThisMonth:      revenueThisMonth,
		AverageProcessingDays: round2(avgDays),
	}, nil
}

func (s *reportService) SalesTrend(days int) (*SalesTrend, error) {
	if days <= 0 {
		days = 30
	}

	start := time.Now().UTC().AddDate(0, 0, -days)
	rows, err := s.reportRepo.DailyRevenueSince(start)
	if err != nil {
		return nil, err
	}
	return &SalesTrend{PeriodDays: days, SalesData: rows}, nil
}

func (s *reportService) CategoryStats() ([]repository.CategoryStatRow, error) {
	return s.reportRepo.CategoryStats()
}

// PerformanceSummary compares the current calendar month with the
// previous one. Growth is 0 when the previous period had nothing to
// compare against.
func (s *reportService) PerformanceSummary() (*PerformanceSummary, error) {
	now := time.Now().UTC()
	currentStart := monthStart(now)
	lastStart := currentStart.AddDate(0, -1, 0)
	lastEnd := currentStart.Add(-time.Second)

	currentRevenue, err := s.reportRepo.SumRevenueSince(currentStart)
	if err != nil {
		return nil, err
	}
	currentOrders, err := s.reportRepo.CountOrdersSince(currentStart)
	if err != nil {
		return nil, err
	}
	lastRevenue, err := s.reportRepo.SumRevenueBetween(lastStart, lastEnd)
	if err != nil {
		return nil, err
	}
	lastOrders, err := s.reportRepo.CountOrdersBetween(lastStart, lastEnd)
	if err != nil {
		return nil, err
	}

	return &PerformanceSummary{
		CurrentMonth: MonthMetrics{Revenue: currentRevenue, Orders: currentOrders},
		LastMonth:    MonthMetrics{Revenue: lastRevenue, Orders: lastOrders},
		Growth: GrowthMetrics{
			RevenuePercent: round2(growthPercent(currentRevenue, lastRevenue)),
			OrdersPercent:  round2(growthPercent(float64(currentOrders), float64(lastOrders))),
		},
	}, nil
}

func statusMap(rows []repository.StatusCount) map[string]int64 {
	m := make(map[string]int64, len(rows))
	for _, row := range rows {
		m[row.Status] = row.Count
	}
	return m
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func growthPercent(current, previous float64) float64 {
	if previous <= 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
