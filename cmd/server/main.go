package main

import (
	"log"
	"time"

	"bakery_shop/internal/config"
	"bakery_shop/internal/database"
	"bakery_shop/internal/handlers"
	"bakery_shop/internal/middleware"
	"bakery_shop/internal/repository"
	"bakery_shop/internal/services"
	"bakery_shop/internal/session"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize session store
	sessions, err := session.NewStore(cfg.RedisURL, time.Duration(cfg.SessionTimeout)*time.Second)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer sessions.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg.BcryptCost)
	userService := services.NewUserService(userRepo)
	productService := services.NewProductService(productRepo)
	cartService := services.NewCartService(cartRepo, productRepo)
	orderService := services.NewOrderService(orderRepo)
	reportService := services.NewReportService(reportRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, userService, sessions)
	productHandler := handlers.NewProductHandler(productService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)
	adminHandler := handlers.NewAdminHandler(productService, orderService)
	dashboardHandler := handlers.NewDashboardHandler(reportService)

	// Setup routes
	router := gin.Default()

	requireAuth := middleware.RequireAuth(sessions, userRepo)
	requireAdmin := middleware.RequireAdmin()

	auth := router.Group("/api/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", requireAuth, authHandler.Logout)
		auth.GET("/profile", requireAuth, authHandler.GetProfile)
		auth.PUT("/profile", requireAuth, authHandler.UpdateProfile)
	}

	products := router.Group("/api/products")
	{
		products.GET("", productHandler.List)
		products.GET("/:id", productHandler.GetByID)
		products.GET("/category/:category", productHandler.ListByCategory)
	}

	cart := router.Group("/api/cart", requireAuth)
	{
		cart.GET("", cartHandler.Get)
		cart.POST("/add", cartHandler.Add)
		cart.DELETE("/remove/:item_id", cartHandler.Remove)
		cart.DELETE("/clear", cartHandler.Clear)
	}

	orders := router.Group("/api/orders", requireAuth)
	{
		orders.POST("", orderHandler.Create)
		orders.GET("", orderHandler.List)
		orders.GET("/:id", orderHandler.GetByID)
		orders.GET("/:id/status", orderHandler.GetStatus)
	}

	admin := router.Group("/api/admin", requireAuth, requireAdmin)
	{
		admin.POST("/products", adminHandler.CreateProduct)
		admin.PUT("/products/:id", adminHandler.UpdateProduct)
		admin.GET("/orders", adminHandler.ListOrders)
		admin.PUT("/orders/:id/status", adminHandler.UpdateOrderStatus)
	}

	dashboard := router.Group("/api/dashboard", requireAuth, requireAdmin)
	{
		dashboard.GET("/overview", dashboardHandler.Overview)
		dashboard.GET("/revenue", dashboardHandler.Revenue)
		dashboard.GET("/top-products", dashboardHandler.TopProducts)
		dashboard.GET("/customer-stats", dashboardHandler.CustomerStats)
		dashboard.GET("/inventory", dashboardHandler.Inventory)
		dashboard.GET("/order-analytics", dashboardHandler.OrderAnalytics)
		dashboard.GET("/sales-trend", dashboardHandler.SalesTrend)
		dashboard.GET("/category-stats", dashboardHandler.CategoryStats)
		dashboard.GET("/performance-summary", dashboardHandler.PerformanceSummary)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
