package main

import (
	"fmt"
	"log"

	"bakery_shop/internal/config"
	"bakery_shop/internal/database"
	"bakery_shop/internal/models"
	"bakery_shop/internal/repository"
	"bakery_shop/internal/services"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables
	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	fmt.Println("Creating tables...")
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Create default admin user
	fmt.Println("Creating default admin user...")
	userRepo := repository.NewUserRepository(db)
	authService := services.NewAuthService(userRepo, cfg.BcryptCost)

	admin, err := authService.Signup(services.SignupInput{
		Username: "admin",
		Email:    "admin@bakery.local",
		Password: "admin123",
	})
	if err != nil {
		log.Fatal("Failed to create admin user:", err)
	}
	admin.IsAdmin = true
	if err := userRepo.Update(admin); err != nil {
		log.Fatal("Failed to promote admin user:", err)
	}
	fmt.Println("Username: admin")
	fmt.Println("Password: admin123")

	// Seed sample catalog
	fmt.Println("Seeding sample products...")
	productRepo := repository.NewProductRepository(db)
	products := []models.Product{
		{
			Name:        "Chocolate Cake",
			Description: "Rich and moist chocolate cake with ganache",
			Price:       35.99,
			Category:    "Cakes",
			Stock:       20,
			IsAvailable: true,
			ImageURL:    "/assets/images/chocolate-cake.jpg",
		},
		{
			Name:        "Vanilla Cupcakes",
			Description: "Classic vanilla cupcakes with cream frosting",
			Price:       24.99,
			Category:    "Cupcakes",
			Stock:       30,
			IsAvailable: true,
			ImageURL:    "/assets/images/cupcakes.jpg",
		},
		{
			Name:        "Strawberry Cheesecake",
			Description: "Creamy cheesecake with fresh strawberry topping",
			Price:       45.99,
			Category:    "Cakes",
			Stock:       15,
			IsAvailable: true,
			ImageURL:    "/assets/images/cheesecake.jpg",
		},
		{
			Name:        "Macarons (Assorted)",
			Description: "Colorful French macarons (12 pieces)",
			Price:       18.99,
			Category:    "Pastries",
			Stock:       25,
			IsAvailable: true,
			ImageURL:    "/assets/images/macarons.jpg",
		},
		{
			Name:        "Custom Cake",
			Description: "Design your own custom cake",
			Price:       49.99,
			Category:    "Custom",
			Stock:       10,
			IsAvailable: true,
			ImageURL:    "/assets/images/custom-cake.jpg",
		},
		{
			Name:        "Croissants",
			Description: "Buttery French croissants (6 pieces)",
			Price:       12.99,
			Category:    "Pastries",
			Stock:       40,
			IsAvailable: true,
			ImageURL:    "/assets/images/croissants.jpg",
		},
	}
	for i := range products {
		if err := productRepo.Create(&products[i]); err != nil {
			log.Printf("Warning: Failed to seed product %s: %v", products[i].Name, err)
		}
	}

	fmt.Println("Database initialization completed successfully!")
}
