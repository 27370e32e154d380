package main

import (
	"log"
	"os"

	"github.com/avillarama/resto-api/internal/application/service"
	"github.com/avillarama/resto-api/internal/config"
	"github.com/avillarama/resto-api/internal/infrastructure/database"
	"github.com/avillarama/resto-api/internal/infrastructure/repository"
	"github.com/avillarama/resto-api/internal/presentation/http/handler"
	"github.com/avillarama/resto-api/internal/presentation/http/routes"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize repositories
	txManager := repository.NewTxManager(db)
	memberRepo := repository.NewMemberRepository(db)
	dishRepo := repository.NewDishRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	lineItemRepo := repository.NewOrderLineItemRepository(db)
	discountRepo := repository.NewDiscountRepository(db)
	billRepo := repository.NewBillRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	historyRepo := repository.NewHistoryRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	memberService := service.NewMemberService(memberRepo)
	dishService := service.NewDishService(dishRepo)
	orderService := service.NewOrderService(orderRepo, lineItemRepo, memberRepo, dishRepo, historyRepo, txManager)
	discountService := service.NewDiscountService(discountRepo, memberRepo, txManager)
	billingService := service.NewBillingService(billRepo, orderRepo, paymentRepo, discountService, txManager)
	paymentService := service.NewPaymentService(paymentRepo, billRepo, memberRepo, historyRepo, txManager)
	historyService := service.NewHistoryService(historyRepo, memberRepo, orderRepo, paymentRepo, analyticsRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Member:   handler.NewMemberHandler(memberService, historyService),
		Dish:     handler.NewDishHandler(dishService),
		Order:    handler.NewOrderHandler(orderService),
		Discount: handler.NewDiscountHandler(discountService),
		Bill:     handler.NewBillHandler(billingService, &cfg.Billing),
		Payment:  handler.NewPaymentHandler(paymentService),
	}

	// Setup router
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Start server
	port := cfg.App.Port
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}

	log.Printf("Starting %s on port %s (env: %s)", cfg.App.Name, port, cfg.App.Env)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
