package routes

import (
	"time"

	"github.com/avillarama/resto-api/internal/config"
	domainRepo "github.com/avillarama/resto-api/internal/domain/repository"
	"github.com/avillarama/resto-api/internal/presentation/http/handler"
	"github.com/avillarama/resto-api/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Member   *handler.MemberHandler
	Dish     *handler.DishHandler
	Order    *handler.OrderHandler
	Discount *handler.DiscountHandler
	Bill     *handler.BillHandler
	Payment  *handler.PaymentHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Per-client rate limiter
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		// Ledger writes must carry an Idempotency-Key header
		idempotencyRequired := middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		})

		registerMemberRoutes(v1, h)
		registerDishRoutes(v1, h)
		registerOrderRoutes(v1, h, idempotencyRequired)
		registerDiscountRoutes(v1, h)
		registerBillRoutes(v1, h, idempotencyRequired)
		registerPaymentRoutes(v1, h, idempotencyRequired)
	}

	return router
}

func registerMemberRoutes(v1 *gin.RouterGroup, h *Handlers) {
	members := v1.Group("/members")
	{
		members.GET("", h.Member.List)
		members.POST("", h.Member.Create)
		members.GET("/:id", h.Member.Get)
		members.PUT("/:id", h.Member.Update)
		members.DELETE("/:id", h.Member.Delete)
		members.GET("/:id/history", h.Member.History)
		members.GET("/:id/analytics", h.Member.Analytics)
	}
}

func registerDishRoutes(v1 *gin.RouterGroup, h *Handlers) {
	dishes := v1.Group("/dishes")
	{
		dishes.GET("", h.Dish.List)
		dishes.POST("", h.Dish.Create)
		dishes.GET("/:id", h.Dish.Get)
		dishes.PUT("/:id", h.Dish.Update)
		dishes.DELETE("/:id", h.Dish.Delete)
	}
}

func registerOrderRoutes(v1 *gin.RouterGroup, h *Handlers, idempotencyRequired gin.HandlerFunc) {
	orders := v1.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.POST("", idempotencyRequired, h.Order.Create)
		orders.GET("/:id", h.Order.Get)
		orders.DELETE("/:id", h.Order.Delete)
	}
}

func registerDiscountRoutes(v1 *gin.RouterGroup, h *Handlers) {
	discounts := v1.Group("/discounts")
	{
		discounts.GET("", h.Discount.List)
		discounts.GET("/:id", h.Discount.Get)
		discounts.POST("/inhouse", h.Discount.CreateInHouse)
		discounts.POST("/specialid", h.Discount.CreateSpecialID)
	}
}

func registerBillRoutes(v1 *gin.RouterGroup, h *Handlers, idempotencyRequired gin.HandlerFunc) {
	bills := v1.Group("/bills")
	{
		bills.GET("", h.Bill.List)
		bills.POST("", idempotencyRequired, h.Bill.Create)
		bills.GET("/defaults", h.Bill.Defaults)
		bills.GET("/outstanding", h.Bill.ListOutstanding)
		bills.GET("/:id", h.Bill.Get)
		bills.DELETE("/:id", h.Bill.Delete)
	}
}

func registerPaymentRoutes(v1 *gin.RouterGroup, h *Handlers, idempotencyRequired gin.HandlerFunc) {
	payments := v1.Group("/payments")
	{
		payments.GET("", h.Payment.List)
		payments.POST("", idempotencyRequired, h.Payment.Create)
		payments.GET("/:id", h.Payment.Get)
	}
}
