package main

import (
	"time"

	"purchasing-service/internal/handler"
	"purchasing-service/internal/middleware"
	"purchasing-service/internal/purchasing"
	"purchasing-service/pkg/config"
	"purchasing-service/pkg/database"
	"purchasing-service/pkg/jwtutil"
	"purchasing-service/pkg/logger"
	"purchasing-service/prometheus"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	logger.InitLogger(cfg)
	log := logger.GetLogger()
	log.Info("Starting purchasing service...", zap.String("environment", cfg.Server.Env))

	// Initialize JWT utilities
	jwtutil.Initialize(&cfg.JWT)
	log.Info("JWT utilities initialized")

	// Initialize Prometheus metrics
	prometheus.InitMetrics(cfg)
	log.Info("Prometheus metrics initialized")

	// Initialize database and run migrations
	if err := database.InitDB(cfg); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established and migrations completed",
		zap.String("db_host", cfg.DB.Host), zap.String("db_name", cfg.DB.Name))

	// Wire the purchasing engine into the handler layer
	poService := purchasing.NewService(database.GetDB(), log, cfg.Purchasing.ApprovalThresholdCents)
	handler.Init(poService)
	log.Info("Purchasing engine initialized",
		zap.Int64("default_approval_threshold_cents", cfg.Purchasing.ApprovalThresholdCents))

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestIDMiddleware)
	e.Use(prometheus.Middleware())

	// Request logging middleware
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			log := logger.FromContext(c)
			log.Info("HTTP Request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Float64("duration_s", time.Since(start).Seconds()),
				zap.String("ip", c.RealIP()),
			)

			return err
		}
	})

	// Public routes that don't require authentication
	e.GET("/", handler.Hello)
	e.GET("/health", handler.Hello)

	// Prometheus metrics endpoint
	e.GET("/metrics", echo.WrapHandler(prometheus.Handler()))

	// API routes that require authentication
	api := e.Group("/api")
	api.Use(middleware.AuthMiddleware)

	// Supplier reference data
	suppliers := api.Group("/suppliers")
	suppliers.POST("", handler.CreateSupplier)
	suppliers.GET("", handler.ListSuppliers)
	suppliers.GET("/:id", handler.GetSupplier)
	suppliers.PUT("/:id", handler.UpdateSupplier)
	suppliers.DELETE("/:id", handler.DeleteSupplier)
	suppliers.GET("/:id/products", handler.ListSupplierProducts)
	suppliers.PUT("/:id/products", handler.UpsertSupplierProduct)

	// Inventory locations and levels
	locations := api.Group("/locations")
	locations.POST("", handler.CreateLocation)
	locations.GET("", handler.ListLocations)
	locations.GET("/:id/levels", handler.GetLocationLevels)
	api.GET("/inventory-levels", handler.ListInventoryLevels)

	// Purchase order lifecycle
	orders := api.Group("/purchase-orders")
	orders.POST("", handler.CreatePurchaseOrder)
	orders.GET("", handler.ListPurchaseOrders)
	orders.GET("/:id", handler.GetPurchaseOrder)
	orders.PUT("/:id/lines", handler.UpdatePurchaseOrderLines)
	orders.POST("/:id/submit", handler.SubmitPurchaseOrder)
	orders.POST("/:id/approve", handler.ApprovePurchaseOrder)
	orders.POST("/:id/reject", handler.RejectPurchaseOrder)
	orders.POST("/:id/send", handler.SendPurchaseOrder)
	orders.POST("/:id/cancel", handler.CancelPurchaseOrder)
	orders.POST("/:id/shipments", handler.CreateShipment)
	orders.POST("/:id/receipts", handler.RecordReceipt)

	// Operational settings (approval threshold)
	api.GET("/settings/:key", handler.GetSetting)
	api.PUT("/settings/:key", handler.UpdateSetting)

	// Start server
	port := cfg.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
