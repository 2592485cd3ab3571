package main

import (
	"log"
	"net/http"
	"time"

	"coal-erp/internal/auth"
	"coal-erp/internal/config"
	"coal-erp/internal/database"
	"coal-erp/internal/handlers"
	"coal-erp/internal/middleware"
	"coal-erp/internal/migrations"
	"coal-erp/internal/redis"
	"coal-erp/internal/repository"
	"coal-erp/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	tokenManager := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	salesOrderRepo := repository.NewSalesOrderRepository(db)
	purchaseOrderRepo := repository.NewPurchaseOrderRepository(db)
	warehouseRepo := repository.NewWarehouseRepository(db)
	transportRepo := repository.NewTransportRepository(db)
	financeRepo := repository.NewFinanceRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, redisClient, tokenManager)
	userService := services.NewUserService(userRepo, redisClient)
	salesService := services.NewSalesService(customerRepo, salesOrderRepo)
	procurementService := services.NewProcurementService(supplierRepo, purchaseOrderRepo)
	warehouseService := services.NewWarehouseService(warehouseRepo)
	transportService := services.NewTransportService(transportRepo)
	financeService := services.NewFinanceService(financeRepo, salesOrderRepo)
	dashboardService := services.NewDashboardService(warehouseRepo, purchaseOrderRepo, transportRepo, financeRepo, salesOrderRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	salesHandler := handlers.NewSalesHandler(salesService)
	procurementHandler := handlers.NewProcurementHandler(procurementService)
	warehouseHandler := handlers.NewWarehouseHandler(warehouseService)
	transportHandler := handlers.NewTransportHandler(transportService)
	financeHandler := handlers.NewFinanceHandler(financeService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Setup routes
	router := gin.Default()
	router.Use(middleware.CORS(cfg.ClientURL))
	router.Use(middleware.RateLimit("100-M"))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "Coal ERP Backend is running!",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	router.POST("/api/auth/login", authHandler.Login)

	api := router.Group("/api")
	api.Use(middleware.Authenticate(authService))
	{
		api.GET("/auth/profile", authHandler.Profile)
		api.POST("/auth/logout", authHandler.Logout)

		users := api.Group("/users", middleware.RequireAdmin())
		{
			users.GET("", userHandler.List)
			users.GET("/roles", userHandler.Roles)
			users.POST("", userHandler.Create)
			users.PUT("/:id", userHandler.Update)
			users.DELETE("/:id", userHandler.Delete)
		}

		customers := api.Group("/sales/customers")
		{
			customers.GET("", middleware.RequireAccounts(), salesHandler.ListCustomers)
			customers.POST("", middleware.RequireAccounts(), salesHandler.CreateCustomer)
			customers.PUT("/:id", middleware.RequireAccounts(), salesHandler.UpdateCustomer)
			customers.DELETE("/:id", middleware.RequireAdmin(), salesHandler.DeleteCustomer)
		}

		sales := api.Group("/sales", middleware.RequireAccounts())
		{
			sales.GET("/orders", salesHandler.ListOrders)
			sales.POST("/orders", salesHandler.CreateOrder)
			sales.PUT("/orders/:id/status", salesHandler.UpdateOrderStatus)
		}

		suppliers := api.Group("/procurement/suppliers")
		{
			suppliers.GET("", middleware.RequireWarehouseManager(), procurementHandler.ListSuppliers)
			suppliers.POST("", middleware.RequireWarehouseManager(), procurementHandler.CreateSupplier)
			suppliers.PUT("/:id", middleware.RequireWarehouseManager(), procurementHandler.UpdateSupplier)
			suppliers.DELETE("/:id", middleware.RequireAdmin(), procurementHandler.DeleteSupplier)
		}

		procurement := api.Group("/procurement", middleware.RequireWarehouseManager())
		{
			procurement.GET("/purchase-orders", procurementHandler.ListOrders)
			procurement.POST("/purchase-orders", procurementHandler.CreateOrder)
			procurement.PUT("/purchase-orders/:id/status", procurementHandler.UpdateOrderStatus)
		}

		warehouse := api.Group("/warehouse", middleware.RequireWarehouseManager())
		{
			warehouse.GET("/warehouses", warehouseHandler.ListWarehouses)
			warehouse.POST("/warehouses", warehouseHandler.CreateWarehouse)
			warehouse.GET("/grades", warehouseHandler.ListGrades)
			warehouse.GET("/stock", warehouseHandler.ListStock)
			warehouse.POST("/stock", warehouseHandler.AddStock)
			warehouse.GET("/stock/movements", warehouseHandler.ListMovements)
		}

		transport := api.Group("/transport", middleware.RequireTransportManager())
		{
			transport.GET("/vehicles", transportHandler.ListVehicles)
			transport.POST("/vehicles", transportHandler.CreateVehicle)
			transport.GET("/trips", transportHandler.ListTrips)
			transport.POST("/trips", transportHandler.CreateTrip)
			transport.PUT("/trips/:id/status", transportHandler.UpdateTripStatus)
		}

		finance := api.Group("/finance", middleware.RequireAccounts())
		{
			finance.GET("/invoices", financeHandler.ListInvoices)
			finance.POST("/invoices", financeHandler.CreateInvoice)
			finance.GET("/payments", financeHandler.ListPayments)
			finance.POST("/payments", financeHandler.RecordPayment)
			finance.GET("/expenses", financeHandler.ListExpenses)
			finance.POST("/expenses", financeHandler.CreateExpense)
		}

		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("/stats", dashboardHandler.Stats)
			dashboard.GET("/activity", dashboardHandler.Activity)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Route not found"})
	})

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
