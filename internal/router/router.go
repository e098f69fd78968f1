package router

import (
	"time"

	"stockli/internal/config"
	"stockli/internal/handler"
	"stockli/internal/middleware"
	"stockli/internal/model"
	"stockli/internal/repository"
	"stockli/internal/service"
	"stockli/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	defaultTaxRate, err := decimal.NewFromString(cfg.DefaultTaxRate)
	if err != nil {
		defaultTaxRate = decimal.NewFromInt(20)
	}

	// ── Repositories ─────────────────────────────────────────────────────────
	txm := repository.NewTxManager(db)
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	movementRepo := repository.NewStockMovementRepository(db)
	orderRepo := repository.NewPurchaseOrderRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	paymentMethodRepo := repository.NewPaymentMethodRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	timeEntryRepo := repository.NewTimeEntryRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	inventorySvc := service.NewInventoryService(productRepo, movementRepo, txm, dispatcher)
	productSvc := service.NewProductService(productRepo, categoryRepo, supplierRepo)
	posSvc := service.NewPOSService(transactionRepo, productRepo, recipeRepo, paymentMethodRepo, inventorySvc, txm, dispatcher, defaultTaxRate)
	orderSvc := service.NewPurchaseOrderService(orderRepo, supplierRepo, productRepo, inventorySvc, txm, dispatcher)
	recipeSvc := service.NewRecipeService(recipeRepo, productRepo, txm)
	supplierSvc := service.NewSupplierService(supplierRepo, productRepo, orderRepo)
	reportSvc := service.NewReportService(productRepo, movementRepo, orderRepo, supplierRepo, transactionRepo, auditRepo)
	staffSvc := service.NewStaffService(employeeRepo, scheduleRepo, timeEntryRepo, dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(authSvc)
	productsH := handler.NewProductsHandler(productSvc)
	categoriesH := handler.NewCategoriesHandler(productSvc)
	inventoryH := handler.NewInventoryHandler(inventorySvc)
	posH := handler.NewPOSHandler(posSvc)
	ordersH := handler.NewPurchaseOrdersHandler(orderSvc)
	recipesH := handler.NewRecipesHandler(recipeSvc)
	suppliersH := handler.NewSuppliersHandler(supplierSvc)
	reportsH := handler.NewReportsHandler(reportSvc)
	staffH := handler.NewStaffHandler(staffSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	anyRole := middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleStaff)
	managerUp := middleware.RequireRole(model.RoleAdmin, model.RoleManager)
	adminOnly := middleware.RequireRole(model.RoleAdmin)

	v1 := r.Group("/v1", jwtMW)
	{
		// POS — any authenticated role can sell
		pos := v1.Group("/pos", anyRole)
		{
			pos.POST("/transactions", posH.Checkout)
			pos.GET("/transactions", posH.ListTransactions)
			pos.GET("/transactions/:id", posH.GetTransaction)
			pos.GET("/payment-methods", posH.ListPaymentMethods)
		}
		// Refunds need a manager
		v1.POST("/pos/transactions/:id/refund", managerUp, posH.Refund)

		// Catalog — all roles read, managers write
		v1.GET("/products", anyRole, productsH.List)
		v1.GET("/products/:id", anyRole, productsH.Get)
		prods := v1.Group("/products", managerUp)
		{
			prods.POST("", productsH.Create)
			prods.PUT("/:id", productsH.Update)
			prods.DELETE("/:id", productsH.Delete)
		}

		v1.GET("/categories", anyRole, categoriesH.List)
		categories := v1.Group("/categories", managerUp)
		{
			categories.POST("", categoriesH.Create)
			categories.PUT("/:id", categoriesH.Update)
			categories.DELETE("/:id", categoriesH.Deactivate)
		}

		// Inventory — managers only
		inv := v1.Group("/inventory", managerUp)
		{
			inv.POST("/stock-movements", inventoryH.ApplyMovement)
			inv.GET("/stock-movements", inventoryH.ListMovements)
			inv.GET("/low-stock", inventoryH.LowStock)
		}

		// Purchase orders — managers only
		orders := v1.Group("/purchase-orders", managerUp)
		{
			orders.POST("", ordersH.Create)
			orders.GET("", ordersH.List)
			orders.GET("/:id", ordersH.Get)
			orders.PUT("/:id", ordersH.Amend)
			orders.PATCH("/:id", ordersH.SetStatus)
			orders.POST("/:id/receive", ordersH.Receive)
		}

		// Recipes — all roles read, managers write
		v1.GET("/recipes", anyRole, recipesH.List)
		v1.GET("/recipes/:id", anyRole, recipesH.Get)
		recipes := v1.Group("/recipes", managerUp)
		{
			recipes.POST("", recipesH.Create)
			recipes.PUT("/:id", recipesH.Update)
			recipes.DELETE("/:id", recipesH.Delete)
		}

		// Suppliers — managers only
		suppliers := v1.Group("/suppliers", managerUp)
		{
			suppliers.POST("", suppliersH.Create)
			suppliers.GET("", suppliersH.List)
			suppliers.GET("/:id", suppliersH.Get)
			suppliers.PUT("/:id", suppliersH.Update)
			suppliers.DELETE("/:id", suppliersH.Delete)
		}

		// Staff — managers run the roster, any role can clock in and out
		staff := v1.Group("/staff", managerUp)
		{
			staff.POST("/employees", staffH.CreateEmployee)
			staff.GET("/employees", staffH.ListEmployees)
			staff.GET("/employees/:id", staffH.GetEmployee)
			staff.DELETE("/employees/:id", staffH.DeactivateEmployee)
			staff.POST("/schedules", staffH.CreateSchedule)
			staff.GET("/schedules", staffH.ListSchedules)
			staff.GET("/time-entries", staffH.ListTimeEntries)
		}
		v1.POST("/staff/clock-in", anyRole, staffH.ClockIn)
		v1.POST("/staff/clock-out", anyRole, staffH.ClockOut)

		// Reports — managers only
		reports := v1.Group("/reports", managerUp)
		{
			reports.GET("/dashboard", reportsH.Dashboard)
			reports.GET("/sales-summary", reportsH.SalesSummary)
			reports.GET("/alerts", reportsH.Alerts)
		}

		// User administration — admin only
		users := v1.Group("/users", adminOnly)
		{
			users.POST("", usersH.Create)
			users.GET("", usersH.List)
			users.PUT("/:id", usersH.Update)
			users.DELETE("/:id", usersH.Deactivate)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
