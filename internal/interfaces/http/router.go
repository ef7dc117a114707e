package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storefront-api/internal/application/auth"
	"github.com/jhoicas/storefront-api/internal/application/checkout"
	"github.com/jhoicas/storefront-api/internal/application/stock"
	"github.com/jhoicas/storefront-api/internal/application/usecase"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC       *usecase.CategoryUseCase
	ProductUC        *usecase.ProductUseCase
	MerchantUC       *usecase.MerchantUseCase
	WarehouseUC      *usecase.WarehouseUseCase
	UserUC           *usecase.UserUseCase
	MerchantStockUC  *stock.MerchantStockUseCase
	WarehouseStockUC *stock.WarehouseStockUseCase
	AggregateUC      *stock.AggregateUseCase
	CheckoutUC       *checkout.UseCase
	AuthUC           *auth.UseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
// Mutaciones de catálogo: solo admin. Mutaciones de stock: admin y keeper.
// Registro de ventas: cualquier usuario autenticado (incluye cashier).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	adminOnly := RequireRole(entity.RoleAdmin)
	stockRoles := RequireRole(entity.RoleAdmin, entity.RoleKeeper)

	// Categories
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", adminOnly, categoryHandler.Create)
	categories.Put("/:id", adminOnly, categoryHandler.Update)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)

	// Products (incluye los totales agregados de stock)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.AggregateUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/stock", productHandler.Stock)
	products.Post("/", adminOnly, productHandler.Create)
	products.Put("/:id", adminOnly, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Merchants + asignación de productos a tiendas
	merchants := protected.Group("/merchants")
	merchantHandler := NewMerchantHandler(deps.MerchantUC)
	merchants.Get("/", merchantHandler.List)
	merchants.Get("/:id", merchantHandler.GetByID)
	merchants.Post("/", adminOnly, merchantHandler.Create)
	merchants.Put("/:id", adminOnly, merchantHandler.Update)
	merchants.Delete("/:id", adminOnly, merchantHandler.Delete)

	merchantProductHandler := NewMerchantProductHandler(deps.MerchantStockUC)
	merchants.Get("/:merchant/products", merchantProductHandler.List)
	merchants.Post("/:merchant/products", stockRoles, merchantProductHandler.Attach)
	merchants.Put("/:merchant/products/:product", stockRoles, merchantProductHandler.UpdateStock)
	merchants.Delete("/:merchant/products/:product", stockRoles, merchantProductHandler.Detach)

	// Warehouses + asignación de productos a bodegas
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Post("/", adminOnly, warehouseHandler.Create)
	warehouses.Put("/:id", adminOnly, warehouseHandler.Update)
	warehouses.Delete("/:id", adminOnly, warehouseHandler.Delete)

	warehouseProductHandler := NewWarehouseProductHandler(deps.WarehouseStockUC)
	warehouses.Get("/:warehouse/products", warehouseProductHandler.List)
	warehouses.Post("/:warehouse/products", stockRoles, warehouseProductHandler.Attach)
	warehouses.Put("/:warehouse/products/:product", stockRoles, warehouseProductHandler.UpdateStock)
	warehouses.Delete("/:warehouse/products/:product", stockRoles, warehouseProductHandler.Detach)

	// Transactions (ventas)
	transactions := protected.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.CheckoutUC)
	transactions.Post("/", transactionHandler.Create)
	transactions.Get("/", transactionHandler.List)
	transactions.Get("/:id", transactionHandler.GetByID)

	// Users (solo admin)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
}
