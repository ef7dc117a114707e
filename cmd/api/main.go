package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/storefront-api/docs"
	"github.com/jhoicas/storefront-api/internal/application/auth"
	"github.com/jhoicas/storefront-api/internal/application/checkout"
	"github.com/jhoicas/storefront-api/internal/application/stock"
	"github.com/jhoicas/storefront-api/internal/application/usecase"
	"github.com/jhoicas/storefront-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/storefront-api/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/storefront-api/internal/interfaces/http"
	"github.com/jhoicas/storefront-api/pkg/config"
	"github.com/jhoicas/storefront-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Caché de agregados de stock: opcional, REDIS_ADDR vacío lo desactiva.
	var stockCache *infraredis.StockCache
	if cfg.Redis.Addr != "" {
		redisClient, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer redisClient.Close()
		stockCache = infraredis.NewStockCache(redisClient, time.Duration(cfg.Redis.TTLSeconds)*time.Second)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("caché de stock habilitado")
	} else {
		log.Info().Msg("caché de stock deshabilitado (REDIS_ADDR vacío)")
	}

	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	merchantRepo := postgres.NewMerchantRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	merchantStockRepo := postgres.NewMerchantStockRepository(pool)
	warehouseStockRepo := postgres.NewWarehouseStockRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// interfaces con valor nil tipado: evitar pasar (*StockCache)(nil) como Cache no-nil
	var mutationCache stock.Cache
	var checkoutCache checkout.Cache
	if stockCache != nil {
		mutationCache = stockCache
		checkoutCache = stockCache
	}

	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo)
	merchantUC := usecase.NewMerchantUseCase(merchantRepo, userRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	merchantStockUC := stock.NewMerchantStockUseCase(txRunner, merchantStockRepo, merchantRepo, productRepo, warehouseRepo, mutationCache)
	warehouseStockUC := stock.NewWarehouseStockUseCase(txRunner, warehouseStockRepo, warehouseRepo, productRepo, mutationCache)
	aggregateUC := stock.NewAggregateUseCase(merchantStockRepo, warehouseStockRepo, productRepo, mutationCache)
	checkoutUC := checkout.NewUseCase(txRunner, merchantRepo, productRepo, transactionRepo, checkoutCache)
	authUC := auth.NewUseCase(userRepo, auth.Config{
		JWTSecret:  cfg.JWT.Secret,
		JWTIssuer:  cfg.JWT.Issuer,
		Expiration: cfg.JWT.Expiration,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Storefront API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC:       categoryUC,
		ProductUC:        productUC,
		MerchantUC:       merchantUC,
		WarehouseUC:      warehouseUC,
		UserUC:           userUC,
		MerchantStockUC:  merchantStockUC,
		WarehouseStockUC: warehouseStockUC,
		AggregateUC:      aggregateUC,
		CheckoutUC:       checkoutUC,
		AuthUC:           authUC,
		JWTSecret:        cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
