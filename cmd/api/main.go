package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Precios-api/internal/application/usecase"
	"github.com/jhoicas/Precios-api/internal/infrastructure/sqlstore"
	httpRouter "github.com/jhoicas/Precios-api/internal/interfaces/http"
	"github.com/jhoicas/Precios-api/pkg/config"
	"github.com/jhoicas/Precios-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(cfg.App.Env, cfg.Log.Level)
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Bool("postgres", cfg.DB.UsesPostgres()).
		Msg("iniciando aplicación")

	// Los clientes esperan precios como números JSON, no strings.
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()
	db, err := sqlstore.Open(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión al almacenamiento")
	}
	defer func() { _ = db.Close() }()

	if err := sqlstore.Migrate(db, cfg.DB.UsesPostgres()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	log.Info().Msg("migraciones aplicadas")

	productRepo := sqlstore.NewProductRepository(db)
	supplierRepo := sqlstore.NewSupplierRepository(db)
	quoteRepo := sqlstore.NewPriceQuoteRepository(db)
	txRunner := sqlstore.NewTxRunner(db)

	ingestUC := usecase.NewIngestUseCase(txRunner, log)
	catalogUC := usecase.NewCatalogUseCase(productRepo, quoteRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)

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
		Title:    "Precios API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		IngestUC:   ingestUC,
		CatalogUC:  catalogUC,
		SupplierUC: supplierUC,
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
