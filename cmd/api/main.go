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

	"github.com/ariefstwn/hotelstock-api/internal/application/auth"
	"github.com/ariefstwn/hotelstock-api/internal/application/inventory"
	"github.com/ariefstwn/hotelstock-api/internal/application/opname"
	"github.com/ariefstwn/hotelstock-api/internal/application/replenishment"
	"github.com/ariefstwn/hotelstock-api/internal/application/usecase"
	"github.com/ariefstwn/hotelstock-api/internal/infrastructure/memory"
	infrapdf "github.com/ariefstwn/hotelstock-api/internal/infrastructure/pdf"
	httpRouter "github.com/ariefstwn/hotelstock-api/internal/interfaces/http"
	"github.com/ariefstwn/hotelstock-api/pkg/config"
	"github.com/ariefstwn/hotelstock-api/pkg/logger"
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
		Str("property", cfg.App.Property).
		Msg("iniciando aplicación")

	// Todo el estado vive en memoria: sin siembra la propiedad arranca vacía.
	store := memory.NewStore()
	if cfg.Seed.DemoData {
		if err := memory.Seed(store, memory.SeedOptions{UserPassword: cfg.Seed.UserPassword}); err != nil {
			log.Fatal().Err(err).Msg("siembra de datos demo")
		}
		log.Info().Msg("datos demo sembrados")
	}

	userRepo := memory.NewUserRepository(store)

	ledgerUC := inventory.NewLedgerUseCase(store, cfg.App.Property)
	alertUC := inventory.NewAlertUseCase(store)
	itemUC := usecase.NewItemUseCase(store)
	opnameUC := opname.NewUseCase(store, cfg.App.Property)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	replenishmentUC := replenishment.NewUseCase(store, userRepo, alertUC, pdfGenerator, cfg.App.Property)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
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
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		ItemUC:          itemUC,
		LedgerUC:        ledgerUC,
		AlertUC:         alertUC,
		OpnameUC:        opnameUC,
		ReplenishmentUC: replenishmentUC,
		JWTSecret:       cfg.JWT.Secret,
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
