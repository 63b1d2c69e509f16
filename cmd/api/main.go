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
	"github.com/tu-usuario/proposal-pro/internal/application/auth"
	"github.com/tu-usuario/proposal-pro/internal/application/proposal"
	"github.com/tu-usuario/proposal-pro/internal/domain/layout"
	infrapdf "github.com/tu-usuario/proposal-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/proposal-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/proposal-pro/internal/interfaces/http"
	"github.com/tu-usuario/proposal-pro/pkg/config"
	"github.com/tu-usuario/proposal-pro/pkg/logger"
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

	invoiceRepo := postgres.NewInvoiceRepository(pool)
	profileRepo := postgres.NewBusinessProfileRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	// Pipeline de render: medición y dibujo comparten las métricas Helvetica
	// de gofpdf, así el layout calculado coincide con lo impreso.
	measurer := infrapdf.NewHelveticaMeasurer()
	decoder := infrapdf.NewFileImageDecoder()
	renderer := layout.NewRenderer(measurer.Measure, decoder)
	writer := infrapdf.NewWriter()

	proposalUC := proposal.NewUseCase(invoiceRepo, profileRepo, log)
	pdfUC := proposal.NewPDFUseCase(invoiceRepo, profileRepo, renderer, writer, cfg.Storage.Dir, log)
	authUC := auth.NewUseCase(userRepo, cfg.JWT, log)

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
		Title:    "Proposal Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProposalUC: proposalUC,
		PDFUC:      pdfUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
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
