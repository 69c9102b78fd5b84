package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appretail "github.com/jhoicas/inventario-retail/internal/application/retail"
	"github.com/jhoicas/inventario-retail/internal/infrastructure/excel"
	"github.com/jhoicas/inventario-retail/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/inventario-retail/internal/interfaces/http"
	"github.com/jhoicas/inventario-retail/pkg/config"
	"github.com/jhoicas/inventario-retail/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	if err := cfg.ValidateServer(); err != nil {
		panic("configuración del servidor: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	loc, err := cfg.Retail.Location()
	if err != nil {
		log.Warn().Err(err).Msg("zona horaria inválida, se usa UTC")
	}

	writer := excel.NewRetailWorkbookWriter(cfg.Fixture.SheetName, log.Component("excel"))
	parser := excel.NewRetailSheetParser(loc, log.Component("excel"))

	deps := httpRouter.RouterDeps{
		Fixture:        appretail.NewFixtureUseCase(writer, log.Component("fixture")),
		Preview:        appretail.NewPreviewUseCase(parser),
		UploadMaxBytes: int64(cfg.HTTP.UploadMaxBytes),
		JWTSecret:      cfg.JWT.Secret,
	}

	// Sin base de datos solo se sirven el archivo de ejemplo y la vista previa.
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Warn().Err(err).Msg("PostgreSQL no disponible; importación y listado deshabilitados")
	} else {
		defer pool.Close()
		txRunner := postgres.NewTxRunner(pool)
		retailRepo := postgres.NewRetailRepository(pool)
		deps.Import = appretail.NewImportUseCase(parser, txRunner, loc, log.Component("retail_import"))
		deps.List = appretail.NewListUseCase(retailRepo, loc)
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.HTTP.UploadMaxBytes + 64<<10, // margen para el resto del multipart
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "database": pool != nil})
	})

	httpRouter.Router(app, deps)

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
