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

	"github.com/jhoicas/tienda-api/internal/application/auth"
	appsync "github.com/jhoicas/tienda-api/internal/application/sync"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/infrastructure/feed"
	"github.com/jhoicas/tienda-api/internal/infrastructure/mailer"
	infrapdf "github.com/jhoicas/tienda-api/internal/infrastructure/pdf"
	"github.com/jhoicas/tienda-api/internal/infrastructure/postgres"
	"github.com/jhoicas/tienda-api/internal/infrastructure/sheets"
	httpRouter "github.com/jhoicas/tienda-api/internal/interfaces/http"
	"github.com/jhoicas/tienda-api/pkg/config"
	"github.com/jhoicas/tienda-api/pkg/logger"
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

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	pedidoRepo := postgres.NewPedidoRepository(pool)
	cuponRepo := postgres.NewCuponRepository(pool)
	resenaRepo := postgres.NewResenaRepository(pool)
	novedadRepo := postgres.NewNovedadRepository(pool)
	bannerRepo := postgres.NewBannerRepository(pool)
	configRepo := postgres.NewConfiguracionRepository(pool)
	suscriptorRepo := postgres.NewSuscriptorRepository(pool)
	seccionRepo := postgres.NewSeccionHomepageRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	smtpMailer := mailer.New(cfg.SMTP)
	pdfGenerator := infrapdf.NewMarotoPedidoPDF()
	rssBuilder := feed.NewRSSBuilder()

	// Sheets es opcional: sin spreadsheet configurado el endpoint de sync
	// responde error de configuración en vez de impedir el arranque.
	var syncUC *appsync.SyncUseCase
	if cfg.Sheets.SpreadsheetID != "" {
		exporter, err := sheets.NewExporter(ctx, cfg.Sheets.CredentialsFile, cfg.Sheets.SpreadsheetID)
		if err != nil {
			log.Fatal().Err(err).Msg("crear exportador de Sheets")
		}
		syncUC = appsync.NewSyncUseCase(productoRepo, usuarioRepo, pedidoRepo, exporter, log)
	} else {
		log.Warn().Msg("SHEETS_SPREADSHEET_ID vacío: sincronización con Sheets deshabilitada")
	}

	configUC := usecase.NewConfiguracionUseCase(configRepo)
	var mailerPort usecase.Mailer
	if smtpMailer != nil {
		mailerPort = smtpMailer
	}

	deps := httpRouter.RouterDeps{
		CategoriaUC:  usecase.NewCategoriaUseCase(categoriaRepo),
		ProductoUC:   usecase.NewProductoUseCase(productoRepo, categoriaRepo),
		ResenaUC:     usecase.NewResenaUseCase(resenaRepo),
		NovedadUC:    usecase.NewNovedadUseCase(novedadRepo, rssBuilder),
		BannerUC:     usecase.NewBannerUseCase(bannerRepo),
		ConfigUC:     configUC,
		SuscriptorUC: usecase.NewSuscriptorUseCase(suscriptorRepo, mailerPort, log),
		CuponUC:      usecase.NewCuponUseCase(cuponRepo),
		PedidoUC:     usecase.NewPedidoUseCase(pedidoRepo, productoRepo, usuarioRepo, txRunner, pdfGenerator),
		UsuarioUC:    usecase.NewUsuarioUseCase(usuarioRepo),
		SeccionUC:    usecase.NewSeccionUseCase(seccionRepo),
		SyncUC:       syncUC,
		AuthUC: auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		}),
		JWTSecret: cfg.JWT.Secret,
		BaseURL:   cfg.App.BaseURL,
	}

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
