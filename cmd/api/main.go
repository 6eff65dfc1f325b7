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

	"github.com/acampos/inventario-api/internal/application/auth"
	"github.com/acampos/inventario-api/internal/application/authz"
	"github.com/acampos/inventario-api/internal/application/compras"
	"github.com/acampos/inventario-api/internal/application/inventario"
	"github.com/acampos/inventario-api/internal/application/movimientos"
	"github.com/acampos/inventario-api/internal/application/solicitudes"
	appstock "github.com/acampos/inventario-api/internal/application/stock"
	"github.com/acampos/inventario-api/internal/application/usecase"
	"github.com/acampos/inventario-api/internal/infrastructure/postgres"
	httpRouter "github.com/acampos/inventario-api/internal/interfaces/http"
	"github.com/acampos/inventario-api/pkg/config"
	"github.com/acampos/inventario-api/pkg/logger"
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

	articuloRepo := postgres.NewArticuloRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movimientoRepo := postgres.NewMovimientoRepository(pool)
	compraRepo := postgres.NewCompraRepository(pool)
	proveedorRepo := postgres.NewProveedorRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	solicitudRepo := postgres.NewSolicitudRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	policy := authz.DefaultPolicy()

	registrarMovUC := inventario.NewRegistrarMovimientoUseCase(txRunner, articuloRepo, cfg.Stock.PermitirNegativo)
	consultaMovUC := movimientos.NewConsultaUseCase(movimientoRepo)
	stockUC := appstock.NewStockUseCase(stockRepo, articuloRepo)
	articuloUC := usecase.NewArticuloUseCase(txRunner, articuloRepo, stockRepo, proveedorRepo, registrarMovUC)
	proveedorUC := usecase.NewProveedorUseCase(proveedorRepo)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo)
	compraUC := compras.NewCompraUseCase(txRunner, compraRepo, proveedorRepo, articuloRepo, registrarMovUC)
	solicitudUC := solicitudes.NewSolicitudUseCase(txRunner, solicitudRepo, articuloRepo)
	authUC := auth.NewAuthUseCase(txRunner, usuarioRepo, policy, auth.JWTConfig{
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
		Title:    "Inventario API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ArticuloUC:   articuloUC,
		ProveedorUC:  proveedorUC,
		UsuarioUC:    usuarioUC,
		StockUC:      stockUC,
		RegistrarMov: registrarMovUC,
		ConsultaMov:  consultaMovUC,
		CompraUC:     compraUC,
		CompraRepo:   compraRepo,
		SolicitudUC:  solicitudUC,
		Policy:       policy,
		JWTSecret:    cfg.JWT.Secret,
		Logger:       log,
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
