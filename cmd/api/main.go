package main

import (
	"context"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	appanalytics "github.com/jhoicas/vendas-api/internal/application/analytics"
	"github.com/jhoicas/vendas-api/internal/application/auth"
	"github.com/jhoicas/vendas-api/internal/application/ports"
	"github.com/jhoicas/vendas-api/internal/application/sales"
	"github.com/jhoicas/vendas-api/internal/application/usecase"
	"github.com/jhoicas/vendas-api/internal/domain/sale"
	"github.com/jhoicas/vendas-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/vendas-api/internal/infrastructure/pdf"
	"github.com/jhoicas/vendas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/vendas-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/vendas-api/internal/interfaces/http"
	"github.com/jhoicas/vendas-api/pkg/config"
	"github.com/jhoicas/vendas-api/pkg/logger"
)

const (
	sweepEvery = 10 * time.Minute
	draftTTL   = 12 * time.Hour

	swaggerFile = "./docs/swagger.json"
)

// globalRand adapta el generador global de math/rand/v2 (seguro para uso concurrente).
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	lg := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	lg.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(cfg.DB.ConnectionString(), lg.Component("migrate")); err != nil {
			lg.Fatal().Err(err).Msg("migraciones")
		}
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB, lg.Component("postgres"))
	if err != nil {
		lg.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	fileStorage, err := newFileStorage(cfg.Storage)
	if err != nil {
		lg.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("almacenamiento de archivos")
	}

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	negTypeRepo := postgres.NewNegotiationTypeRepository(pool)
	permRepo := postgres.NewScreenPermissionRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	denylist := memory.NewTokenDenylist()
	draftStore := memory.NewDraftStore()

	authUC := auth.NewAuthUseCase(userRepo, fileStorage, denylist, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, lg.Component("auth"))

	assembler := sale.NewAssembler(cfg.Sales.NumberPrefix, time.Now, globalRand{}, uuid.NewString)
	draftUC := sales.NewDraftUseCase(draftStore, productRepo, clientRepo, negTypeRepo, txRunner, assembler, lg.Component("sales"))
	saleQueryUC := sales.NewQueryUseCase(saleRepo, infrapdf.NewReceiptGenerator(cfg.App.Name))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    6 << 20, // fotos de perfil hasta 5 MB + multipart
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Vendas API",
		}))
	} else {
		lg.Warn().Str("file", swaggerFile).Msg("swagger deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	if cfg.Storage.Driver == config.StorageLocal {
		app.Static("/uploads", cfg.Storage.LocalDir)
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:            authUC,
		ProductUC:         usecase.NewProductUseCase(productRepo),
		ClientUC:          usecase.NewClientUseCase(clientRepo),
		NegotiationTypeUC: usecase.NewNegotiationTypeUseCase(negTypeRepo),
		SellerUC:          usecase.NewSellerUseCase(userRepo, lg.Component("sellers")),
		PermissionUC:      usecase.NewPermissionUseCase(permRepo, userRepo, lg.Component("permissions")),
		DraftUC:           draftUC,
		SaleQueryUC:       saleQueryUC,
		DashboardUC:       appanalytics.NewDashboardUseCase(statsRepo, saleRepo),
		JWTSecret:         cfg.JWT.Secret,
		Log:               lg.Component("http"),
	})

	go sweep(ctx, draftStore, denylist, lg.Component("sweeper"))

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			lg.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	lg.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		lg.Error().Err(err).Msg("apagado del servidor")
	}

	lg.Info().Msg("aplicación detenida")
}

func newFileStorage(cfg config.StorageConfig) (ports.FileStorage, error) {
	if cfg.Driver == config.StorageS3 {
		return storage.NewS3Storage(cfg)
	}
	return storage.NewLocalStorage(cfg.LocalDir, cfg.PublicBaseURL)
}

// sweep descarta borradores abandonados y tokens revocados ya expirados.
func sweep(ctx context.Context, drafts *memory.DraftStore, denylist *memory.TokenDenylist, log zerolog.Logger) {
	t := time.NewTicker(sweepEvery)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			d := drafts.Sweep(now.Add(-draftTTL))
			r := denylist.Sweep()
			if d > 0 || r > 0 {
				log.Debug().Int("drafts", d).Int("tokens", r).Int("drafts_alive", drafts.Len()).Msg("limpieza")
			}
		}
	}
}
