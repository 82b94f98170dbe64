package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/bodega-titos/consola/internal/application/auth"
	"github.com/bodega-titos/consola/internal/application/reporting"
	"github.com/bodega-titos/consola/internal/application/session"
	"github.com/bodega-titos/consola/internal/domain/repository"
	"github.com/bodega-titos/consola/internal/infrastructure/backend"
	"github.com/bodega-titos/consola/internal/infrastructure/memory"
	"github.com/bodega-titos/consola/internal/infrastructure/migrate"
	infrapdf "github.com/bodega-titos/consola/internal/infrastructure/pdf"
	"github.com/bodega-titos/consola/internal/infrastructure/postgres"
	infraredis "github.com/bodega-titos/consola/internal/infrastructure/redis"
	httpRouter "github.com/bodega-titos/consola/internal/interfaces/http"
	"github.com/bodega-titos/consola/pkg/config"
	"github.com/bodega-titos/consola/pkg/logger"

	_ "github.com/bodega-titos/consola/docs"
)

const purgeInterval = 15 * time.Minute

func serveCmd() *cobra.Command {
	var autoMigrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Inicia el servidor HTTP de la consola",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, log, autoMigrate)
		},
	}
	cmd.Flags().BoolVar(&autoMigrate, "migrate", false, "aplicar migraciones antes de iniciar (solo SESSION_STORE=postgres)")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config, log *logger.Logger, autoMigrate bool) error {
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("session_store", cfg.Session.Store).
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando consola")

	kv, closeKV, err := sessionKV(ctx, cfg, log, autoMigrate)
	if err != nil {
		return err
	}
	defer closeKV()

	secret := cfg.Session.Secret
	if secret == "" {
		// Solo fuera de producción: las sesiones no sobreviven a un reinicio.
		secret = uuid.NewString() + uuid.NewString()
		log.Warn().Msg("SESSION_SECRET vacío; se generó uno aleatorio")
	}

	client, err := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout(), log)
	if err != nil {
		return err
	}

	loc := cfg.Shop.Location()
	store := session.NewStore(kv, cfg.Session.TTL(), log)
	authUC := auth.NewAuthUseCase(client, store, log)
	reportUC := reporting.NewReportUseCase(infrapdf.NewMarotoReportGenerator(), cfg.Shop.Name, loc)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI de los endpoints JSON: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.Shop.Name + " consola",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Tienda:   cfg.Shop.Name,
		AuthUC:   authUC,
		Services: client,
		ReportUC: reportUC,
		Location: loc,
		Session: httpRouter.SessionConfig{
			Secret: secret,
			Issuer: cfg.App.Name,
			TTL:    cfg.Session.TTL(),
			Secure: cfg.App.IsProduction(),
		},
		CSRF: true,
		Log:  log,
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

	log.Info().Msg("consola detenida")
	return nil
}

// sessionKV elige el almacén de sesiones según SESSION_STORE.
func sessionKV(ctx context.Context, cfg *config.Config, log *logger.Logger, autoMigrate bool) (repository.SessionKV, func(), error) {
	switch cfg.Session.Store {
	case config.SessionStoreMemory:
		log.Warn().Msg("sesiones en memoria; se pierden al reiniciar")
		return memory.NewSessionKV(), func() {}, nil

	case config.SessionStoreRedis:
		client := infraredis.NewClient(cfg.Redis)
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("conexión a Redis: %w", err)
		}
		return infraredis.NewSessionKV(client), func() { _ = client.Close() }, nil

	default:
		if autoMigrate {
			if err := migrate.Up(ctx, cfg.DB.ConnectionString()); err != nil {
				return nil, nil, fmt.Errorf("migraciones: %w", err)
			}
		}
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		repo := postgres.NewSessionRepository(pool)

		purgeCtx, stop := context.WithCancel(context.Background())
		go purgeLoop(purgeCtx, repo, log)

		return repo, func() {
			stop()
			pool.Close()
		}, nil
	}
}

// purgeLoop borra periódicamente las filas de sesiones vencidas.
func purgeLoop(ctx context.Context, repo *postgres.SessionRepo, log *logger.Logger) {
	t := time.NewTicker(purgeInterval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n, err := repo.PurgeExpired(ctx)
			if err != nil {
				log.Warn().Err(err).Msg("purgar sesiones vencidas")
				continue
			}
			if n > 0 {
				log.Debug().Int64("filas", n).Msg("sesiones vencidas purgadas")
			}
		}
	}
}
