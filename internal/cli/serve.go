package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	httpadp "biztime/internal/adapter/http"
	"biztime/internal/adapter/repository/gormstore"
	"biztime/internal/config"
	"biztime/internal/infrastructure/cache"
	"biztime/internal/infrastructure/db"
	"biztime/internal/logger"
	companyuc "biztime/internal/usecase/company"
	invoiceuc "biztime/internal/usecase/invoice"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, logger.New(cfg.LogLevel, cfg.Pretty()))
		},
	}
}

func connect(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	gdb, err := db.Open(ctx, cfg.DBDriver, cfg.DSN(), cfg.DBConnectRetries, logger.Gorm(log))
	if err != nil {
		return nil, err
	}
	log.Info().Str("driver", cfg.DBDriver).Msg("db connected")
	return gdb, nil
}

func closeDB(gdb *gorm.DB) {
	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// openRedis returns nil when Redis is not configured or unreachable.
func openRedis(ctx context.Context, cfg *config.Config, log zerolog.Logger) *redis.Client {
	rdb, err := cache.OpenRedis(ctx, cfg.RedisAddr, cfg.RedisDB)
	switch {
	case errors.Is(err, cache.ErrNoAddr):
		log.Info().Msg("idempotency disabled: no redis address")
		return nil
	case err != nil:
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("idempotency disabled: redis unreachable")
		return nil
	}
	return rdb
}

// buildServer wires stores, usecases and routes.
func buildServer(gdb *gorm.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	companies := gormstore.NewCompanyRepository(gdb)
	invoices := gormstore.NewInvoiceRepository(gdb)
	tx := gormstore.NewGormUoW(gdb)

	checks := map[string]httpadp.Check{
		"db": func(ctx context.Context) error {
			sqlDB, err := gdb.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if rdb != nil {
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}

	e := httpadp.NewEcho(log)
	httpadp.RegisterRoutes(e, httpadp.Deps{
		Companies:      companyuc.NewUsecase(companies, invoices, tx),
		Invoices:       invoiceuc.NewUsecase(invoices, tx),
		Redis:          rdb,
		IdempotencyTTL: cfg.IdempotencyTTL(),
		LegacyStatus:   cfg.LegacyStatus,
		Log:            log,
		Checks:         checks,
	})
	return e
}

// serve blocks until ctx is done or the listener fails, then drains
// in-flight requests for up to the configured shutdown timeout.
func serve(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	gdb, err := connect(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeDB(gdb)

	if cfg.DBAutoMigrate {
		if err := gormstore.EnsureSchema(gdb); err != nil {
			return err
		}
	}

	rdb := openRedis(ctx, cfg, log)
	if rdb != nil {
		defer rdb.Close()
	}

	e := buildServer(gdb, rdb, cfg, log)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("listening")
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace())
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
