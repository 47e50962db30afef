package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	amqpadapter "outreach/internal/adapter/amqp"
	httpadapter "outreach/internal/adapter/http"
	"outreach/internal/adapter/memory"
	"outreach/internal/adapter/postgres"
	"outreach/internal/adapter/provider"
	redisadapter "outreach/internal/adapter/redis"
	"outreach/internal/adapter/usecase"
	"outreach/internal/config"
	"outreach/internal/core/port"
	"outreach/internal/db"
)

// repositories groups the storage ports selected by STORE_DRIVER.
type repositories struct {
	campaigns port.CampaignRepository
	leads     port.LeadRepository
	sendLog   port.SendLogRepository
	followUps port.FollowUpRepository
	close     func()
}

// main loads configuration, wires storage, the email provider and the
// optional Redis lock and AMQP publisher, then serves HTTP until SIGINT
// or SIGTERM.
func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(cfg.Log.Handler(os.Stdout)).With(slog.String("env", cfg.Env))

	if err = run(cfg, logger); err != nil {
		logger.Error("fatal", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	loc, err := cfg.Dispatch.Location()
	if err != nil {
		return err
	}

	repos, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer repos.close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, repos.campaigns, repos.leads, logger); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	sender, err := provider.New(ctx, cfg.Provider, logger)
	if err != nil {
		return err
	}

	deps := usecase.Deps{
		Campaigns: repos.campaigns,
		Leads:     repos.leads,
		SendLog:   repos.sendLog,
		FollowUps: repos.followUps,
		Sender:    sender,
	}

	if cfg.Redis.Enabled() {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()
		if err = client.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis ping: %w", err)
		}
		deps.Locker = redisadapter.NewLocker(client, cfg.Redis.LockTTL, logger)
		logger.Info("dispatch lock enabled", slog.String("redis", cfg.Redis.Addr))
	}

	if cfg.AMQP.Enabled() {
		pub, err := amqpadapter.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, logger)
		if err != nil {
			return err
		}
		defer pub.Close()
		deps.Events = pub
		logger.Info("send events enabled", slog.String("exchange", cfg.AMQP.Exchange))
	}

	opts := usecase.Options{
		DailyLimit:           cfg.Dispatch.DailyLimit,
		BatchSize:            cfg.Dispatch.BatchSize,
		EmailDelay:           cfg.Dispatch.EmailDelay,
		BatchDelay:           cfg.Dispatch.BatchDelay,
		MaxSendRetries:       cfg.Dispatch.MaxSendRetries,
		RetryDelay:           cfg.Dispatch.RetryDelay,
		StatusUpdateAttempts: cfg.Dispatch.StatusUpdateAttempts,
		StatusUpdateDelay:    cfg.Dispatch.StatusUpdateDelay,
		TrackingBaseURL:      cfg.Tracking.BaseURL,
		Location:             loc,
	}
	dispatcher := usecase.NewDispatcher(deps, opts, logger)
	tracker := usecase.NewTracker(repos.sendLog, deps.Events, nil, logger)

	handler := httpadapter.NewHandler(ctx, dispatcher, tracker, cfg.CronSecret, logger)
	if cfg.CronSecret == "" {
		logger.Warn("CRON_SECRET is empty, operator and cron endpoints will reject every request")
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancelShutdown()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("server gracefully stopped")
	return nil
}

func openRepositories(ctx context.Context, cfg config.Config, logger *slog.Logger) (*repositories, error) {
	switch cfg.StoreDriver {
	case "memory":
		store := memory.NewStore()
		logger.Warn("using in-memory store, data is lost on restart")
		return &repositories{
			campaigns: store,
			leads:     store,
			sendLog:   store,
			followUps: store,
			close:     func() {},
		}, nil
	case "postgres":
		if cfg.Psql.RunMigrations {
			from, err := db.Migrate(cfg.Psql.Addr.String())
			if err != nil {
				return nil, fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied", slog.Uint64("from_version", uint64(from)))
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, fmt.Errorf("database connection: %w", err)
		}
		return &repositories{
			campaigns: postgres.NewCampaignRepository(pool),
			leads:     postgres.NewLeadRepository(pool),
			sendLog:   postgres.NewSendLogRepository(pool),
			followUps: postgres.NewFollowUpRepository(pool),
			close:     pool.Close,
		}, nil
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}
