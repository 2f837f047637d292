// Command tracker runs the crisis center client tracker: the transition
// engine, its timers, and the operator HTTP API.
//
//	@title						Crisis Center Tracker API
//	@version					1.0
//	@description				Tracks where each client is, their bed, and the timed checks they need.
//	@BasePath					/
//	@schemes					http
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	_ "github.com/crisiscenter/tracker/docs"
	"github.com/crisiscenter/tracker/internal/api"
	"github.com/crisiscenter/tracker/internal/core/ports"
	"github.com/crisiscenter/tracker/internal/core/scheduler"
	"github.com/crisiscenter/tracker/internal/core/service"
	"github.com/crisiscenter/tracker/internal/infrastructure/config"
	mongostore "github.com/crisiscenter/tracker/internal/infrastructure/db/mongo"
	redisbroker "github.com/crisiscenter/tracker/internal/infrastructure/db/redis"
	"github.com/crisiscenter/tracker/internal/infrastructure/http/handlers"
	"github.com/crisiscenter/tracker/internal/infrastructure/notify"
	"github.com/crisiscenter/tracker/internal/infrastructure/queue"
	"github.com/crisiscenter/tracker/internal/infrastructure/storage/file"
	"github.com/crisiscenter/tracker/internal/pkg/clock"
	"github.com/crisiscenter/tracker/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tracker: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	flags := pflag.NewFlagSet("tracker", pflag.ContinueOnError)
	cfg.BindFlags(flags)
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "tracker",
	})

	catalog, err := config.LoadCatalog(cfg.FacilityFile)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	readiness := map[string]handlers.Pinger{
		"data_dir": handlers.DirWritable(cfg.DataDir),
	}

	// --- Snapshot backend ---
	var repo ports.RosterRepository
	switch cfg.SnapshotBackend {
	case config.BackendMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return err
		}
		defer func() {
			dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := client.Disconnect(dctx); err != nil {
				log.Warn().Err(err).Msg("mongo disconnect")
			}
		}()
		repo = mongostore.NewRosterRepository(db, logger.For("roster_repository"))
		readiness["mongodb"] = mongostore.Pinger{Client: client}
		log.Info().Str("database", cfg.Mongo.Database).Msg("roster snapshots stored in mongodb")
	default:
		repo = file.NewRosterRepository(cfg.RosterPath(), logger.For("roster_repository"))
		log.Info().Str("path", cfg.RosterPath()).Msg("roster snapshots stored on disk")
	}

	// --- Notice fan-out ---
	sinks := []queue.Sink{notify.NewLogSink(logger.For("notices"))}
	if cfg.NoticeBackend == config.BackendRedis {
		rdb, err := redisbroker.Connect(ctx, redisbroker.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		defer rdb.Close()
		sinks = append(sinks, redisbroker.NewNoticePublisher(rdb, cfg.Redis.Channel))
		readiness["redis"] = redisbroker.Pinger{Client: rdb}
	}

	// Workers stop after the engine, not on the signal.
	queueCtx, stopQueue := context.WithCancel(context.Background())
	notices := queue.NewNoticeQueue(cfg.NoticeWorkers, sinks, logger.For("notice_queue"))
	notices.Start(queueCtx)

	clk := clock.Real()
	feed := notify.NewFeed(0)
	dispatcher := notify.NewDispatcher(feed, notices, clk, logger.For("dispatcher"))

	engine := service.NewEngine(service.Deps{
		Repository:    repo,
		ActivityLog:   file.NewActivityLog(cfg.ActivityLogDir(), logger.For("activity_log")),
		Timers:        scheduler.New(clk, cfg.CheckInterval, logger.For("scheduler")),
		Dispatcher:    dispatcher,
		Clock:         clk,
		Catalog:       catalog,
		ShowerTimeout: cfg.ShowerTimeout,
	}, logger.For("engine"))
	if err := engine.Start(ctx); err != nil {
		stopQueue()
		return err
	}

	router, err := api.NewRouter(api.RouterDeps{
		Engine:          engine,
		Feed:            feed,
		Warn:            dispatcher,
		Readiness:       readiness,
		AllowedNetworks: cfg.AllowedNetworks,
		Log:             logger.For("http"),
	})
	if err != nil {
		engine.Close()
		stopQueue()
		return fmt.Errorf("router: %w", err)
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("http server listening")
		if err := router.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	case err = <-serveErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if serr := router.Shutdown(shutdownCtx); serr != nil {
		log.Warn().Err(serr).Msg("http shutdown")
	}

	engine.Close()
	stopQueue()
	notices.Wait()
	logShutdown(log, err)
	return err
}

func logShutdown(log zerolog.Logger, err error) {
	if err != nil {
		log.Error().Err(err).Msg("tracker stopped")
		return
	}
	log.Info().Msg("tracker stopped")
}
