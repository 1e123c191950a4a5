package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/card-price-tracker/internal/api/handlers"
	"github.com/donaldgifford/card-price-tracker/internal/api/middleware"
	"github.com/donaldgifford/card-price-tracker/internal/config"
	"github.com/donaldgifford/card-price-tracker/internal/ebay"
	"github.com/donaldgifford/card-price-tracker/internal/engine"
	"github.com/donaldgifford/card-price-tracker/internal/store"
)

const shutdownTimeout = 30 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server and scheduler",
		Long: "Connects to PostgreSQL, applies migrations, loads the latest reference snapshot,\n" +
			"starts the ingestion, import and revaluation schedule, and serves the HTTP API.",
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.Close()

	eng, rl, err := newEngine(cfg, st, nil, log)
	if err != nil {
		return err
	}
	if err := eng.LoadSnapshot(ctx); err != nil {
		return err
	}

	sched, err := engine.NewScheduler(eng, st,
		cfg.Schedule.IngestionInterval,
		cfg.Schedule.ImportInterval,
		cfg.Schedule.RevaluationInterval,
		log,
	)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	sched.RecoverStaleJobRuns(ctx)
	sched.Start()

	e := newServer(cfg, st, eng, sched, rl, log)
	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case serveErr = <-errCh:
		log.Error("server error", "error", serveErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("shutting down server", "error", err)
	}

	select {
	case <-sched.Stop().Done():
	case <-shutdownCtx.Done():
		log.Warn("scheduler jobs still running at shutdown")
	}

	log.Info("server stopped")
	return serveErr
}

// newServer builds the Echo server with the Huma API mounted on it.
func newServer(
	cfg *config.Config,
	st store.Store,
	eng *engine.Engine,
	sched *engine.Scheduler,
	rl *ebay.RateLimiter,
	log *slog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(
		middleware.RequestLog(log),
		middleware.Recovery(log),
		middleware.Metrics(),
	)

	health := handlers.NewHealthHandler(st, eng.Snapshots())
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("Card Price Tracker API", Version))

	var quota handlers.QuotaReporter
	if rl != nil {
		quota = rl
	}

	handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(st))
	handlers.RegisterValuateRoutes(api, handlers.NewValuateHandler(eng))
	handlers.RegisterReferenceRoutes(api, handlers.NewReferenceHandler(st, eng.Snapshots()))
	handlers.RegisterTriggerRoutes(api, handlers.NewTriggerHandler(sched))
	handlers.RegisterJobRoutes(api, handlers.NewJobsHandler(st))
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(quota))

	return e
}
