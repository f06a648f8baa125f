package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"update-sync/di"
	"update-sync/job"
	"update-sync/rest"
	"update-sync/utils/logger"
	"update-sync/utils/otel"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the sync daemon and REST API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		shutdownOTel, err := otel.InitProvider(ctx, otel.Config{
			ServiceName:    cfg.OTel.ServiceName,
			ServiceVersion: version,
			OTLPEndpoint:   cfg.OTel.Endpoint,
			Enabled:        cfg.OTel.Enabled,
			SampleRatio:    cfg.OTel.SampleRatio,
		})
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = shutdownOTel(shutdownCtx)
		}()

		log = logger.Init(logger.Options{
			Level:       cfg.Logging.Level,
			Format:      cfg.Logging.Format,
			OTelEnabled: cfg.OTel.Enabled,
			ServiceName: cfg.OTel.ServiceName,
		})

		return withContainer(ctx, func(container *di.ApplicationComponents) error {
			return serve(ctx, container)
		})
	},
}

func serve(ctx context.Context, container *di.ApplicationComponents) error {
	g, ctx := errgroup.WithContext(ctx)

	if container.NatsConn != nil {
		js, err := container.NatsConn.JetStream()
		if err != nil {
			return fmt.Errorf("jetstream: %w", err)
		}
		trigger := job.NewNatsSyncTrigger(js, cfg.NATS.SyncSubject, cfg.NATS.Durable, cfg.Sync.Timeout, func(ctx context.Context) job.Result {
			ctx, cancel := context.WithTimeout(ctx, cfg.Sync.Timeout)
			defer cancel()
			return container.SyncWorker.DoWork(ctx)
		}, log)
		if _, err := trigger.Start(ctx); err != nil {
			return fmt.Errorf("subscribe sync trigger: %w", err)
		}
	}

	g.Go(func() error {
		if err := container.SyncManager.Run(ctx); !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	scheduler := job.NewJobScheduler(log)
	scheduler.Add(job.Job{
		Name:     "periodic-sync",
		Interval: cfg.Sync.Interval,
		Fn: func(ctx context.Context) error {
			if !container.SyncManager.RequestSync() {
				log.DebugContext(ctx, "sync already queued")
			}
			return nil
		},
	})
	scheduler.Add(job.Job{
		Name:     "preferences-refresh",
		Interval: cfg.Preferences.PollInterval,
		Timeout:  cfg.Preferences.PollInterval,
		Fn: func(ctx context.Context) error {
			_, err := container.PreferencesDataSource.Refresh(ctx)
			return err
		},
	})
	scheduler.Start(ctx)
	defer scheduler.Shutdown()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	rest.RegisterRoutes(e, container, cfg)

	g.Go(func() error {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		log.InfoContext(ctx, "starting server", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	log.Info("server stopped")
	return err
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
