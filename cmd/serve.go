package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"urs/internal/account"
	"urs/internal/api"
	"urs/internal/api/handler/v1handler"
	"urs/internal/auth"
	"urs/internal/config"
	"urs/internal/project"
	"urs/internal/scrape"
	"urs/internal/share"
	"urs/internal/worker"
	"urs/pkg/authprovider"
	"urs/pkg/authprovider/gotrue"
	"urs/pkg/logger"
	"urs/pkg/secrets"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			box, err := secrets.New(cfg.Secrets.Key)
			if err != nil {
				logger.Fatal(ctx, "could not create secrets box", zap.Error(err))
			}

			var provider authprovider.Client
			if cfg.Auth.BaseURL != "" {
				provider = gotrue.New(&http.Client{Timeout: 15 * time.Second},
					cfg.Auth.BaseURL, cfg.Auth.AnonKey)
			}

			accounts := account.New(strg, box)
			deps := api.Deps{
				Deps: v1handler.Deps{
					Auth:     auth.New(provider, auth.NewOptions(cfg)),
					Accounts: accounts,
					Projects: project.New(strg),
					Scrapes:  scrape.New(strg),
					Shares:   share.New(strg),
				},
			}

			// otel metrics exported through the prometheus registry
			exp, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
			if err != nil {
				logger.Fatal(ctx, "could not create otel exporter", zap.Error(err))
			}
			mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))

			scrapeWorker, err := worker.NewScrapeJobWorker(strg,
				accounts,
				scrape.NewRunner(),
				worker.DefaultClientFactory,
				cfg.Scraper.JobTimeout,
				mp)
			if err != nil {
				logger.Fatal(ctx, "could not create scrape worker", zap.Error(err))
			}

			riverClient, err := worker.Start(ctx, strg.Pool, scrapeWorker, worker.Options{
				MaxWorkers: cfg.Scraper.MaxWorkers,
			})
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, deps)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(ctx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop workers", zap.Error(err))
			}
		},
	}

	return cmd
}
