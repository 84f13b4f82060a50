// @title Partner Dashboard API
// @version 1.0
// @description Funnel analytics and partner views over Airtable and Mixmax
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey CronAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"partnerdash-be/config"
	"partnerdash-be/internal/handlers"
	"partnerdash-be/internal/middleware"
	"partnerdash-be/internal/routes"
	"partnerdash-be/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	_ "partnerdash-be/docs"
)

const (
	refreshWorkerInterval = 5 * time.Minute
	shutdownTimeout       = 10 * time.Second
)

func main() {
	var cfg *config.Config

	rootCmd := &cobra.Command{
		Use:           "partnerdash",
		Short:         "Partner dashboard backend",
		Long:          "Serves funnel analytics and partner views built from Airtable and Mixmax.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg = config.Load()
			slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))
		},
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), cfg)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "refresh",
		Short: "Refresh the engagement cache from Mixmax",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), cfg, func(ctx context.Context, a *app) error {
				resp, err := a.engagement.Refresh(ctx)
				if err != nil {
					return err
				}
				fmt.Printf("engagement cache refreshed at %s (%d recipients)\n", resp.CachedAt.Format(time.RFC3339), len(resp.Recipients))
				return nil
			})
		},
	})

	var period string
	analyticsCmd := &cobra.Command{
		Use:   "analytics",
		Short: "Compute dashboard analytics and print them as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), cfg, func(ctx context.Context, a *app) error {
				data, err := a.analytics.GetAnalytics(ctx, period)
				if err != nil {
					return err
				}
				return printJSON(data)
			})
		},
	}
	analyticsCmd.Flags().StringVarP(&period, "period", "p", "30d", "Time period: 7d, 30d, 90d, all")
	rootCmd.AddCommand(analyticsCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "daily-check",
		Short: "Send the daily campaign digest",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), cfg, func(ctx context.Context, a *app) error {
				result, err := a.dailyCheck.Run(ctx)
				if err != nil {
					return err
				}
				return printJSON(result)
			})
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("command failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func withApp(ctx context.Context, cfg *config.Config, fn func(context.Context, *app) error) error {
	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.close()
	return fn(ctx, a)
}

func serve(ctx context.Context, cfg *config.Config) error {
	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.close()

	if cfg.RefreshWorkerEnabled {
		services.NewRefreshWorker(a.engagement, a.store, time.Now).Start(ctx, refreshWorkerInterval)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(slog.Default()))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(cfg))

	routes.SetupRoutes(r, cfg, routes.Handlers{
		Auth:       handlers.NewAuthHandler(cfg),
		Analytics:  handlers.NewAnalyticsHandler(a.analytics),
		Engagement: handlers.NewEngagementHandler(a.engagement),
		Insights:   handlers.NewInsightsHandler(a.insights),
		Partners:   handlers.NewPartnerHandler(a.partners),
		Cron:       handlers.NewCronHandler(a.engagement, a.dailyCheck),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "port", cfg.Port, "cacheBackend", cfg.EngagementCacheBackend)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
