package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"metargb/calendar-format/internal/config"
	"metargb/calendar-format/internal/handler"
	"metargb/calendar-format/internal/l10n"
	"metargb/calendar-format/internal/localization"
	"metargb/calendar-format/internal/repository"
	"metargb/calendar-format/internal/service"
	"metargb/calendar-format/pkg/db"
	"metargb/calendar-format/pkg/logger"
	"metargb/calendar-format/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLog := logger.NewLogger(cfg.ServiceName, cfg.LogLevel)
	appMetrics := metrics.NewMetrics(cfg.ServiceName, nil)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	conn, err := db.NewConnection(connectCtx, cfg.DB)
	cancel()
	if err != nil {
		appLog.Entry().WithError(err).Fatal("Failed to connect to database")
	}
	defer conn.Close()
	appLog.Entry().Info("Successfully connected to database")

	if !cfg.SkipSchemaCheck {
		if err := db.NewSchemaGuard(conn.DB).ValidateTables(ctx, db.SettingsSchema); err != nil {
			appLog.Entry().WithError(err).Fatal("Database schema check failed")
		}
	}
	go appMetrics.CollectDBPoolStats(ctx, conn.DB, 15*time.Second)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	opts := []service.Option{
		service.WithLogger(appLog.Entry()),
		service.WithPathObserver(func(p localization.Path) { appMetrics.ObserveFormatPath(string(p)) }),
	}
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		appLog.Entry().WithError(err).Warn("Redis unavailable, settings cache disabled")
	} else {
		opts = append(opts, service.WithCache(repository.NewSettingsCache(redisClient, cfg.SettingsCacheTTL)))
	}
	cancel()

	settingsRepo := repository.NewSettingsRepository(conn.DB)
	formatService := service.NewFormatService(settingsRepo, l10n.NewCatalog(), service.Defaults{
		Locale:   cfg.DefaultLocale,
		Timezone: cfg.DefaultTimezone,
	}, opts...)

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logger.UnaryServerInterceptor(appLog),
			metrics.UnaryServerInterceptor(appMetrics),
		),
		grpc.ChainStreamInterceptor(
			logger.StreamServerInterceptor(appLog),
			metrics.StreamServerInterceptor(appMetrics),
		),
	)
	handler.RegisterFormatHandler(grpcServer, formatService)

	healthServer := health.NewServer()
	healthServer.SetServingStatus(handler.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	metricsServer := &http.Server{
		Addr:              ":" + cfg.MetricsPort,
		Handler:           promhttp.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Entry().WithError(err).Error("Metrics server failed")
		}
	}()

	listener, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		appLog.Entry().WithError(err).Fatalf("Failed to listen on port %s", cfg.GRPCPort)
	}

	appLog.Entry().Infof("Calendar format service listening on port %s", cfg.GRPCPort)

	go func() {
		if err := grpcServer.Serve(listener); err != nil {
			appLog.Entry().WithError(err).Fatal("Failed to serve")
		}
	}()

	<-ctx.Done()

	appLog.Entry().Info("Shutting down server...")
	healthServer.Shutdown()
	grpcServer.GracefulStop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = metricsServer.Shutdown(shutdownCtx)
	appLog.Entry().Info("Server stopped")
}
