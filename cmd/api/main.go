package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/supportcrm/dashboard-service/internal/api/http"
	"github.com/supportcrm/dashboard-service/internal/api/http/handlers"
	"github.com/supportcrm/dashboard-service/internal/config"
	"github.com/supportcrm/dashboard-service/internal/events"
	"github.com/supportcrm/dashboard-service/internal/observability"
	"github.com/supportcrm/dashboard-service/internal/persistence"
	"github.com/supportcrm/dashboard-service/internal/repository"
	"github.com/supportcrm/dashboard-service/internal/service"
	"github.com/supportcrm/dashboard-service/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	stores := repository.NewStores()
	if cfg.Seed.Enabled {
		if err := repository.SeedDemoData(ctx, stores); err != nil {
			logger.Fatal("failed to seed demo data", zap.Error(err))
		}
		logger.Info("demo dataset loaded")
	}

	dispatcher := events.NewInMemoryDispatcher()

	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo:   stores.Tickets,
		CommentRepo:  stores.Comments,
		FeedbackRepo: stores.Feedback,
		UserRepo:     stores.Users,
		Dispatcher:   dispatcher,
	})
	analyticsService := service.NewAnalyticsService(stores.Tickets, stores.Feedback, stores.Users)

	auditRecorder := service.NewAuditRecorder(dispatcher, stores.Audit, logger)
	auditRecorder.RegisterHandlers()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	notificationService.RegisterHandlers()

	sessionStore := session.NewRedisStore(redis.Client)
	sessionService, err := session.NewService(sessionStore, stores.Users, cfg.Auth)
	if err != nil {
		logger.Fatal("failed to init session service", zap.Error(err))
	}
	sessionMiddleware := session.NewMiddleware(sessionService)

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:            handlers.NewHealthHandler(redis, metrics),
		Auth:              handlers.NewAuthHandler(sessionService),
		Tickets:           handlers.NewTicketsHandler(ticketService),
		Users:             handlers.NewUsersHandler(stores.Users),
		Admin:             handlers.NewAdminHandler(analyticsService, auditRecorder),
		SessionMiddleware: sessionMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
