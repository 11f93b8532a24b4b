package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Freeeeeet/interview_scheduler/internal/app"
	"github.com/Freeeeeet/interview_scheduler/internal/config"
	"github.com/Freeeeeet/interview_scheduler/internal/controller"
	"github.com/Freeeeeet/interview_scheduler/internal/metrics"
	"github.com/Freeeeeet/interview_scheduler/internal/model"
	"github.com/Freeeeeet/interview_scheduler/internal/notifier"
	"github.com/Freeeeeet/interview_scheduler/internal/repository"
	"github.com/Freeeeeet/interview_scheduler/internal/service"
	"github.com/go-telegram/bot"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

type interviewNotifier interface {
	service.Notifier
	SendAgenda(ctx context.Context, title string, slots []*model.InterviewSlot) error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := app.NewLogger(cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("Starting interview scheduler",
		zap.String("environment", cfg.Environment),
		zap.Int("max_scan_days", cfg.MaxScanDays),
		zap.Int("max_conflict_retries", cfg.MaxConflictRetries))

	if missing := cfg.MissingNotifierSettings(); len(missing) > 0 {
		logger.Warn("⚠️ Confirmation settings are not configured, confirmations will be incomplete",
			zap.Strings("missing", missing))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// База данных
	pool, err := app.NewPool(ctx, cfg.GetDBDSN(), logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath, logger)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	if err := migrator.Close(); err != nil {
		logger.Warn("Failed to close migrator", zap.Error(err))
	}

	// Метрики
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	var metricsServer *http.Server
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler(registry))
		metricsServer = &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("Metrics endpoint started", zap.String("addr", cfg.MetricsAddr))
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("Metrics server failed", zap.Error(err))
			}
		}()
	}

	// Нотификатор: без токена подтверждения только пишутся в лог
	var (
		botInstance *bot.Bot
		notify      interviewNotifier
	)
	if cfg.TelegramToken != "" {
		botInstance, err = bot.New(cfg.TelegramToken)
		if err != nil {
			logger.Fatal("Failed to create bot", zap.Error(err))
		}
		notify = notifier.NewTelegramNotifier(botInstance, cfg.RecruiterChatID, logger)
	} else {
		notify = notifier.NewLogNotifier(logger)
	}

	// Сервисы
	hours := model.DefaultBusinessHours()
	slotRepo := repository.NewInterviewSlotRepository(pool, hours)

	interviewScheduler := service.NewInterviewScheduler(
		slotRepo,
		hours,
		service.SystemClock(),
		service.SchedulerConfig{
			MaxScanDays:        cfg.MaxScanDays,
			MaxConflictRetries: cfg.MaxConflictRetries,
		},
		m,
		logger,
	)

	applicationService := service.NewApplicationService(
		interviewScheduler,
		slotRepo,
		notify,
		service.MeetingConfig{Link: cfg.MeetingLink, Passcode: cfg.MeetingPasscode},
		hours,
		service.SystemClock(),
		m,
		logger,
	)

	if total, err := slotRepo.Count(ctx); err != nil {
		logger.Warn("Failed to count interview slots", zap.Error(err))
	} else {
		logger.Info("Interview slots in storage", zap.Int64("count", total))
	}

	// Повестка на завтра
	agenda := app.NewScheduler(applicationService, notify, cfg.AgendaInterval, logger)
	agenda.Start(ctx)
	defer agenda.Stop()

	if botInstance != nil {
		botController := controller.NewBotController(botInstance, applicationService, cfg.RecruiterChatID, logger)
		if err := botController.RegisterHandlers(ctx); err != nil {
			logger.Warn("Failed to register bot commands", zap.Error(err))
		}

		logger.Info("✅ Bot started")
		if err := botController.Start(ctx); err != nil {
			logger.Error("Bot stopped with error", zap.Error(err))
		}
	} else {
		logger.Info("Telegram is not configured, waiting for shutdown")
		<-ctx.Done()
	}

	logger.Info("Shutting down...")

	if metricsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Failed to stop metrics server", zap.Error(err))
		}
	}
}
