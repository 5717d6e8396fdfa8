package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	affiliateLoginHandler "github.com/Admin-dev32/Manna-Affiliate/internal/api/handlers/affiliate_login"
	createBookingHandler "github.com/Admin-dev32/Manna-Affiliate/internal/api/handlers/create_booking"
	createCheckoutHandler "github.com/Admin-dev32/Manna-Affiliate/internal/api/handlers/create_checkout"
	generateLinkHandler "github.com/Admin-dev32/Manna-Affiliate/internal/api/handlers/generate_link"
	getAvailabilityHandler "github.com/Admin-dev32/Manna-Affiliate/internal/api/handlers/get_availability"
	healthHandler "github.com/Admin-dev32/Manna-Affiliate/internal/api/handlers/health"
	stripeWebhookHandler "github.com/Admin-dev32/Manna-Affiliate/internal/api/handlers/stripe_webhook"
	"github.com/Admin-dev32/Manna-Affiliate/internal/api/middleware"
	"github.com/Admin-dev32/Manna-Affiliate/internal/config"
	"github.com/Admin-dev32/Manna-Affiliate/internal/domain"
	calendarStore "github.com/Admin-dev32/Manna-Affiliate/internal/infra/calendar/google"
	affiliateRepo "github.com/Admin-dev32/Manna-Affiliate/internal/infra/storage/affiliate"
	"github.com/Admin-dev32/Manna-Affiliate/internal/integrations/stripeapi"
	"github.com/Admin-dev32/Manna-Affiliate/internal/scheduling"
	affiliatesService "github.com/Admin-dev32/Manna-Affiliate/internal/service/affiliates"
	commitBookingUC "github.com/Admin-dev32/Manna-Affiliate/internal/usecase/commit_booking"
	createCheckoutUC "github.com/Admin-dev32/Manna-Affiliate/internal/usecase/create_checkout"
	generateLinkUC "github.com/Admin-dev32/Manna-Affiliate/internal/usecase/generate_link"
	getAvailabilityUC "github.com/Admin-dev32/Manna-Affiliate/internal/usecase/get_availability"
	"github.com/Admin-dev32/Manna-Affiliate/pkg/dbmetrics"
	"github.com/Admin-dev32/Manna-Affiliate/pkg/logger"
	"github.com/Admin-dev32/Manna-Affiliate/pkg/metrics"
)

// externalCollector объединяет потребителей метрик внешних вызовов
// (календарь и Stripe). Когда метрики выключены, подставляется заглушка.
type externalCollector interface {
	ObserveExternalCall(target, operation string, duration time.Duration, err error)
}

type noopCollector struct{}

func (noopCollector) ObserveExternalCall(string, string, time.Duration, error) {}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting Manna-Affiliate booking service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var externalMetrics externalCollector = noopCollector{}
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		externalMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных (реестр аффилиатов)
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем планировочное ядро
	resolver, err := scheduling.NewResolver(cfg.Booking.TimeZone)
	if err != nil {
		log.Fatal("Failed to init timezone resolver: %v", err)
	}

	liveMinutes, err := cfg.Booking.PackageLiveMinutes()
	if err != nil {
		log.Fatal("Failed to read package durations: %v", err)
	}
	catalog, err := domain.NewPackageCatalog(liveMinutes)
	if err != nil {
		log.Fatal("Failed to build package catalog: %v", err)
	}

	windows, err := scheduling.NewWindowCalculator(catalog, cfg.Booking.PrepBuffer(), cfg.Booking.CleanupBuffer())
	if err != nil {
		log.Fatal("Failed to init window calculator: %v", err)
	}

	generator := scheduling.NewGenerator(resolver)
	capacity := scheduling.NewCapacityEvaluator(resolver, cfg.Booking.Limits())

	log.Info("Scheduling configured (tz=%s, hours=%02d:00-%02d:00, step=%dm, max_per_day=%d, max_concurrent=%d)",
		cfg.Booking.TimeZone, cfg.Booking.OpenHour, cfg.Booking.CloseHour,
		cfg.Booking.StepMinutes, cfg.Booking.MaxPerDay, cfg.Booking.MaxConcurrent)

	// Инициализируем хранилище обязательств (Google Calendar)
	store, err := calendarStore.NewStore(
		context.Background(),
		cfg.Calendar.CredentialsFile,
		cfg.Calendar.CalendarID,
		resolver.Location(),
		time.Duration(cfg.Calendar.RequestTimeout)*time.Second,
		log,
		externalMetrics,
	)
	if err != nil {
		log.Fatal("Failed to init calendar store: %v", err)
	}
	log.Info("Calendar store initialized (calendar_id=%s)", cfg.Calendar.CalendarID)

	// Инициализируем платежного клиента
	stripeClient := stripeapi.NewClient(
		cfg.Stripe.SecretKey,
		cfg.Stripe.PublicURL,
		cfg.Stripe.WebhookSecret,
		time.Duration(cfg.Stripe.WebhookTolerance)*time.Second,
		log,
		externalMetrics,
	)
	log.Info("Stripe client initialized (public_url=%s)", cfg.Stripe.PublicURL)

	// Инициализируем репозитории (с метриками или без)
	var affiliateRepository *affiliateRepo.Repository
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
		affiliateRepository = affiliateRepo.NewRepository(wrappedDB)
	} else {
		affiliateRepository = affiliateRepo.NewRepository(db)
	}

	// Инициализируем сервисы
	affiliateSvc := affiliatesService.NewService(affiliateRepository, log)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		store,
		resolver,
		generator,
		windows,
		capacity,
		cfg.Booking.OpenHour, cfg.Booking.CloseHour, cfg.Booking.StepMinutes,
		log,
	)

	commitBookingUseCase := commitBookingUC.NewUseCase(
		store,
		resolver,
		windows,
		capacity,
		cfg.Booking.OpenHour, cfg.Booking.CloseHour, cfg.Booking.StepMinutes,
		log,
	)

	createCheckoutUseCase := createCheckoutUC.NewUseCase(
		store,
		stripeClient,
		resolver,
		windows,
		capacity,
		cfg.Booking.OpenHour, cfg.Booking.CloseHour, cfg.Booking.StepMinutes,
		log,
	)

	generateLinkUseCase := generateLinkUC.NewUseCase(
		affiliateSvc,
		createCheckoutUseCase,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(commitBookingUseCase, log)
	createCheckout := createCheckoutHandler.NewHandler(createCheckoutUseCase, log)
	generateLink := generateLinkHandler.NewHandler(generateLinkUseCase, log)
	affiliateLogin := affiliateLoginHandler.NewHandler(affiliateSvc, log)
	stripeWebhook := stripeWebhookHandler.NewHandler(stripeClient, commitBookingUseCase, log)
	health := healthHandler.NewHandler(db)

	// Настраиваем роутер
	r := mux.NewRouter()

	// CORS для браузерных клиентов (формы бронирования и кабинет аффилиата)
	r.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health check
	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Доступные слоты на день
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Прямое бронирование (без оплаты)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Создание checkout-сессии
	api.HandleFunc("/checkout", createCheckout.Handle).Methods(http.MethodPost)

	// Кабинет аффилиата
	api.HandleFunc("/affiliate/login", affiliateLogin.Handle).Methods(http.MethodPost)
	api.HandleFunc("/affiliate/link", generateLink.Handle).Methods(http.MethodPost)

	// Stripe вебхук: фиксация бронирования после оплаты
	api.HandleFunc("/stripe/webhook", stripeWebhook.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
