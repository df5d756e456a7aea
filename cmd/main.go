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

	approveBookingHandler "github.com/perfectdrive/rental-service/internal/api/handlers/approve_booking"
	calculatePriceHandler "github.com/perfectdrive/rental-service/internal/api/handlers/calculate_price"
	createBookingHandler "github.com/perfectdrive/rental-service/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/perfectdrive/rental-service/internal/api/handlers/delete_booking"
	getAvailabilityHandler "github.com/perfectdrive/rental-service/internal/api/handlers/get_availability"
	getBookingHandler "github.com/perfectdrive/rental-service/internal/api/handlers/get_booking"
	listBookingsHandler "github.com/perfectdrive/rental-service/internal/api/handlers/list_bookings"
	rejectBookingHandler "github.com/perfectdrive/rental-service/internal/api/handlers/reject_booking"
	sendPaymentLinkHandler "github.com/perfectdrive/rental-service/internal/api/handlers/send_payment_link"
	"github.com/perfectdrive/rental-service/internal/api/middleware"
	"github.com/perfectdrive/rental-service/internal/config"
	bookingRepo "github.com/perfectdrive/rental-service/internal/infra/storage/booking"
	mailerClient "github.com/perfectdrive/rental-service/internal/integrations/mailer"
	bookingsService "github.com/perfectdrive/rental-service/internal/service/bookings"
	calculatePriceUC "github.com/perfectdrive/rental-service/internal/usecase/calculate_price"
	classifyAvailabilityUC "github.com/perfectdrive/rental-service/internal/usecase/classify_availability"
	createBookingUC "github.com/perfectdrive/rental-service/internal/usecase/create_booking"
	"github.com/perfectdrive/rental-service/pkg/dbmetrics"
	"github.com/perfectdrive/rental-service/pkg/logger"
	"github.com/perfectdrive/rental-service/pkg/metrics"
	"github.com/perfectdrive/rental-service/pkg/simpletxmanager"
	"github.com/perfectdrive/rental-service/pkg/txmanager"
)

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

	log.Info("Starting rental-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
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

	// Инициализируем почтовый клиент
	mailer := mailerClient.NewClient(
		cfg.Mailer.URL,
		cfg.Mailer.From,
		cfg.Mailer.AdminEmail,
		time.Duration(cfg.Mailer.Timeout)*time.Second,
		log,
	)
	log.Info("Mailer client initialized (gateway=%s, from=%s)", cfg.Mailer.URL, cfg.Mailer.From)

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var bookingRepository *bookingRepo.Repository

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		mailer,
		log,
	)

	// Инициализируем use cases
	calculatePriceUseCase := calculatePriceUC.NewUseCase(log)

	classifyAvailabilityUseCase := classifyAvailabilityUC.NewUseCase(
		bookingRepository,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		calculatePriceUseCase,
		mailer,
		txMgr,
		log,
	)

	// Инициализируем handlers
	calculatePrice := calculatePriceHandler.NewHandler(calculatePriceUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(classifyAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	approveBooking := approveBookingHandler.NewHandler(bookingSvc, log)
	rejectBooking := rejectBookingHandler.NewHandler(bookingSvc, log)
	sendPaymentLink := sendPaymentLinkHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (витрина, без аутентификации)
	// ============================================================

	// Расчет стоимости аренды
	api.HandleFunc("/quote", calculatePrice.Handle).Methods(http.MethodGet)

	// Доступность календаря по дням
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Создание заявки на аренду
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-ID header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(log))

	// Список заявок с фильтрацией
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Заявка по ID
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Подтверждение заявки
	admin.HandleFunc("/bookings/{bookingId}/approve", approveBooking.Handle).Methods(http.MethodPatch)

	// Отклонение заявки
	admin.HandleFunc("/bookings/{bookingId}/reject", rejectBooking.Handle).Methods(http.MethodPatch)

	// Отправка ссылки на оплату
	admin.HandleFunc("/bookings/{bookingId}/payment-link", sendPaymentLink.Handle).Methods(http.MethodPatch)

	// Удаление заявки
	admin.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

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
