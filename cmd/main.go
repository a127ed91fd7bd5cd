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

	cancelAppointmentHandler "github.com/t1mofey/SLN-BookingService/internal/api/handlers/cancel_appointment"
	checkConflictHandler "github.com/t1mofey/SLN-BookingService/internal/api/handlers/check_conflict"
	createAppointmentHandler "github.com/t1mofey/SLN-BookingService/internal/api/handlers/create_appointment"
	createUnavailabilityHandler "github.com/t1mofey/SLN-BookingService/internal/api/handlers/create_unavailability"
	deleteBookingPolicyHandler "github.com/t1mofey/SLN-BookingService/internal/api/handlers/delete_booking_policy"
	deleteUnavailabilityHandler "github.com/t1mofey/SLN-BookingService/internal/api/handlers/delete_unavailability"
	getAppointmentHandler "github.com/t1mofey/SLN-BookingService/internal/api/handlers/get_appointment"
	getAvailabilityRangesHandler "github.com/t1mofey/SLN-BookingService/internal/api/handlers/get_availability_ranges"
	getAvailableSlotsHandler "github.com/t1mofey/SLN-BookingService/internal/api/handlers/get_available_slots"
	getBookingPolicyHandler "github.com/t1mofey/SLN-BookingService/internal/api/handlers/get_booking_policy"
	getClientAppointmentsHandler "github.com/t1mofey/SLN-BookingService/internal/api/handlers/get_client_appointments"
	getEstablishmentAppointmentsHandler "github.com/t1mofey/SLN-BookingService/internal/api/handlers/get_establishment_appointments"
	listUnavailabilitiesHandler "github.com/t1mofey/SLN-BookingService/internal/api/handlers/list_unavailabilities"
	updateAppointmentStatusHandler "github.com/t1mofey/SLN-BookingService/internal/api/handlers/update_appointment_status"
	updateBookingPolicyHandler "github.com/t1mofey/SLN-BookingService/internal/api/handlers/update_booking_policy"
	"github.com/t1mofey/SLN-BookingService/internal/api/middleware"
	"github.com/t1mofey/SLN-BookingService/internal/config"
	"github.com/t1mofey/SLN-BookingService/internal/infra/cache"
	appointmentRepo "github.com/t1mofey/SLN-BookingService/internal/infra/storage/appointment"
	policyRepo "github.com/t1mofey/SLN-BookingService/internal/infra/storage/policy"
	unavailabilityRepo "github.com/t1mofey/SLN-BookingService/internal/infra/storage/unavailability"
	clientServiceClient "github.com/t1mofey/SLN-BookingService/internal/integrations/clientservice"
	establishmentServiceClient "github.com/t1mofey/SLN-BookingService/internal/integrations/establishmentservice"
	appointmentsService "github.com/t1mofey/SLN-BookingService/internal/service/appointments"
	policyService "github.com/t1mofey/SLN-BookingService/internal/service/policy"
	unavailabilitiesService "github.com/t1mofey/SLN-BookingService/internal/service/unavailabilities"
	checkConflictUC "github.com/t1mofey/SLN-BookingService/internal/usecase/check_conflict"
	createAppointmentUC "github.com/t1mofey/SLN-BookingService/internal/usecase/create_appointment"
	createUnavailabilityUC "github.com/t1mofey/SLN-BookingService/internal/usecase/create_unavailability"
	getAvailabilityRangesUC "github.com/t1mofey/SLN-BookingService/internal/usecase/get_availability_ranges"
	getAvailableSlotsUC "github.com/t1mofey/SLN-BookingService/internal/usecase/get_available_slots"
	"github.com/t1mofey/SLN-BookingService/pkg/dbmetrics"
	"github.com/t1mofey/SLN-BookingService/pkg/logger"
	"github.com/t1mofey/SLN-BookingService/pkg/metrics"
	"github.com/t1mofey/SLN-BookingService/pkg/simpletxmanager"
	"github.com/t1mofey/SLN-BookingService/pkg/txmanager"
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

	log.Info("Starting SLN-BookingService...")
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

	// Инициализируем интеграционных клиентов
	establishmentClient := establishmentServiceClient.NewClient(
		cfg.EstablishmentService.URL,
		time.Duration(cfg.EstablishmentService.Timeout)*time.Second,
		log,
	)
	clientClient := clientServiceClient.NewClient(
		cfg.ClientService.URL,
		time.Duration(cfg.ClientService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (EstablishmentService=%s timeout=%ds, ClientService=%s timeout=%ds)",
		cfg.EstablishmentService.URL, cfg.EstablishmentService.Timeout,
		cfg.ClientService.URL, cfg.ClientService.Timeout)

	// Оборачиваем EstablishmentService клиента кэшем (если включен Redis)
	// Интерфейсы usecase/service принимают обе реализации
	var establishmentAPI interface {
		GetEstablishment(ctx context.Context, establishmentID int64) (*establishmentServiceClient.Establishment, error)
		GetService(ctx context.Context, establishmentID, serviceID int64) (*establishmentServiceClient.Service, error)
	} = establishmentClient

	var redisCache *cache.Cache
	if cfg.Redis.Enabled {
		redisCache = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, time.Duration(cfg.Redis.TTL)*time.Second)
		if err := redisCache.Ping(context.Background()); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		defer redisCache.Close()

		establishmentAPI = establishmentServiceClient.NewCachedClient(establishmentClient, redisCache, log)
		log.Info("Redis cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository    *appointmentRepo.Repository
		unavailabilityRepository *unavailabilityRepo.Repository
		policyRepository         *policyRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		unavailabilityRepository = unavailabilityRepo.NewRepository(wrappedDB)
		policyRepository = policyRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		unavailabilityRepository = unavailabilityRepo.NewRepository(db)
		policyRepository = policyRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(
		appointmentRepository,
		establishmentAPI,
		log,
	)
	unavailabilitySvc := unavailabilitiesService.NewService(
		unavailabilityRepository,
		establishmentAPI,
		log,
	)
	policySvc := policyService.NewService(
		policyRepository,
		establishmentAPI,
		log,
	)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		unavailabilityRepository,
		policyRepository,
		establishmentAPI,
		clientClient,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		unavailabilityRepository,
		policyRepository,
		establishmentAPI,
		log,
	)

	getAvailabilityRangesUseCase := getAvailabilityRangesUC.NewUseCase(
		appointmentRepository,
		unavailabilityRepository,
		establishmentAPI,
		log,
	)

	createUnavailabilityUseCase := createUnavailabilityUC.NewUseCase(
		appointmentRepository,
		unavailabilityRepository,
		establishmentAPI,
		txMgr,
		log,
	)

	checkConflictUseCase := checkConflictUC.NewUseCase(
		appointmentRepository,
		unavailabilityRepository,
		establishmentAPI,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAvailabilityRanges := getAvailabilityRangesHandler.NewHandler(getAvailabilityRangesUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentSvc, log)
	getClientAppointments := getClientAppointmentsHandler.NewHandler(appointmentSvc, log)
	getEstablishmentAppointments := getEstablishmentAppointmentsHandler.NewHandler(appointmentSvc, log)
	checkConflict := checkConflictHandler.NewHandler(checkConflictUseCase, log)
	createUnavailability := createUnavailabilityHandler.NewHandler(createUnavailabilityUseCase, log)
	listUnavailabilities := listUnavailabilitiesHandler.NewHandler(unavailabilitySvc, log)
	deleteUnavailability := deleteUnavailabilityHandler.NewHandler(unavailabilitySvc, log)
	getBookingPolicy := getBookingPolicyHandler.NewHandler(policySvc, log)
	updateBookingPolicy := updateBookingPolicyHandler.NewHandler(policySvc, log)
	deleteBookingPolicy := deleteBookingPolicyHandler.NewHandler(policySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Сквозной request id для трассировки
	r.Use(middleware.RequestID)

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

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		public.Use(limiter.Middleware)
		log.Info("Rate limiting enabled on public routes (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// Доступные слоты для записи на день
	public.HandleFunc("/establishments/{establishmentId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Свободные диапазоны на период
	public.HandleFunc("/establishments/{establishmentId}/availability",
		getAvailabilityRanges.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	// Создание записи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена записи
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// Смена статуса записи (для мастеров)
	protected.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// История записей клиента
	protected.HandleFunc("/clients/{clientId}/appointments", getClientAppointments.Handle).Methods(http.MethodGet)

	// --- Управление заведением (для мастеров) ---
	// Список записей заведения
	protected.HandleFunc("/establishments/{establishmentId}/appointments",
		getEstablishmentAppointments.Handle).Methods(http.MethodGet)

	// Предпроверка интервала на конфликты
	protected.HandleFunc("/establishments/{establishmentId}/conflict-check",
		checkConflict.Handle).Methods(http.MethodPost)

	// Периоды недоступности
	protected.HandleFunc("/unavailabilities", createUnavailability.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/establishments/{establishmentId}/unavailabilities",
		listUnavailabilities.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/unavailabilities/{unavailabilityId}", deleteUnavailability.Handle).Methods(http.MethodDelete)

	// Настройки бронирования
	protected.HandleFunc("/establishments/{establishmentId}/booking-policy",
		getBookingPolicy.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/establishments/{establishmentId}/booking-policy",
		updateBookingPolicy.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/establishments/{establishmentId}/booking-policy",
		deleteBookingPolicy.Handle).Methods(http.MethodDelete)

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
