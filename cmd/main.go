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
	"github.com/redis/go-redis/v9"

	cancelAppointmentHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/create_appointment"
	createBlockedTimeHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/create_blocked_time"
	deleteBlockedTimeHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/delete_blocked_time"
	getAppointmentHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/get_available_slots"
	getBufferHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/get_buffer"
	listBarberAppointmentsHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/list_barber_appointments"
	listBlockedTimesHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/list_blocked_times"
	listClientAppointmentsHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/list_client_appointments"
	updateBufferHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/update_buffer"
	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberService/internal/config"
	settingsCache "github.com/m04kA/SMC-BarberService/internal/infra/cache/settings"
	appointmentRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/appointment"
	blockedTimeRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/blocked_time"
	serviceRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/service"
	settingsRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/settings"
	appointmentsService "github.com/m04kA/SMC-BarberService/internal/service/appointments"
	blockedTimesService "github.com/m04kA/SMC-BarberService/internal/service/blocked_times"
	settingsService "github.com/m04kA/SMC-BarberService/internal/service/settings"
	createAppointmentUC "github.com/m04kA/SMC-BarberService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMC-BarberService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-BarberService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
	"github.com/m04kA/SMC-BarberService/pkg/metrics"
	"github.com/m04kA/SMC-BarberService/pkg/txmanager"
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

	log.Info("Starting SMC-BarberService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены); nil коллектор ничего не пишет
	var metricsCollector *metrics.Metrics
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

	// Обёртка БД: метрики запросов и пула, транзакции через контекст
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Redis опционален: без него настройки читаются напрямую из БД
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is unavailable at %s, settings will be read from database: %v", cfg.Redis.Addr, err)
		} else {
			log.Info("Successfully connected to redis (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
		}
		cancel()
	}

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	blockedTimeRepository := blockedTimeRepo.NewRepository(wrappedDB)
	serviceRepository := serviceRepo.NewRepository(wrappedDB)
	settingsRepository := settingsRepo.NewRepository(wrappedDB)

	bufferCache := settingsCache.NewCache(redisClient, settingsRepository, cfg.Redis.TTLDuration(), log)

	// Сетка слотов и часовой пояс
	hours := cfg.Scheduling.BusinessHours()
	location := cfg.Scheduling.Location()
	log.Info("Slot grid %02d:00-%02d:00, step %d min, timezone %s",
		hours.StartHour, hours.EndHour, hours.SlotStepMinutes, location)

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)
	blockedTimesSvc := blockedTimesService.NewService(blockedTimeRepository, log)
	settingsSvc := settingsService.NewService(settingsRepository, bufferCache, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		blockedTimeRepository,
		serviceRepository,
		bufferCache,
		hours,
		location,
		metricsCollector,
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		blockedTimeRepository,
		serviceRepository,
		bufferCache,
		txMgr,
		hours,
		location,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	listBarberAppointments := listBarberAppointmentsHandler.NewHandler(appointmentsSvc, log)
	listClientAppointments := listClientAppointmentsHandler.NewHandler(appointmentsSvc, log)
	createBlockedTime := createBlockedTimeHandler.NewHandler(blockedTimesSvc, log)
	listBlockedTimes := listBlockedTimesHandler.NewHandler(blockedTimesSvc, log)
	deleteBlockedTime := deleteBlockedTimeHandler.NewHandler(blockedTimesSvc, log)
	getBuffer := getBufferHandler.NewHandler(settingsSvc, log)
	updateBuffer := updateBufferHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Слоты барбера на дату
	api.HandleFunc("/barbershops/{barbershopId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Буфер между записями
	api.HandleFunc("/barbershops/{barbershopId}/settings/buffer",
		getBuffer.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	protected.HandleFunc("/barbershops/{barbershopId}/appointments",
		createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/barbershops/{barbershopId}/appointments/{appointmentId}",
		getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/barbershops/{barbershopId}/appointments/{appointmentId}/cancel",
		cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/barbershops/{barbershopId}/barbers/{barberId}/appointments",
		listBarberAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/barbershops/{barbershopId}/clients/{clientId}/appointments",
		listClientAppointments.Handle).Methods(http.MethodGet)

	// --- Блокировки времени барбера ---
	protected.HandleFunc("/barbershops/{barbershopId}/barbers/{barberId}/blocked-times",
		createBlockedTime.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/barbershops/{barbershopId}/barbers/{barberId}/blocked-times",
		listBlockedTimes.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/barbershops/{barbershopId}/blocked-times/{blockedTimeId}",
		deleteBlockedTime.Handle).Methods(http.MethodDelete)

	// --- Настройки барбершопа ---
	protected.HandleFunc("/barbershops/{barbershopId}/settings/buffer",
		updateBuffer.Handle).Methods(http.MethodPut)

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
	close(stopMetricsCh)

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
