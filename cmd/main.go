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

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	checkAvailabilityHandler "github.com/m04kA/SMC-SalonScheduleService/internal/api/handlers/check_availability"
	closeDateHandler "github.com/m04kA/SMC-SalonScheduleService/internal/api/handlers/close_date"
	deleteScheduleEntryHandler "github.com/m04kA/SMC-SalonScheduleService/internal/api/handlers/delete_schedule_entry"
	getAppointmentsHandler "github.com/m04kA/SMC-SalonScheduleService/internal/api/handlers/get_appointments"
	getCalendarEventsHandler "github.com/m04kA/SMC-SalonScheduleService/internal/api/handlers/get_calendar_events"
	getScheduleHandler "github.com/m04kA/SMC-SalonScheduleService/internal/api/handlers/get_schedule"
	healthHandler "github.com/m04kA/SMC-SalonScheduleService/internal/api/handlers/health"
	interpretClickHandler "github.com/m04kA/SMC-SalonScheduleService/internal/api/handlers/interpret_click"
	setDayOffHandler "github.com/m04kA/SMC-SalonScheduleService/internal/api/handlers/set_day_off"
	toggleClosedDayHandler "github.com/m04kA/SMC-SalonScheduleService/internal/api/handlers/toggle_closed_day"
	updateAppointmentStatusHandler "github.com/m04kA/SMC-SalonScheduleService/internal/api/handlers/update_appointment_status"
	"github.com/m04kA/SMC-SalonScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonScheduleService/internal/config"
	scheduleCache "github.com/m04kA/SMC-SalonScheduleService/internal/infra/cache/schedule"
	appointmentRepo "github.com/m04kA/SMC-SalonScheduleService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonScheduleService/internal/infra/storage/migrator"
	scheduleRepo "github.com/m04kA/SMC-SalonScheduleService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-SalonScheduleService/internal/integrations/notifier"
	appointmentsService "github.com/m04kA/SMC-SalonScheduleService/internal/service/appointments"
	scheduleService "github.com/m04kA/SMC-SalonScheduleService/internal/service/schedule"
	getCalendarEventsUC "github.com/m04kA/SMC-SalonScheduleService/internal/usecase/get_calendar_events"
	interpretClickUC "github.com/m04kA/SMC-SalonScheduleService/internal/usecase/interpret_click"
	toggleClosedDayUC "github.com/m04kA/SMC-SalonScheduleService/internal/usecase/toggle_closed_day"
	"github.com/m04kA/SMC-SalonScheduleService/migrations"
	"github.com/m04kA/SMC-SalonScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonScheduleService/pkg/logger"
	"github.com/m04kA/SMC-SalonScheduleService/pkg/metrics"
	"github.com/m04kA/SMC-SalonScheduleService/pkg/txmanager"
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

	log.Info("Starting SMC-SalonScheduleService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	// nil *metrics.Metrics безопасен: все методы наблюдения его проверяют
	var metricsCollector *metrics.Metrics
	var dbCollector dbmetrics.Collector
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		dbCollector = metricsCollector
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

	// Применяем миграции
	if cfg.Database.AutoMigrate {
		m, err := migrator.NewMigrator(db, migrations.FS, log)
		if err != nil {
			log.Fatal("Failed to init migrator: %v", err)
		}
		if err := m.Run(context.Background()); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	wrappedDB := dbmetrics.WrapWithDefault(db, dbCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	baseScheduleRepository := scheduleRepo.NewRepository(wrappedDB)

	// Кэш снимка расписания в Redis (если включён)
	var scheduleRepository scheduleCache.Repository = baseScheduleRepository
	var snapshotCache toggleClosedDayUC.SnapshotCache = scheduleCache.NoopInvalidator{}
	var redisClient *redis.Client

	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Warn("Redis is unavailable at %s, schedule reads fall back to database: %v", cfg.Redis.Addr, err)
		}

		cached := scheduleCache.NewCachedRepository(
			baseScheduleRepository,
			redisClient,
			time.Duration(cfg.Redis.TTL)*time.Second,
			metricsCollector,
			log,
		)
		scheduleRepository = cached
		snapshotCache = cached
		log.Info("Schedule snapshot cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
	}

	// Уведомления о закрытых днях с записями
	var conflictNotifier toggleClosedDayUC.Notifier = notifier.NewLogNotifier(log)
	var rabbitPublisher *notifier.RabbitPublisher

	if cfg.RabbitMQ.Enabled {
		rabbitPublisher, err = notifier.NewRabbitPublisher(
			cfg.RabbitMQ.URL,
			cfg.RabbitMQ.Exchange,
			time.Duration(cfg.RabbitMQ.Timeout)*time.Second,
			metricsCollector,
			log,
		)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ: %v", err)
		}
		conflictNotifier = rabbitPublisher
		log.Info("RabbitMQ notifier enabled (exchange=%s)", cfg.RabbitMQ.Exchange)
	}

	weekdayNames := cfg.Schedule.WeekdayNames

	// Инициализируем сервисы
	scheduleSvc := scheduleService.NewService(scheduleRepository, txMgr, snapshotCache, weekdayNames, log)
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, txMgr, log)

	// Инициализируем use cases
	// Переключение читает и пишет мимо кэша: внутри транзакции кэш пропускается
	toggleClosedDayUseCase := toggleClosedDayUC.NewUseCase(
		scheduleRepository,
		appointmentRepository,
		snapshotCache,
		conflictNotifier,
		metricsCollector,
		txMgr,
		log,
	)
	interpretClickUseCase := interpretClickUC.NewUseCase(
		scheduleRepository,
		appointmentRepository,
		metricsCollector,
		weekdayNames,
		log,
	)
	getCalendarEventsUseCase := getCalendarEventsUC.NewUseCase(
		scheduleRepository,
		appointmentRepository,
		weekdayNames,
		log,
	)

	// Инициализируем handlers
	health := healthHandler.NewHandler(db, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	setDayOff := setDayOffHandler.NewHandler(scheduleSvc, log)
	closeDate := closeDateHandler.NewHandler(scheduleSvc, log)
	deleteScheduleEntry := deleteScheduleEntryHandler.NewHandler(scheduleSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(scheduleSvc, log)
	toggleClosedDay := toggleClosedDayHandler.NewHandler(toggleClosedDayUseCase, log)
	interpretClick := interpretClickHandler.NewHandler(interpretClickUseCase, log)
	getCalendarEvents := getCalendarEventsHandler.NewHandler(getCalendarEventsUseCase, log)
	getAppointments := getAppointmentsHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют JWT администратора)
	// ============================================================

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth(cfg.Auth.JWTSecret, cfg.Auth.CookieName, log))

	// --- Расписание ---
	api.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule/day-off", setDayOff.Handle).Methods(http.MethodPost)
	api.HandleFunc("/schedule/closed-dates", closeDate.Handle).Methods(http.MethodPost)
	api.HandleFunc("/schedule/closed-dates/toggle", toggleClosedDay.Handle).Methods(http.MethodPost)
	api.HandleFunc("/schedule/availability", checkAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule/click", interpretClick.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule/{entryId}", deleteScheduleEntry.Handle).Methods(http.MethodDelete)

	// --- Календарь ---
	api.HandleFunc("/calendar/events", getCalendarEvents.Handle).Methods(http.MethodGet)

	// --- Записи клиентов ---
	api.HandleFunc("/appointments", getAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}/confirm", updateAppointmentStatus.HandleConfirm).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{appointmentId}/cancel", updateAppointmentStatus.HandleCancel).Methods(http.MethodPut)

	// CORS оборачивает весь роутер, чтобы preflight не упирался в Methods()
	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           cfg.CORS.MaxAge,
	})

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler(r),
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

	if rabbitPublisher != nil {
		if err := rabbitPublisher.Close(); err != nil {
			log.Error("Failed to close RabbitMQ publisher: %v", err)
		}
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close redis client: %v", err)
		}
	}

	log.Info("Server stopped gracefully")
}
