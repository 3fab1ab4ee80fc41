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

	acceptBookingHandler "github.com/ToyotaTanzania/booking-facilities-sub000/internal/api/handlers/accept_booking"
	cancelBookingHandler "github.com/ToyotaTanzania/booking-facilities-sub000/internal/api/handlers/cancel_booking"
	changeBookingDateHandler "github.com/ToyotaTanzania/booking-facilities-sub000/internal/api/handlers/change_booking_date"
	changeBookingUserHandler "github.com/ToyotaTanzania/booking-facilities-sub000/internal/api/handlers/change_booking_user"
	createBookingHandler "github.com/ToyotaTanzania/booking-facilities-sub000/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/ToyotaTanzania/booking-facilities-sub000/internal/api/handlers/delete_booking"
	getAvailabilityHandler "github.com/ToyotaTanzania/booking-facilities-sub000/internal/api/handlers/get_availability"
	getBookingHandler "github.com/ToyotaTanzania/booking-facilities-sub000/internal/api/handlers/get_booking"
	getFacilityBookingsHandler "github.com/ToyotaTanzania/booking-facilities-sub000/internal/api/handlers/get_facility_bookings"
	getScheduleSlotsHandler "github.com/ToyotaTanzania/booking-facilities-sub000/internal/api/handlers/get_schedule_slots"
	getUserBookingsHandler "github.com/ToyotaTanzania/booking-facilities-sub000/internal/api/handlers/get_user_bookings"
	rejectBookingHandler "github.com/ToyotaTanzania/booking-facilities-sub000/internal/api/handlers/reject_booking"
	rescheduleBookingHandler "github.com/ToyotaTanzania/booking-facilities-sub000/internal/api/handlers/reschedule_booking"
	updateScheduleSlotsHandler "github.com/ToyotaTanzania/booking-facilities-sub000/internal/api/handlers/update_schedule_slots"
	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/api/middleware"
	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/config"
	bookingRepo "github.com/ToyotaTanzania/booking-facilities-sub000/internal/infra/storage/booking"
	scheduleRepo "github.com/ToyotaTanzania/booking-facilities-sub000/internal/infra/storage/schedule"
	facilityServiceClient "github.com/ToyotaTanzania/booking-facilities-sub000/internal/integrations/facilityservice"
	identityServiceClient "github.com/ToyotaTanzania/booking-facilities-sub000/internal/integrations/identityservice"
	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/notify"
	bookingsService "github.com/ToyotaTanzania/booking-facilities-sub000/internal/service/bookings"
	catalogService "github.com/ToyotaTanzania/booking-facilities-sub000/internal/service/catalog"
	createBookingUC "github.com/ToyotaTanzania/booking-facilities-sub000/internal/usecase/create_booking"
	getAvailabilityUC "github.com/ToyotaTanzania/booking-facilities-sub000/internal/usecase/get_availability"
	"github.com/ToyotaTanzania/booking-facilities-sub000/pkg/dbmetrics"
	"github.com/ToyotaTanzania/booking-facilities-sub000/pkg/logger"
	"github.com/ToyotaTanzania/booking-facilities-sub000/pkg/metrics"
	"github.com/ToyotaTanzania/booking-facilities-sub000/pkg/simpletxmanager"
	"github.com/ToyotaTanzania/booking-facilities-sub000/pkg/txmanager"
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

	log.Info("Starting facility booking service...")
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
	identityClient := identityServiceClient.NewClient(
		cfg.IdentityService.URL,
		time.Duration(cfg.IdentityService.Timeout)*time.Second,
		log,
	)
	facilityClient := facilityServiceClient.NewClient(
		cfg.FacilityService.URL,
		time.Duration(cfg.FacilityService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (IdentityService=%s timeout=%ds, FacilityService=%s timeout=%ds)",
		cfg.IdentityService.URL, cfg.IdentityService.Timeout, cfg.FacilityService.URL, cfg.FacilityService.Timeout)

	// Нотификатор: при выключенных уведомлениях события просто не публикуются
	var notifier interface {
		PublishBookingCreated(ctx context.Context, event notify.BookingEvent) error
		PublishBookingConfirmed(ctx context.Context, event notify.BookingEvent) error
	}
	if cfg.Notifications.Enabled {
		notifier = notify.NewNotifier(cfg.Notifications.AMQPURL, log)
		log.Info("Booking notifications enabled (AMQP)")
	} else {
		notifier = notify.Nop{}
		log.Info("Booking notifications disabled")
	}

	// Интерфейс менеджера транзакций: обычные транзакции для замены каталога,
	// serializable - для создания бронирований
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		scheduleRepository *scheduleRepo.Repository
		txMgr              TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		scheduleRepository,
		identityClient,
		notifier,
		log,
	)
	catalogSvc := catalogService.NewService(
		scheduleRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		facilityClient,
		identityClient,
		notifier,
		txMgr,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		facilityClient,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getScheduleSlots := getScheduleSlotsHandler.NewHandler(catalogSvc, log)
	updateScheduleSlots := updateScheduleSlotsHandler.NewHandler(catalogSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getFacilityBookings := getFacilityBookingsHandler.NewHandler(bookingSvc, log)
	acceptBooking := acceptBookingHandler.NewHandler(bookingSvc, log)
	rejectBooking := rejectBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	changeBookingDate := changeBookingDateHandler.NewHandler(bookingSvc, log)
	changeBookingUser := changeBookingUserHandler.NewHandler(bookingSvc, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступность слотов объекта на дату
	api.HandleFunc("/facilities/{facilityId}/availability",
		getAvailability.Handle).Methods(http.MethodGet)

	// Каталог слотов расписания
	api.HandleFunc("/schedules/{scheduleId}/slots",
		getScheduleSlots.Handle).Methods(http.MethodGet)

	// Создание бронирования: доступно и гостям, userID берется
	// из X-User-ID заголовка, если он есть
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Каталог слотов ---
	// Полная замена слотов расписания
	protected.HandleFunc("/schedules/{scheduleId}/slots",
		updateScheduleSlots.Handle).Methods(http.MethodPut)

	// --- Бронирования ---
	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Удаление бронирования (только администратор)
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// Переходы жизненного цикла
	protected.HandleFunc("/bookings/{bookingId}/accept", acceptBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/reject", rejectBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/change-date", changeBookingDate.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/change-user", changeBookingUser.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Бронирования объекта (для ответственного лица)
	protected.HandleFunc("/facilities/{facilityId}/bookings", getFacilityBookings.Handle).Methods(http.MethodGet)

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
