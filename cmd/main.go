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

	bookDeskHandler "github.com/m04kA/SMC-DeskBooker/internal/api/handlers/book_desk"
	getAvailableDesksHandler "github.com/m04kA/SMC-DeskBooker/internal/api/handlers/get_available_desks"
	getDeskBookingHandler "github.com/m04kA/SMC-DeskBooker/internal/api/handlers/get_desk_booking"
	"github.com/m04kA/SMC-DeskBooker/internal/api/middleware"
	"github.com/m04kA/SMC-DeskBooker/internal/config"
	deskRepo "github.com/m04kA/SMC-DeskBooker/internal/infra/storage/desk"
	deskBookingRepo "github.com/m04kA/SMC-DeskBooker/internal/infra/storage/desk_booking"
	deskInventoryClient "github.com/m04kA/SMC-DeskBooker/internal/integrations/deskinventory"
	deskBookingsService "github.com/m04kA/SMC-DeskBooker/internal/service/desk_bookings"
	bookDeskUC "github.com/m04kA/SMC-DeskBooker/internal/usecase/book_desk"
	getAvailableDesksUC "github.com/m04kA/SMC-DeskBooker/internal/usecase/get_available_desks"
	"github.com/m04kA/SMC-DeskBooker/pkg/dbmetrics"
	"github.com/m04kA/SMC-DeskBooker/pkg/logger"
	"github.com/m04kA/SMC-DeskBooker/pkg/metrics"
)

// availabilityProvider общий контракт postgres-репозитория и клиента инвентаря
type availabilityProvider interface {
	bookDeskUC.DeskRepository
	getAvailableDesksUC.DeskRepository
}

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

	log.Info("Starting SMC-DeskBooker...")

	// Инициализируем метрики (если включены)
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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Репозитории работают либо с обёрткой метрик, либо с *sql.DB напрямую
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	bookingRepository := deskBookingRepo.NewRepository(executor)

	// Источник свободных столов
	var desks availabilityProvider
	switch cfg.Availability.Source {
	case config.AvailabilitySourceInventory:
		desks = deskInventoryClient.NewClient(
			cfg.InventoryService.URL,
			time.Duration(cfg.InventoryService.Timeout)*time.Second,
			bookingRepository,
			log,
		)
		log.Info("Desk availability from inventory service (url=%s, timeout=%ds)",
			cfg.InventoryService.URL, cfg.InventoryService.Timeout)
	default:
		desks = deskRepo.NewRepository(executor)
		log.Info("Desk availability from database")
	}

	// Инициализируем сервисы и use cases
	deskBookingSvc := deskBookingsService.NewService(bookingRepository, log)
	bookDeskUseCase := bookDeskUC.NewUseCase(desks, bookingRepository, log)
	getAvailableDesksUseCase := getAvailableDesksUC.NewUseCase(desks, log)

	// Инициализируем handlers
	var recorder bookDeskHandler.ResultRecorder = bookDeskHandler.NopRecorder{}
	if cfg.Metrics.Enabled {
		recorder = metricsCollector
	}

	bookDesk := bookDeskHandler.NewHandler(bookDeskUseCase, recorder, log)
	getAvailableDesks := getAvailableDesksHandler.NewHandler(getAvailableDesksUseCase, log)
	getDeskBooking := getDeskBookingHandler.NewHandler(deskBookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Свободные столы на дату
	api.HandleFunc("/desks/available", getAvailableDesks.Handle).Methods(http.MethodGet)

	// Бронирование стола
	api.HandleFunc("/desk-bookings", bookDesk.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	api.HandleFunc("/desk-bookings/{bookingId}", getDeskBooking.Handle).Methods(http.MethodGet)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
