package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	applyRangePricesHandler "github.com/rakanz/chalet-booking-service/internal/api/handlers/apply_range_prices"
	clearBookingsHandler "github.com/rakanz/chalet-booking-service/internal/api/handlers/clear_bookings"
	exportConfigHandler "github.com/rakanz/chalet-booking-service/internal/api/handlers/export_config"
	getDayScheduleHandler "github.com/rakanz/chalet-booking-service/internal/api/handlers/get_day_schedule"
	getSlotCatalogHandler "github.com/rakanz/chalet-booking-service/internal/api/handlers/get_slot_catalog"
	saveDatePricesHandler "github.com/rakanz/chalet-booking-service/internal/api/handlers/save_date_prices"
	toggleBookingHandler "github.com/rakanz/chalet-booking-service/internal/api/handlers/toggle_booking"
	"github.com/rakanz/chalet-booking-service/internal/api/middleware"
	"github.com/rakanz/chalet-booking-service/internal/config"
	"github.com/rakanz/chalet-booking-service/internal/infra/storage/state"
	bookingsService "github.com/rakanz/chalet-booking-service/internal/service/bookings"
	pricesService "github.com/rakanz/chalet-booking-service/internal/service/prices"
	applyRangePricesUC "github.com/rakanz/chalet-booking-service/internal/usecase/apply_range_prices"
	getDayScheduleUC "github.com/rakanz/chalet-booking-service/internal/usecase/get_day_schedule"
	"github.com/rakanz/chalet-booking-service/pkg/logger"
	"github.com/rakanz/chalet-booking-service/pkg/metrics"
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

	log.Info("Starting chalet-booking-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилище состояния и загружаем seed
	store := state.NewStore()
	if cfg.Seed.File != "" {
		if err := store.LoadSeed(cfg.Seed.File); err != nil {
			log.Fatal("Failed to load seed file %s: %v", cfg.Seed.File, err)
		}
		log.Info("Seed configuration loaded from %s", cfg.Seed.File)
	}

	// Инициализируем сервисы
	bookingsSvc := bookingsService.NewService(store, log)
	pricesSvc := pricesService.NewService(store, log)

	// Инициализируем use cases
	getDayScheduleUseCase := getDayScheduleUC.NewUseCase(store, log)
	applyRangePricesUseCase := applyRangePricesUC.NewUseCase(store, log)

	// Инициализируем handlers
	getDaySchedule := getDayScheduleHandler.NewHandler(getDayScheduleUseCase, log)
	getSlotCatalog := getSlotCatalogHandler.NewHandler(pricesSvc, log)
	toggleBooking := toggleBookingHandler.NewHandler(bookingsSvc, log)
	clearBookings := clearBookingsHandler.NewHandler(bookingsSvc, log)
	saveDatePrices := saveDatePricesHandler.NewHandler(pricesSvc, log)
	applyRangePrices := applyRangePricesHandler.NewHandler(applyRangePricesUseCase, log)
	exportConfig := exportConfigHandler.NewHandler(store, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (гостевой набор возможностей, только чтение)
	// ============================================================

	// Каталог слотов с заглушечными ценами (дата еще не выбрана)
	api.HandleFunc("/slots", getSlotCatalog.Handle).Methods(http.MethodGet)

	// Расписание дня: доступность и эффективные цены
	api.HandleFunc("/schedule/{date}", getDaySchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// OWNER ROUTES (требуют X-Owner-PIN)
	// ============================================================

	owner := api.PathPrefix("").Subrouter()
	owner.Use(middleware.OwnerAuth(cfg.Auth.OwnerPIN))

	// --- Бронирования ---
	owner.HandleFunc("/dates/{date}/bookings/toggle", toggleBooking.Handle).Methods(http.MethodPost)
	owner.HandleFunc("/dates/{date}/bookings", clearBookings.Handle).Methods(http.MethodDelete)

	// --- Цены ---
	owner.HandleFunc("/dates/{date}/prices", saveDatePrices.Handle).Methods(http.MethodPut)
	owner.HandleFunc("/price-ranges", applyRangePrices.Handle).Methods(http.MethodPost)

	// --- Экспорт конфигурации для ручного переноса в seed ---
	owner.HandleFunc("/config/export", exportConfig.Handle).Methods(http.MethodGet)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
