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

	addClosedPeriodHandler "github.com/gooffice/GoOffice-ShiftService/internal/api/handlers/add_closed_period"
	bookShiftHandler "github.com/gooffice/GoOffice-ShiftService/internal/api/handlers/book_shift"
	cancelShiftHandler "github.com/gooffice/GoOffice-ShiftService/internal/api/handlers/cancel_shift"
	createNewsHandler "github.com/gooffice/GoOffice-ShiftService/internal/api/handlers/create_news"
	getClosedDaysHandler "github.com/gooffice/GoOffice-ShiftService/internal/api/handlers/get_closed_days"
	getNewsHandler "github.com/gooffice/GoOffice-ShiftService/internal/api/handlers/get_news"
	getScheduleHandler "github.com/gooffice/GoOffice-ShiftService/internal/api/handlers/get_schedule"
	subscribeUpdatesHandler "github.com/gooffice/GoOffice-ShiftService/internal/api/handlers/subscribe_updates"
	"github.com/gooffice/GoOffice-ShiftService/internal/api/middleware"
	"github.com/gooffice/GoOffice-ShiftService/internal/calendar"
	"github.com/gooffice/GoOffice-ShiftService/internal/closedperiods"
	"github.com/gooffice/GoOffice-ShiftService/internal/config"
	"github.com/gooffice/GoOffice-ShiftService/internal/domain"
	bookingRepo "github.com/gooffice/GoOffice-ShiftService/internal/infra/storage/booking"
	closedPeriodRepo "github.com/gooffice/GoOffice-ShiftService/internal/infra/storage/closedperiod"
	newsRepo "github.com/gooffice/GoOffice-ShiftService/internal/infra/storage/news"
	"github.com/gooffice/GoOffice-ShiftService/internal/notifier"
	closedDaysService "github.com/gooffice/GoOffice-ShiftService/internal/service/closeddays"
	newsService "github.com/gooffice/GoOffice-ShiftService/internal/service/news"
	scheduleService "github.com/gooffice/GoOffice-ShiftService/internal/service/schedule"
	"github.com/gooffice/GoOffice-ShiftService/internal/slotstore"
	bookShiftUC "github.com/gooffice/GoOffice-ShiftService/internal/usecase/book_shift"
	cancelShiftUC "github.com/gooffice/GoOffice-ShiftService/internal/usecase/cancel_shift"
	"github.com/gooffice/GoOffice-ShiftService/pkg/dbmetrics"
	"github.com/gooffice/GoOffice-ShiftService/pkg/logger"
	"github.com/gooffice/GoOffice-ShiftService/pkg/metrics"
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

	log.Info("Starting GoOffice-ShiftService...")
	log.Info("Configuration loaded from config.toml")

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

	// Инициализируем репозитории (с метриками или без)
	var dbExec dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		dbExec = dbmetrics.Wrap(db, metricsCollector)
		go dbmetrics.CollectPoolStats(db, metricsCollector, 15*time.Second, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	bookingRepository := bookingRepo.NewRepository(dbExec)
	closedPeriodRepository := closedPeriodRepo.NewRepository(dbExec)
	newsRepository := newsRepo.NewRepository(dbExec)

	// Календарное окно
	cal := calendar.NewGenerator(cfg.Calendar.WindowDays, &calendar.RealTimeProvider{})

	// Авторитетное состояние слотов живет в памяти.
	// БД служит журналом для восстановления после рестарта.
	store := slotstore.New(map[domain.ShiftType]int{
		domain.ShiftMorning:   cfg.Calendar.MorningCapacity,
		domain.ShiftAfternoon: cfg.Calendar.AfternoonCapacity,
	})

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	dates := cal.Dates()
	bookings, err := bookingRepository.ListByDateRange(startupCtx, dates[0], dates[len(dates)-1])
	if err != nil {
		log.Fatal("Failed to load bookings: %v", err)
	}
	store.Load(bookings)
	log.Info("Loaded %d bookings into slot store (window %s..%s)",
		len(bookings), dates[0], dates[len(dates)-1])

	// Hub сигналов обновления
	var signalCounter notifier.SignalCounter
	if cfg.Metrics.Enabled {
		signalCounter = metricsCollector
	}
	hub := notifier.NewHub(log, signalCounter)
	defer hub.Close()

	// Реестр закрытых периодов
	registry := closedperiods.NewRegistry()
	closedDaysSvc := closedDaysService.NewService(closedPeriodRepository, registry, hub, log)
	if err := closedDaysSvc.Load(startupCtx); err != nil {
		log.Fatal("Failed to load closed periods: %v", err)
	}

	// Инициализируем сервисы
	scheduleSvc := scheduleService.NewService(store, cal, registry, log)
	newsSvc := newsService.NewService(newsRepository, hub, log)

	// Инициализируем use cases
	bookShiftUseCase := bookShiftUC.NewUseCase(store, registry, bookingRepository, hub, log)
	cancelShiftUseCase := cancelShiftUC.NewUseCase(store, bookingRepository, hub, log)

	// Инициализируем handlers
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	bookShift := bookShiftHandler.NewHandler(bookShiftUseCase, metricsCollector, log)
	cancelShift := cancelShiftHandler.NewHandler(cancelShiftUseCase, metricsCollector, log)
	getClosedDays := getClosedDaysHandler.NewHandler(closedDaysSvc, log)
	addClosedPeriod := addClosedPeriodHandler.NewHandler(closedDaysSvc, log)
	getNews := getNewsHandler.NewHandler(newsSvc, log)
	createNews := createNewsHandler.NewHandler(newsSvc, log)
	subscribeUpdates := subscribeUpdatesHandler.NewHandler(hub, metricsCollector, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix, все маршруты требуют аутентификации шлюза
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Auth)

	// --- Расписание и бронирования ---
	api.HandleFunc("/bookings/four-weeks", getSchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/book-shift", bookShift.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/cancel-shift", cancelShift.Handle).Methods(http.MethodDelete)

	// --- Закрытые периоды и новости ---
	api.HandleFunc("/closed-days", getClosedDays.Handle).Methods(http.MethodGet)
	api.HandleFunc("/news/get-all", getNews.Handle).Methods(http.MethodGet)

	// --- Канал сигналов обновления ---
	api.HandleFunc("/updates", subscribeUpdates.Handle).Methods(http.MethodGet)

	// --- Администрирование ---
	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminOnly)
	admin.HandleFunc("/closed-days", addClosedPeriod.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/news", createNews.Handle).Methods(http.MethodPost)

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
