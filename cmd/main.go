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

	classifySelectionHandler "github.com/m04kA/SMC-StaffService/internal/api/handlers/classify_selection"
	createProfessionalHandler "github.com/m04kA/SMC-StaffService/internal/api/handlers/create_professional"
	getProfessionalHandler "github.com/m04kA/SMC-StaffService/internal/api/handlers/get_professional"
	getProfessionalsHandler "github.com/m04kA/SMC-StaffService/internal/api/handlers/get_professionals"
	planAssignmentHandler "github.com/m04kA/SMC-StaffService/internal/api/handlers/plan_assignment"
	toggleProfessionalHandler "github.com/m04kA/SMC-StaffService/internal/api/handlers/toggle_professional"
	updateProfessionalHandler "github.com/m04kA/SMC-StaffService/internal/api/handlers/update_professional"
	"github.com/m04kA/SMC-StaffService/internal/api/middleware"
	"github.com/m04kA/SMC-StaffService/internal/config"
	professionalRepo "github.com/m04kA/SMC-StaffService/internal/infra/storage/professional"
	servicecatalogRepo "github.com/m04kA/SMC-StaffService/internal/infra/storage/servicecatalog"
	scheduleServiceClient "github.com/m04kA/SMC-StaffService/internal/integrations/scheduleservice"
	staffService "github.com/m04kA/SMC-StaffService/internal/service/staff"
	classifySelectionUC "github.com/m04kA/SMC-StaffService/internal/usecase/classify_selection"
	planAssignmentUC "github.com/m04kA/SMC-StaffService/internal/usecase/plan_assignment"
	toggleProfessionalUC "github.com/m04kA/SMC-StaffService/internal/usecase/toggle_professional"
	"github.com/m04kA/SMC-StaffService/pkg/dbmetrics"
	"github.com/m04kA/SMC-StaffService/pkg/logger"
	"github.com/m04kA/SMC-StaffService/pkg/metrics"
	"github.com/m04kA/SMC-StaffService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-StaffService/pkg/txmanager"
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

	log.Info("Starting SMC-StaffService...")
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

	// Инициализируем клиента ScheduleService
	scheduleClient := scheduleServiceClient.NewClient(
		cfg.ScheduleService.URL,
		time.Duration(cfg.ScheduleService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (ScheduleService=%s timeout=%ds)",
		cfg.ScheduleService.URL, cfg.ScheduleService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		professionalRepository *professionalRepo.Repository
		catalogRepository      *servicecatalogRepo.Repository
		txMgr                  staffService.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		professionalRepository = professionalRepo.NewRepository(wrappedDB)
		catalogRepository = servicecatalogRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		professionalRepository = professionalRepo.NewRepository(db)
		catalogRepository = servicecatalogRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервис каталога мастеров
	staffSvc := staffService.NewService(
		professionalRepository,
		catalogRepository,
		scheduleClient,
		txMgr,
		log,
	)

	// Инициализируем use cases движка подбора
	planAssignmentUseCase := planAssignmentUC.NewUseCase(
		professionalRepository,
		catalogRepository,
		scheduleClient,
		log,
	)
	classifySelectionUseCase := classifySelectionUC.NewUseCase(
		professionalRepository,
		catalogRepository,
		scheduleClient,
		log,
	)
	toggleProfessionalUseCase := toggleProfessionalUC.NewUseCase(
		professionalRepository,
		catalogRepository,
		scheduleClient,
		log,
	)

	// Инициализируем handlers
	planAssignment := planAssignmentHandler.NewHandler(planAssignmentUseCase, log)
	classifySelection := classifySelectionHandler.NewHandler(classifySelectionUseCase, log)
	toggleProfessional := toggleProfessionalHandler.NewHandler(toggleProfessionalUseCase, log)
	getProfessionals := getProfessionalsHandler.NewHandler(staffSvc, log)
	getProfessional := getProfessionalHandler.NewHandler(staffSvc, log)
	createProfessional := createProfessionalHandler.NewHandler(staffSvc, log)
	updateProfessional := updateProfessionalHandler.NewHandler(staffSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

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

	// Список мастеров компании (с фильтрами по дате и услугам)
	api.HandleFunc("/companies/{companyId}/professionals",
		getProfessionals.Handle).Methods(http.MethodGet)

	// Получение мастера по ID
	api.HandleFunc("/professionals/{professionalId}",
		getProfessional.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Движок подбора мастеров ---
	// Построение плана выбора (оценка количества + автовыбор + классификация)
	protected.HandleFunc("/companies/{companyId}/assignment/plan",
		planAssignment.Handle).Methods(http.MethodPost)

	// Переклассификация текущего выбора
	protected.HandleFunc("/companies/{companyId}/assignment/classify",
		classifySelection.Handle).Methods(http.MethodPost)

	// Добавление/удаление мастера из выбора
	protected.HandleFunc("/companies/{companyId}/assignment/toggle",
		toggleProfessional.Handle).Methods(http.MethodPost)

	// --- Управление каталогом мастеров (для менеджеров) ---
	// Создание мастера
	protected.HandleFunc("/companies/{companyId}/professionals",
		createProfessional.Handle).Methods(http.MethodPost)

	// Обновление мастера
	protected.HandleFunc("/professionals/{professionalId}",
		updateProfessional.Handle).Methods(http.MethodPut)

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
