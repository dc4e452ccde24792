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

	cancelHoldHandler "github.com/hoteleiro/HFD-ReservationService/internal/api/handlers/cancel_hold"
	cancelReservationHandler "github.com/hoteleiro/HFD-ReservationService/internal/api/handlers/cancel_reservation"
	confirmHoldHandler "github.com/hoteleiro/HFD-ReservationService/internal/api/handlers/confirm_hold"
	createReservationHandler "github.com/hoteleiro/HFD-ReservationService/internal/api/handlers/create_reservation"
	getBoardHandler "github.com/hoteleiro/HFD-ReservationService/internal/api/handlers/get_board"
	getReservationHandler "github.com/hoteleiro/HFD-ReservationService/internal/api/handlers/get_reservation"
	getRoomsHandler "github.com/hoteleiro/HFD-ReservationService/internal/api/handlers/get_rooms"
	stageGestureHandler "github.com/hoteleiro/HFD-ReservationService/internal/api/handlers/stage_gesture"
	updateReservationHandler "github.com/hoteleiro/HFD-ReservationService/internal/api/handlers/update_reservation"
	"github.com/hoteleiro/HFD-ReservationService/internal/api/middleware"
	"github.com/hoteleiro/HFD-ReservationService/internal/config"
	reservationRepo "github.com/hoteleiro/HFD-ReservationService/internal/infra/storage/reservation"
	roomRepo "github.com/hoteleiro/HFD-ReservationService/internal/infra/storage/room"
	cnpjClient "github.com/hoteleiro/HFD-ReservationService/internal/integrations/cnpj"
	guestRegistryClient "github.com/hoteleiro/HFD-ReservationService/internal/integrations/guestregistry"
	holdsService "github.com/hoteleiro/HFD-ReservationService/internal/service/holds"
	reservationsService "github.com/hoteleiro/HFD-ReservationService/internal/service/reservations"
	createReservationUC "github.com/hoteleiro/HFD-ReservationService/internal/usecase/create_reservation"
	getBoardUC "github.com/hoteleiro/HFD-ReservationService/internal/usecase/get_board"
	stageGestureUC "github.com/hoteleiro/HFD-ReservationService/internal/usecase/stage_gesture"
	"github.com/hoteleiro/HFD-ReservationService/pkg/dbmetrics"
	"github.com/hoteleiro/HFD-ReservationService/pkg/logger"
	"github.com/hoteleiro/HFD-ReservationService/pkg/metrics"
	"github.com/hoteleiro/HFD-ReservationService/pkg/simpletxmanager"
	"github.com/hoteleiro/HFD-ReservationService/pkg/txmanager"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting HFD-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Initialize metrics (when enabled)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Connect to the database
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

	// Initialize integration clients
	guestClient := guestRegistryClient.NewClient(
		cfg.GuestRegistry.URL,
		time.Duration(cfg.GuestRegistry.Timeout)*time.Second,
		log,
	)
	companyClient := cnpjClient.NewClient(
		cfg.CnpjLookup.URL,
		time.Duration(cfg.CnpjLookup.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (GuestRegistry=%s timeout=%ds, CnpjLookup=%s timeout=%ds)",
		cfg.GuestRegistry.URL, cfg.GuestRegistry.Timeout, cfg.CnpjLookup.URL, cfg.CnpjLookup.Timeout)

	// Initialize repositories and the transaction manager, with or
	// without the metrics wrapper
	var (
		reservationRepository *reservationRepo.Repository
		roomRepository        *roomRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		roomRepository = roomRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		roomRepository = roomRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Board geometry and policies
	layout := cfg.Board.Layout()
	holdTTL := time.Duration(cfg.Board.HoldTTLSeconds) * time.Second
	log.Info("Board layout: label=%dpx, day=%dpx, row=%dpx, band=%dpx, window=%d days, overbooking=%t",
		layout.LabelWidth, layout.DayWidth, layout.RowHeight, layout.BandHeight,
		layout.WindowDays, cfg.Board.AllowOverbooking)

	// Initialize services
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		roomRepository,
		txMgr,
		cfg.Board.AllowOverbooking,
		log,
	)
	holdSvc := holdsService.NewService(
		reservationRepository,
		txMgr,
		holdTTL,
		cfg.Board.AllowOverbooking,
		log,
	)

	// Initialize use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		roomRepository,
		guestClient,
		companyClient,
		txMgr,
		cfg.Board.NightlyRate,
		cfg.Board.AllowOverbooking,
		log,
	)
	stageGestureUseCase := stageGestureUC.NewUseCase(
		reservationRepository,
		roomRepository,
		holdSvc,
		layout,
		log,
	)
	getBoardUseCase := getBoardUC.NewUseCase(
		reservationRepository,
		roomRepository,
		layout,
		log,
	)

	// Initialize handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	updateReservation := updateReservationHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	stageGesture := stageGestureHandler.NewHandler(stageGestureUseCase, log)
	confirmHold := confirmHoldHandler.NewHandler(holdSvc, log)
	cancelHold := cancelHoldHandler.NewHandler(holdSvc, log)
	getBoard := getBoardHandler.NewHandler(getBoardUseCase, log)
	getRooms := getRoomsHandler.NewHandler(roomRepository, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// The laid-out board for one month window
	api.HandleFunc("/board", getBoard.Handle).Methods(http.MethodGet)

	// The static room list
	api.HandleFunc("/rooms", getRooms.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (require X-Staff-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Reservations ---
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}", updateReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// --- Gestures and holds ---
	protected.HandleFunc("/reservations/{reservationId}/gestures", stageGesture.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/holds/{holdId}/confirm", confirmHold.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/holds/{holdId}/cancel", cancelHold.Handle).Methods(http.MethodPost)

	// HTTP server
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
