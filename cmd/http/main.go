package main

import (
	"booking-service/internal/app/config"
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/delivery/http/controllers"
	"booking-service/internal/app/delivery/http/middlewares"
	"booking-service/internal/app/delivery/http/routers"
	"booking-service/internal/app/drivers/database"
	"booking-service/internal/app/drivers/logger"
	"booking-service/internal/app/drivers/messaging"
	"booking-service/internal/app/services/core/appointments"
	"booking-service/internal/app/services/core/providers"
	"booking-service/internal/app/services/core/reservations"
	"booking-service/internal/app/services/shared/events"
	"booking-service/internal/app/services/shared/locker"
	"booking-service/internal/app/services/shared/metrics"
	"booking-service/internal/app/services/shared/redis"
	"booking-service/internal/pkg/constvars"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	if err := internalConfig.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zapLogger, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		zapLogger.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if internalConfig.Storage.Driver == constvars.StorageDriverMongo {
		bootstrap.MongoDB = database.NewMongoDB(driverConfig, zapLogger)
	}
	if internalConfig.Storage.LockerDriver == constvars.LockerDriverRedis {
		bootstrap.Redis = database.NewRedisClient(driverConfig, zapLogger)
	}
	if internalConfig.App.RabbitMQAppointmentQueue != "" {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig, zapLogger)
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		zapLogger.Fatal("Error bootstrapping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler: bootstrap.Router,
	}

	go func() {
		zapLogger.Info("Server started", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error closing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	cfg := bootstrap.InternalConfig

	// Storage
	var directory contracts.ProviderDirectory
	var appointmentRepository contracts.AppointmentRepository
	switch cfg.Storage.Driver {
	case constvars.StorageDriverMongo:
		db := bootstrap.MongoDB.Database(bootstrap.DriverConfig.MongoDB.DbName)
		directory = providers.NewProviderMongoDirectory(db)

		mongoAppointments := appointments.NewAppointmentMongoRepository(db)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := mongoAppointments.EnsureIndexes(ctx); err != nil {
			return err
		}
		appointmentRepository = mongoAppointments
	default:
		bootstrap.Logger.Warn("Using in-memory storage, data is lost on restart")
		memoryDirectory := providers.NewMemoryDirectory()
		if cfg.Storage.MemorySeedFile == "" {
			bootstrap.Logger.Warn("No APP_MEMORY_SEED_FILE set, the memory directory starts empty")
		} else {
			providerCount, profileCount, err := memoryDirectory.LoadSeedFile(cfg.Storage.MemorySeedFile)
			if err != nil {
				return err
			}
			bootstrap.Logger.Info("Memory directory seeded",
				zap.String("seed_file", cfg.Storage.MemorySeedFile),
				zap.Int("providers", providerCount),
				zap.Int("users", profileCount),
			)
		}
		directory = memoryDirectory
		appointmentRepository = appointments.NewAppointmentMemoryRepository()
	}

	// Locker
	var lockerService contracts.LockerService
	switch cfg.Storage.LockerDriver {
	case constvars.LockerDriverRedis:
		lockerService = locker.NewLockService(redis.NewRedisRepository(bootstrap.Redis), bootstrap.Logger)
	default:
		lockerService = locker.NewLocalLockService(bootstrap.Logger)
	}

	// Events
	publisher := events.NewNoopPublisher()
	if bootstrap.RabbitMQ != nil {
		rabbitPublisher, err := events.NewAppointmentPublisher(bootstrap.RabbitMQ, bootstrap.Logger, cfg.App.RabbitMQAppointmentQueue)
		if err != nil {
			return err
		}
		publisher = rabbitPublisher
	}

	// Reservation
	reservationMetrics := metrics.NewReservationMetrics(prometheus.DefaultRegisterer)
	reservationUsecase := reservations.NewReservationUsecase(
		directory,
		appointmentRepository,
		lockerService,
		publisher,
		reservationMetrics,
		bootstrap.Logger,
		cfg.Reservation,
	)
	appointmentController := controllers.NewAppointmentController(
		bootstrap.Logger,
		reservationUsecase,
		time.Duration(cfg.App.RequestTimeoutInSeconds)*time.Second,
	)

	routers.SetupRoutes(
		bootstrap.Router,
		cfg,
		middlewares.NewMiddlewares(bootstrap.Logger, cfg),
		prometheus.DefaultGatherer,
		appointmentController,
	)
	return nil
}
