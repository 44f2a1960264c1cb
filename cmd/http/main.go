package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carebook-service/internal/app/config"
	"carebook-service/internal/app/delivery/http/middlewares"
	"carebook-service/internal/app/delivery/http/routers"
	"carebook-service/internal/app/drivers/database"
	"carebook-service/internal/app/drivers/logger"
	"carebook-service/internal/app/drivers/messaging"
	"carebook-service/internal/app/drivers/storage"
	"carebook-service/internal/app/services/appointments"
	"carebook-service/internal/app/services/auth"
	"carebook-service/internal/app/services/doctors"
	"carebook-service/internal/app/services/notifications"
	"carebook-service/internal/app/services/reports"
	"carebook-service/internal/app/services/reviews"
	sharedredis "carebook-service/internal/app/services/shared/redis"
	"carebook-service/internal/app/services/slots"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	bootLog := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		bootLog.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLog := logger.NewZapLogger(driverConfig, internalConfig)

	redisClient := database.NewRedisClient(driverConfig)
	mongoClient := database.NewMongoDB(driverConfig)
	minioClient := storage.NewMinioClient(driverConfig)
	rabbitConn := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		MongoDB:        mongoClient,
		Minio:          minioClient,
		RabbitMQ:       rabbitConn,
		Logger:         zapLog,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	if err := bootstrapTheApp(bootstrap); err != nil {
		bootLog.Fatalf("Failed to bootstrap application: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			bootLog.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		bootLog.Fatalf("Server forced to shutdown: %v", err)
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		bootLog.Printf("Error while closing drivers: %v", err)
	}

	bootLog.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap) error {
	// Shared
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	mw := middlewares.New(bootstrap.Logger, redisRepository, bootstrap.InternalConfig)

	// Notifications
	relay := notifications.NewNotificationRelay(bootstrap.Logger)
	bannerUsecase := notifications.NewBannerUsecase(relay, bootstrap.Logger)
	queuePublisher, err := notifications.NewQueuePublisher(bootstrap.RabbitMQ, bootstrap.Logger)
	if err != nil {
		return err
	}
	bootstrap.RelayStop = notifications.AttachQueueForwarder(relay, queuePublisher, bootstrap.Logger)
	notificationController := notifications.NewNotificationController(bannerUsecase, bootstrap.Logger)

	// Doctors
	directoryClient := doctors.NewDirectoryClient(bootstrap.InternalConfig, bootstrap.Logger)
	doctorRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	doctorUsecase := doctors.NewDoctorUsecase(directoryClient, doctorRepository, bootstrap.InternalConfig, bootstrap.Logger)
	doctorController := doctors.NewDoctorController(doctorUsecase, bootstrap.Logger)

	// Slots
	slotProvider := slots.NewSlotProvider(doctorRepository, bootstrap.Logger)
	slotController := slots.NewSlotController(slotProvider, bootstrap.Logger)

	// Appointments
	appointmentStore := appointments.NewAppointmentStore(redisRepository, bootstrap.Logger)
	bookingUsecase := appointments.NewBookingUsecase(appointmentStore, doctorUsecase, slotProvider, relay, bootstrap.Logger)
	appointmentController := appointments.NewAppointmentController(bookingUsecase, bootstrap.Logger)

	// Auth
	authGatewayClient := auth.NewAuthGatewayClient(bootstrap.InternalConfig, bootstrap.Logger)
	authUsecase := auth.NewAuthUsecase(authGatewayClient, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	authController := auth.NewAuthController(authUsecase, bootstrap.Logger)

	// Reviews
	reviewRepository := reviews.NewReviewRedisRepository(redisRepository, bootstrap.Logger)
	reviewUsecase := reviews.NewReviewUsecase(reviewRepository, doctorUsecase, bootstrap.Logger)
	reviewController := reviews.NewReviewController(reviewUsecase, bootstrap.Logger)

	// Reports
	reportStorage := reports.NewReportMinioStorage(bootstrap.Minio, bootstrap.InternalConfig)
	reportUsecase := reports.NewReportUsecase(reportStorage, doctorUsecase, bootstrap.Logger)
	reportController := reports.NewReportController(reportUsecase, bootstrap.Logger)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		mw,
		authController,
		doctorController,
		slotController,
		appointmentController,
		reviewController,
		reportController,
		notificationController,
	)
	return nil
}
