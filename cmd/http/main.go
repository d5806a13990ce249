package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lidio-service/internal/app/config"
	"lidio-service/internal/app/delivery/http/controllers"
	"lidio-service/internal/app/delivery/http/middlewares"
	"lidio-service/internal/app/delivery/http/routers"
	"lidio-service/internal/app/drivers/database"
	"lidio-service/internal/app/drivers/logger"
	"lidio-service/internal/app/drivers/messaging"
	"lidio-service/internal/app/services/core/payments"
	"lidio-service/internal/app/services/shared/lidio"
	"lidio-service/internal/app/services/shared/redis"
	"lidio-service/internal/app/services/shared/webhookqueue"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	if err := internalConfig.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	lidioClient, err := lidio.NewClient(
		internalConfig.LidioCredentials(),
		lidio.WithLogger(zapLogger),
		lidio.WithHTTPClient(&http.Client{Timeout: time.Duration(internalConfig.Lidio.RequestTimeoutInSeconds) * time.Second}),
	)
	if err != nil {
		zapLogger.Fatal("Error creating lidio client", zap.Error(err))
	}

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Redis:          database.NewRedisClient(driverConfig),
		Logger:         zapLogger,
		RabbitMQ:       messaging.NewRabbitMQ(driverConfig),
		Lidio:          lidioClient,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	notificationQueue, err := bootstrapingTheApp(bootstrap)
	if err != nil {
		zapLogger.Fatal("Error bootstrapping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              ":" + internalConfig.App.Port,
		Handler:           bootstrap.Router,
		ReadHeaderTimeout: 10 * time.Second,
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

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := notificationQueue.Close(); err != nil {
		zapLogger.Error("Error closing notification queue channel", zap.Error(err))
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) (*webhookqueue.Service, error) {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Notification queue
	notificationQueue, err := webhookqueue.NewService(bootstrap.RabbitMQ, bootstrap.Logger, bootstrap.InternalConfig.Notification.Queue)
	if err != nil {
		return nil, err
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Payment links
	paymentLinkUsecase := payments.NewPaymentLinkUsecase(bootstrap.Lidio, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	paymentLinkController := controllers.NewPaymentLinkController(bootstrap.Logger, paymentLinkUsecase)

	// Payment notifications
	paymentNotificationUsecase := payments.NewPaymentNotificationUsecase(bootstrap.Lidio, redisRepository, notificationQueue, bootstrap.InternalConfig, bootstrap.Logger)
	paymentNotificationController := controllers.NewPaymentNotificationController(bootstrap.Logger, paymentNotificationUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, bootstrap.Logger, middlewares, paymentLinkController, paymentNotificationController)
	return notificationQueue, nil
}
