package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agro-exports-api/configs"
	"agro-exports-api/middleware"
	"agro-exports-api/routes"
	"agro-exports-api/store"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	configs.InitLogger()
	logger := configs.LogWithContext("agro-exports-api", "startup")

	logger.Info("Starting Agro Exports API initialization")

	router := mux.NewRouter()

	router.Use(middleware.LoggingMiddleware)
	router.Use(middleware.RecoveryMiddleware)
	router.Use(middleware.CORSMiddleware)

	logger.Info("Middleware configured")

	// The service starts even when MongoDB is unreachable: /test then
	// reports the state and the inquiry endpoints answer with storage
	// errors until the database comes back.
	client := connectMongoDB(logger)
	documentStore := store.New(client, configs.DatabaseName())

	notifier, err := configs.ConnectRedis()
	if err != nil {
		logger.WithError(err).Warn("Redis unavailable, inquiry notifications disabled")
	} else if notifier != nil {
		logger.Info("Redis connected, inquiry notifications enabled")
	}

	logger.Info("Registering API routes...")
	routes.HealthRoutes(router, documentStore)
	routes.InquiryRoutes(router, documentStore, notifier)

	port := configs.EnvPort()
	if port == "" {
		port = "8000"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.WithField("port", port).Info("Agro Exports API started")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Give outstanding requests 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	} else {
		logger.Info("Server shutdown complete")
	}
}

func connectMongoDB(logger *logrus.Entry) *mongo.Client {
	maxRetries := 5
	for i := 0; i < maxRetries; i++ {
		start := time.Now()
		client, err := configs.ConnectDB()
		if err == nil {
			logger.WithField("duration", time.Since(start).String()).Info("MongoDB connected successfully")
			return client
		}
		logger.WithError(err).WithField("attempt", i+1).Error("MongoDB connection failed")
		if i < maxRetries-1 {
			time.Sleep(time.Duration(i+1) * time.Second)
		}
	}
	return nil
}
