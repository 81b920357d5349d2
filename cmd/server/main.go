package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	alerthttp "github.com/sumitd/costtrack/internal/alert/delivery/http"
	alertrepo "github.com/sumitd/costtrack/internal/alert/repository"
	alertcommand "github.com/sumitd/costtrack/internal/alert/usecase/command"
	"github.com/sumitd/costtrack/internal/chatbot"
	chatbothttp "github.com/sumitd/costtrack/internal/chatbot/delivery/http"
	chatbotquery "github.com/sumitd/costtrack/internal/chatbot/usecase/query"
	inventoryhttp "github.com/sumitd/costtrack/internal/inventory/delivery/http"
	inventoryrepo "github.com/sumitd/costtrack/internal/inventory/repository"
	orderhttp "github.com/sumitd/costtrack/internal/order/delivery/http"
	orderrepo "github.com/sumitd/costtrack/internal/order/repository"
	reporthttp "github.com/sumitd/costtrack/internal/report/delivery/http"
	userhttp "github.com/sumitd/costtrack/internal/user/delivery/http"
	userrepo "github.com/sumitd/costtrack/internal/user/repository"
	"github.com/sumitd/costtrack/kafka"
	"github.com/sumitd/costtrack/pkg/database"
	"github.com/sumitd/costtrack/pkg/logger"
	"github.com/sumitd/costtrack/pkg/tracing"
)

func main() {
	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "costtrack")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting cost tracking service")

	// Initialize tracer
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Load database configuration
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "costtrackdb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Connect to database
	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	// Separate plain connection for health checks
	sqlDB, err := database.NewPostgresConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to open health check connection")
	}
	defer sqlDB.Close()

	// Initialize repositories and run migrations
	userRepo := userrepo.NewGormUserRepository(db)
	orderRepo := orderrepo.NewGormOrderRepository(db)
	usageRepo := orderrepo.NewGormActualUsageRepository(db)
	itemRepo := inventoryrepo.NewGormItemRepositoryWithTracing(db)
	alertRepo := alertrepo.NewGormAlertRepository(db)

	for name, migrate := range map[string]func() error{
		"users":     userRepo.AutoMigrate,
		"orders":    orderRepo.AutoMigrate,
		"usages":    usageRepo.AutoMigrate,
		"inventory": itemRepo.AutoMigrate,
		"alerts":    alertRepo.AutoMigrate,
	} {
		if err := migrate(); err != nil {
			logger.Logger.Fatal().Err(err).Str("table", name).Msg("Failed to run migrations")
		}
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Optional Kafka publisher for alert events
	var publisher *kafka.Publisher
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		publisher, err = kafka.NewPublisher(strings.Split(brokers, ","))
		if err != nil {
			logger.Logger.Fatal().Err(err).Str("brokers", brokers).Msg("Failed to connect to Kafka")
		}
		defer publisher.Close()
		logger.Logger.Info().Str("brokers", brokers).Msg("Alert event publishing enabled")
	} else {
		logger.Logger.Info().Msg("KAFKA_BROKERS not set, alert event publishing disabled")
	}

	raiseAlerts := alertcommand.NewRaiseAlertHandler(alertRepo, publisher)

	// The rule responder serves unless an API key configures the
	// remote completion service.
	var responder chatbot.Responder = chatbot.NewRuleResponder()
	if apiKey := getEnv("GEMINI_API_KEY", ""); apiKey != "" {
		responder = chatbot.NewGeminiResponder(apiKey)
		logger.Logger.Info().Msg("Chatbot using remote completion service")
	}

	// Initialize handlers
	userHandler := userhttp.NewUserHandler(userRepo)
	orderHandler := orderhttp.NewOrderHandler(orderRepo, usageRepo, raiseAlerts)
	inventoryHandler := inventoryhttp.NewInventoryHandler(itemRepo, raiseAlerts)
	alertHandler := alerthttp.NewAlertHandler(alertRepo)
	reportHandler := reporthttp.NewReportHandler(orderRepo, usageRepo, itemRepo, alertRepo)
	chatbotHandler := chatbothttp.NewChatbotHandler(
		chatbotquery.NewAskChatbotHandler(orderRepo, usageRepo, itemRepo, alertRepo, responder),
	)

	// Setup router
	router := mux.NewRouter()
	userHandler.RegisterRoutes(router)
	orderHandler.RegisterRoutes(router)
	inventoryHandler.RegisterRoutes(router)
	alertHandler.RegisterRoutes(router)
	reportHandler.RegisterRoutes(router)
	chatbotHandler.RegisterRoutes(router)

	// Health check endpoint
	userHandler.RegisterHealthCheck(router, sqlDB)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Swagger UI
	inventoryhttp.RegisterSwaggerDocs(router, httpSwagger.Handler())

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	httpPort := getEnv("HTTP_PORT", "5000")
	server := &http.Server{
		Addr:    ":" + httpPort,
		Handler: c.Handler(router),
	}

	go func() {
		logger.Logger.Info().
			Str("port", httpPort).
			Str("metrics_endpoint", "/metrics").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server shutdown failed")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
