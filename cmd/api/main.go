package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"go.uber.org/zap"

	"github.com/contaflux/contaflux/internal/pkg/config"
	"github.com/contaflux/contaflux/internal/pkg/database"
	"github.com/contaflux/contaflux/internal/pkg/health"
	"github.com/contaflux/contaflux/internal/pkg/logger"
	"github.com/contaflux/contaflux/internal/pkg/middleware"
	natspkg "github.com/contaflux/contaflux/internal/pkg/nats"
	nrpkg "github.com/contaflux/contaflux/internal/pkg/newrelic"
	"github.com/contaflux/contaflux/internal/pkg/server"
	llmGateway "github.com/contaflux/contaflux/services/assistant/gateway/http"
	assistantHandler "github.com/contaflux/contaflux/services/assistant/handler"
	assistantHTTP "github.com/contaflux/contaflux/services/assistant/handler/http"
	assistantRepository "github.com/contaflux/contaflux/services/assistant/repository"
	assistantUsecase "github.com/contaflux/contaflux/services/assistant/usecase"
	authHandler "github.com/contaflux/contaflux/services/auth/handler"
	authHTTP "github.com/contaflux/contaflux/services/auth/handler/http"
	authRepository "github.com/contaflux/contaflux/services/auth/repository"
	authUsecase "github.com/contaflux/contaflux/services/auth/usecase"
	asaasGateway "github.com/contaflux/contaflux/services/billing/gateway/http"
	billingGateway "github.com/contaflux/contaflux/services/billing/gateway/nats"
	billingHandler "github.com/contaflux/contaflux/services/billing/handler"
	billingHTTP "github.com/contaflux/contaflux/services/billing/handler/http"
	billingNATS "github.com/contaflux/contaflux/services/billing/handler/nats"
	billingRepository "github.com/contaflux/contaflux/services/billing/repository"
	billingUsecase "github.com/contaflux/contaflux/services/billing/usecase"
	financeHandler "github.com/contaflux/contaflux/services/finance/handler"
	financeHTTP "github.com/contaflux/contaflux/services/finance/handler/http"
	financeRepository "github.com/contaflux/contaflux/services/finance/repository"
	financeUsecase "github.com/contaflux/contaflux/services/finance/usecase"
)

func main() {
	configPath := config.GetEnv("CONFIG_PATH", ".env")
	configs := config.InitConfig(configPath)
	appName := configs.App.Name

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	// Wait for New Relic connection before proceeding
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		} else {
			log.Println("New Relic connection established")
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	db := postgresClient.GetDB()

	// Initialize repositories
	authRepo := authRepository.NewAuthRepo(configs, db)
	financeRepo := financeRepository.NewFinanceRepo(configs, db)
	billingRepo := billingRepository.NewBillingRepo(configs, db, redisClient)
	assistantRepo := assistantRepository.NewAssistantRepo(configs, redisClient)

	// Initialize gateways
	asaasGW := asaasGateway.NewAsaasGateway(configs, zapLogger)
	billingGW := billingGateway.NewBillingGW(natsClient)
	llmGW := llmGateway.NewLLMGateway(configs, zapLogger)

	// Initialize usecases
	authUC := authUsecase.NewAuthUC(authRepo, billingRepo, configs)
	financeUC := financeUsecase.NewFinanceUC(financeRepo, configs)
	billingUC := billingUsecase.NewBillingUC(billingRepo, authRepo, asaasGW, billingGW, configs)
	assistantUC := assistantUsecase.NewAssistantUC(assistantRepo, llmGW, configs)

	// Handlers for HTTP
	authHdl := authHandler.NewHandler(
		authHTTP.NewAuthHandler(authUC),
		authHTTP.NewPreferenceHandler(authUC),
		redisClient.GetClient(),
		configs,
	)
	financeHdl := financeHandler.NewHandler(
		financeHTTP.NewTransactionHandler(financeUC),
		financeHTTP.NewCostCenterHandler(financeUC),
		financeHTTP.NewTeamExpenseHandler(financeUC),
		financeHTTP.NewSummaryHandler(financeUC),
		configs,
	)
	billingHdl := billingHandler.NewHandler(billingHTTP.NewBillingHandler(billingUC), configs)
	assistantHdl := assistantHandler.NewHandler(assistantHTTP.NewChatHandler(assistantUC), configs)

	// Handlers for NATS
	natsHandler := billingNATS.NewHandler(billingRepo)
	if err := natsHandler.Start(natsClient); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", zap.Error(err))
	}

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	// Register health endpoints
	healthService := health.NewService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSChecker(natsClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	authHdl.RegisterRoutes(e)
	financeHdl.RegisterRoutes(e)
	billingHdl.RegisterRoutes(e)
	assistantHdl.RegisterRoutes(e)

	// Register cleanup for background components
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		natsHandler.Stop()
		return nil
	})

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server shutdown with error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Component shutdown failed", zap.Error(err))
	}
}
