package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.uber.org/zap"

	"inkbound-server/internal/config"
	"inkbound-server/internal/handler"
	"inkbound-server/internal/logger"
	"inkbound-server/internal/lore"
	"inkbound-server/internal/middleware"
	"inkbound-server/internal/service"
	"inkbound-server/internal/store"
)

func main() {
	cfg, err := config.LoadConfig(".env")
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LoggerConfig("inkbound-server"))
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	zap.ReplaceGlobals(log)
	zap.L().Info("Logger initialized successfully", zap.String("logLevel", cfg.LogLevel))

	characterStore := store.NewFileStore(cfg.CharactersPath, log)
	runStartupChecks(cfg, characterStore)

	aiClient, err := service.NewAIClient(cfg, log)
	if err != nil {
		zap.L().Fatal("Failed to create AI client", zap.Error(err))
	}

	loreBuilder := lore.NewBuilder(characterStore, log)
	tokenEstimator := service.NewTokenEstimator(cfg.AITokenEstimate, log)
	chatService := service.NewChatService(loreBuilder, aiClient, tokenEstimator, log)
	imageService := service.NewImageService(cfg)
	apiHandler := handler.NewHandler(cfg, chatService, imageService, characterStore, log)

	gin.SetMode(gin.ReleaseMode)
	if cfg.Env == "development" {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(middleware.GinZapLogger(log))
	router.Use(gin.Recovery())

	p := ginprometheus.NewPrometheus("gin")

	router.Use(cors.New(corsConfig(cfg)))

	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	apiHandler.RegisterRoutes(router)

	p.Use(router)

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.AITimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	zap.L().Info("Starting HTTP server", zap.String("port", cfg.ServerPort))

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("HTTP Server listen error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("HTTP Server forced to shutdown", zap.Error(err))
	}

	zap.L().Info("Server exiting")
}

// runStartupChecks логирует состояние ключа API и создает пустой файл персонажей при отсутствии.
func runStartupChecks(cfg *config.Config, characterStore *store.FileStore) {
	if cfg.HasAPIKey() {
		zap.L().Info("API key loaded", logger.APIKeyField(cfg.AIAPIKey))
	} else {
		zap.L().Warn("API key is missing, requests to the AI API will be sent without credentials",
			logger.APIKeyField(cfg.AIAPIKey), zap.String("variable", "GROQ_API_KEY"))
	}

	created, err := characterStore.EnsureExists()
	switch {
	case err != nil:
		zap.L().Error("Failed to prepare characters file", zap.String("path", characterStore.Path()), zap.Error(err))
	case created:
		zap.L().Warn("Characters file not found, created a blank one", zap.String("path", characterStore.Path()))
	default:
		zap.L().Info("Characters file found", zap.String("path", characterStore.Path()))
	}
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	allowedOrigins := cfg.GetAllowedOrigins()
	switch {
	case len(allowedOrigins) == 0 || (len(allowedOrigins) == 1 && allowedOrigins[0] == "*"):
		corsCfg.AllowAllOrigins = true
	default:
		corsCfg.AllowOrigins = allowedOrigins
		corsCfg.AllowCredentials = true
	}
	corsCfg.AllowMethods = []string{"GET", "HEAD", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", middleware.RequestIDHeader}
	corsCfg.ExposeHeaders = []string{middleware.RequestIDHeader}
	corsCfg.MaxAge = 12 * time.Hour
	return corsCfg
}
