package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/BerylCAtieno/career-advisor-agent/internal/a2a"
	"github.com/BerylCAtieno/career-advisor-agent/internal/advisor"
	"github.com/BerylCAtieno/career-advisor-agent/internal/config"
	"github.com/BerylCAtieno/career-advisor-agent/internal/handler"
	"github.com/BerylCAtieno/career-advisor-agent/internal/logger"
	"github.com/BerylCAtieno/career-advisor-agent/internal/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.NewStructured(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	geminiClient, err := advisor.NewGeminiClient(ctx, cfg.Gemini)
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}
	defer geminiClient.Close()

	adv := advisor.New(geminiClient, appLogger, advisor.WithTimeout(cfg.Advisor.Timeout))

	router := NewRouter(cfg, adv, appLogger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		appLogger.Info("Career Advisor Agent starting", map[string]interface{}{
			"port":       cfg.Port,
			"model":      cfg.Gemini.Model,
			"advice":     cfg.PublicURL + "/get-advice",
			"agent_card": cfg.PublicURL + "/.well-known/agent.json",
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("shutting down", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("graceful shutdown failed", map[string]interface{}{"error": err.Error()})
	}
}

// NewRouter wires middleware and every route onto a gin engine.
func NewRouter(cfg *config.Config, gen handler.Generator, appLogger logger.Logger) *gin.Engine {
	gin.SetMode(cfg.GinMode)

	router := gin.New()
	router.Use(
		middleware.Recovery(appLogger),
		middleware.RequestID(),
		middleware.Logging(appLogger),
		middleware.CORS(cfg.CORSAllowOrigins),
	)

	handler.NewAdviceHandler(gen, appLogger).RegisterRoutes(router)
	a2a.NewHandler(gen, a2a.NewAgentCard(cfg.PublicURL), appLogger).RegisterRoutes(router)

	router.GET("/health", handler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
