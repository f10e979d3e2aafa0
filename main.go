package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/Kmkishore05/CarePulsebot/internal/config"
	"github.com/Kmkishore05/CarePulsebot/internal/domain/entities"
	Iservices "github.com/Kmkishore05/CarePulsebot/internal/domain/interfaces/services"
	"github.com/Kmkishore05/CarePulsebot/internal/infra/handlers"
	"github.com/Kmkishore05/CarePulsebot/internal/infra/logger"
	"github.com/Kmkishore05/CarePulsebot/internal/infra/provider"
	"github.com/Kmkishore05/CarePulsebot/internal/infra/repository"
	"github.com/Kmkishore05/CarePulsebot/internal/infra/routes"
	"github.com/Kmkishore05/CarePulsebot/internal/infra/services"
	"github.com/Kmkishore05/CarePulsebot/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

func main() {
	config.LoadEnv()
	cfg := config.New()

	ctx := context.Background()
	log := logger.NewLogger(ctx, cfg.LogLevel, true)

	router := mux.NewRouter()
	router.Use(middleware.LoggingMiddleware(log))

	httpClient := &http.Client{Timeout: 60 * time.Second}

	workflowProvider := provider.NewWorkflowProvider(log, httpClient, cfg.WorkflowHost, cfg.WorkflowAPIKey, cfg.WorkflowUserID, cfg.WorkflowAppID, cfg.WorkflowID)
	translateProvider := provider.NewTranslateProvider(log, httpClient, cfg.TranslateHost)
	voiceProvider := provider.NewVoiceProvider(log, httpClient, cfg.VoiceHost)

	sessionRepo := repository.NewMemoryRepository[entities.ChatSession]()

	var assistantSvc Iservices.IAssistantService = services.NewAssistantService(log, workflowProvider, translateProvider)
	var firstAidSvc Iservices.IFirstAidService = services.NewFirstAidService(log)
	var historySvc Iservices.IHistoryService = services.NewHistoryService(sessionRepo, log)

	validate := validator.New()

	assistantHandlers := handlers.NewAssistantHandlers(log, validate, assistantSvc, historySvc, voiceProvider)
	firstAidHandlers := handlers.NewFirstAidHandlers(log, validate, firstAidSvc, historySvc, voiceProvider)
	historyHandlers := handlers.NewHistoryHandlers(log, historySvc)

	routes := routes.NewRoutes(
		router,
		assistantHandlers,
		firstAidHandlers,
		historyHandlers,
	)

	routes.Init()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	go func() {
		log.Info(fmt.Sprintf("Server is running on port %s", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(fmt.Sprintf("Error running HTTP server: %s", err))
			os.Exit(1)
		}
	}()

	<-stop
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error(fmt.Sprintf("Server forced to shutdown: %v", err))
	} else {
		log.Info("Server stopped gracefully.")
	}
}
