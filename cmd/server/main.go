package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"event-ticketing/config"
	"event-ticketing/internal/database"
	"event-ticketing/internal/handler"
	"event-ticketing/internal/payment"
	"event-ticketing/internal/queue"
	"event-ticketing/internal/render"
	"event-ticketing/internal/repository"
	"event-ticketing/internal/service"
	"event-ticketing/internal/storage"
	"event-ticketing/internal/worker"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize redis: %v", err)
	}
	defer rdb.Close()

	// repositories
	eventRepo := repository.NewEventRepository(pool)
	registrationRepo := repository.NewRegistrationRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)

	// collaborators
	signer := storage.NewURLSigner(cfg.Storage.SigningSecret, cfg.Server.BaseURL)
	blobStore := storage.NewRedisBlobStore(rdb, signer)
	provider := payment.NewMockProvider(cfg.Payment.SecretKey)
	renderer := render.NewPDFTicketRenderer()

	bindingQueue, err := queue.NewRedisStreamBindingQueue(rdb, "", nil)
	if err != nil {
		log.Fatalf("Failed to initialize binding queue: %v", err)
	}

	// services
	eventService := service.NewEventService(eventRepo)
	registrationService := service.NewRegistrationService(pool, eventRepo, registrationRepo)
	paymentService := service.NewPaymentService(provider, registrationRepo, bindingQueue)
	issuanceService := service.NewIssuanceService(
		registrationRepo, ticketRepo, eventRepo, provider, blobStore, renderer, cfg.Storage.ArtifactPrefix)
	validationService := service.NewValidationService(ticketRepo)
	retrievalService := service.NewRetrievalService(ticketRepo, blobStore, cfg.Storage.URLExpiry)

	bindingWorker := worker.NewBindingWorker(registrationRepo, bindingQueue)
	if err := bindingWorker.Start(ctx); err != nil {
		log.Fatalf("Failed to start binding worker: %v", err)
	}

	router := gin.Default()
	router.Use(cors.Default())
	router.Use(handler.RequesterMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	handler.NewEventHandler(eventService, registrationService).RegisterRoutes(router)
	handler.NewRegistrationHandler(registrationService).RegisterRoutes(router)
	handler.NewPaymentHandler(paymentService).RegisterRoutes(router)
	handler.NewTicketHandler(issuanceService, validationService, retrievalService).RegisterRoutes(router)
	handler.NewDownloadHandler(blobStore, signer).RegisterRoutes(router)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
}
