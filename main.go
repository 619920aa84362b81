// File: flowbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"flowbook/config"
	"flowbook/cron"
	"flowbook/database"
	bookingRepoPkg "flowbook/database/repository/booking"
	businessRepoPkg "flowbook/database/repository/business"
	catalogRepoPkg "flowbook/database/repository/catalog"
	directoryRepoPkg "flowbook/database/repository/directory"
	occurrenceRepoPkg "flowbook/database/repository/occurrence"
	"flowbook/handlers"
	"flowbook/middleware"
	"flowbook/routes"
	"flowbook/services/availability"
	bookingSvc "flowbook/services/booking"
	"flowbook/services/catalog"
	"flowbook/services/directory"
	"flowbook/services/flow"
	"flowbook/services/notification"
	"flowbook/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())

	// repositories.
	businessRepo := businessRepoPkg.NewMongoBusinessRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	directoryRepo := directoryRepoPkg.NewMongoDirectoryRepo()
	occurrenceRepo := occurrenceRepoPkg.NewMongoOccurrenceRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	catalogService := &catalog.DefaultCatalogService{
		BusinessRepo: businessRepo,
		CatalogRepo:  catalogRepo,
	}
	directoryService := &directory.DefaultDirectoryService{
		Repo: directoryRepo,
	}
	availabilityService := &availability.DefaultAvailabilityService{
		OccurrenceRepo: occurrenceRepo,
		BookingRepo:    bookingRepo,
	}
	flowService := &flow.DefaultSessionService{
		CatalogSvc:   catalogService,
		DirectorySvc: directoryService,
		Cache:        utils.GetSessionCacheClient(),
		SessionTTL:   time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute,
		Logger:       logger,
	}
	notificationService := &notification.DefaultNotificationService{
		Client: cron.NewTaskClient(),
		Logger: logger,
	}
	bookingService := &bookingSvc.DefaultBookingService{
		FlowSvc:         flowService,
		AvailabilitySvc: availabilityService,
		Repo:            bookingRepo,
		BusinessRepo:    businessRepo,
		NotificationSvc: notificationService,
		Logger:          logger,
	}

	// Background email worker.
	cron.InitEmailWorker(&notification.LogSender{Logger: logger})

	flowHandler := handlers.NewFlowHandler(flowService, logger)
	catalogHandler := handlers.NewCatalogHandler(catalogService, directoryService, availabilityService, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		StartSession:   flowHandler.StartSession,
		GetState:       flowHandler.GetState,
		DispatchAction: flowHandler.DispatchAction,
		NextStep:       flowHandler.NextStep,
		PreviousStep:   flowHandler.PreviousStep,
		CancelSession:  flowHandler.CancelSession,

		GetBusiness:     catalogHandler.GetBusiness,
		GetCatalog:      catalogHandler.GetCatalog,
		GetStaff:        catalogHandler.GetStaff,
		GetLocations:    catalogHandler.GetLocations,
		GetAvailability: catalogHandler.GetAvailability,

		Submit:               bookingHandler.Submit,
		GetBooking:           bookingHandler.GetBooking,
		CancelBooking:        bookingHandler.CancelBooking,
		GetRescheduleOptions: bookingHandler.GetRescheduleOptions,
		RescheduleBooking:    bookingHandler.RescheduleBooking,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetSessionCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
