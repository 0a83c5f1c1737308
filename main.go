// File: tidyops/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tidyops/config"
	"tidyops/cron"
	"tidyops/database"
	adminRepoPkg "tidyops/database/repository/admin"
	cleanerRepoPkg "tidyops/database/repository/cleaner"
	clientRepoPkg "tidyops/database/repository/client"
	jobRepoPkg "tidyops/database/repository/job"
	quoteRepoPkg "tidyops/database/repository/quote"
	"tidyops/handlers"
	"tidyops/routes"
	adminSvc "tidyops/services/admin"
	"tidyops/services/analytics"
	"tidyops/services/booking"
	cleanerSvc "tidyops/services/cleaner"
	"tidyops/services/notification"
	"tidyops/services/pricing"
	"tidyops/services/tasks"
	"tidyops/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	jobRepo := jobRepoPkg.NewMongoJobRepo()
	quoteRepo := quoteRepoPkg.NewMongoQuoteRepo()
	clientRepo := clientRepoPkg.NewMongoClientRepo()
	cleanerRepo := cleanerRepoPkg.NewMongoCleanerRepo()
	adminRepo := adminRepoPkg.NewMongoAdminRepo()

	// services.
	pricingEngine := pricing.NewEngine()

	notificationService, err := notification.NewDefaultService(cleanerRepo, clientRepo, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	reminderScheduler := tasks.NewReminderScheduler(logger)
	defer reminderScheduler.Close()

	paymentService := booking.NewStripePaymentService(logger)

	sessionService := &booking.DefaultSessionService{
		Pricing:   pricingEngine,
		Jobs:      jobRepo,
		Quotes:    quoteRepo,
		Clients:   clientRepo,
		Payments:  paymentService,
		Notifier:  notificationService,
		Reminders: reminderScheduler,
		Logger:    logger,
	}

	analyticsService := analytics.NewDefaultService(jobRepo, quoteRepo, config.AppConfig.CleanerPayoutRate, logger)
	adminService := adminSvc.NewService(adminRepo, logger)
	dispatcher := adminSvc.NewDispatcher(jobRepo, cleanerRepo, notificationService, reminderScheduler, paymentService, logger)
	cleanerService := cleanerSvc.NewService(cleanerRepo, jobRepo, notificationService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Pricing:    pricingEngine,
		Sessions:   sessionService,
		Analytics:  analyticsService,
		Dispatch:   dispatcher,
		AdminAuth:  adminService,
		CleanerSvc: cleanerService,
		Storage:    cloudinaryStorageService,

		Jobs:     jobRepo,
		Quotes:   quoteRepo,
		Clients:  clientRepo,
		Cleaners: cleanerRepo,
		Admins:   adminRepo,

		Logger: logger,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers.
	cron.InitReminderWorker(notificationService, jobRepo)
	refresher := cron.NewAnalyticsRefresher(analyticsService, adminRepo, logger)
	refresher.Start()
	defer refresher.Stop()

	utils.StartHealthMonitor(database.MongoClient)

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
