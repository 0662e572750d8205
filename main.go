package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"locallink/config"
	"locallink/cron"
	"locallink/database"
	bookingRepoPkg "locallink/database/repository/booking"
	categoryRepoPkg "locallink/database/repository/category"
	eventRepoPkg "locallink/database/repository/event"
	favoriteRepoPkg "locallink/database/repository/favorite"
	notificationRepoPkg "locallink/database/repository/notification"
	reportRepoPkg "locallink/database/repository/report"
	reviewRepoPkg "locallink/database/repository/review"
	serviceRepoPkg "locallink/database/repository/service"
	userRepoPkg "locallink/database/repository/user"
	"locallink/handlers"
	"locallink/routes"
	"locallink/services/admin"
	"locallink/services/booking"
	"locallink/services/catalog"
	"locallink/services/favorite"
	"locallink/services/notification"
	"locallink/services/report"
	"locallink/services/review"
	"locallink/services/verification"
	"locallink/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	categoryRepo := categoryRepoPkg.NewMongoCategoryRepo()
	eventRepo := eventRepoPkg.NewMongoEventRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()
	favoriteRepo := favoriteRepoPkg.NewMongoFavoriteRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()
	reportRepo := reportRepoPkg.NewMongoReportRepo()

	// services.
	notificationService := &notification.DefaultNotificationService{
		Repo: notificationRepo,
	}
	verificationService := &verification.DefaultVerificationService{
		Users:    userRepo,
		Bookings: bookingRepo,
		Reviews:  reviewRepo,
		Services: serviceRepo,
	}
	catalogService := &catalog.DefaultCatalogService{
		Services:   serviceRepo,
		Categories: categoryRepo,
		Events:     eventRepo,
		Users:      userRepo,
		Cache:      utils.GetCacheClient(),
	}

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})
	defer asynqClient.Close()
	reminderScheduler := &booking.AsynqReminderScheduler{
		Client: asynqClient,
		Lead:   time.Duration(config.AppConfig.ReminderLeadTime) * time.Hour,
	}

	bookingService := &booking.DefaultBookingService{
		Bookings:  bookingRepo,
		Services:  serviceRepo,
		Notifier:  notificationService,
		Verifier:  verificationService,
		Reminders: reminderScheduler,
	}
	reviewService := &review.DefaultReviewService{
		Reviews:  reviewRepo,
		Bookings: bookingRepo,
		Services: serviceRepo,
		Verifier: verificationService,
	}
	favoriteService := &favorite.DefaultFavoriteService{
		Favorites: favoriteRepo,
		Services:  serviceRepo,
	}
	reportService := &report.DefaultReportService{
		Reports:  reportRepo,
		Services: serviceRepo,
		Notifier: notificationService,
	}
	adminService := &admin.DefaultAdminService{
		Users:      userRepo,
		Services:   serviceRepo,
		Bookings:   bookingRepo,
		Reports:    reportRepo,
		Categories: categoryRepo,
		Events:     eventRepo,
	}

	// Assemble the handler bundle and register routes.
	handlerBundle := &handlers.HandlerBundle{
		Catalog:      handlers.NewCatalogHandler(catalogService),
		Booking:      handlers.NewBookingHandler(bookingService),
		Review:       handlers.NewReviewHandler(reviewService),
		Favorite:     handlers.NewFavoriteHandler(favoriteService),
		Notification: handlers.NewNotificationHandler(notificationService),
		Report:       handlers.NewReportHandler(reportService),
		Admin:        handlers.NewAdminHandler(adminService, reportService),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Background reminder delivery.
	reminderWorker := cron.InitReminderWorker(bookingRepo, notificationService)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	reminderWorker.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
