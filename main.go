// File: voyago/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voyago/config"
	"voyago/cron"
	"voyago/database"
	adminRepoPkg "voyago/database/repository/admin"
	bookingRepoPkg "voyago/database/repository/booking"
	customerRepoPkg "voyago/database/repository/customer"
	fleetRepoPkg "voyago/database/repository/fleet"
	invoiceRepoPkg "voyago/database/repository/invoice"
	notificationRepoPkg "voyago/database/repository/notification"
	tariffRepoPkg "voyago/database/repository/tariff"
	"voyago/handlers"
	"voyago/routes"
	"voyago/services/admin"
	"voyago/services/booking"
	"voyago/services/invoice"
	"voyago/services/notification"
	"voyago/services/pricing"
	"voyago/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.FirebaseInit()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: cloudinary storage init: %v", err)
	}

	// Gin router with panic recovery ahead of the access log.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	stripe.Key = config.AppConfig.StripeKey

	// Mongo repositories.
	adminRepo := adminRepoPkg.NewMongoAdminRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	customerRepo := customerRepoPkg.NewMongoCustomerRepo()
	fleetRepo := fleetRepoPkg.NewMongoFleetRepo()
	invoiceRepo := invoiceRepoPkg.NewMongoInvoiceRepo()
	tariffRepo := tariffRepoPkg.NewMongoTariffRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()

	// Task queue client for push and reminder dispatch.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()

	// Domain services.
	quoteService := &pricing.DefaultQuoteService{
		Tariffs: tariffRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:        bookingRepo,
		Fleets:      fleetRepo,
		Quotes:      quoteService,
		AsynqClient: asynqClient,
	}
	invoiceService := &invoice.DefaultInvoiceService{
		Repo:        invoiceRepo,
		Bookings:    bookingRepo,
		Fleets:      fleetRepo,
		Customers:   customerRepo,
		AsynqClient: asynqClient,
	}
	notificationService := &notification.DefaultNotificationService{
		Customers: customerRepo,
		Fleets:    fleetRepo,
		Repo:      notificationRepo,
	}
	adminService := &admin.DefaultAdminService{
		Repo: adminRepo,
	}

	// HTTP handlers, gathered into one bundle for route registration.
	handlerBundle := &handlers.HandlerBundle{
		AdminRepo: adminRepo,

		Quote:     &handlers.QuoteHandler{Quotes: quoteService},
		AdminAuth: &handlers.AdminAuthHandler{AdminService: adminService},
		Bookings:  &handlers.BookingHandler{BookingService: bookingService},
		Invoices:  handlers.NewInvoiceHandler(invoiceService, cloudinaryStorageService, invoiceRepo),
		Tariffs: &handlers.TariffHandler{
			Tariffs:    tariffRepo,
			StorageSvc: cloudinaryStorageService,
		},
		Fleets:        &handlers.FleetHandler{Fleets: fleetRepo},
		Customers:     &handlers.CustomerHandler{Customers: customerRepo},
		Notifications: &handlers.NotificationHandler{NotificationService: notificationService},
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background task worker and dependency health monitor.
	cron.InitWorker(notificationService, invoiceRepo)
	utils.StartHealthMonitor(database.MongoClient, utils.GetCacheClient(), utils.GetAuthCacheClient())

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("voyago listening on %s", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: listen: %v", err)
		}
	}()

	// Block until interrupted, then drain in-flight requests.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: forced shutdown: %v", err)
	}

	logger.Sugar().Info("main: stopped cleanly")
}
