package routes

import (
	"net/http"
	"time"

	"voyago/handlers"
	"voyago/middleware"
	"voyago/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterQuoteRoutes registers the public pricing endpoint. Quotes are
// rate-limited per IP but need no authentication: the booking widget calls
// this before any account exists.
func RegisterQuoteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/quotes")
	{
		api.POST("", middleware.RateLimitMiddleware(), hb.Quote.QuoteJourneyHandler)
	}
}

// RegisterAdminAuthRoutes registers admin session endpoints. Only login is
// public; account creation requires an already signed-in admin.
func RegisterAdminAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.POST("/login", middleware.RateLimitMiddleware(), hb.AdminAuth.LoginHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware(hb.AdminRepo))
		protected.POST("/logout", hb.AdminAuth.LogoutHandler)
		protected.POST("/register", hb.AdminAuth.RegisterAdminHandler)
	}
}

// RegisterBookingRoutes sets up the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthAdminMiddleware(hb.AdminRepo))
		api.POST("", hb.Bookings.CreateBookingHandler)
		api.GET("", hb.Bookings.ListBookingsHandler)
		api.GET("/id/:id", hb.Bookings.GetBookingByIDHandler)
		api.GET("/reference/:reference", hb.Bookings.GetBookingByReferenceHandler)
		api.PUT("/:id/pricing", hb.Bookings.UpdateBookingPricingHandler)
		api.PUT("/:id/assign-fleet", hb.Bookings.AssignFleetHandler)
		api.PUT("/:id/assign-driver", hb.Bookings.AssignDriverHandler)
		api.PUT("/:id/status", hb.Bookings.UpdateBookingStatusHandler)
		api.DELETE("/:id", hb.Bookings.DeleteBookingHandler)
	}
}

// RegisterInvoiceRoutes sets up invoice generation, lifecycle and document
// archival endpoints.
func RegisterInvoiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/invoices")
	{
		api.Use(middleware.JWTAuthAdminMiddleware(hb.AdminRepo))
		api.POST("", hb.Invoices.GenerateInvoiceHandler)
		api.POST("/custom", hb.Invoices.GenerateCustomInvoiceHandler)
		api.GET("", hb.Invoices.ListInvoicesHandler)
		api.GET("/id/:id", hb.Invoices.GetInvoiceByIDHandler)
		api.GET("/number/:number", hb.Invoices.GetInvoiceByNumberHandler)
		api.PUT("/:id/issue", hb.Invoices.IssueInvoiceHandler)
		api.PUT("/:id/paid", hb.Invoices.MarkInvoicePaidHandler)
		api.PUT("/:id/void", hb.Invoices.VoidInvoiceHandler)
		api.POST("/:id/amend", hb.Invoices.AmendInvoiceHandler)
		api.POST("/:id/payment-intent", hb.Invoices.OpenPaymentIntentHandler)
		api.POST("/:id/document", hb.Invoices.ArchiveInvoiceDocumentHandler)
		api.GET("/:id/document", hb.Invoices.GetInvoiceDocumentURLHandler)
	}
}

// RegisterTariffRoutes sets up admin CRUD over the pricing reference data.
func RegisterTariffRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin/tariffs")
	{
		api.Use(middleware.JWTAuthAdminMiddleware(hb.AdminRepo))

		api.POST("/vehicle-classes", hb.Tariffs.CreateVehicleClassHandler)
		api.GET("/vehicle-classes", hb.Tariffs.ListVehicleClassesHandler)
		api.GET("/vehicle-classes/:id", hb.Tariffs.GetVehicleClassHandler)
		api.PUT("/vehicle-classes/:id", hb.Tariffs.UpdateVehicleClassHandler)
		api.PUT("/vehicle-classes/:id/image", hb.Tariffs.UploadVehicleClassImageHandler)
		api.DELETE("/vehicle-classes/:id", hb.Tariffs.DeleteVehicleClassHandler)

		api.POST("/schemes", hb.Tariffs.CreatePricingSchemeHandler)
		api.GET("/schemes/:id", hb.Tariffs.GetPricingSchemeHandler)
		api.GET("/schemes/for-class/:classId", hb.Tariffs.GetSchemeForClassHandler)
		api.PUT("/schemes/:id", hb.Tariffs.UpdatePricingSchemeHandler)
		api.DELETE("/schemes/:id", hb.Tariffs.DeletePricingSchemeHandler)

		api.POST("/fixed-routes", hb.Tariffs.CreateFixedRouteHandler)
		api.GET("/fixed-routes/:id", hb.Tariffs.GetFixedRouteHandler)
		api.GET("/fixed-routes/for-class/:classId", hb.Tariffs.ListFixedRoutesForClassHandler)
		api.PUT("/fixed-routes/:id", hb.Tariffs.UpdateFixedRouteHandler)
		api.DELETE("/fixed-routes/:id", hb.Tariffs.DeleteFixedRouteHandler)

		api.POST("/text-routes", hb.Tariffs.CreateTextRouteHandler)
		api.GET("/text-routes", hb.Tariffs.ListTextRoutesHandler)
		api.GET("/text-routes/:id", hb.Tariffs.GetTextRouteHandler)
		api.PUT("/text-routes/:id", hb.Tariffs.UpdateTextRouteHandler)
		api.DELETE("/text-routes/:id", hb.Tariffs.DeleteTextRouteHandler)

		api.POST("/rate-cards", hb.Tariffs.CreateRateCardHandler)
		api.GET("/rate-cards/:id", hb.Tariffs.GetRateCardHandler)
		api.GET("/rate-cards/for-class/:classId", hb.Tariffs.GetRateCardForClassHandler)
		api.PUT("/rate-cards/:id", hb.Tariffs.UpdateRateCardHandler)
		api.DELETE("/rate-cards/:id", hb.Tariffs.DeleteRateCardHandler)
	}
}

// RegisterEntityRoutes sets up admin CRUD over customers, fleets and drivers.
func RegisterEntityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	fleets := r.Group("/api/admin/fleets")
	{
		fleets.Use(middleware.JWTAuthAdminMiddleware(hb.AdminRepo))
		fleets.POST("", hb.Fleets.CreateFleetHandler)
		fleets.GET("", hb.Fleets.ListFleetsHandler)
		fleets.GET("/:id", hb.Fleets.GetFleetHandler)
		fleets.PUT("/:id", hb.Fleets.UpdateFleetHandler)
		fleets.PUT("/:id/device", hb.Fleets.RegisterFleetDeviceHandler)
		fleets.DELETE("/:id", hb.Fleets.DeleteFleetHandler)
	}

	drivers := r.Group("/api/admin/drivers")
	{
		drivers.Use(middleware.JWTAuthAdminMiddleware(hb.AdminRepo))
		drivers.POST("", hb.Fleets.CreateDriverHandler)
		drivers.GET("", hb.Fleets.ListDriversHandler)
		drivers.GET("/:id", hb.Fleets.GetDriverHandler)
		drivers.PUT("/:id", hb.Fleets.UpdateDriverHandler)
		drivers.PUT("/:id/device", hb.Fleets.RegisterDriverDeviceHandler)
		drivers.DELETE("/:id", hb.Fleets.DeleteDriverHandler)
	}

	customers := r.Group("/api/admin/customers")
	{
		customers.Use(middleware.JWTAuthAdminMiddleware(hb.AdminRepo))
		customers.POST("", hb.Customers.CreateCustomerHandler)
		customers.GET("", hb.Customers.ListCustomersHandler)
		customers.GET("/:id", hb.Customers.GetCustomerHandler)
		customers.GET("/email/:email", hb.Customers.GetCustomerByEmailHandler)
		customers.PUT("/:id", hb.Customers.UpdateCustomerHandler)
		customers.PUT("/:id/device", hb.Customers.RegisterCustomerDeviceHandler)
		customers.DELETE("/:id", hb.Customers.DeleteCustomerHandler)
	}
}

// RegisterNotificationRoutes sets up the notification feed endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin/notifications")
	{
		api.Use(middleware.JWTAuthAdminMiddleware(hb.AdminRepo))
		api.GET("/:target/:targetId", hb.Notifications.ListFeedHandler)
		api.PUT("/:id/read", hb.Notifications.MarkNotificationReadHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint backed by the
// periodic dependency monitor.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterQuoteRoutes(r, hb)
	RegisterAdminAuthRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterInvoiceRoutes(r, hb)
	RegisterTariffRoutes(r, hb)
	RegisterEntityRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterHealthRoute(r)
}
