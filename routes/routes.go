package routes

import (
	"net/http"
	"time"

	"locallink/handlers"
	"locallink/middleware"
	"locallink/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterServiceRoutes registers the catalog endpoints. Search, service
// detail, reviews and the location index are public; mutation is
// provider-only.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.Catalog.SearchHandler)
		api.GET("/locations/countries", hb.Catalog.CountriesHandler)
		api.GET("/locations/cities/:country", hb.Catalog.CitiesHandler)
		api.GET("/locations/areas/:country/:city", hb.Catalog.AreasHandler)
		api.GET("/:id", hb.Catalog.GetServiceHandler)

		protected := api.Group("")
		protected.Use(middleware.Auth(), middleware.RequireRole(models.RoleProvider, models.RoleAdmin))
		protected.POST("", hb.Catalog.CreateServiceHandler)
		protected.PUT("/:id", hb.Catalog.UpdateServiceHandler)
		protected.DELETE("/:id", hb.Catalog.DeleteServiceHandler)
		protected.PATCH("/:id/availability", hb.Catalog.ToggleAvailabilityHandler)
		protected.PATCH("/:id/pricing", hb.Catalog.UpdatePricingHandler)
	}
}

// RegisterBookingRoutes registers the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.Auth())
		api.POST("", hb.Booking.CreateBookingHandler)
		api.GET("/my-bookings", hb.Booking.MyBookingsHandler)
		api.GET("/provider-bookings", hb.Booking.ProviderBookingsHandler)
		api.GET("/:id", hb.Booking.GetBookingHandler)
		api.PUT("/:id/status", hb.Booking.UpdateStatusHandler)
	}
}

// RegisterReviewRoutes registers review submission and management. The
// per-service listing is public; everything else requires the author.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.GET("/service/:serviceId", hb.Review.ServiceReviewsHandler)

		protected := api.Group("")
		protected.Use(middleware.Auth())
		protected.GET("/can-review/:serviceId", hb.Review.CanReviewHandler)
		protected.POST("/:serviceId", hb.Review.CreateReviewHandler)
		protected.PUT("/:id", hb.Review.UpdateReviewHandler)
		protected.DELETE("/:id", hb.Review.DeleteReviewHandler)
	}
}

// RegisterFavoriteRoutes registers the wishlist endpoints.
func RegisterFavoriteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/favorites")
	{
		api.Use(middleware.Auth())
		api.GET("", hb.Favorite.ListHandler)
		api.GET("/:serviceId", hb.Favorite.CheckHandler)
		api.PUT("/:serviceId", hb.Favorite.ToggleHandler)
		api.DELETE("/:serviceId", hb.Favorite.RemoveHandler)
	}
}

// RegisterNotificationRoutes registers the notification inbox endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.Auth())
		api.GET("", hb.Notification.ListHandler)
		api.GET("/unread-count", hb.Notification.UnreadCountHandler)
		api.PUT("/mark-all-read", hb.Notification.MarkAllReadHandler)
		api.PUT("/:id/read", hb.Notification.MarkReadHandler)
		api.DELETE("/:id", hb.Notification.DeleteHandler)
	}
}

// RegisterReportRoutes registers the user-facing report endpoints.
func RegisterReportRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reports")
	{
		api.Use(middleware.Auth())
		api.POST("", hb.Report.CreateReportHandler)
		api.GET("/my-reports", hb.Report.MyReportsHandler)
		api.GET("/:id", hb.Report.GetReportHandler)
	}
}

// RegisterAdminRoutes registers the admin subtree.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.Auth(), middleware.RequireRole(models.RoleAdmin))
		api.GET("/stats", hb.Admin.StatsHandler)
		api.GET("/users", hb.Admin.ListUsersHandler)

		api.GET("/categories", hb.Admin.ListCategoriesHandler)
		api.POST("/categories", hb.Admin.CreateCategoryHandler)
		api.PUT("/categories/:id", hb.Admin.UpdateCategoryHandler)
		api.DELETE("/categories/:id", hb.Admin.DeleteCategoryHandler)

		api.GET("/events", hb.Admin.ListEventsHandler)
		api.POST("/events", hb.Admin.CreateEventHandler)
		api.PUT("/events/:id", hb.Admin.UpdateEventHandler)
		api.DELETE("/events/:id", hb.Admin.DeleteEventHandler)

		api.GET("/reports", hb.Admin.ListReportsHandler)
		api.PUT("/reports/:id/resolve", hb.Admin.ResolveReportHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and the global
// middleware stack.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterServiceRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterFavoriteRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterReportRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
