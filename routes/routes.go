// File: routes/routes.go
package routes

import (
	"net/http"
	"time"

	"tidyops/handlers"
	"tidyops/middleware"
	"tidyops/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterBookingRoutes sets up the public booking widget endpoints.
// These are unauthenticated and rate limited per IP.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.Use(middleware.RateLimitMiddleware())
		api.POST("/estimate", hb.EstimatePrice)
		api.POST("/session", hb.StartBookingSession)
		api.GET("/session/:sessionID", hb.GetBookingSession)
		api.PUT("/session/:sessionID/contact", hb.UpdateBookingContact)
		api.PUT("/session/:sessionID/address", hb.UpdateBookingAddress)
		api.PUT("/session/:sessionID/service", hb.UpdateBookingService)
		api.PUT("/session/:sessionID/extras", hb.UpdateBookingExtras)
		api.PUT("/session/:sessionID/schedule", hb.UpdateBookingSchedule)
		api.PUT("/session/:sessionID/instructions", hb.UpdateBookingInstructions)
		api.POST("/session/:sessionID/promo", hb.ApplyBookingPromo)
		api.POST("/session/:sessionID/quote", hb.RequestBookingQuote)
		api.POST("/session/:sessionID/confirm", hb.ConfirmBooking)
		api.DELETE("/session/:sessionID", hb.CancelBookingSession)
	}
}

// RegisterAdminRoutes sets up the dashboard endpoints. Everything past
// registration and login requires an admin token; all reads and writes
// are scoped to the token's company.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.POST("/register", hb.RegisterAdmin)
		api.POST("/login", hb.AuthenticateAdmin)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthAdminMiddleware(hb.Admins))
		api.DELETE("/logout", hb.RevokeAdminToken)

		api.GET("/jobs", hb.ListJobs)
		api.GET("/jobs/:jobID", hb.GetJob)
		api.PUT("/jobs/:jobID/approve", hb.ApproveJob)
		api.PUT("/jobs/:jobID/assign", hb.AssignJob)
		api.PUT("/jobs/:jobID/reschedule", hb.RescheduleJob)
		api.PUT("/jobs/:jobID/cancel", hb.CancelJob)
		api.PUT("/jobs/:jobID/payment", hb.MarkJobPaid)

		api.GET("/clients", hb.ListClients)
		api.GET("/clients/:clientID", hb.GetClient)
		api.PATCH("/clients/:clientID", hb.UpdateClient)
		api.DELETE("/clients/:clientID", hb.DeleteClient)

		api.GET("/quotes", hb.ListQuotes)
		api.PUT("/quotes/:quoteID/expire", hb.ExpireQuote)
		api.DELETE("/quotes/:quoteID", hb.DeleteQuote)

		api.POST("/cleaners", hb.RegisterCleaner)
		api.GET("/cleaners", hb.ListCleaners)

		api.GET("/analytics/overview", hb.GetAnalyticsOverview)
		api.GET("/analytics/series", hb.GetAnalyticsSeries)
		api.GET("/analytics/monthly", hb.GetAnalyticsMonthly)
		api.GET("/analytics/revenue", hb.GetAnalyticsRevenue)
		api.POST("/analytics/refresh", hb.RefreshAnalytics)
	}
}

// RegisterCleanerRoutes sets up the cleaner field-app endpoints.
func RegisterCleanerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cleaner")
	{
		api.POST("/login", hb.AuthenticateCleaner)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthCleanerMiddleware(hb.Cleaners))
		api.DELETE("/logout", hb.RevokeCleanerToken)
		api.PUT("/device", hb.RegisterCleanerDevice)

		api.GET("/jobs/offered", hb.ListOfferedJobs)
		api.GET("/jobs/schedule", hb.ListScheduleJobs)
		api.GET("/jobs/history", hb.ListCompletedJobs)
		api.PUT("/jobs/:jobID/accept", hb.AcceptJob)
		api.PUT("/jobs/:jobID/decline", hb.DeclineJob)
		api.PUT("/jobs/:jobID/start", hb.StartJob)
		api.PUT("/jobs/:jobID/complete", hb.CompleteJob)
		api.POST("/jobs/:jobID/photos/:phase", hb.UploadJobPhotos)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(utils.ErrorHandler())

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterCleanerRoutes(r, hb)
}
