package routes

import (
	"github.com/gin-gonic/gin"

	"flowbook/handlers"
)

// RegisterBookingRoutes registers all endpoints for the public booking widget.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/public")
	{
		// Business-scoped reads.
		business := api.Group("/business/:slug")
		business.GET("", hb.GetBusiness)
		business.GET("/catalog", hb.GetCatalog)
		business.GET("/staff", hb.GetStaff)
		business.GET("/locations", hb.GetLocations)
		business.GET("/availability", hb.GetAvailability)
		business.POST("/session", hb.StartSession)

		// Booking session lifecycle.
		session := api.Group("/session/:sessionID")
		session.GET("", hb.GetState)
		session.POST("/actions", hb.DispatchAction)
		session.POST("/next", hb.NextStep)
		session.POST("/previous", hb.PreviousStep)
		session.DELETE("", hb.CancelSession)
		session.POST("/submit", hb.Submit)

		// Client booking management.
		api.GET("/bookings/:reference", hb.GetBooking)
		api.POST("/bookings/:reference/cancel", hb.CancelBooking)
		api.GET("/bookings/:reference/reschedule-options", hb.GetRescheduleOptions)
		api.POST("/bookings/:reference/reschedule", hb.RescheduleBooking)
	}
}
