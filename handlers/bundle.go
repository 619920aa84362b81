package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates every endpoint handler the router registers.
type HandlerBundle struct {
	// Booking session endpoints.
	StartSession   gin.HandlerFunc
	GetState       gin.HandlerFunc
	DispatchAction gin.HandlerFunc
	NextStep       gin.HandlerFunc
	PreviousStep   gin.HandlerFunc
	CancelSession  gin.HandlerFunc

	// Collaborator read endpoints.
	GetBusiness     gin.HandlerFunc
	GetCatalog      gin.HandlerFunc
	GetStaff        gin.HandlerFunc
	GetLocations    gin.HandlerFunc
	GetAvailability gin.HandlerFunc

	// Submission and manage endpoints.
	Submit               gin.HandlerFunc
	GetBooking           gin.HandlerFunc
	CancelBooking        gin.HandlerFunc
	GetRescheduleOptions gin.HandlerFunc
	RescheduleBooking    gin.HandlerFunc
}
