package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"flowbook/services/booking"
	"flowbook/services/flow"
	"flowbook/utils"
)

// BookingHandler exposes submission and client-side booking management.
type BookingHandler struct {
	Svc    booking.Service
	Logger *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.Service, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// Submit finalizes the session into a booking.
func (h *BookingHandler) Submit(c *gin.Context) {
	state, err := h.Svc.Submit(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"state":        state,
		"confirmation": state.BookingConfirmation,
	})
}

// GetBooking looks up a booking by reference, guarded by the booking email.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	record, err := h.Svc.GetByReference(c.Request.Context(), c.Param("reference"), c.Query("email"))
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": record})
}

// CancelBooking cancels a booking on the client's behalf.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	var input struct {
		Email  string `json:"email"`
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	record, err := h.Svc.CancelByReference(c.Request.Context(), c.Param("reference"), input.Email, input.Reason)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": record})
}

// GetRescheduleOptions lists the slots the booking could move to.
func (h *BookingHandler) GetRescheduleOptions(c *gin.Context) {
	slots, err := h.Svc.RescheduleOptions(c.Request.Context(),
		c.Param("reference"), c.Query("email"), c.Query("from"), c.Query("to"))
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// RescheduleBooking moves the booking onto a different slot.
func (h *BookingHandler) RescheduleBooking(c *gin.Context) {
	var input struct {
		Email     string `json:"email"`
		Date      string `json:"date"`
		SessionID int64  `json:"session_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	record, err := h.Svc.Reschedule(c.Request.Context(), c.Param("reference"), input.Email, input.Date, input.SessionID)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": record})
}

func (h *BookingHandler) respondBookingError(c *gin.Context, err error) {
	var validationErr *booking.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "booking details invalid",
			"fields": validationErr.Fields,
		})
		return
	}
	var capacityErr *booking.CapacityError
	if errors.As(err, &capacityErr) {
		c.JSON(http.StatusConflict, gin.H{
			"error":           capacityErr.Error(),
			"available_spots": capacityErr.Available,
		})
		return
	}
	if errors.Is(err, flow.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": flow.ErrSessionNotFound.Message})
		return
	}

	var bookingErr *booking.BookingError
	if errors.As(err, &bookingErr) {
		status := http.StatusBadRequest
		switch bookingErr.Code {
		case "bookingNotFound":
			status = http.StatusNotFound
		case "emailMismatch":
			status = http.StatusForbidden
		case "cancellationDisabled", "cancellationDeadline", "alreadyCancelled",
			"rescheduleDisabled", "rescheduleDeadline", "slotUnavailable":
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": bookingErr.Message})
		return
	}

	h.Logger.Error("booking operation failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "booking operation failed", err.Error())
}
