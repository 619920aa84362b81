package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"flowbook/models"
	"flowbook/services/flow"
	"flowbook/utils"
)

// FlowHandler exposes the booking session lifecycle over HTTP.
type FlowHandler struct {
	Svc    flow.SessionService
	Logger *zap.Logger
}

// NewFlowHandler constructs a FlowHandler.
func NewFlowHandler(svc flow.SessionService, logger *zap.Logger) *FlowHandler {
	return &FlowHandler{Svc: svc, Logger: logger}
}

// StartSession creates a new booking session for the business in the path.
// Preselection ids may arrive as query parameters (shareable links).
func (h *FlowHandler) StartSession(c *gin.Context) {
	slug := c.Param("slug")

	var preselect models.PreselectionInput
	if err := c.ShouldBindQuery(&preselect); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid preselection input", err.Error())
		return
	}

	sessionID, state, err := h.Svc.StartSession(c.Request.Context(), slug, preselect)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to start booking session", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionID": sessionID,
		"state":     state,
	})
}

// GetState returns the session's current state snapshot.
func (h *FlowHandler) GetState(c *gin.Context) {
	state, err := h.Svc.GetState(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": state})
}

// DispatchAction decodes one typed action and applies it to the session.
func (h *FlowHandler) DispatchAction(c *gin.Context) {
	var input struct {
		Type    string          `json:"type"`
		Payload json.RawMessage `json:"payload"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	action, err := flow.DecodeAction(input.Type, input.Payload)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid action", err.Error())
		return
	}

	state, err := h.Svc.Dispatch(c.Request.Context(), c.Param("sessionID"), action)
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": state})
}

// NextStep advances the wizard when the current step is complete.
func (h *FlowHandler) NextStep(c *gin.Context) {
	state, err := h.Svc.Advance(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		var flowErr *flow.FlowError
		if errors.As(err, &flowErr) && flowErr.Code == "stepIncomplete" {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": flowErr.Message,
				"state": state,
			})
			return
		}
		h.respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": state})
}

// PreviousStep moves the wizard back one step.
func (h *FlowHandler) PreviousStep(c *gin.Context) {
	state, err := h.Svc.Back(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": state})
}

// CancelSession discards the session.
func (h *FlowHandler) CancelSession(c *gin.Context) {
	if err := h.Svc.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}

func (h *FlowHandler) respondFlowError(c *gin.Context, err error) {
	if errors.Is(err, flow.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": flow.ErrSessionNotFound.Message})
		return
	}
	h.Logger.Error("booking session operation failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "booking session operation failed", err.Error())
}
