package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"flowbook/services/availability"
	"flowbook/services/catalog"
	"flowbook/services/directory"
	"flowbook/utils"
)

// CatalogHandler serves the read-only collaborator data the widget renders:
// catalog, staff, locations and availability.
type CatalogHandler struct {
	CatalogSvc      catalog.Service
	DirectorySvc    directory.Service
	AvailabilitySvc availability.Service
	Logger          *zap.Logger
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(catalogSvc catalog.Service, directorySvc directory.Service, availabilitySvc availability.Service, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		CatalogSvc:      catalogSvc,
		DirectorySvc:    directorySvc,
		AvailabilitySvc: availabilitySvc,
		Logger:          logger,
	}
}

// GetBusiness returns the public business profile.
func (h *CatalogHandler) GetBusiness(c *gin.Context) {
	biz, err := h.CatalogSvc.GetBusinessBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "business not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"business": biz})
}

// GetCatalog returns session records and category trees for the business.
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	biz, err := h.CatalogSvc.GetBusinessBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "business not found", err.Error())
		return
	}
	cat, err := h.CatalogSvc.GetCatalog(c.Request.Context(), biz.ID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load catalog", err.Error())
		return
	}
	c.JSON(http.StatusOK, cat)
}

// GetStaff returns the business staff directory.
func (h *CatalogHandler) GetStaff(c *gin.Context) {
	biz, err := h.CatalogSvc.GetBusinessBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "business not found", err.Error())
		return
	}
	staff, err := h.DirectorySvc.GetStaff(c.Request.Context(), biz.ID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load staff", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": staff})
}

// GetLocations returns the business location directory.
func (h *CatalogHandler) GetLocations(c *gin.Context) {
	biz, err := h.CatalogSvc.GetBusinessBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "business not found", err.Error())
		return
	}
	locations, err := h.DirectorySvc.GetLocations(c.Request.Context(), biz.ID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load locations", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"locations": locations})
}

// GetAvailability returns time slots for a service over a date range.
func (h *CatalogHandler) GetAvailability(c *gin.Context) {
	biz, err := h.CatalogSvc.GetBusinessBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "business not found", err.Error())
		return
	}

	serviceID, err := strconv.ParseInt(c.Query("service_id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid service_id", c.Query("service_id"))
		return
	}
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing date range", "from and to are required (YYYY-MM-DD)")
		return
	}

	slots, err := h.AvailabilitySvc.GetSlots(c.Request.Context(), biz.ID, serviceID, from, to)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}
