package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flowbook/handlers"
	"flowbook/utils"
)

// RegisterRoutes wires up all endpoints with the assembled handler bundle.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	RegisterBookingRoutes(r, hb)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}
