package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jalusi/utils"
)

// ListServices handles GET /api/catalog/services.
func (h *BookingHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, h.Engine.Services())
}

// ListSpecialists handles GET /api/catalog/services/:service/specialists.
func (h *BookingHandler) ListSpecialists(c *gin.Context) {
	service := c.Param("service")
	names, err := h.Engine.SpecialistsFor(service)
	if err != nil {
		utils.RespondError(c, h.Logger, "service not found", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"service":     service,
		"specialists": names,
	})
}

// ListRoster handles GET /api/catalog/roster.
func (h *BookingHandler) ListRoster(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"roster": h.Catalog.Roster})
}
