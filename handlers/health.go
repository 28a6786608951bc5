package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jalusi/utils"
)

type HealthHandler struct {
	Checker *utils.HealthChecker
}

// Check handles GET /health. A degraded backend answers 503.
func (h *HealthHandler) Check(c *gin.Context) {
	status := h.Checker.Check(c.Request.Context())
	code := http.StatusOK
	if status.Status != "ok" {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
