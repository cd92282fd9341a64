package handlers

import (
	"net/http"

	"ebus/internal/repositories"

	"github.com/gin-gonic/gin"
)

// SystemHandler exposes liveness and store-connectivity probes.
type SystemHandler struct {
	Routes repositories.RouteRepo
}

func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "e-bus backend running"})
}

func (h *SystemHandler) DBCheck(c *gin.Context) {
	n, err := h.Routes.Count(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database query failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connection OK", "routes_in_db": n})
}
