package handlers

import (
	"net/http"

	"ebus/internal/services"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves route catalog reads.
type CatalogHandler struct {
	Catalog services.CatalogService
}

// GET /api/routes (legacy: GET /api/bookings/routes)
func (h *CatalogHandler) ListRoutes(c *gin.Context) {
	routes, err := h.Catalog.ListRoutes(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, routes)
}
