package admin

import (
	"net/http"

	"freightsite/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterAdminRoutes(g *gin.RouterGroup) {
	g.GET("/stats", h.Stats)
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.ServerError(c, "DATABASE_ERROR", "Failed to load stats")
		return
	}
	response.Success(c, http.StatusOK, stats)
}
