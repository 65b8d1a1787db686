package schema

import (
	"errors"
	"net/http"

	"freightsite/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterAdminRoutes wires the repair endpoints; admin-only, and meant to
// be triggered by one operator at a time.
func (h *Handler) RegisterAdminRoutes(g *gin.RouterGroup) {
	schemaGroup := g.Group("/schema")
	{
		schemaGroup.GET("/tables", h.ListTables)
		schemaGroup.GET("/inspect/:table", h.Inspect)
		schemaGroup.POST("/repair/:table", h.Repair)
	}
}

func (h *Handler) ListTables(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Tables())
}

func (h *Handler) Inspect(c *gin.Context) {
	cols, err := h.service.Inspect(c.Request.Context(), c.Param("table"))
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownTable):
			response.Error(c, http.StatusNotFound, "UNKNOWN_TABLE", err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NO_SUCH_TABLE", err.Error())
		default:
			response.ErrorWithDetails(c, http.StatusInternalServerError, "INSPECT_FAILED",
				"Failed to inspect table", err.Error())
		}
		return
	}
	response.Success(c, http.StatusOK, cols)
}

// Repair runs the convergence routine and returns the before/after report.
// On failure the partial report rides along with the raw database error so
// the operator can see how far it got.
func (h *Handler) Repair(c *gin.Context) {
	report, err := h.service.Repair(c.Request.Context(), c.Param("table"))
	if err != nil {
		if errors.Is(err, ErrUnknownTable) {
			response.Error(c, http.StatusNotFound, "UNKNOWN_TABLE", err.Error())
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "REPAIR_FAILED",
				"message": "Schema repair aborted",
				"details": err.Error(),
			},
			"report": report,
		})
		return
	}
	response.Success(c, http.StatusOK, report)
}
