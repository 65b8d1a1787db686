package contact

import (
	"errors"
	"net/http"

	"freightsite/internal/pkg/response"
	"freightsite/internal/pkg/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
	checkDB ConnChecker
}

func NewHandler(service *Service, checkDB ConnChecker) *Handler {
	return &Handler{
		service: service,
		checkDB: checkDB,
	}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	v1.POST("/contact", h.Submit)
}

func (h *Handler) RegisterAdminRoutes(g *gin.RouterGroup) {
	messages := g.Group("/messages")
	{
		messages.GET("", h.List)
		messages.GET("/stats", h.Stats)
		messages.GET("/:id", h.Get)
		messages.PATCH("/:id/read", h.MarkRead)
		messages.PUT("/:id/status", h.SetStatus)
		messages.DELETE("/:id", h.Delete)
	}
}

func bindError(c *gin.Context, err error) {
	if fields := validator.FromBindingError(err); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", validator.Summarize(fields), fields)
		return
	}
	response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Message not found")
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidStatus):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.ServerError(c, "DATABASE_ERROR", "Operation failed")
	}
}

// Submit handles POST /contact from the public site.
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	msg, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, msg)
}

func (h *Handler) List(c *gin.Context) {
	if h.checkDB != nil && !h.checkDB(c.Request.Context()) {
		response.Error(c, http.StatusServiceUnavailable, "DATABASE_UNAVAILABLE", "Database is not reachable")
		return
	}

	if c.Query("unread") == "true" {
		messages, err := h.service.ListUnread(c.Request.Context())
		if err != nil {
			handleError(c, err)
			return
		}
		response.Success(c, http.StatusOK, messages)
		return
	}

	messages, err := h.service.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, messages)
}

func (h *Handler) Get(c *gin.Context) {
	msg, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, msg)
}

func (h *Handler) MarkRead(c *gin.Context) {
	var req UpdateReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	msg, err := h.service.MarkRead(c.Request.Context(), c.Param("id"), req.IsRead)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, msg)
}

func (h *Handler) SetStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	msg, err := h.service.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, msg)
}

func (h *Handler) Delete(c *gin.Context) {
	msg, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Message deleted", msg)
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}
