package content

import (
	"errors"
	"net/http"
	"strconv"

	"freightsite/internal/pkg/response"
	"freightsite/internal/pkg/validator"
	"freightsite/internal/repository"

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

// RegisterAdminRoutes wires the CRUD surface; the group is expected to sit
// behind the JWT + admin middleware.
func (h *Handler) RegisterAdminRoutes(g *gin.RouterGroup) {
	services := g.Group("/services")
	{
		services.GET("", h.ListServices)
		services.POST("", h.CreateService)
		services.GET("/:id", h.GetService)
		services.PUT("/:id", h.UpdateService)
		services.DELETE("/:id", h.DeleteService)
	}

	certificates := g.Group("/certificates")
	{
		certificates.GET("", h.ListCertificates)
		certificates.POST("", h.CreateCertificate)
		certificates.GET("/:id", h.GetCertificate)
		certificates.PUT("/:id", h.UpdateCertificate)
		certificates.DELETE("/:id", h.DeleteCertificate)
	}

	team := g.Group("/team")
	{
		team.GET("", h.ListTeam)
		team.POST("", h.CreateTeamMember)
		team.GET("/:id", h.GetTeamMember)
		team.PUT("/:id", h.UpdateTeamMember)
		team.DELETE("/:id", h.DeleteTeamMember)
	}
}

// RegisterPublicRoutes exposes the active-only listings the marketing site
// reads. No auth.
func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	public := v1.Group("/public")
	{
		public.GET("/services", h.ListPublicServices)
		public.GET("/certificates", h.ListPublicCertificates)
		public.GET("/team", h.ListPublicTeam)
	}
}

// databaseReady answers the connectivity pre-check; on failure it has
// already written the 503.
func (h *Handler) databaseReady(c *gin.Context) bool {
	if h.checkDB != nil && !h.checkDB(c.Request.Context()) {
		response.Error(c, http.StatusServiceUnavailable, "DATABASE_UNAVAILABLE", "Database is not reachable")
		return false
	}
	return true
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid id")
		return 0, false
	}
	return id, true
}

// bindError reports a malformed request body; tag failures come back as a
// field map so the admin UI can highlight inputs.
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
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Record not found")
	case errors.Is(err, ErrValidation), errors.Is(err, ErrBadDate):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case repository.IsUniqueViolation(err):
		response.Error(c, http.StatusConflict, "CONFLICT", "Record already exists")
	default:
		response.ServerError(c, "DATABASE_ERROR", "Operation failed")
	}
}

/* ---------- SERVICE HANDLERS ---------- */

func (h *Handler) ListServices(c *gin.Context) {
	if !h.databaseReady(c) {
		return
	}
	services, err := h.service.ListServices(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, services)
}

func (h *Handler) ListPublicServices(c *gin.Context) {
	if !h.databaseReady(c) {
		return
	}
	services, err := h.service.ListActiveServices(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, services)
}

func (h *Handler) GetService(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	svc, err := h.service.GetService(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, svc)
}

func (h *Handler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	svc, err := h.service.CreateService(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, svc)
}

func (h *Handler) UpdateService(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	svc, err := h.service.UpdateService(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, svc)
}

func (h *Handler) DeleteService(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	svc, err := h.service.DeleteService(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Service deleted", svc)
}

/* ---------- CERTIFICATE HANDLERS ---------- */

func (h *Handler) ListCertificates(c *gin.Context) {
	if !h.databaseReady(c) {
		return
	}
	certs, err := h.service.ListCertificates(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, certs)
}

func (h *Handler) ListPublicCertificates(c *gin.Context) {
	if !h.databaseReady(c) {
		return
	}
	certs, err := h.service.ListActiveCertificates(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, certs)
}

func (h *Handler) GetCertificate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	cert, err := h.service.GetCertificate(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cert)
}

func (h *Handler) CreateCertificate(c *gin.Context) {
	var req CreateCertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	cert, err := h.service.CreateCertificate(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, cert)
}

func (h *Handler) UpdateCertificate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateCertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	cert, err := h.service.UpdateCertificate(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cert)
}

func (h *Handler) DeleteCertificate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	cert, err := h.service.DeleteCertificate(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Certificate deleted", cert)
}

/* ---------- TEAM HANDLERS ---------- */

func (h *Handler) ListTeam(c *gin.Context) {
	if !h.databaseReady(c) {
		return
	}
	members, err := h.service.ListTeam(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, members)
}

func (h *Handler) ListPublicTeam(c *gin.Context) {
	if !h.databaseReady(c) {
		return
	}
	members, err := h.service.ListActiveTeam(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, members)
}

func (h *Handler) GetTeamMember(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	member, err := h.service.GetTeamMember(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, member)
}

func (h *Handler) CreateTeamMember(c *gin.Context) {
	var req CreateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	member, err := h.service.CreateTeamMember(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, member)
}

func (h *Handler) UpdateTeamMember(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	member, err := h.service.UpdateTeamMember(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, member)
}

func (h *Handler) DeleteTeamMember(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	member, err := h.service.DeleteTeamMember(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Team member deleted", member)
}
