package api

import (
	"net/http"

	reqdto "flat-reservation/internal/handler/dto/request"
	resdto "flat-reservation/internal/handler/dto/response"
	"flat-reservation/internal/usecase/commands"
	"flat-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TenantHandler struct {
	cmds commands.TenantCommands
	q    queries.TenantQueries
}

func NewTenantHandler(cmds commands.TenantCommands, q queries.TenantQueries) *TenantHandler {
	return &TenantHandler{cmds: cmds, q: q}
}

// @Summary Create tenant
// @Tags tenants
// @Accept json
// @Produce json
// @Param request body reqdto.CreateTenantRequest true "Create tenant request"
// @Success 201 {object} resdto.TenantResponse
// @Failure 400 {object} httperr.Response
// @Router /api/tenants [post]
func (h *TenantHandler) Create(c *gin.Context) {
	var req reqdto.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	t, err := h.cmds.CreateTenant(c.Request.Context(), req.Email)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.Header("Location", "/api/tenants/"+t.ID().String())
	c.JSON(http.StatusCreated, resdto.FromTenant(t))
}

// @Summary Get tenant
// @Tags tenants
// @Produce json
// @Param id path string true "Tenant ID"
// @Success 200 {object} resdto.TenantResponse
// @Failure 404 {object} httperr.Response
// @Router /api/tenants/{id} [get]
func (h *TenantHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortWithBadID(c, err, "tenant")
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTenantView(view))
}
