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

type FlatHandler struct {
	cmds         commands.FlatCommands
	q            queries.FlatQueries
	reservations queries.ReservationQueries
}

func NewFlatHandler(cmds commands.FlatCommands, q queries.FlatQueries, reservations queries.ReservationQueries) *FlatHandler {
	return &FlatHandler{cmds: cmds, q: q, reservations: reservations}
}

// @Summary Create flat
// @Description Create a flat and generate FREE slots for the upcoming week
// @Tags flats
// @Accept json
// @Produce json
// @Param request body reqdto.CreateFlatRequest true "Create flat request"
// @Success 201 {object} resdto.FlatResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/flats [post]
func (h *FlatHandler) Create(c *gin.Context) {
	var req reqdto.CreateFlatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	f, err := h.cmds.CreateFlat(c.Request.Context(), req.Address, req.TenantID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.Header("Location", "/api/flats/"+f.ID().String())
	c.JSON(http.StatusCreated, resdto.FromFlat(f))
}

// @Summary Get flat
// @Tags flats
// @Produce json
// @Param id path string true "Flat ID"
// @Success 200 {object} resdto.FlatResponse
// @Failure 404 {object} httperr.Response
// @Router /api/flats/{id} [get]
func (h *FlatHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortWithBadID(c, err, "flat")
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFlatView(view))
}

// @Summary List flat reservations
// @Description Slots of the flat in no particular order
// @Tags flats
// @Produce json
// @Param id path string true "Flat ID"
// @Success 200 {array} resdto.ReservationResponse
// @Router /api/flats/{id}/reservations [get]
func (h *FlatHandler) ListReservations(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortWithBadID(c, err, "flat")
		return
	}

	views, err := h.reservations.FindByFlat(c.Request.Context(), id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}
