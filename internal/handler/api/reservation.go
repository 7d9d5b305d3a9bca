package api

import (
	"context"
	"net/http"

	reqdto "flat-reservation/internal/handler/dto/request"
	resdto "flat-reservation/internal/handler/dto/response"
	"flat-reservation/internal/usecase/commands"
	"flat-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RetryAfterSeconds is advertised on busy responses.
const RetryAfterSeconds = "1"

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

type reservationAction func(ctx context.Context, reservationID, tenantID uuid.UUID) (commands.ActionResult, error)

// @Summary Reserve a slot
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.ModifyReservationRequest true "Reservation and acting tenant"
// @Success 200 {object} resdto.ActionResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} resdto.ActionResponse
// @Router /api/reservations/reserve [put]
func (h *ReservationHandler) Reserve(c *gin.Context) {
	h.handle(c, h.cmds.Reserve)
}

// @Summary Approve a reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.ModifyReservationRequest true "Reservation and acting tenant"
// @Success 200 {object} resdto.ActionResponse
// @Failure 409 {object} resdto.ActionResponse
// @Router /api/reservations/approve [put]
func (h *ReservationHandler) Approve(c *gin.Context) {
	h.handle(c, h.cmds.Approve)
}

// @Summary Reject a reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.ModifyReservationRequest true "Reservation and acting tenant"
// @Success 200 {object} resdto.ActionResponse
// @Failure 409 {object} resdto.ActionResponse
// @Router /api/reservations/reject [put]
func (h *ReservationHandler) Reject(c *gin.Context) {
	h.handle(c, h.cmds.Reject)
}

// @Summary Cancel a reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.ModifyReservationRequest true "Reservation and acting tenant"
// @Success 200 {object} resdto.ActionResponse
// @Failure 409 {object} resdto.ActionResponse
// @Router /api/reservations/cancel [put]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	h.handle(c, h.cmds.Cancel)
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortWithBadID(c, err, "reservation")
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

func (h *ReservationHandler) handle(c *gin.Context, action reservationAction) {
	var req reqdto.ModifyReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	result, err := action(c.Request.Context(), req.ReservationID, req.TenantID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	if !result.Applied {
		c.Header("Retry-After", RetryAfterSeconds)
		c.JSON(http.StatusConflict, resdto.FromActionResult(result))
		return
	}
	c.JSON(http.StatusOK, resdto.FromActionResult(result))
}
