package api

import (
	"errors"
	"net/http"

	reqdto "slotbook/internal/handler/dto/request"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/handler/httperr"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SlotHandler struct {
	cmds commands.SlotCommands
	q    queries.SlotQueries
}

func NewSlotHandler(cmds commands.SlotCommands, q queries.SlotQueries) *SlotHandler {
	return &SlotHandler{cmds: cmds, q: q}
}

// @Summary List slots
// @Description List all slots with remaining capacity, ordered by start time
// @Tags slots
// @Produce json
// @Success 200 {array} resdto.SlotResponse
// @Failure 500 {object} map[string]string
// @Router /slots [get]
func (h *SlotHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list slots", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotViews(views))
}

// @Summary Create slot
// @Description Create a new bookable time slot
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSlotRequest true "Create slot request"
// @Success 201 {object} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/slots [post]
func (h *SlotHandler) Create(c *gin.Context) {
	var req reqdto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	created, err := h.cmds.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidDuration):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Duration must be in 30-minute steps between 30 minutes and 10 hours", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid slot parameters", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create slot", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSlotDomain(created))
}

// @Summary Update slot
// @Description Update capacity, duration, meeting URL or status of a slot
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Param request body reqdto.UpdateSlotRequest true "Update slot request"
// @Success 200 {object} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/slots/{id} [patch]
func (h *SlotHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot ID format", nil)
		return
	}
	var req reqdto.UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	updated, err := h.cmds.Update(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrSlotNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Slot not found", nil)
		case errors.Is(err, errs.ErrCapacityBelowBooked):
			httperr.AbortWithError(c, http.StatusConflict, err, "Capacity cannot drop below the current booking count", nil)
		case errors.Is(err, errs.ErrInvalidDuration):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Duration must be in 30-minute steps between 30 minutes and 10 hours", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid slot parameters", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to update slot", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotDomain(updated))
}

// @Summary Delete slot
// @Description Delete a slot that has no bookings
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/slots/{id} [delete]
func (h *SlotHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot ID format", nil)
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, errs.ErrSlotNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Slot not found", nil)
		case errors.Is(err, errs.ErrSlotHasBookings):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot still has bookings; cancel them first", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to delete slot", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}
