package api

import (
	"errors"
	"fmt"
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

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Reserve a seat
// @Description Reserve a seat on an open slot; one booking per email per slot
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	b, err := h.cmds.Reserve(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrSlotNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Slot not found", nil)
		case errors.Is(err, errs.ErrSlotFull):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot is fully booked", nil)
		case errors.Is(err, errs.ErrSlotClosed):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot is closed for booking", nil)
		case errors.Is(err, errs.ErrDuplicateBooking):
			httperr.AbortWithError(c, http.StatusConflict, err, "This email already has a booking for the slot", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid booking parameters", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to reserve", gin.H{"retry_suggested": true})
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingDomain(b))
}

// @Summary Get booking
// @Description Get a booking with its slot details
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Add booking to calendar
// @Description Attempt calendar sync for a booking; no-op when already synced
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.CalendarSyncResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/calendar [post]
func (h *BookingHandler) AddToCalendar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	result, err := h.cmds.AddToCalendar(c.Request.Context(), id)
	h.respondSync(c, result, err)
}

// @Summary List bookings grouped by slot
// @Description List every slot that has bookings, with its bookings attached
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SlotBookingsResponse
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/bookings [get]
func (h *BookingHandler) ListGroupedBySlot(c *gin.Context) {
	views, err := h.q.ListGroupedBySlot(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list bookings", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotBookingsViews(views))
}

// @Summary Cancel booking
// @Description Cancel a booking and free its seat
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/bookings/{id} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	if err := h.cmds.Cancel(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to cancel booking", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Resend calendar invite
// @Description Force a new calendar sync attempt regardless of current status
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.CalendarSyncResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/bookings/{id}/calendar [post]
func (h *BookingHandler) ResyncCalendar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	result, err := h.cmds.ResyncCalendar(c.Request.Context(), id)
	h.respondSync(c, result, err)
}

// @Summary Export bookings as CSV
// @Description Download bookings as CSV, optionally filtered to one slot
// @Tags admin
// @Produce text/csv
// @Security BearerAuth
// @Param slot_id query string false "Slot ID filter"
// @Success 200 {string} string "CSV content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/bookings/export [get]
func (h *BookingHandler) ExportCSV(c *gin.Context) {
	var slotID *uuid.UUID
	if v := c.Query("slot_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot ID format", nil)
			return
		}
		slotID = &id
	}

	file, err := h.q.ExportCSV(c.Request.Context(), slotID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to export bookings", nil)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", file.Content)
}

func (h *BookingHandler) respondSync(c *gin.Context, result *commands.SyncResult, err error) {
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, errs.ErrSlotNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Slot not found", nil)
		case errors.Is(err, errs.ErrCalendarDisabled):
			httperr.AbortWithError(c, http.StatusConflict, err, "Calendar integration is not configured", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Calendar sync failed", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromSyncResult(result))
}
