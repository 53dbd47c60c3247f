package api

import (
	"net/http"

	reqdto "github.com/Fabri-com/esteticas/internal/handler/dto/request"
	resdto "github.com/Fabri-com/esteticas/internal/handler/dto/response"
	"github.com/Fabri-com/esteticas/internal/handler/httperr"
	"github.com/Fabri-com/esteticas/internal/usecase/commands"
	"github.com/Fabri-com/esteticas/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	appointments queries.AppointmentQueries
	status       commands.AppointmentCommands
	expiry       commands.ExpiryCommands
}

func NewAdminHandler(appointments queries.AppointmentQueries, status commands.AppointmentCommands, expiry commands.ExpiryCommands) *AdminHandler {
	return &AdminHandler{appointments: appointments, status: status, expiry: expiry}
}

// @Summary Daily agenda
// @Description Every appointment starting on the date, with customer and service
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AgendaResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /admin/agenda [get]
func (h *AdminHandler) Agenda(c *gin.Context) {
	view, err := h.appointments.Agenda(c.Request.Context(), c.Query("date"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	res, err := resdto.FromAgendaView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Update appointment status
// @Description Moves an appointment along its lifecycle; same status is a no-op
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.UpdateAppointmentStatusRequest true "New status"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/appointments/{id}/status [patch]
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, err)
		return
	}

	if _, err := h.status.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		httperr.FromError(c, err)
		return
	}

	view, err := h.appointments.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	res, err := resdto.FromAppointmentView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Cancel expired holds
// @Description Cancels every pending appointment whose hold has run out
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SweepResponse
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /admin/appointments/sweep [post]
func (h *AdminHandler) Sweep(c *gin.Context) {
	n, err := h.expiry.SweepExpired(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.SweepResponse{Cancelled: n})
}
