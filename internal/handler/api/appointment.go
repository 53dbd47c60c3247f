package api

import (
	"net/http"
	"time"

	reqdto "github.com/Fabri-com/esteticas/internal/handler/dto/request"
	resdto "github.com/Fabri-com/esteticas/internal/handler/dto/response"
	"github.com/Fabri-com/esteticas/internal/handler/httperr"
	"github.com/Fabri-com/esteticas/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	booking commands.BookingCommands
	loc     *time.Location
}

func NewAppointmentHandler(booking commands.BookingCommands, loc *time.Location) *AppointmentHandler {
	return &AppointmentHandler{booking: booking, loc: loc}
}

// @Summary Reserve appointment
// @Description Places a pending hold and returns the WhatsApp confirmation to send
// @Tags appointments
// @Accept json
// @Produce json
// @Param request body reqdto.CreateAppointmentRequest true "Reservation request"
// @Success 201 {object} resdto.CreateAppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /appointments [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req reqdto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, err)
		return
	}

	serviceID, err := req.ParsedServiceID()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", httperr.FieldDetail{Field: "service_id", Reason: "must be a UUID"})
		return
	}
	startAt, err := reqdto.ParseStartAt(req.StartAt, h.loc)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", httperr.FieldDetail{Field: "start_at", Reason: "must be RFC 3339 or YYYY-MM-DDTHH:MM"})
		return
	}

	result, err := h.booking.Reserve(c.Request.Context(), commands.ReserveInput{
		ServiceID: serviceID,
		StartAt:   startAt,
		FullName:  req.FullName,
		Phone:     req.Phone,
		Email:     req.OptionalEmail(),
		Notes:     req.Notes,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.Header("Location", "/api/appointments/"+result.AppointmentID.String())
	c.JSON(http.StatusCreated, resdto.FromReserveResult(result))
}
