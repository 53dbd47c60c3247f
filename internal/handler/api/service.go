package api

import (
	"net/http"

	resdto "github.com/Fabri-com/esteticas/internal/handler/dto/response"
	"github.com/Fabri-com/esteticas/internal/handler/httperr"
	"github.com/Fabri-com/esteticas/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ServiceHandler struct {
	services     queries.ServiceQueries
	availability queries.AvailabilityQueries
}

func NewServiceHandler(services queries.ServiceQueries, availability queries.AvailabilityQueries) *ServiceHandler {
	return &ServiceHandler{services: services, availability: availability}
}

// @Summary List services
// @Description Active services ordered by name
// @Tags services
// @Produce json
// @Success 200 {array} resdto.ServiceResponse
// @Failure 503 {object} httperr.Response
// @Router /services [get]
func (h *ServiceHandler) List(c *gin.Context) {
	views, err := h.services.ListActive(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	res, err := resdto.FromServiceViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List available slots
// @Description Start times offered for a service on a date (business timezone)
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.SlotsResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /services/{id}/slots [get]
func (h *ServiceHandler) Slots(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.availability.ListSlots(c.Request.Context(), id, c.Query("date"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotsView(view))
}
