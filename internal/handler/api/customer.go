package api

import (
	"errors"
	"net/http"

	resdto "github.com/Fabri-com/esteticas/internal/handler/dto/response"
	"github.com/Fabri-com/esteticas/internal/handler/httperr"
	"github.com/Fabri-com/esteticas/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errPhoneRequired = errors.New("phone query parameter is required")

type CustomerHandler struct {
	customers queries.CustomerQueries
}

func NewCustomerHandler(customers queries.CustomerQueries) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// @Summary Look up customer by phone
// @Description Prefill data for the booking form; null when the phone never booked
// @Tags customers
// @Produce json
// @Param phone query string true "Phone in any common Argentine format"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /customers [get]
func (h *CustomerHandler) Lookup(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errPhoneRequired, "Invalid request", httperr.FieldDetail{Field: "phone", Reason: "is required"})
		return
	}

	view, err := h.customers.FindByPhone(c.Request.Context(), phone)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	res, err := resdto.FromCustomerView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
