//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/Fabri-com/esteticas/internal/handler/api"
	resdto "github.com/Fabri-com/esteticas/internal/handler/dto/response"
	"github.com/Fabri-com/esteticas/internal/pkg/errs"
	"github.com/Fabri-com/esteticas/tests/common/builder"
	"github.com/Fabri-com/esteticas/tests/common/httptest"
	queriesmock "github.com/Fabri-com/esteticas/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CustomerHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockCustomerQueries
}

func (s *CustomerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockCustomerQueries(s.mockCtrl)
	s.router.GET("/customers", api.NewCustomerHandler(s.mockQueries).Lookup)
}

func (s *CustomerHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCustomerHandlerSuite(t *testing.T) {
	suite.Run(t, new(CustomerHandlerTestSuite))
}

func (s *CustomerHandlerTestSuite) TestLookup() {
	s.Run("success: known phone returns the customer", func() {
		view := builder.NewCustomerBuilder().BuildReadModel()
		s.mockQueries.EXPECT().FindByPhone(gomock.Any(), "011 2233-4455").Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers?phone=011%202233-4455", nil, "")

		var response resdto.CustomerResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(view.Phone, response.Phone)
		s.Equal(view.FullName, response.FullName)
	})

	s.Run("success: unknown phone returns null", func() {
		s.mockQueries.EXPECT().FindByPhone(gomock.Any(), "1199998888").Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers?phone=1199998888", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.Equal("null", rec.Body.String())
	})

	s.Run("error: missing phone is 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers", nil, "")
		httptest.AssertFieldError(s.T(), rec, "phone")
	})

	s.Run("error: unnormalizable phone is 400", func() {
		s.mockQueries.EXPECT().FindByPhone(gomock.Any(), "abc").Return(nil, errs.NewValidationError("phone", "must contain 8 to 15 digits"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers?phone=abc", nil, "")
		httptest.AssertFieldError(s.T(), rec, "phone")
	})

	s.Run("error: storage down is 503", func() {
		s.mockQueries.EXPECT().FindByPhone(gomock.Any(), "1122334455").Return(nil, errs.NewTransientStorageError("find customer", errors.New("eof")))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers?phone=1122334455", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "temporarily unavailable")
	})
}
