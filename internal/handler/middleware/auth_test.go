//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/Fabri-com/esteticas/internal/domain/user"
	"github.com/Fabri-com/esteticas/internal/handler/middleware"
	"github.com/Fabri-com/esteticas/tests/common/httptest"
	queriesmock "github.com/Fabri-com/esteticas/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockValidator *queriesmock.MockTokenValidator
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockValidator = queriesmock.NewMockTokenValidator(s.mockCtrl)
	m := middleware.NewAuthMiddleware(s.mockValidator)

	s.router.GET("/staff", m.RequireAuth(), m.RequireRoleAtLeast(user.RoleStaff), func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id.String(), "role": role.String()})
	})
	s.router.GET("/admin", m.RequireAuth(), m.RequireRoleAtLeast(user.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	s.Run("success: valid bearer token reaches the handler", func() {
		userID := uuid.New()
		s.mockValidator.EXPECT().ValidateToken("good-token").Return(userID, user.RoleStaff, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/staff", nil, "good-token")

		var response map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(userID.String(), response["user_id"])
		s.Equal("staff", response["role"])
	})

	s.Run("error: missing token is 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/staff", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: rejected token is 401", func() {
		s.mockValidator.EXPECT().ValidateToken("expired").Return(uuid.Nil, user.Role(""), errors.New("token is expired"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/staff", nil, "expired")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireRoleAtLeast() {
	s.Run("staff cannot reach admin routes", func() {
		s.mockValidator.EXPECT().ValidateToken("staff-token").Return(uuid.New(), user.RoleStaff, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin", nil, "staff-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("admin reaches staff routes", func() {
		s.mockValidator.EXPECT().ValidateToken("admin-token").Return(uuid.New(), user.RoleAdmin, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/staff", nil, "admin-token")
		s.Equal(http.StatusOK, rec.Code)
	})
}
