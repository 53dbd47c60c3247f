//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"github.com/Fabri-com/esteticas/internal/handler/dto/request"
	"github.com/Fabri-com/esteticas/internal/handler/dto/response"
	sqlc "github.com/Fabri-com/esteticas/internal/infra/sqlc/generated"
	"github.com/Fabri-com/esteticas/tests/common/dbtest"
	"github.com/Fabri-com/esteticas/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const loginPath = "/api/admin/login"

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, loginPath,
		request.LoginRequest{Email: email, Password: password}, "")

	var resp response.LoginResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
	require.NotEmpty(t, resp.AccessToken, "login returned an empty access token")
	require.Equal(t, "Bearer", resp.TokenType)

	return resp.AccessToken
}

func CreateAndLogin(t *testing.T, db sqlc.DBTX, router *gin.Engine, email, role string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, role)
	return LoginUser(t, router, email, dbtest.TestUserPassword)
}
