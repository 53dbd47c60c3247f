//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"github.com/Fabri-com/esteticas/internal/domain/user"
	"github.com/Fabri-com/esteticas/internal/handler/dto/request"
	"github.com/Fabri-com/esteticas/internal/handler/dto/response"
	"github.com/Fabri-com/esteticas/tests/common/authtest"
	"github.com/Fabri-com/esteticas/tests/common/dbtest"
	"github.com/Fabri-com/esteticas/tests/common/httptest"
	"github.com/Fabri-com/esteticas/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL  = "/api/admin/login"
	meURL     = "/api/admin/me"
	agendaURL = "/api/admin/agenda"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	t := s.T()
	dbtest.CreateTestUser(t, s.DB, "admin@example.com", string(user.RoleAdmin))
	dbtest.CreateTestUser(t, s.DB, "staff@example.com", string(user.RoleStaff))
	dbtest.CreateTestUser(t, s.DB, "inactive@example.com", string(user.RoleAdmin))
	dbtest.DeactivateUser(t, s.DB, "inactive@example.com")
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{"valid admin", "admin@example.com", dbtest.TestUserPassword, http.StatusOK},
		{"valid staff", "staff@example.com", dbtest.TestUserPassword, http.StatusOK},
		{"unknown user", "nobody@example.com", dbtest.TestUserPassword, http.StatusUnauthorized},
		{"wrong password", "admin@example.com", "wrongpassword", http.StatusUnauthorized},
		{"inactive user", "inactive@example.com", dbtest.TestUserPassword, http.StatusForbidden},
		{"empty email", "", dbtest.TestUserPassword, http.StatusBadRequest},
		{"short password", "admin@example.com", "short", http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus != http.StatusOK {
				return
			}
			var res response.LoginResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
			require.NotEmpty(t, res.AccessToken)
			require.Equal(t, "Bearer", res.TokenType)
			require.Positive(t, res.ExpiresIn)

			var lastLoginSet bool
			err := s.DB.QueryRow(t.Context(),
				"SELECT last_login_at IS NOT NULL FROM users WHERE email = $1", tt.email).Scan(&lastLoginSet)
			require.NoError(t, err)
			require.True(t, lastLoginSet, "last_login_at not updated")
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("token from login", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "staff@example.com", dbtest.TestUserPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)

		var me response.MeResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &me)
		require.Equal(t, "staff@example.com", me.Email)
		require.Equal(t, string(user.RoleStaff), me.Role)
	})

	s.Run("missing token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})

	s.Run("expired token", func() {
		t := s.T()
		id := dbtest.CreateTestUser(t, s.DB, "admin@example.com", string(user.RoleAdmin))
		token := s.jwt.CreateExpiredToken(t, id, user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("token signed with another secret", func() {
		t := s.T()
		id := dbtest.CreateTestUser(t, s.DB, "admin@example.com", string(user.RoleAdmin))
		token := s.jwt.CreateForeignToken(t, id, user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("user deleted after token issued", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, uuid.New(), user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("user deactivated after login", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "admin@example.com", dbtest.TestUserPassword)
		dbtest.DeactivateUser(t, s.DB, "admin@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

func (s *authSuite) TestAdminRoutesRequireToken() {
	s.Run("agenda without token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, agendaURL, nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})

	s.Run("agenda with staff token", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "staff2@example.com", string(user.RoleStaff))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, agendaURL+"?date=2030-01-07", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})
}
