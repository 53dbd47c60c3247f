//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"github.com/Fabri-com/esteticas/internal/domain/user"
	"github.com/Fabri-com/esteticas/internal/pkg/clock"
	"github.com/Fabri-com/esteticas/internal/pkg/config"
	"github.com/Fabri-com/esteticas/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return h.sign(t, clock.NewRealClock(), userID, role)
}

// CreateExpiredToken signs a token whose lifetime ended before now.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	duration := h.duration(t)
	past := clock.NewMockClock(time.Now().Add(-2 * duration))
	return h.sign(t, past, userID, role)
}

// CreateForeignToken signs with a different secret.
func (h *JWTHelper) CreateForeignToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret+"-other", h.duration(t), clock.NewRealClock()).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) sign(t *testing.T, clk clock.Clock, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, h.duration(t), clk).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) duration(t *testing.T) time.Duration {
	t.Helper()
	d, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	return d
}
