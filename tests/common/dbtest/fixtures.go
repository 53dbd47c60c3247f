//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	sqlc "github.com/Fabri-com/esteticas/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Fixtures take sqlc.DBTX so they run against the pool or inside a test transaction.

// TestUserPassword is the plain password behind every fixture user's hash.
const TestUserPassword = "password123"

const testUserPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db sqlc.DBTX, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testUserPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

func DeactivateUser(t *testing.T, db sqlc.DBTX, email string) {
	t.Helper()
	_, err := db.Exec(context.Background(), "UPDATE users SET is_active = false WHERE email = $1", email)
	require.NoError(t, err)
}

// Window is a fixture time window; Start and End use "HH:MM".
type Window struct {
	Weekday time.Weekday
	Start   string
	End     string
}

// EveryDay opens the same window on all seven weekdays.
func EveryDay(start, end string) []Window {
	out := make([]Window, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		out = append(out, Window{Weekday: d, Start: start, End: end})
	}
	return out
}

func CreateTestService(t *testing.T, db sqlc.DBTX, name string, durationMinutes, intervalMinutes int, windows []Window) uuid.UUID {
	t.Helper()

	serviceID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO services (id, name, duration_minutes, slot_interval_minutes, price_cents) VALUES ($1, $2, $3, $4, 0)",
		serviceID, name, durationMinutes, intervalMinutes)
	require.NoError(t, err)

	for _, w := range windows {
		_, err := db.Exec(ctx,
			"INSERT INTO service_time_windows (service_id, weekday, start_time, end_time) VALUES ($1, $2, $3::time, $4::time)",
			serviceID, int(w.Weekday), w.Start, w.End)
		require.NoError(t, err)
	}

	return serviceID
}

func DeactivateService(t *testing.T, db sqlc.DBTX, serviceID uuid.UUID) {
	t.Helper()
	_, err := db.Exec(context.Background(), "UPDATE services SET is_active = false WHERE id = $1", serviceID)
	require.NoError(t, err)
}

// ExpirePendingHolds moves every pending hold's deadline into the past.
func ExpirePendingHolds(t *testing.T, db sqlc.DBTX) {
	t.Helper()
	_, err := db.Exec(context.Background(),
		"UPDATE appointments SET expires_at = now() - interval '1 minute' WHERE status = 'pending_confirmation'")
	require.NoError(t, err)
}

func AppointmentStatus(t *testing.T, db sqlc.DBTX, appointmentID uuid.UUID) string {
	t.Helper()
	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM appointments WHERE id = $1", appointmentID).Scan(&status)
	require.NoError(t, err)
	return status
}

func CountQueuedJobs(t *testing.T, db sqlc.DBTX, kind string) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM notification_jobs WHERE kind = $1 AND status = 'queued'", kind).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
