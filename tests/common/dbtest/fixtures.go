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

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, name, email string) uuid.UUID {
	t.Helper()

	var userID uuid.UUID
	err := db.QueryRow(context.Background(),
		`INSERT INTO users (name, email) VALUES ($1, $2)
		 ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id`, name, email).Scan(&userID)
	require.NoError(t, err)

	return userID
}

type LinkFixture struct {
	Slug              string
	Name              string
	DurationMinutes   int
	BufferMinutes     int
	Timezone          string
	MaxFutureDays     int
	MaxBookingsPerDay *int
	Status            string
	WorkflowID        *uuid.UUID
	CreatorID         uuid.UUID
	OtherParticipants []uuid.UUID
}

func CreateTestLink(t *testing.T, db DBLike, f LinkFixture) uuid.UUID {
	t.Helper()

	if f.Name == "" {
		f.Name = "30 Minute Meeting"
	}
	if f.DurationMinutes == 0 {
		f.DurationMinutes = 30
	}
	if f.Timezone == "" {
		f.Timezone = "UTC"
	}
	if f.MaxFutureDays == 0 {
		f.MaxFutureDays = 60
	}
	if f.Status == "" {
		f.Status = "active"
	}

	ctx := context.Background()
	var linkID uuid.UUID
	err := db.QueryRow(ctx,
		`INSERT INTO schedule_links
		   (slug, name, duration_minutes, buffer_minutes, timezone, max_future_days, max_bookings_per_day, status, workflow_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		f.Slug, f.Name, f.DurationMinutes, f.BufferMinutes, f.Timezone, f.MaxFutureDays, f.MaxBookingsPerDay, f.Status, f.WorkflowID,
	).Scan(&linkID)
	require.NoError(t, err)

	members := append([]uuid.UUID{f.CreatorID}, f.OtherParticipants...)
	for i, userID := range members {
		_, err := db.Exec(ctx,
			"INSERT INTO schedule_link_members (link_id, user_id, is_creator, position) VALUES ($1, $2, $3, $4)",
			linkID, userID, i == 0, i)
		require.NoError(t, err)
	}

	return linkID
}

// adds a window on the given weekday (Monday=0) for one participant
func CreateTestWindow(t *testing.T, db DBLike, linkID, userID uuid.UUID, weekday, startMinute, endMinute int) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO availability_windows (link_id, user_id, day_of_week, start_minute, end_minute) VALUES ($1, $2, $3, $4, $5)",
		linkID, userID, weekday, startMinute, endMinute)
	require.NoError(t, err)
}

// adds the same window on every weekday
func CreateTestWindowsAllWeek(t *testing.T, db DBLike, linkID, userID uuid.UUID, startMinute, endMinute int) {
	t.Helper()

	for weekday := range 7 {
		CreateTestWindow(t, db, linkID, userID, weekday, startMinute, endMinute)
	}
}

func CountRows(t *testing.T, db DBLike, query string, args ...any) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
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
		    AND tablename NOT IN ('schema_migrations')`)
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
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
