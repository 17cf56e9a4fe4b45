package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/fieldstonehq/fieldstone/internal/model"
	"github.com/fieldstonehq/fieldstone/internal/scope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The fake clock pins "now" to Wednesday 2026-03-18 15:00 UTC, so the ISO
// week runs Monday the 16th through Sunday the 22nd.
func TestActivitySummaryWindows(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	alice := e.seedUser(t, "alice@example.com")
	owner := e.seedOwner(t, alice, "Alice Holdings")

	at := func(y int, m time.Month, d, h int) time.Time {
		return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
	}
	e.seedReport(t, alice, owner, model.CallPhone, at(2026, 3, 18, 10)) // today
	e.seedReport(t, alice, owner, model.CallFOV, at(2026, 3, 16, 9))    // this ISO week
	e.seedReport(t, alice, owner, model.CallEmail, at(2026, 3, 11, 12)) // last ISO week
	e.seedReport(t, alice, owner, model.CallFOV, at(2026, 3, 2, 8))     // this month only
	e.seedReport(t, alice, owner, model.CallPhone, at(2026, 2, 20, 8))  // rolling 30 days
	e.seedReport(t, alice, owner, model.CallPhone, at(2025, 11, 1, 8))  // rolling year only

	got, err := e.activity.Summary(ctx, scope.AuthContext{UserID: alice.ID})
	require.NoError(t, err)

	assert.True(t, got.Date.Equal(at(2026, 3, 18, 0)))
	assert.Equal(t, 12, got.ThisWeek.Number)
	assert.Equal(t, 11, got.LastWeek.Number)

	assert.EqualValues(t, 1, got.Today.Total)
	assert.EqualValues(t, 1, got.Today.OwnerAttributed)
	assert.EqualValues(t, 0, got.Today.EmployeeAttributed)

	assert.EqualValues(t, 2, got.ThisWeek.Total)
	assert.EqualValues(t, 1, got.ThisWeek.FieldVisits)
	assert.EqualValues(t, 1, got.LastWeek.Total)

	assert.EqualValues(t, 4, got.ThisMonth.Total)
	assert.EqualValues(t, 2, got.ThisMonth.FieldVisits)

	// The rolling family counts back from the instant, not the calendar.
	assert.EqualValues(t, 2, got.RollingWeek.Total)
	assert.EqualValues(t, 5, got.RollingMonth.Total)
	assert.EqualValues(t, 5, got.RollingQuarter.Total)
	assert.EqualValues(t, 6, got.RollingYear.Total)

	require.Len(t, got.Owners, 1)
	require.Len(t, got.RecentReports, 5)
	assert.True(t, got.RecentReports[0].CreatedAt.After(got.RecentReports[1].CreatedAt))
}

func TestActivitySummaryEmptyScope(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	alice := e.seedUser(t, "alice@example.com")

	got, err := e.activity.Summary(ctx, scope.AuthContext{UserID: alice.ID})
	require.NoError(t, err)
	assert.Zero(t, got.Today.Total)
	assert.Zero(t, got.RollingYear.Total)
	assert.Empty(t, got.Owners)
	assert.Empty(t, got.RecentReports)
}

func TestActivityMatrix(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	alice := e.seedUser(t, "alice@example.com")
	bob := e.seedUser(t, "bob@example.com")
	first := e.seedOwner(t, alice, "First")
	second := e.seedOwner(t, alice, "Second")
	_ = e.seedOwner(t, alice, "Idle")
	bobOwner := e.seedOwner(t, bob, "Bob Holdings")

	day := func(d int) time.Time {
		return time.Date(2026, 3, d, 12, 0, 0, 0, time.UTC)
	}
	e.seedReport(t, alice, first, model.CallPhone, day(10))
	e.seedReport(t, alice, first, model.CallPhone, day(10))
	e.seedReport(t, alice, first, model.CallEmail, day(12))
	e.seedReport(t, alice, second, model.CallFOV, day(20))
	e.seedReport(t, alice, second, model.CallFOV, day(20))
	// Authored by someone else; never a cell in Alice's matrix.
	e.seedReport(t, bob, bobOwner, model.CallPhone, day(10))

	ac := scope.AuthContext{UserID: alice.ID}

	t.Run("no bounds hides the table but still totals everything", func(t *testing.T) {
		got, err := e.activity.Matrix(ctx, ac, nil, nil)
		require.NoError(t, err)
		assert.False(t, got.ShowTable)
		assert.EqualValues(t, 5, got.GrandTotal)
	})

	t.Run("full cross-tab with zero-filled rows", func(t *testing.T) {
		start := day(1)
		got, err := e.activity.Matrix(ctx, ac, &start, nil)
		require.NoError(t, err)
		assert.True(t, got.ShowTable)

		require.Len(t, got.Columns, 5)
		require.Len(t, got.Rows, 3)
		assert.Equal(t, "First", got.Rows[0].OwnerName)
		assert.Equal(t, "Second", got.Rows[1].OwnerName)
		assert.Equal(t, "Idle", got.Rows[2].OwnerName)

		assert.EqualValues(t, 2, got.Rows[0].Counts[model.CallPhone])
		assert.EqualValues(t, 1, got.Rows[0].Counts[model.CallEmail])
		assert.EqualValues(t, 3, got.Rows[0].Total)
		assert.EqualValues(t, 2, got.Rows[1].Counts[model.CallFOV])
		assert.EqualValues(t, 2, got.Rows[1].Total)

		// The idle owner keeps a fully zeroed row.
		assert.EqualValues(t, 0, got.Rows[2].Total)
		for _, callType := range model.CallTypes() {
			assert.EqualValues(t, 0, got.Rows[2].Counts[callType])
		}

		assert.EqualValues(t, 2, got.TotalsByType[model.CallPhone])
		assert.EqualValues(t, 1, got.TotalsByType[model.CallEmail])
		assert.EqualValues(t, 2, got.TotalsByType[model.CallFOV])
		assert.EqualValues(t, 5, got.GrandTotal)

		require.Len(t, got.FieldVisitReports, 2)
	})

	t.Run("end date is a whole inclusive day", func(t *testing.T) {
		start := day(10)
		end := day(12) // reports that day sit at noon, after the raw bound
		got, err := e.activity.Matrix(ctx, ac, &start, &end)
		require.NoError(t, err)
		assert.EqualValues(t, 3, got.GrandTotal)
		assert.EqualValues(t, 1, got.Rows[0].Counts[model.CallEmail])
	})
}
