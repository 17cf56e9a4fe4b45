package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/fieldstonehq/fieldstone/internal/domain"
	"github.com/fieldstonehq/fieldstone/internal/model"
	"github.com/fieldstonehq/fieldstone/internal/scope"
	"github.com/fieldstonehq/fieldstone/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfficeCreateRequiresOwnOwner(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	alice := e.seedUser(t, "alice@example.com")
	bob := e.seedUser(t, "bob@example.com")
	bobOwner := e.seedOwner(t, bob, "Bob Holdings")

	input := service.OfficeInput{
		Name: "Main Street", Number: 7,
		Address: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62701",
	}

	_, err := e.offices.Create(ctx, scope.AuthContext{UserID: alice.ID}, bobOwner.ID, input)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	aliceOwner := e.seedOwner(t, alice, "Alice Holdings")
	office, err := e.offices.Create(ctx, scope.AuthContext{UserID: alice.ID}, aliceOwner.ID, input)
	require.NoError(t, err)
	require.NotNil(t, office.PrimaryOwnerID)
	assert.Equal(t, aliceOwner.ID, *office.PrimaryOwnerID)
}

func TestOfficeSetOwnersFiltersForeignOwners(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	alice := e.seedUser(t, "alice@example.com")
	bob := e.seedUser(t, "bob@example.com")
	first := e.seedOwner(t, alice, "First")
	second := e.seedOwner(t, alice, "Second")
	foreign := e.seedOwner(t, bob, "Foreign")
	office := e.seedOffice(t, first, "Main Street")

	ac := scope.AuthContext{UserID: alice.ID}
	got, err := e.offices.SetOwners(ctx, ac, office.ID, []uuid.UUID{second.ID, foreign.ID, uuid.New()}, &foreign.ID)
	require.NoError(t, err)

	// Foreign and unknown owners are silently dropped; the requested
	// primary was filtered out so the first surviving member takes the slot.
	require.Len(t, got.Owners, 1)
	assert.Equal(t, second.ID, got.Owners[0].ID)
	require.NotNil(t, got.PrimaryOwnerID)
	assert.Equal(t, second.ID, *got.PrimaryOwnerID)
}

func TestOfficeDashboard(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	alice := e.seedUser(t, "alice@example.com")
	owner := e.seedOwner(t, alice, "Alice Holdings")
	office := e.seedOffice(t, owner, "Main Street")

	ac := scope.AuthContext{UserID: alice.ID}
	_, err := e.employees.Create(ctx, ac, office.ID, service.EmployeeInput{Name: "Eve", Position: "Manager"})
	require.NoError(t, err)

	for _, spec := range []struct {
		vibe     int
		callType model.CallType
	}{
		{4, model.CallPhone},
		{8, model.CallFOV},
	} {
		report := &model.Report{
			Content:        "call",
			Vibe:           spec.vibe,
			CallType:       spec.callType,
			OfficeID:       &office.ID,
			PrimaryOwnerID: owner.ID,
			AuthorID:       alice.ID,
		}
		require.NoError(t, e.reportRepo.Commit(ctx, report, nil, time.Now().UTC()))
	}

	got, err := e.offices.Dashboard(ctx, ac, office.ID)
	require.NoError(t, err)
	assert.Equal(t, office.ID, got.Office.ID)
	require.Len(t, got.Employees, 1)
	require.Len(t, got.Reports, 2)
	require.NotNil(t, got.AverageVibe)
	assert.InDelta(t, 6.0, *got.AverageVibe, 0.001)
	assert.EqualValues(t, 1, got.FieldVisits)
}

func TestEmployeeDefaults(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	alice := e.seedUser(t, "alice@example.com")
	owner := e.seedOwner(t, alice, "Alice Holdings")
	office := e.seedOffice(t, owner, "Main Street")
	ac := scope.AuthContext{UserID: alice.ID}

	employee, err := e.employees.Create(ctx, ac, office.ID, service.EmployeeInput{
		Name: "Eve", Position: "Manager",
	})
	require.NoError(t, err)
	assert.Equal(t, model.DefaultPotential, employee.Potential)

	_, err = e.employees.Create(ctx, ac, office.ID, service.EmployeeInput{
		Name: "Mallory", Position: "Clerk", Potential: intp(11),
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "potential")

	// An explicit zero rating is out of range, not a request for the default.
	_, err = e.employees.Create(ctx, ac, office.ID, service.EmployeeInput{
		Name: "Trent", Position: "Clerk", Potential: intp(0),
	})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "potential")
}
