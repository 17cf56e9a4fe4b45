package scope_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/fieldstonehq/fieldstone/internal/domain"
	"github.com/fieldstonehq/fieldstone/internal/model"
	"github.com/fieldstonehq/fieldstone/internal/repository"
	"github.com/fieldstonehq/fieldstone/internal/scope"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db      *gorm.DB
	svc     *scope.Service
	reports *repository.ReportRepository
	offices *repository.OfficeRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Owner{},
		&model.Office{},
		&model.Employee{},
		&model.Report{},
	))

	offices := repository.NewOfficeRepository(db)
	reports := repository.NewReportRepository(db)
	svc := scope.NewService(
		repository.NewOwnerRepository(db),
		offices,
		repository.NewEmployeeRepository(db),
		reports,
	)
	return &fixture{db: db, svc: svc, reports: reports, offices: offices}
}

type tenant struct {
	user   *model.User
	owner  *model.Owner
	office *model.Office
	report *model.Report
}

// seedTenant builds a user with one owner, one office, and one report.
func (f *fixture) seedTenant(t *testing.T, email string) *tenant {
	t.Helper()

	user := &model.User{Email: email, Name: "User", PasswordHash: "x"}
	require.NoError(t, f.db.Create(user).Error)

	owner := &model.Owner{UserID: user.ID, Name: "Owner of " + email}
	require.NoError(t, f.db.Create(owner).Error)

	office := &model.Office{
		Name: "Office of " + email, Number: 1,
		Address: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62701",
	}
	require.NoError(t, f.offices.Create(context.Background(), office, owner.ID))

	report := &model.Report{
		Content:        "call",
		Vibe:           5,
		CallType:       model.CallPhone,
		OfficeID:       &office.ID,
		PrimaryOwnerID: owner.ID,
		AuthorID:       user.ID,
	}
	require.NoError(t, f.reports.Commit(context.Background(), report, nil, time.Now().UTC()))

	return &tenant{user: user, owner: owner, office: office, report: report}
}

func TestScopeIsolation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	alice := f.seedTenant(t, "alice@example.com")
	bob := f.seedTenant(t, "bob@example.com")

	acAlice := scope.AuthContext{UserID: alice.user.ID}

	owners, err := f.svc.Owners(ctx, acAlice)
	require.NoError(t, err)
	require.Len(t, owners, 1)
	assert.Equal(t, alice.owner.ID, owners[0].ID)

	offices, err := f.svc.Offices(ctx, acAlice)
	require.NoError(t, err)
	require.Len(t, offices, 1)
	assert.Equal(t, alice.office.ID, offices[0].ID)

	reports, err := f.svc.Reports(ctx, acAlice, 0)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, alice.report.ID, reports[0].ID)

	t.Run("foreign entities are unauthorized, not invisible-by-accident", func(t *testing.T) {
		_, err := f.svc.AuthorizeOwner(ctx, acAlice, bob.owner.ID)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)

		_, err = f.svc.AuthorizeOffice(ctx, acAlice, bob.office.ID)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)

		_, err = f.svc.AuthorizeReport(ctx, acAlice, bob.report.ID)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestScopeEmptyUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := &model.User{Email: "empty@example.com", Name: "Empty", PasswordHash: "x"}
	require.NoError(t, f.db.Create(user).Error)
	ac := scope.AuthContext{UserID: user.ID}

	_, ok, err := f.svc.ReportFilter(ctx, ac)
	require.NoError(t, err)
	assert.False(t, ok)

	reports, err := f.svc.Reports(ctx, ac, 0)
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestScopeReachesEmployeeThroughOffice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	alice := f.seedTenant(t, "alice@example.com")
	bob := f.seedTenant(t, "bob@example.com")

	employee := &model.Employee{OfficeID: alice.office.ID, Name: "Eve", Position: "Manager", Potential: 5}
	require.NoError(t, f.db.Create(employee).Error)

	got, err := f.svc.AuthorizeEmployee(ctx, scope.AuthContext{UserID: alice.user.ID}, employee.ID)
	require.NoError(t, err)
	assert.Equal(t, employee.ID, got.ID)

	_, err = f.svc.AuthorizeEmployee(ctx, scope.AuthContext{UserID: bob.user.ID}, employee.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
