package service_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/fieldstonehq/fieldstone/internal/audit"
	"github.com/fieldstonehq/fieldstone/internal/auth"
	"github.com/fieldstonehq/fieldstone/internal/clock"
	"github.com/fieldstonehq/fieldstone/internal/model"
	"github.com/fieldstonehq/fieldstone/internal/repository"
	"github.com/fieldstonehq/fieldstone/internal/scope"
	"github.com/fieldstonehq/fieldstone/internal/service"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// env wires the full service stack over an in-memory database with a
// pinned clock.
type env struct {
	db         *gorm.DB
	clock      *clock.FakeClock
	scope      *scope.Service
	reportRepo *repository.ReportRepository
	officeRepo *repository.OfficeRepository

	users     *service.UserService
	owners    *service.OwnerService
	offices   *service.OfficeService
	employees *service.EmployeeService
	reports   *service.ReportService
	activity  *service.ActivityService
}

func newEnv(t *testing.T) *env {
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

	userRepo := repository.NewUserRepository(db)
	ownerRepo := repository.NewOwnerRepository(db)
	officeRepo := repository.NewOfficeRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	reportRepo := repository.NewReportRepository(db)

	scopeSvc := scope.NewService(ownerRepo, officeRepo, employeeRepo, reportRepo)
	auditLog := audit.NewLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	clk := clock.NewFakeClock(time.Date(2026, 3, 18, 15, 0, 0, 0, time.UTC))

	return &env{
		db:         db,
		clock:      clk,
		scope:      scopeSvc,
		reportRepo: reportRepo,
		officeRepo: officeRepo,
		users:      service.NewUserService(userRepo, auth.NewPasswordHasher(), auth.NewTokenManager("test-secret", time.Hour)),
		owners:    service.NewOwnerService(ownerRepo, officeRepo, reportRepo, scopeSvc, auditLog),
		offices:    service.NewOfficeService(officeRepo, ownerRepo, employeeRepo, reportRepo, scopeSvc, auditLog),
		employees:  service.NewEmployeeService(employeeRepo, scopeSvc, auditLog),
		reports:    service.NewReportService(reportRepo, ownerRepo, officeRepo, employeeRepo, scopeSvc, clk, auditLog),
		activity:   service.NewActivityService(scopeSvc, reportRepo, clk),
	}
}

func (e *env) seedUser(t *testing.T, email string) *model.User {
	t.Helper()

	user := &model.User{Email: email, Name: "User", PasswordHash: "x"}
	require.NoError(t, e.db.Create(user).Error)
	return user
}

func (e *env) seedOwner(t *testing.T, user *model.User, name string) *model.Owner {
	t.Helper()

	owner := &model.Owner{UserID: user.ID, Name: name}
	require.NoError(t, e.db.Create(owner).Error)
	return owner
}

func (e *env) seedOffice(t *testing.T, owner *model.Owner, name string) *model.Office {
	t.Helper()

	office := &model.Office{
		Name: name, Number: 7,
		Address: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62701",
	}
	require.NoError(t, e.officeRepo.Create(context.Background(), office, owner.ID))
	return office
}

// seedReport inserts a committed report directly, bypassing the workflow.
func (e *env) seedReport(t *testing.T, author *model.User, owner *model.Owner, callType model.CallType, createdAt time.Time) *model.Report {
	t.Helper()

	report := &model.Report{
		Content:        "call",
		Vibe:           5,
		CallType:       callType,
		PrimaryOwnerID: owner.ID,
		AuthorID:       author.ID,
		CreatedAt:      createdAt,
	}
	require.NoError(t, e.reportRepo.Commit(context.Background(), report, nil, createdAt))
	return report
}

func intp(v int) *int {
	return &v
}
