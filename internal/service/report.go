// internal/service/report.go
package service

import (
	"context"
	"time"

	"github.com/fieldstonehq/fieldstone/internal/audit"
	"github.com/fieldstonehq/fieldstone/internal/clock"
	"github.com/fieldstonehq/fieldstone/internal/domain"
	"github.com/fieldstonehq/fieldstone/internal/model"
	"github.com/fieldstonehq/fieldstone/internal/repository"
	"github.com/fieldstonehq/fieldstone/internal/scope"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ReportService is the log-call workflow: a draft either commits atomically
// with its side effects or leaves no trace.
type ReportService struct {
	repo      repository.ReportRepositoryIface
	owners    repository.OwnerRepositoryIface
	offices   repository.OfficeRepositoryIface
	employees repository.EmployeeRepositoryIface
	scope     *scope.Service
	clock     clock.Clock
	audit     audit.Logger
	validate  *validator.Validate
}

func NewReportService(
	repo repository.ReportRepositoryIface,
	owners repository.OwnerRepositoryIface,
	offices repository.OfficeRepositoryIface,
	employees repository.EmployeeRepositoryIface,
	scopeSvc *scope.Service,
	clk clock.Clock,
	auditLog audit.Logger,
) *ReportService {
	return &ReportService{
		repo:      repo,
		owners:    owners,
		offices:   offices,
		employees: employees,
		scope:     scopeSvc,
		clock:     clk,
		audit:     auditLog,
		validate:  validator.New(),
	}
}

type LogReportInput struct {
	Subject            string         `json:"subject"`
	Transcript         bool           `json:"transcript"`
	Content            string         `json:"content" validate:"required"`
	// Vibe is a pointer so an absent rating can default while a submitted
	// zero still fails the range check.
	Vibe               *int           `json:"vibe" validate:"omitnil,min=1,max=10"`
	CallType           model.CallType `json:"calltype" validate:"required,oneof=phone email fov teams other"`
	OfficeID           *uuid.UUID     `json:"office_id,omitempty"`
	AdditionalOwnerIDs []uuid.UUID    `json:"additional_owner_ids,omitempty"`
}

func (input *LogReportInput) applyDefaults() {
	if input.Vibe == nil {
		vibe := model.DefaultVibe
		input.Vibe = &vibe
	}
	if input.CallType == "" {
		input.CallType = model.CallEmail
	}
}

// LogFromEmployee commits a report against an employee. The report links
// to the employee's office and resolves its primary owner from there.
func (s *ReportService) LogFromEmployee(ctx context.Context, ac scope.AuthContext, employeeID uuid.UUID, input LogReportInput) (*model.Report, error) {
	input.applyDefaults()
	if err := s.validate.Struct(input); err != nil {
		return nil, invalidInput(err)
	}

	employee, err := s.scope.AuthorizeEmployee(ctx, ac, employeeID)
	if err != nil {
		return nil, err
	}

	office, err := s.offices.FindByID(ctx, employee.OfficeID)
	if err != nil {
		return nil, err
	}
	if office.PrimaryOwnerID == nil {
		return nil, domain.NewValidationError("office", "office has no primary owner to attribute the report to")
	}

	report := s.draft(ac, input)
	report.EmployeeID = &employee.ID
	report.OfficeID = &office.ID
	report.PrimaryOwnerID = *office.PrimaryOwnerID

	return s.commit(ctx, ac, report, input.AdditionalOwnerIDs)
}

// LogFromOffice commits a report against an office, attributed to the
// office's primary owner.
func (s *ReportService) LogFromOffice(ctx context.Context, ac scope.AuthContext, officeID uuid.UUID, input LogReportInput) (*model.Report, error) {
	input.applyDefaults()
	if err := s.validate.Struct(input); err != nil {
		return nil, invalidInput(err)
	}

	office, err := s.scope.AuthorizeOffice(ctx, ac, officeID)
	if err != nil {
		return nil, err
	}
	if office.PrimaryOwnerID == nil {
		return nil, domain.NewValidationError("office", "office has no primary owner to attribute the report to")
	}

	report := s.draft(ac, input)
	report.OfficeID = &office.ID
	report.PrimaryOwnerID = *office.PrimaryOwnerID

	return s.commit(ctx, ac, report, input.AdditionalOwnerIDs)
}

// LogFromOwner commits a report attributed directly to an owner. A
// selected office that does not belong to the owner is discarded, not
// rejected; the report still commits, just without the office link.
func (s *ReportService) LogFromOwner(ctx context.Context, ac scope.AuthContext, ownerID uuid.UUID, input LogReportInput) (*model.Report, error) {
	input.applyDefaults()
	if err := s.validate.Struct(input); err != nil {
		return nil, invalidInput(err)
	}

	owner, err := s.scope.AuthorizeOwner(ctx, ac, ownerID)
	if err != nil {
		return nil, err
	}

	report := s.draft(ac, input)
	report.PrimaryOwnerID = owner.ID

	if input.OfficeID != nil {
		belongs, err := s.offices.HasOwner(ctx, *input.OfficeID, owner.ID)
		if err != nil {
			return nil, err
		}
		if belongs {
			report.OfficeID = input.OfficeID
		}
	}

	return s.commit(ctx, ac, report, input.AdditionalOwnerIDs)
}

// Get returns a single committed report, scope-checked.
func (s *ReportService) Get(ctx context.Context, ac scope.AuthContext, reportID uuid.UUID) (*model.Report, error) {
	return s.scope.AuthorizeReport(ctx, ac, reportID)
}

// List returns the requester's visible reports, newest first.
func (s *ReportService) List(ctx context.Context, ac scope.AuthContext, limit int) ([]*model.Report, error) {
	return s.scope.Reports(ctx, ac, limit)
}

func (s *ReportService) draft(ac scope.AuthContext, input LogReportInput) *model.Report {
	return &model.Report{
		Subject:    input.Subject,
		Transcript: input.Transcript,
		Content:    input.Content,
		Vibe:       *input.Vibe,
		CallType:   input.CallType,
		AuthorID:   ac.UserID,
		CreatedAt:  s.clock.Now(),
	}
}

func (s *ReportService) commit(ctx context.Context, ac scope.AuthContext, report *model.Report, additionalOwnerIDs []uuid.UUID) (*model.Report, error) {
	additional := s.filterAdditionalOwners(ctx, ac, report.PrimaryOwnerID, additionalOwnerIDs)

	contactedOn := dateOf(s.clock.Now())
	if err := s.repo.Commit(ctx, report, additional, contactedOn); err != nil {
		return nil, err
	}

	s.audit.ReportCommitted(ctx, ac.UserID, report.ID, report.PrimaryOwnerID)
	return s.repo.FindByID(ctx, report.ID)
}

// filterAdditionalOwners keeps only the requester's own owners and never
// the primary contact itself.
func (s *ReportService) filterAdditionalOwners(ctx context.Context, ac scope.AuthContext, primaryOwnerID uuid.UUID, ids []uuid.UUID) []uuid.UUID {
	filtered := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == primaryOwnerID {
			continue
		}
		owner, err := s.owners.FindByID(ctx, id)
		if err != nil || owner.UserID != ac.UserID {
			continue
		}
		filtered = append(filtered, id)
	}
	return filtered
}

func dateOf(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
