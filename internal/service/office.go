// internal/service/office.go
package service

import (
	"context"

	"github.com/fieldstonehq/fieldstone/internal/audit"
	"github.com/fieldstonehq/fieldstone/internal/model"
	"github.com/fieldstonehq/fieldstone/internal/repository"
	"github.com/fieldstonehq/fieldstone/internal/scope"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// OfficeService implements the office side of the entity store, including
// the many-to-many owner membership and the primary-owner invariant.
type OfficeService struct {
	repo      repository.OfficeRepositoryIface
	owners    repository.OwnerRepositoryIface
	employees repository.EmployeeRepositoryIface
	reports   repository.ReportRepositoryIface
	scope     *scope.Service
	audit     audit.Logger
	validate  *validator.Validate
}

func NewOfficeService(
	repo repository.OfficeRepositoryIface,
	owners repository.OwnerRepositoryIface,
	employees repository.EmployeeRepositoryIface,
	reports repository.ReportRepositoryIface,
	scopeSvc *scope.Service,
	auditLog audit.Logger,
) *OfficeService {
	return &OfficeService{
		repo:      repo,
		owners:    owners,
		employees: employees,
		reports:   reports,
		scope:     scopeSvc,
		audit:     auditLog,
		validate:  validator.New(),
	}
}

type OfficeInput struct {
	Name    string `json:"name" validate:"required"`
	Number  int    `json:"number" validate:"required,min=1,max=100"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	ZipCode string `json:"zip_code" validate:"required"`
}

// Create inserts a new office with the initiating owner as both member and
// primary contact.
func (s *OfficeService) Create(ctx context.Context, ac scope.AuthContext, initiatingOwnerID uuid.UUID, input OfficeInput) (*model.Office, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, invalidInput(err)
	}

	if _, err := s.scope.AuthorizeOwner(ctx, ac, initiatingOwnerID); err != nil {
		return nil, err
	}

	office := &model.Office{
		Name:    input.Name,
		Number:  input.Number,
		Address: input.Address,
		City:    input.City,
		State:   input.State,
		ZipCode: input.ZipCode,
	}
	if err := s.repo.Create(ctx, office, initiatingOwnerID); err != nil {
		return nil, err
	}

	s.audit.EntityCreated(ctx, ac.UserID, "office", office.ID)
	return s.repo.FindByID(ctx, office.ID)
}

// Update edits office details. Scope membership is re-verified at request
// time; owner associations are untouched here.
func (s *OfficeService) Update(ctx context.Context, ac scope.AuthContext, officeID uuid.UUID, input OfficeInput) (*model.Office, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, invalidInput(err)
	}

	office, err := s.scope.AuthorizeOffice(ctx, ac, officeID)
	if err != nil {
		return nil, err
	}

	office.Name = input.Name
	office.Number = input.Number
	office.Address = input.Address
	office.City = input.City
	office.State = input.State
	office.ZipCode = input.ZipCode
	if err := s.repo.Update(ctx, office); err != nil {
		return nil, err
	}

	s.audit.EntityUpdated(ctx, ac.UserID, "office", office.ID)
	return office, nil
}

// Delete removes the office and its employees. Reports keep existing with
// their office reference cleared.
func (s *OfficeService) Delete(ctx context.Context, ac scope.AuthContext, officeID uuid.UUID) error {
	if _, err := s.scope.AuthorizeOffice(ctx, ac, officeID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, officeID); err != nil {
		return err
	}
	s.audit.EntityDeleted(ctx, ac.UserID, "office", officeID)
	return nil
}

func (s *OfficeService) List(ctx context.Context, ac scope.AuthContext) ([]*model.Office, error) {
	return s.scope.Offices(ctx, ac)
}

// AddOwner associates one of the requester's owners with the office.
func (s *OfficeService) AddOwner(ctx context.Context, ac scope.AuthContext, officeID, ownerID uuid.UUID, setPrimary bool) (*model.Office, error) {
	if _, err := s.scope.AuthorizeOffice(ctx, ac, officeID); err != nil {
		return nil, err
	}
	if _, err := s.scope.AuthorizeOwner(ctx, ac, ownerID); err != nil {
		return nil, err
	}
	if err := s.repo.AddOwner(ctx, officeID, ownerID, setPrimary); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, officeID)
}

// RemoveOwner drops an owner from the office's member set, reassigning the
// primary slot when needed.
func (s *OfficeService) RemoveOwner(ctx context.Context, ac scope.AuthContext, officeID, ownerID uuid.UUID) (*model.Office, error) {
	if _, err := s.scope.AuthorizeOffice(ctx, ac, officeID); err != nil {
		return nil, err
	}
	if err := s.repo.RemoveOwner(ctx, officeID, ownerID); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, officeID)
}

// SetOwners replaces the office's member set. Only owners belonging to the
// requester make it into the new set; anything else is silently filtered.
func (s *OfficeService) SetOwners(ctx context.Context, ac scope.AuthContext, officeID uuid.UUID, ownerIDs []uuid.UUID, primaryID *uuid.UUID) (*model.Office, error) {
	if _, err := s.scope.AuthorizeOffice(ctx, ac, officeID); err != nil {
		return nil, err
	}

	filtered := make([]uuid.UUID, 0, len(ownerIDs))
	for _, ownerID := range ownerIDs {
		owner, err := s.owners.FindByID(ctx, ownerID)
		if err != nil {
			continue
		}
		if owner.UserID == ac.UserID {
			filtered = append(filtered, ownerID)
		}
	}

	if err := s.repo.SetOwners(ctx, officeID, filtered, primaryID); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, officeID)
}

// OfficeDashboard is the read-only context for a single office view.
type OfficeDashboard struct {
	Office      *model.Office     `json:"office"`
	Employees   []*model.Employee `json:"employees"`
	Reports     []*model.Report   `json:"reports"`
	AverageVibe *float64          `json:"average_vibe,omitempty"`
	FieldVisits int64             `json:"field_visits"`
}

func (s *OfficeService) Dashboard(ctx context.Context, ac scope.AuthContext, officeID uuid.UUID) (*OfficeDashboard, error) {
	office, err := s.scope.AuthorizeOffice(ctx, ac, officeID)
	if err != nil {
		return nil, err
	}

	employees, err := s.employees.FindByOffice(ctx, officeID)
	if err != nil {
		return nil, err
	}

	reports, err := s.reports.Find(ctx, repository.ReportFilter{OfficeID: &officeID, Limit: 5})
	if err != nil {
		return nil, err
	}

	averageVibe, err := s.reports.AverageVibe(ctx, officeID)
	if err != nil {
		return nil, err
	}

	fov := model.CallFOV
	fieldVisits, err := s.reports.Count(ctx, repository.ReportFilter{OfficeID: &officeID, CallType: &fov})
	if err != nil {
		return nil, err
	}

	return &OfficeDashboard{
		Office:      office,
		Employees:   employees,
		Reports:     reports,
		AverageVibe: averageVibe,
		FieldVisits: fieldVisits,
	}, nil
}
