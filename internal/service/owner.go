// internal/service/owner.go
package service

import (
	"context"
	"fmt"

	"github.com/fieldstonehq/fieldstone/internal/audit"
	"github.com/fieldstonehq/fieldstone/internal/model"
	"github.com/fieldstonehq/fieldstone/internal/repository"
	"github.com/fieldstonehq/fieldstone/internal/scope"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// OwnerService implements the owner side of the entity store: creation
// with optional office association, edits, and cascading deletion.
type OwnerService struct {
	repo     repository.OwnerRepositoryIface
	offices  repository.OfficeRepositoryIface
	reports  repository.ReportRepositoryIface
	scope    *scope.Service
	audit    audit.Logger
	validate *validator.Validate
}

func NewOwnerService(
	repo repository.OwnerRepositoryIface,
	offices repository.OfficeRepositoryIface,
	reports repository.ReportRepositoryIface,
	scopeSvc *scope.Service,
	auditLog audit.Logger,
) *OwnerService {
	return &OwnerService{
		repo:     repo,
		offices:  offices,
		reports:  reports,
		scope:    scopeSvc,
		audit:    auditLog,
		validate: validator.New(),
	}
}

type CreateOwnerInput struct {
	Name       string      `json:"name" validate:"required"`
	Email      string      `json:"email" validate:"omitempty,email"`
	OfficeIDs  []uuid.UUID `json:"office_ids"`
	SetPrimary bool        `json:"set_primary"`
}

type UpdateOwnerInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
}

// Create makes a new owner for the requester and optionally associates it
// with offices the requester already controls. Offices are authorized
// before anything is written.
func (s *OwnerService) Create(ctx context.Context, ac scope.AuthContext, input CreateOwnerInput) (*model.Owner, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, invalidInput(err)
	}

	for _, officeID := range input.OfficeIDs {
		if _, err := s.scope.AuthorizeOffice(ctx, ac, officeID); err != nil {
			return nil, err
		}
	}

	owner := &model.Owner{
		UserID: ac.UserID,
		Name:   input.Name,
		Email:  input.Email,
	}
	if err := s.repo.Create(ctx, owner); err != nil {
		return nil, err
	}

	for _, officeID := range input.OfficeIDs {
		if err := s.offices.AddOwner(ctx, officeID, owner.ID, input.SetPrimary); err != nil {
			return nil, fmt.Errorf("associating owner with office: %w", err)
		}
	}

	s.audit.EntityCreated(ctx, ac.UserID, "owner", owner.ID)
	return owner, nil
}

func (s *OwnerService) Update(ctx context.Context, ac scope.AuthContext, ownerID uuid.UUID, input UpdateOwnerInput) (*model.Owner, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, invalidInput(err)
	}

	owner, err := s.scope.AuthorizeOwner(ctx, ac, ownerID)
	if err != nil {
		return nil, err
	}

	owner.Name = input.Name
	owner.Email = input.Email
	if err := s.repo.Update(ctx, owner); err != nil {
		return nil, err
	}

	s.audit.EntityUpdated(ctx, ac.UserID, "owner", owner.ID)
	return owner, nil
}

func (s *OwnerService) Delete(ctx context.Context, ac scope.AuthContext, ownerID uuid.UUID) error {
	if _, err := s.scope.AuthorizeOwner(ctx, ac, ownerID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, ownerID); err != nil {
		return err
	}
	s.audit.EntityDeleted(ctx, ac.UserID, "owner", ownerID)
	return nil
}

func (s *OwnerService) List(ctx context.Context, ac scope.AuthContext) ([]*model.Owner, error) {
	return s.scope.Owners(ctx, ac)
}

// OwnerDashboard is the read-only context for a single owner view.
type OwnerDashboard struct {
	Owner       *model.Owner    `json:"owner"`
	Offices     []*model.Office `json:"offices"`
	Reports     []*model.Report `json:"reports"`
	FieldVisits int64           `json:"field_visits"`
}

func (s *OwnerService) Dashboard(ctx context.Context, ac scope.AuthContext, ownerID uuid.UUID) (*OwnerDashboard, error) {
	owner, err := s.scope.AuthorizeOwner(ctx, ac, ownerID)
	if err != nil {
		return nil, err
	}

	offices, err := s.offices.FindByOwners(ctx, []uuid.UUID{ownerID})
	if err != nil {
		return nil, err
	}

	reports, err := s.reports.Find(ctx, repository.ReportFilter{PrimaryOwnerID: &ownerID, Limit: 5})
	if err != nil {
		return nil, err
	}

	fov := model.CallFOV
	fieldVisits, err := s.reports.Count(ctx, repository.ReportFilter{PrimaryOwnerID: &ownerID, CallType: &fov})
	if err != nil {
		return nil, err
	}

	return &OwnerDashboard{
		Owner:       owner,
		Offices:     offices,
		Reports:     reports,
		FieldVisits: fieldVisits,
	}, nil
}
