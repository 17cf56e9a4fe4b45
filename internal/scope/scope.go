// internal/scope/scope.go

// Package scope computes the subset of owners, offices, employees, and
// reports a requesting user is entitled to see. The requester is always an
// explicit AuthContext argument; there is no ambient current-user state.
//
// Authorization is re-verified against the store at the time of each call,
// never cached across requests.
package scope

import (
	"context"
	"errors"

	"github.com/fieldstonehq/fieldstone/internal/domain"
	"github.com/fieldstonehq/fieldstone/internal/model"
	"github.com/fieldstonehq/fieldstone/internal/repository"
	"github.com/google/uuid"
)

// AuthContext identifies the authenticated requester. The identity is
// supplied by the auth middleware and trusted unconditionally here.
type AuthContext struct {
	UserID uuid.UUID
}

type Service struct {
	owners    repository.OwnerRepositoryIface
	offices   repository.OfficeRepositoryIface
	employees repository.EmployeeRepositoryIface
	reports   repository.ReportRepositoryIface
}

func NewService(
	owners repository.OwnerRepositoryIface,
	offices repository.OfficeRepositoryIface,
	employees repository.EmployeeRepositoryIface,
	reports repository.ReportRepositoryIface,
) *Service {
	return &Service{
		owners:    owners,
		offices:   offices,
		employees: employees,
		reports:   reports,
	}
}

// Owners returns every owner created by the requester, in creation order.
func (s *Service) Owners(ctx context.Context, ac AuthContext) ([]*model.Owner, error) {
	return s.owners.FindByUser(ctx, ac.UserID)
}

// Offices returns every office whose member set intersects the requester's
// owners, or whose primary contact is one of them.
func (s *Service) Offices(ctx context.Context, ac AuthContext) ([]*model.Office, error) {
	ownerIDs, err := s.OwnerIDs(ctx, ac)
	if err != nil {
		return nil, err
	}
	if len(ownerIDs) == 0 {
		return nil, nil
	}
	return s.offices.FindByOwners(ctx, ownerIDs)
}

func (s *Service) OwnerIDs(ctx context.Context, ac AuthContext) ([]uuid.UUID, error) {
	owners, err := s.owners.FindByUser(ctx, ac.UserID)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(owners))
	for _, owner := range owners {
		ids = append(ids, owner.ID)
	}
	return ids, nil
}

func (s *Service) OfficeIDs(ctx context.Context, ac AuthContext) ([]uuid.UUID, error) {
	offices, err := s.Offices(ctx, ac)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(offices))
	for _, office := range offices {
		ids = append(ids, office.ID)
	}
	return ids, nil
}

// ReportFilter builds the scope condition for report queries: reports whose
// primary owner belongs to the requester, or which were filed against an
// employee of an in-scope office. The second return value is false when the
// requester can see no reports at all.
func (s *Service) ReportFilter(ctx context.Context, ac AuthContext) (repository.ReportFilter, bool, error) {
	ownerIDs, err := s.OwnerIDs(ctx, ac)
	if err != nil {
		return repository.ReportFilter{}, false, err
	}
	officeIDs, err := s.OfficeIDs(ctx, ac)
	if err != nil {
		return repository.ReportFilter{}, false, err
	}
	if len(ownerIDs) == 0 && len(officeIDs) == 0 {
		return repository.ReportFilter{}, false, nil
	}
	return repository.ReportFilter{OwnerIDs: ownerIDs, OfficeIDs: officeIDs}, true, nil
}

// Reports returns the requester's visible reports, newest first.
func (s *Service) Reports(ctx context.Context, ac AuthContext, limit int) ([]*model.Report, error) {
	filter, ok, err := s.ReportFilter(ctx, ac)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	filter.Limit = limit
	return s.reports.Find(ctx, filter)
}

// AuthorizeOwner loads the owner and verifies the requester created it.
func (s *Service) AuthorizeOwner(ctx context.Context, ac AuthContext, ownerID uuid.UUID) (*model.Owner, error) {
	owner, err := s.owners.FindByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if owner.UserID != ac.UserID {
		return nil, domain.ErrUnauthorized
	}
	return owner, nil
}

// AuthorizeOffice loads the office and verifies the requester reaches it
// through its member set or primary contact.
func (s *Service) AuthorizeOffice(ctx context.Context, ac AuthContext, officeID uuid.UUID) (*model.Office, error) {
	office, err := s.offices.FindByID(ctx, officeID)
	if err != nil {
		return nil, err
	}
	for _, owner := range office.Owners {
		if owner.UserID == ac.UserID {
			return office, nil
		}
	}
	if office.PrimaryOwner != nil && office.PrimaryOwner.UserID == ac.UserID {
		return office, nil
	}
	return nil, domain.ErrUnauthorized
}

// AuthorizeEmployee loads the employee and verifies its office is in scope.
func (s *Service) AuthorizeEmployee(ctx context.Context, ac AuthContext, employeeID uuid.UUID) (*model.Employee, error) {
	employee, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if _, err := s.AuthorizeOffice(ctx, ac, employee.OfficeID); err != nil {
		if errors.Is(err, domain.ErrOfficeNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	return employee, nil
}

// AuthorizeReport loads the report and verifies it is visible to the
// requester through its primary owner or its employee's office.
func (s *Service) AuthorizeReport(ctx context.Context, ac AuthContext, reportID uuid.UUID) (*model.Report, error) {
	report, err := s.reports.FindByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report.PrimaryOwner.UserID == ac.UserID {
		return report, nil
	}
	if report.EmployeeID != nil {
		if _, err := s.AuthorizeEmployee(ctx, ac, *report.EmployeeID); err == nil {
			return report, nil
		}
	}
	return nil, domain.ErrUnauthorized
}
