// internal/service/employee.go
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

type EmployeeService struct {
	repo     repository.EmployeeRepositoryIface
	scope    *scope.Service
	audit    audit.Logger
	validate *validator.Validate
}

func NewEmployeeService(
	repo repository.EmployeeRepositoryIface,
	scopeSvc *scope.Service,
	auditLog audit.Logger,
) *EmployeeService {
	return &EmployeeService{
		repo:     repo,
		scope:    scopeSvc,
		audit:    auditLog,
		validate: validator.New(),
	}
}

type EmployeeInput struct {
	Name      string `json:"name" validate:"required"`
	Position  string `json:"position" validate:"required"`
	Email     string `json:"email" validate:"omitempty,email"`
	// Potential is a pointer so an absent rating can default while a
	// submitted zero still fails the range check.
	Potential *int `json:"potential" validate:"omitnil,min=1,max=10"`
}

func (input *EmployeeInput) applyDefaults() {
	if input.Potential == nil {
		potential := model.DefaultPotential
		input.Potential = &potential
	}
}

func (s *EmployeeService) Create(ctx context.Context, ac scope.AuthContext, officeID uuid.UUID, input EmployeeInput) (*model.Employee, error) {
	input.applyDefaults()
	if err := s.validate.Struct(input); err != nil {
		return nil, invalidInput(err)
	}

	if _, err := s.scope.AuthorizeOffice(ctx, ac, officeID); err != nil {
		return nil, err
	}

	employee := &model.Employee{
		OfficeID:  officeID,
		Name:      input.Name,
		Position:  input.Position,
		Email:     input.Email,
		Potential: *input.Potential,
	}
	if err := s.repo.Create(ctx, employee); err != nil {
		return nil, err
	}

	s.audit.EntityCreated(ctx, ac.UserID, "employee", employee.ID)
	return employee, nil
}

func (s *EmployeeService) Update(ctx context.Context, ac scope.AuthContext, employeeID uuid.UUID, input EmployeeInput) (*model.Employee, error) {
	input.applyDefaults()
	if err := s.validate.Struct(input); err != nil {
		return nil, invalidInput(err)
	}

	employee, err := s.scope.AuthorizeEmployee(ctx, ac, employeeID)
	if err != nil {
		return nil, err
	}

	employee.Name = input.Name
	employee.Position = input.Position
	employee.Email = input.Email
	employee.Potential = *input.Potential
	if err := s.repo.Update(ctx, employee); err != nil {
		return nil, err
	}

	s.audit.EntityUpdated(ctx, ac.UserID, "employee", employee.ID)
	return employee, nil
}

func (s *EmployeeService) Delete(ctx context.Context, ac scope.AuthContext, employeeID uuid.UUID) error {
	if _, err := s.scope.AuthorizeEmployee(ctx, ac, employeeID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, employeeID); err != nil {
		return err
	}
	s.audit.EntityDeleted(ctx, ac.UserID, "employee", employeeID)
	return nil
}
