// internal/repository/employee.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/fieldstonehq/fieldstone/internal/domain"
	"github.com/fieldstonehq/fieldstone/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmployeeRepositoryIface interface {
	Create(ctx context.Context, employee *model.Employee) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Employee, error)
	FindByOffice(ctx context.Context, officeID uuid.UUID) ([]*model.Employee, error)
	Update(ctx context.Context, employee *model.Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	if err := r.db.WithContext(ctx).Create(employee).Error; err != nil {
		return fmt.Errorf("creating employee: %w", err)
	}
	return nil
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Employee, error) {
	var employee model.Employee
	if err := r.db.WithContext(ctx).Preload("Office").First(&employee, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("finding employee: %w", err)
	}
	return &employee, nil
}

func (r *EmployeeRepository) FindByOffice(ctx context.Context, officeID uuid.UUID) ([]*model.Employee, error) {
	var employees []*model.Employee
	if err := r.db.WithContext(ctx).
		Where("office_id = ?", officeID).
		Order("created_at ASC").
		Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("finding employees for office: %w", err)
	}
	return employees, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, employee *model.Employee) error {
	if err := r.db.WithContext(ctx).Omit("Office").Save(employee).Error; err != nil {
		return fmt.Errorf("updating employee: %w", err)
	}
	return nil
}

// Delete removes an employee together with the reports logged against it.
func (r *EmployeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var employee model.Employee
		if err := tx.First(&employee, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrEmployeeNotFound
			}
			return fmt.Errorf("finding employee: %w", err)
		}

		if err := tx.Exec(
			"DELETE FROM report_additional_owners WHERE report_id IN (SELECT id FROM reports WHERE employee_id = ?)",
			id,
		).Error; err != nil {
			return fmt.Errorf("clearing additional owners of dependent reports: %w", err)
		}
		if err := tx.Where("employee_id = ?", id).Delete(&model.Report{}).Error; err != nil {
			return fmt.Errorf("deleting dependent reports: %w", err)
		}

		if err := tx.Delete(&model.Employee{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("deleting employee: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}
