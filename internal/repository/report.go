// internal/repository/report.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fieldstonehq/fieldstone/internal/domain"
	"github.com/fieldstonehq/fieldstone/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReportFilter narrows report queries. Zero-valued fields are ignored.
// Start/End are inclusive bounds on created_at; Before is exclusive, used
// for half-open calendar windows.
type ReportFilter struct {
	OwnerIDs       []uuid.UUID // primary owner within this set
	OfficeIDs      []uuid.UUID // or filed against an employee of these offices
	AuthorID       *uuid.UUID
	PrimaryOwnerID *uuid.UUID
	OfficeID       *uuid.UUID
	EmployeeID     *uuid.UUID
	CallType       *model.CallType
	Start          *time.Time
	End            *time.Time
	Before         *time.Time
	Limit          int
}

// OwnerTypeCount is one aggregated cell: reports for an owner with a call
// type.
type OwnerTypeCount struct {
	OwnerID  uuid.UUID      `gorm:"column:primary_owner_id"`
	CallType model.CallType `gorm:"column:call_type"`
	Count    int64          `gorm:"column:count"`
}

type ReportRepositoryIface interface {
	Commit(ctx context.Context, report *model.Report, additionalOwnerIDs []uuid.UUID, contactedOn time.Time) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Report, error)
	Find(ctx context.Context, f ReportFilter) ([]*model.Report, error)
	Count(ctx context.Context, f ReportFilter) (int64, error)
	CountByOwnerAndType(ctx context.Context, f ReportFilter) ([]OwnerTypeCount, error)
	AverageVibe(ctx context.Context, officeID uuid.UUID) (*float64, error)
}

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Commit persists the report and, in the same transaction, attaches the
// additional owners and touches last_contacted on the linked office and
// the primary owner. Either everything lands or nothing does.
func (r *ReportRepository) Commit(ctx context.Context, report *model.Report, additionalOwnerIDs []uuid.UUID, contactedOn time.Time) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("AdditionalOwners", "PrimaryOwner", "Office", "Employee", "Author").Create(report).Error; err != nil {
			return fmt.Errorf("creating report: %w", err)
		}

		for _, ownerID := range additionalOwnerIDs {
			if ownerID == report.PrimaryOwnerID {
				continue
			}
			if err := tx.Exec(
				"INSERT INTO report_additional_owners (report_id, owner_id) VALUES (?, ?)",
				report.ID, ownerID,
			).Error; err != nil {
				return fmt.Errorf("attaching additional owner: %w", err)
			}
		}

		if report.OfficeID != nil {
			if err := tx.Model(&model.Office{}).
				Where("id = ?", *report.OfficeID).
				Update("last_contacted", contactedOn).Error; err != nil {
				return fmt.Errorf("touching office last_contacted: %w", err)
			}
		}
		if err := tx.Model(&model.Owner{}).
			Where("id = ?", report.PrimaryOwnerID).
			Update("last_contacted", contactedOn).Error; err != nil {
			return fmt.Errorf("touching owner last_contacted: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *ReportRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Report, error) {
	var report model.Report
	if err := r.db.WithContext(ctx).
		Preload("PrimaryOwner").
		Preload("AdditionalOwners").
		Preload("Office").
		Preload("Employee").
		First(&report, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReportNotFound
		}
		return nil, fmt.Errorf("finding report: %w", err)
	}
	return &report, nil
}

// Find returns matching reports newest-first.
func (r *ReportRepository) Find(ctx context.Context, f ReportFilter) ([]*model.Report, error) {
	var reports []*model.Report
	q := f.apply(r.db.WithContext(ctx).Model(&model.Report{})).Order("reports.created_at DESC")
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if err := q.Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("finding reports: %w", err)
	}
	return reports, nil
}

func (r *ReportRepository) Count(ctx context.Context, f ReportFilter) (int64, error) {
	var count int64
	if err := f.apply(r.db.WithContext(ctx).Model(&model.Report{})).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting reports: %w", err)
	}
	return count, nil
}

// CountByOwnerAndType aggregates the filtered report set into owner and
// call-type buckets for the activity matrix.
func (r *ReportRepository) CountByOwnerAndType(ctx context.Context, f ReportFilter) ([]OwnerTypeCount, error) {
	var rows []OwnerTypeCount
	if err := f.apply(r.db.WithContext(ctx).Model(&model.Report{})).
		Select("reports.primary_owner_id AS primary_owner_id, reports.call_type AS call_type, COUNT(reports.id) AS count").
		Group("reports.primary_owner_id, reports.call_type").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("aggregating reports: %w", err)
	}
	return rows, nil
}

func (r *ReportRepository) AverageVibe(ctx context.Context, officeID uuid.UUID) (*float64, error) {
	var avg *float64
	if err := r.db.WithContext(ctx).
		Model(&model.Report{}).
		Where("office_id = ?", officeID).
		Select("AVG(vibe)").
		Scan(&avg).Error; err != nil {
		return nil, fmt.Errorf("averaging vibe: %w", err)
	}
	return avg, nil
}

func (f ReportFilter) apply(q *gorm.DB) *gorm.DB {
	switch {
	case len(f.OwnerIDs) > 0 && len(f.OfficeIDs) > 0:
		q = q.Where(
			"reports.primary_owner_id IN ? OR reports.employee_id IN (SELECT id FROM employees WHERE office_id IN ?)",
			f.OwnerIDs, f.OfficeIDs,
		)
	case len(f.OwnerIDs) > 0:
		q = q.Where("reports.primary_owner_id IN ?", f.OwnerIDs)
	case len(f.OfficeIDs) > 0:
		q = q.Where("reports.employee_id IN (SELECT id FROM employees WHERE office_id IN ?)", f.OfficeIDs)
	}
	if f.AuthorID != nil {
		q = q.Where("reports.author_id = ?", *f.AuthorID)
	}
	if f.PrimaryOwnerID != nil {
		q = q.Where("reports.primary_owner_id = ?", *f.PrimaryOwnerID)
	}
	if f.OfficeID != nil {
		q = q.Where("reports.office_id = ?", *f.OfficeID)
	}
	if f.EmployeeID != nil {
		q = q.Where("reports.employee_id = ?", *f.EmployeeID)
	}
	if f.CallType != nil {
		q = q.Where("reports.call_type = ?", *f.CallType)
	}
	if f.Start != nil {
		q = q.Where("reports.created_at >= ?", *f.Start)
	}
	if f.End != nil {
		q = q.Where("reports.created_at <= ?", *f.End)
	}
	if f.Before != nil {
		q = q.Where("reports.created_at < ?", *f.Before)
	}
	return q
}
