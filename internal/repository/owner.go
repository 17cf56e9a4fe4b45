// internal/repository/owner.go
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

type OwnerRepositoryIface interface {
	Create(ctx context.Context, owner *model.Owner) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Owner, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.Owner, error)
	Update(ctx context.Context, owner *model.Owner) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type OwnerRepository struct {
	db *gorm.DB
}

func NewOwnerRepository(db *gorm.DB) *OwnerRepository {
	return &OwnerRepository{db: db}
}

func (r *OwnerRepository) Create(ctx context.Context, owner *model.Owner) error {
	if err := r.db.WithContext(ctx).Create(owner).Error; err != nil {
		return fmt.Errorf("creating owner: %w", err)
	}
	return nil
}

func (r *OwnerRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Owner, error) {
	var owner model.Owner
	if err := r.db.WithContext(ctx).First(&owner, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOwnerNotFound
		}
		return nil, fmt.Errorf("finding owner: %w", err)
	}
	return &owner, nil
}

// FindByUser returns the user's owners in stable creation order. The
// activity matrix rows follow this order.
func (r *OwnerRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.Owner, error) {
	var owners []*model.Owner
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&owners).Error; err != nil {
		return nil, fmt.Errorf("finding owners for user: %w", err)
	}
	return owners, nil
}

func (r *OwnerRepository) Update(ctx context.Context, owner *model.Owner) error {
	if err := r.db.WithContext(ctx).Save(owner).Error; err != nil {
		return fmt.Errorf("updating owner: %w", err)
	}
	return nil
}

// Delete removes the owner and everything that only makes sense through it:
// office memberships (reassigning or clearing the primary slot), reports
// where it is the primary contact, and its rows in additional-owner sets.
func (r *OwnerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owner model.Owner
		if err := tx.First(&owner, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrOwnerNotFound
			}
			return fmt.Errorf("finding owner: %w", err)
		}

		// Reassign the primary slot on offices where this owner holds it.
		var primaries []model.Office
		if err := tx.Preload("Owners").Where("primary_owner_id = ?", id).Find(&primaries).Error; err != nil {
			return fmt.Errorf("finding primary offices: %w", err)
		}
		for i := range primaries {
			office := &primaries[i]
			var next *uuid.UUID
			for _, member := range office.Owners {
				if member.ID != id {
					memberID := member.ID
					next = &memberID
					break
				}
			}
			if err := tx.Model(office).Update("primary_owner_id", next).Error; err != nil {
				return fmt.Errorf("reassigning primary owner: %w", err)
			}
		}

		if err := tx.Exec("DELETE FROM office_owners WHERE owner_id = ?", id).Error; err != nil {
			return fmt.Errorf("removing office memberships: %w", err)
		}

		if err := tx.Exec(
			"DELETE FROM report_additional_owners WHERE report_id IN (SELECT id FROM reports WHERE primary_owner_id = ?)",
			id,
		).Error; err != nil {
			return fmt.Errorf("clearing additional owners of dependent reports: %w", err)
		}
		if err := tx.Where("primary_owner_id = ?", id).Delete(&model.Report{}).Error; err != nil {
			return fmt.Errorf("deleting dependent reports: %w", err)
		}
		if err := tx.Exec("DELETE FROM report_additional_owners WHERE owner_id = ?", id).Error; err != nil {
			return fmt.Errorf("removing additional-owner rows: %w", err)
		}

		if err := tx.Delete(&model.Owner{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("deleting owner: %w", err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrOwnerNotFound) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}
