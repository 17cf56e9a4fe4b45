// internal/repository/office.go
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

type OfficeRepositoryIface interface {
	Create(ctx context.Context, office *model.Office, initiatingOwnerID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Office, error)
	FindByOwners(ctx context.Context, ownerIDs []uuid.UUID) ([]*model.Office, error)
	AddOwner(ctx context.Context, officeID, ownerID uuid.UUID, setPrimary bool) error
	RemoveOwner(ctx context.Context, officeID, ownerID uuid.UUID) error
	SetOwners(ctx context.Context, officeID uuid.UUID, ownerIDs []uuid.UUID, primaryID *uuid.UUID) error
	HasOwner(ctx context.Context, officeID, ownerID uuid.UUID) (bool, error)
	Update(ctx context.Context, office *model.Office) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type OfficeRepository struct {
	db *gorm.DB
}

func NewOfficeRepository(db *gorm.DB) *OfficeRepository {
	return &OfficeRepository{db: db}
}

// Create inserts the office with the initiating owner as both member and
// primary contact.
func (r *OfficeRepository) Create(ctx context.Context, office *model.Office, initiatingOwnerID uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		office.PrimaryOwnerID = &initiatingOwnerID
		if err := tx.Create(office).Error; err != nil {
			return fmt.Errorf("creating office: %w", err)
		}
		if err := addMembership(tx, office.ID, initiatingOwnerID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *OfficeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Office, error) {
	var office model.Office
	if err := r.db.WithContext(ctx).
		Preload("Owners").
		Preload("PrimaryOwner").
		First(&office, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOfficeNotFound
		}
		return nil, fmt.Errorf("finding office: %w", err)
	}
	return &office, nil
}

// FindByOwners returns every office whose member set intersects ownerIDs or
// whose primary contact is among them.
func (r *OfficeRepository) FindByOwners(ctx context.Context, ownerIDs []uuid.UUID) ([]*model.Office, error) {
	if len(ownerIDs) == 0 {
		return nil, nil
	}
	var offices []*model.Office
	if err := r.db.WithContext(ctx).
		Preload("Owners").
		Where(
			"offices.id IN (?) OR offices.primary_owner_id IN ?",
			r.db.Table("office_owners").Select("office_id").Where("owner_id IN ?", ownerIDs),
			ownerIDs,
		).
		Order("offices.created_at ASC").
		Find(&offices).Error; err != nil {
		return nil, fmt.Errorf("finding offices by owners: %w", err)
	}
	return offices, nil
}

// AddOwner inserts owner into the office's member set. The owner becomes
// primary when asked to, or when no primary currently exists.
func (r *OfficeRepository) AddOwner(ctx context.Context, officeID, ownerID uuid.UUID, setPrimary bool) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var office model.Office
		if err := tx.First(&office, "id = ?", officeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrOfficeNotFound
			}
			return fmt.Errorf("finding office: %w", err)
		}

		if err := addMembership(tx, officeID, ownerID); err != nil {
			return err
		}

		if setPrimary || office.PrimaryOwnerID == nil {
			if err := tx.Model(&office).Update("primary_owner_id", ownerID).Error; err != nil {
				return fmt.Errorf("setting primary owner: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrOfficeNotFound) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

// RemoveOwner drops owner from the member set. Removing the primary owner
// hands the slot to an arbitrary remaining member, or clears it when the
// set becomes empty.
func (r *OfficeRepository) RemoveOwner(ctx context.Context, officeID, ownerID uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var office model.Office
		if err := tx.Preload("Owners").First(&office, "id = ?", officeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrOfficeNotFound
			}
			return fmt.Errorf("finding office: %w", err)
		}

		if !office.HasOwner(ownerID) {
			return domain.ErrNotAnOwner
		}

		if err := tx.Exec(
			"DELETE FROM office_owners WHERE office_id = ? AND owner_id = ?",
			officeID, ownerID,
		).Error; err != nil {
			return fmt.Errorf("removing membership: %w", err)
		}

		if office.PrimaryOwnerID != nil && *office.PrimaryOwnerID == ownerID {
			var next *uuid.UUID
			for _, member := range office.Owners {
				if member.ID != ownerID {
					memberID := member.ID
					next = &memberID
					break
				}
			}
			if err := tx.Model(&office).Update("primary_owner_id", next).Error; err != nil {
				return fmt.Errorf("reassigning primary owner: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrOfficeNotFound) || errors.Is(err, domain.ErrNotAnOwner) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

// SetOwners replaces the entire member set. The primary becomes primaryID
// when it is part of the new set, otherwise the first listed owner; an
// empty set clears both.
func (r *OfficeRepository) SetOwners(ctx context.Context, officeID uuid.UUID, ownerIDs []uuid.UUID, primaryID *uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var office model.Office
		if err := tx.First(&office, "id = ?", officeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrOfficeNotFound
			}
			return fmt.Errorf("finding office: %w", err)
		}

		if err := tx.Exec("DELETE FROM office_owners WHERE office_id = ?", officeID).Error; err != nil {
			return fmt.Errorf("clearing memberships: %w", err)
		}
		for _, ownerID := range ownerIDs {
			if err := addMembership(tx, officeID, ownerID); err != nil {
				return err
			}
		}

		var primary *uuid.UUID
		if primaryID != nil {
			for _, ownerID := range ownerIDs {
				if ownerID == *primaryID {
					primary = primaryID
					break
				}
			}
		}
		if primary == nil && len(ownerIDs) > 0 {
			first := ownerIDs[0]
			primary = &first
		}
		if err := tx.Model(&office).Update("primary_owner_id", primary).Error; err != nil {
			return fmt.Errorf("setting primary owner: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrOfficeNotFound) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *OfficeRepository) HasOwner(ctx context.Context, officeID, ownerID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Table("office_owners").
		Where("office_id = ? AND owner_id = ?", officeID, ownerID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("checking office membership: %w", err)
	}
	return count > 0, nil
}

func (r *OfficeRepository) Update(ctx context.Context, office *model.Office) error {
	if err := r.db.WithContext(ctx).Omit("Owners", "PrimaryOwner").Save(office).Error; err != nil {
		return fmt.Errorf("updating office: %w", err)
	}
	return nil
}

// Delete removes the office, its employees, and its membership rows.
// Reports that referenced the office survive with the reference cleared.
func (r *OfficeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var office model.Office
		if err := tx.First(&office, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrOfficeNotFound
			}
			return fmt.Errorf("finding office: %w", err)
		}

		if err := tx.Where("office_id = ?", id).Delete(&model.Employee{}).Error; err != nil {
			return fmt.Errorf("deleting employees: %w", err)
		}
		if err := tx.Model(&model.Report{}).
			Where("office_id = ?", id).
			Updates(map[string]interface{}{"office_id": nil, "employee_id": nil}).Error; err != nil {
			return fmt.Errorf("detaching reports: %w", err)
		}
		if err := tx.Exec("DELETE FROM office_owners WHERE office_id = ?", id).Error; err != nil {
			return fmt.Errorf("clearing memberships: %w", err)
		}
		if err := tx.Delete(&model.Office{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("deleting office: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrOfficeNotFound) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func addMembership(tx *gorm.DB, officeID, ownerID uuid.UUID) error {
	var count int64
	if err := tx.Table("office_owners").
		Where("office_id = ? AND owner_id = ?", officeID, ownerID).
		Count(&count).Error; err != nil {
		return fmt.Errorf("checking membership: %w", err)
	}
	if count > 0 {
		return nil
	}
	if err := tx.Exec(
		"INSERT INTO office_owners (office_id, owner_id) VALUES (?, ?)",
		officeID, ownerID,
	).Error; err != nil {
		return fmt.Errorf("adding membership: %w", err)
	}
	return nil
}
