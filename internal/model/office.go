// internal/model/office.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Office is an individual office space. Ownership is a many-to-many set of
// Owners with one designated primary contact.
//
// Invariant: whenever Owners is non-empty, PrimaryOwnerID must reference a
// member of Owners. An office with no owners at all is a valid, degraded
// state and PrimaryOwnerID is nil.
type Office struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string     `gorm:"not null" json:"name"`
	Number         int        `gorm:"not null" json:"number"`
	Address        string     `gorm:"not null" json:"address"`
	City           string     `gorm:"not null" json:"city"`
	State          string     `gorm:"not null" json:"state"`
	ZipCode        string     `gorm:"not null" json:"zip_code"`
	PrimaryOwnerID *uuid.UUID `gorm:"type:uuid;index" json:"primary_owner_id,omitempty"`
	LastContacted  *time.Time `json:"last_contacted,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	PrimaryOwner *Owner  `gorm:"foreignKey:PrimaryOwnerID" json:"primary_owner,omitempty"`
	Owners       []Owner `gorm:"many2many:office_owners" json:"owners,omitempty"`
}

func (o *Office) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// HasOwner reports whether the given owner is a member of the loaded
// Owners association.
func (o *Office) HasOwner(ownerID uuid.UUID) bool {
	for _, owner := range o.Owners {
		if owner.ID == ownerID {
			return true
		}
	}
	return false
}
