// internal/model/owner.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Owner is a property or building owner. An owner is created by exactly
// one user and is never reassigned; every scoping decision starts here.
//
// LastContacted is written as a side effect of committing a report that
// resolves to this owner. It is stored state, not a computed value.
type Owner struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string     `gorm:"not null" json:"name"`
	Email         string     `json:"email,omitempty"`
	LastContacted *time.Time `json:"last_contacted,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	User    User     `gorm:"foreignKey:UserID" json:"-"`
	Offices []Office `gorm:"many2many:office_owners" json:"-"`
}

func (o *Owner) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
