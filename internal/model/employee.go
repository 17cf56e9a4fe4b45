// internal/model/employee.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultPotential = 5

// Employee is a person working in an office. The office owns its employees
// exclusively: deleting the office deletes them.
type Employee struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OfficeID  uuid.UUID `gorm:"type:uuid;not null;index" json:"office_id"`
	Name      string    `gorm:"not null" json:"name"`
	Position  string    `gorm:"not null" json:"position"`
	Email     string    `json:"email,omitempty"`
	Potential int       `gorm:"not null;default:5" json:"potential"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Office Office `gorm:"foreignKey:OfficeID" json:"-"`
}

func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
