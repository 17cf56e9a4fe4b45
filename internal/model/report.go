// internal/model/report.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CallType categorizes how a communication happened.
type CallType string

const (
	CallPhone CallType = "phone"
	CallEmail CallType = "email"
	CallFOV   CallType = "fov" // field visit
	CallTeams CallType = "teams"
	CallOther CallType = "other"
)

// CallTypes lists the fixed communication codes in display order. The
// activity matrix columns follow this order.
func CallTypes() []CallType {
	return []CallType{CallPhone, CallEmail, CallFOV, CallTeams, CallOther}
}

// Valid reports whether t is one of the five fixed codes.
func (t CallType) Valid() bool {
	switch t {
	case CallPhone, CallEmail, CallFOV, CallTeams, CallOther:
		return true
	}
	return false
}

// Label returns the human-readable name for the code.
func (t CallType) Label() string {
	switch t {
	case CallPhone:
		return "Phone"
	case CallEmail:
		return "Email"
	case CallFOV:
		return "Field Visit"
	case CallTeams:
		return "Teams"
	default:
		return "Other"
	}
}

const DefaultVibe = 5

// Report is a committed communication log. Content and timestamps are
// immutable after creation; only the additional-owners set may change.
//
// Invariant: PrimaryOwnerID never appears in AdditionalOwners.
// Reports are always listed newest-first by CreatedAt.
type Report struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Subject        string     `json:"subject,omitempty"`
	Transcript     bool       `gorm:"not null;default:false" json:"transcript"`
	Content        string     `gorm:"not null" json:"content"`
	Vibe           int        `gorm:"not null;default:5" json:"vibe"`
	CallType       CallType   `gorm:"not null;default:'email'" json:"calltype"`
	EmployeeID     *uuid.UUID `gorm:"type:uuid;index" json:"employee_id,omitempty"`
	OfficeID       *uuid.UUID `gorm:"type:uuid;index" json:"office_id,omitempty"`
	PrimaryOwnerID uuid.UUID  `gorm:"type:uuid;not null;index" json:"primary_owner_id"`
	AuthorID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"author_id"`
	CreatedAt      time.Time  `json:"created_at"`

	Employee         *Employee `gorm:"foreignKey:EmployeeID" json:"-"`
	Office           *Office   `gorm:"foreignKey:OfficeID" json:"-"`
	PrimaryOwner     Owner     `gorm:"foreignKey:PrimaryOwnerID" json:"-"`
	Author           User      `gorm:"foreignKey:AuthorID" json:"-"`
	AdditionalOwners []Owner   `gorm:"many2many:report_additional_owners" json:"-"`
}

func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
