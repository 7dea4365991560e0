package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentStatus represents the lifecycle state of an assignment.
// completed is terminal.
type AssignmentStatus string

const (
	AssignmentPending   AssignmentStatus = "pending"
	AssignmentAccepted  AssignmentStatus = "accepted"
	AssignmentRejected  AssignmentStatus = "rejected"
	AssignmentCompleted AssignmentStatus = "completed"
)

// Assignment pairs one project skill requirement with one volunteer skill
// link. The uq_active_assignment partial unique index (created in
// database.Migrate, its WHERE clause cannot be expressed in an index tag)
// closes the check-then-insert race: only one pending/accepted assignment may
// exist per pair at a time.
type Assignment struct {
	ID               string           `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectSkillID   string           `json:"projectSkillId" gorm:"type:uuid;not null;index"`
	VolunteerSkillID string           `json:"volunteerSkillId" gorm:"type:uuid;not null;index"`
	Status           AssignmentStatus `json:"status" gorm:"type:varchar(10);default:'pending';not null"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
	DeletedAt        gorm.DeletedAt   `json:"-" gorm:"index"`

	// Relations
	ProjectSkill   ProjectSkill   `json:"projectSkill,omitempty" gorm:"foreignKey:ProjectSkillID"`
	VolunteerSkill VolunteerSkill `json:"volunteerSkill,omitempty" gorm:"foreignKey:VolunteerSkillID"`
}

func (a *Assignment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
