package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectSkill records that a project requires a skill. Same addressable
// link-row semantics as VolunteerSkill, scoped to (project, skill).
type ProjectSkill struct {
	ID        string         `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID string         `json:"projectId" gorm:"type:uuid;not null;uniqueIndex:uq_project_skill"`
	SkillID   string         `json:"skillId" gorm:"type:uuid;not null;uniqueIndex:uq_project_skill"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Skill   Skill   `json:"skill,omitempty" gorm:"foreignKey:SkillID"`
}

func (ps *ProjectSkill) BeforeCreate(tx *gorm.DB) error {
	if ps.ID == "" {
		ps.ID = uuid.NewString()
	}
	return nil
}
