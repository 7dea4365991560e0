package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VolunteerSkill records that a volunteer possesses a skill. The link is a
// first-class row with its own id because assignments reference the link,
// not the (volunteer, skill) pair. At most one row ever exists per pair:
// re-adding a removed skill reactivates the soft-deleted row.
type VolunteerSkill struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid"`
	VolunteerID string         `json:"volunteerId" gorm:"type:uuid;not null;uniqueIndex:uq_volunteer_skill"`
	SkillID     string         `json:"skillId" gorm:"type:uuid;not null;uniqueIndex:uq_volunteer_skill"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Volunteer Volunteer `json:"volunteer,omitempty" gorm:"foreignKey:VolunteerID;constraint:OnDelete:CASCADE"`
	Skill     Skill     `json:"skill,omitempty" gorm:"foreignKey:SkillID"`
}

func (vs *VolunteerSkill) BeforeCreate(tx *gorm.DB) error {
	if vs.ID == "" {
		vs.ID = uuid.NewString()
	}
	return nil
}
