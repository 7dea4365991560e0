package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VolunteerStatus represents the availability state of a volunteer
type VolunteerStatus string

const (
	VolunteerActive    VolunteerStatus = "active"
	VolunteerInactive  VolunteerStatus = "inactive"
	VolunteerSuspended VolunteerStatus = "suspended"
)

// Volunteer represents a volunteer profile attached to a user account
type Volunteer struct {
	ID        string          `json:"id" gorm:"primaryKey;type:uuid"`
	UserID    string          `json:"userId" gorm:"type:uuid;not null;uniqueIndex"`
	Status    VolunteerStatus `json:"status" gorm:"type:varchar(10);default:'active'"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	DeletedAt gorm.DeletedAt  `json:"-" gorm:"index"`

	// Relations
	User   User             `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Skills []VolunteerSkill `json:"skills,omitempty" gorm:"foreignKey:VolunteerID"`
}

func (v *Volunteer) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
