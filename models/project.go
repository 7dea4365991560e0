package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectStatus is derived from assignment lifecycle transitions once
// assignments exist for the project.
type ProjectStatus string

const (
	ProjectNotAssigned ProjectStatus = "not_assigned"
	ProjectAssigned    ProjectStatus = "assigned"
	ProjectCompleted   ProjectStatus = "completed"
)

// ProjectPriority represents how urgent a project is
type ProjectPriority string

const (
	PriorityHigh   ProjectPriority = "high"
	PriorityMedium ProjectPriority = "medium"
	PriorityLow    ProjectPriority = "low"
)

// Project represents a volunteer project
type Project struct {
	ID          string          `json:"id" gorm:"primaryKey;type:uuid"`
	Name        string          `json:"name" gorm:"not null"`
	Description string          `json:"description" gorm:"default:null"`
	Deadline    *time.Time      `json:"deadline" gorm:"default:null"`
	Status      ProjectStatus   `json:"status" gorm:"type:varchar(15);default:'not_assigned'"`
	Priority    ProjectPriority `json:"priority" gorm:"type:varchar(10);default:'medium'"`
	CategoryID  *string         `json:"categoryId" gorm:"type:uuid;index;default:null"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt  `json:"-" gorm:"index"`

	// Relations
	Category *Category      `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Skills   []ProjectSkill `json:"skills,omitempty" gorm:"foreignKey:ProjectID"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
