package dto

import (
	"time"

	"github.com/volunhub/models"
)

// CreateAssignmentRequest links one project skill requirement with one
// volunteer skill link
type CreateAssignmentRequest struct {
	ProjectSkillID   string `json:"projectSkillId" binding:"required"`
	VolunteerSkillID string `json:"volunteerSkillId" binding:"required"`
}

// UpdateAssignmentStatusRequest carries the requested lifecycle transition
type UpdateAssignmentStatusRequest struct {
	Status models.AssignmentStatus `json:"status" binding:"required"`
}

// SkillInfo is the skill slice of an enriched assignment
type SkillInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProjectInfo is the project slice of an enriched assignment
type ProjectInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// VolunteerInfo is the volunteer slice of an enriched assignment
type VolunteerInfo struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	UserName string `json:"userName,omitempty"`
}

// AssignmentResponse is the enriched read model returned by the lifecycle
// engine. It is built from a read-time join; the persisted entity never
// carries the joined data.
type AssignmentResponse struct {
	ID               string                  `json:"id"`
	ProjectSkillID   string                  `json:"projectSkillId"`
	VolunteerSkillID string                  `json:"volunteerSkillId"`
	Status           models.AssignmentStatus `json:"status"`
	CreatedAt        time.Time               `json:"createdAt"`
	UpdatedAt        time.Time               `json:"updatedAt"`
	Project          *ProjectInfo            `json:"project,omitempty"`
	Volunteer        *VolunteerInfo          `json:"volunteer,omitempty"`
	MatchedSkill     *SkillInfo              `json:"matchedSkill,omitempty"`
}
