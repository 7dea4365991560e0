package dto

import (
	"time"

	"github.com/volunhub/models"
)

// CreateVolunteerRequest creates a volunteer profile for a user account
type CreateVolunteerRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// UpdateVolunteerRequest changes the availability status of a volunteer
type UpdateVolunteerRequest struct {
	Status models.VolunteerStatus `json:"status" binding:"required"`
}

// AddSkillRequest attaches an existing catalog skill to a volunteer or project
type AddSkillRequest struct {
	SkillID string `json:"skillId" binding:"required"`
}

// VolunteerSkillsResponse lists the active skill links of a volunteer
type VolunteerSkillsResponse struct {
	VolunteerID string                   `json:"volunteerId"`
	Skills      []VolunteerSkillLinkInfo `json:"skills"`
}

// VolunteerSkillLinkInfo is one link row with its skill
type VolunteerSkillLinkInfo struct {
	ID      string    `json:"id"`
	SkillID string    `json:"skillId"`
	Name    string    `json:"name"`
	AddedAt time.Time `json:"addedAt"`
}
