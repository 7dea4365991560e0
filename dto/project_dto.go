package dto

import (
	"time"

	"github.com/volunhub/models"
)

// ProjectFilter represents filter criteria for projects
type ProjectFilter struct {
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

// ProjectListResponse represents paginated project list response
type ProjectListResponse struct {
	Projects   []models.Project `json:"projects"`
	TotalCount int64            `json:"totalCount"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalPages int              `json:"totalPages"`
}

// CreateProjectRequest represents the request payload for creating a new project
type CreateProjectRequest struct {
	Name        string                 `json:"name" binding:"required"`
	Description string                 `json:"description"`
	Deadline    *time.Time             `json:"deadline"`
	Priority    models.ProjectPriority `json:"priority"`
	CategoryID  *string                `json:"categoryId"`
}

// UpdateProjectRequest represents the request payload for updating a project.
// Status is only honored while the project has no assignments; from then on
// the field is derived.
type UpdateProjectRequest struct {
	Name        *string                 `json:"name"`
	Description *string                 `json:"description"`
	Deadline    *time.Time              `json:"deadline"`
	Priority    *models.ProjectPriority `json:"priority"`
	Status      *models.ProjectStatus   `json:"status"`
	CategoryID  *string                 `json:"categoryId"`
}

// ProjectSkillsResponse lists the active skill requirements of a project
type ProjectSkillsResponse struct {
	ProjectID   string                  `json:"projectId"`
	ProjectName string                  `json:"projectName"`
	Skills      []ProjectSkillLinkInfo  `json:"skills"`
}

// ProjectSkillLinkInfo is one requirement row with its skill
type ProjectSkillLinkInfo struct {
	ID      string    `json:"id"`
	SkillID string    `json:"skillId"`
	Name    string    `json:"name"`
	AddedAt time.Time `json:"addedAt"`
}
