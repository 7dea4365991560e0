package services

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/volunhub/apperrors"
	"github.com/volunhub/dto"
	"github.com/volunhub/models"
	"github.com/volunhub/repositories"
	"gorm.io/gorm"
)

var projectLog = logrus.WithField("component", "projects")

// ProjectService handles business logic for projects
type ProjectService struct {
	db *gorm.DB
}

// NewProjectService creates a new project service instance
func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

// ListProjects retrieves projects with pagination, filtering and sorting
func (s *ProjectService) ListProjects(filter dto.ProjectFilter) (dto.ProjectListResponse, error) {
	var response dto.ProjectListResponse

	// Set defaults if not provided
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 10
	}
	if filter.SortBy == "" {
		filter.SortBy = "created_at"
	}
	if filter.SortOrder != "asc" && filter.SortOrder != "desc" {
		filter.SortOrder = "desc"
	}

	// Valid sort columns (whitelist approach for security)
	validSortColumns := map[string]bool{
		"created_at": true,
		"updated_at": true,
		"deadline":   true,
		"name":       true,
		"priority":   true,
	}
	if !validSortColumns[filter.SortBy] {
		filter.SortBy = "created_at"
	}

	projects, totalCount, err := repositories.NewProjectRepository(s.db).FindWithPagination(
		filter.Page,
		filter.PageSize,
		filter.SortBy,
		filter.SortOrder,
		filter.Search,
	)
	if err != nil {
		projectLog.WithError(err).Error("error listing projects")
		return response, apperrors.Internal("error listing projects")
	}

	totalPages := int(totalCount) / filter.PageSize
	if int(totalCount)%filter.PageSize > 0 {
		totalPages++
	}

	response = dto.ProjectListResponse{
		Projects:   projects,
		TotalCount: totalCount,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}
	return response, nil
}

// GetProject retrieves one active project
func (s *ProjectService) GetProject(id string) (models.Project, error) {
	project, err := repositories.NewProjectRepository(s.db).FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			projectLog.Warnf("project %s not found", id)
			return models.Project{}, apperrors.NotFound("project not found")
		}
		projectLog.WithError(err).Error("error retrieving project")
		return models.Project{}, apperrors.Internal("error retrieving project")
	}
	return project, nil
}

// CreateProject registers a new project. Names are unique among active
// projects.
func (s *ProjectService) CreateProject(req dto.CreateProjectRequest) (models.Project, error) {
	projectLog.Infof("creating project %q", req.Name)

	repo := repositories.NewProjectRepository(s.db)

	exists, err := repo.ExistsByName(req.Name)
	if err != nil {
		projectLog.WithError(err).Error("error creating project")
		return models.Project{}, apperrors.Internal("error creating project")
	}
	if exists {
		projectLog.Warnf("project %q already exists", req.Name)
		return models.Project{}, apperrors.Conflict("project already exists")
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	project, err := repo.Create(models.Project{
		Name:        req.Name,
		Description: req.Description,
		Deadline:    req.Deadline,
		Status:      models.ProjectNotAssigned,
		Priority:    priority,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		projectLog.WithError(err).Error("error creating project")
		return models.Project{}, apperrors.Internal("error creating project")
	}
	return project, nil
}

// UpdateProject applies a partial update. The status field is rejected once
// the project has assignments: from then on the aggregator owns it.
func (s *ProjectService) UpdateProject(id string, req dto.UpdateProjectRequest) (models.Project, error) {
	project, err := s.GetProject(id)
	if err != nil {
		return models.Project{}, err
	}

	if req.Status != nil && *req.Status != project.Status {
		count, err := repositories.NewAssignmentRepository(s.db).CountForProject(id)
		if err != nil {
			projectLog.WithError(err).Error("error updating project")
			return models.Project{}, apperrors.Internal("error updating project")
		}
		if count > 0 {
			return models.Project{}, apperrors.InvalidState("project status is derived from its assignments")
		}
		project.Status = *req.Status
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Deadline != nil {
		project.Deadline = req.Deadline
	}
	if req.Priority != nil {
		project.Priority = *req.Priority
	}
	if req.CategoryID != nil {
		project.CategoryID = req.CategoryID
	}

	if err := repositories.NewProjectRepository(s.db).Update(project); err != nil {
		projectLog.WithError(err).Error("error updating project")
		return models.Project{}, apperrors.Internal("error updating project")
	}
	projectLog.Infof("project %s updated", id)
	return project, nil
}

// DeleteProject soft-deletes a project together with its skill requirements
func (s *ProjectService) DeleteProject(id string) error {
	if _, err := s.GetProject(id); err != nil {
		return err
	}
	if err := repositories.NewProjectRepository(s.db).Delete(id); err != nil {
		projectLog.WithError(err).Error("error deleting project")
		return apperrors.Internal("error deleting project")
	}
	projectLog.Infof("project %s deleted", id)
	return nil
}
