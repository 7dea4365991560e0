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

var assignmentLog = logrus.WithField("component", "assignments")

// AssignmentService drives the assignment lifecycle: creation against a
// validated (project skill, volunteer skill) pair, status transitions with a
// terminal completed state, and reconciliation of the owning project's
// derived status. Every mutation runs inside one transaction so the
// assignment and the project status always commit together.
type AssignmentService struct {
	db *gorm.DB
}

// NewAssignmentService creates a new assignment service instance
func NewAssignmentService(db *gorm.DB) *AssignmentService {
	return &AssignmentService{db: db}
}

// CreateAssignment validates and creates a pending assignment.
// Preconditions, each failing fast with a distinct error:
//  1. the project skill requirement exists and is active
//  2. the volunteer skill link exists and is active
//  3. both reference the same skill
//  4. no pending/accepted assignment exists for the same pair
func (s *AssignmentService) CreateAssignment(req dto.CreateAssignmentRequest) (dto.AssignmentResponse, error) {
	assignmentLog.Infof("creating assignment for project_skill=%s volunteer_skill=%s",
		req.ProjectSkillID, req.VolunteerSkillID)

	var created models.Assignment

	err := s.db.Transaction(func(tx *gorm.DB) error {
		projectSkillRepo := repositories.NewProjectSkillRepository(tx)
		volunteerSkillRepo := repositories.NewVolunteerSkillRepository(tx)
		assignmentRepo := repositories.NewAssignmentRepository(tx)

		projectSkill, err := projectSkillRepo.FindActiveByID(req.ProjectSkillID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				assignmentLog.Warnf("project skill %s not found", req.ProjectSkillID)
				return apperrors.NotFound("project skill not found")
			}
			return err
		}

		volunteerSkill, err := volunteerSkillRepo.FindActiveByID(req.VolunteerSkillID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				assignmentLog.Warnf("volunteer skill %s not found", req.VolunteerSkillID)
				return apperrors.NotFound("volunteer skill not found")
			}
			return err
		}

		if projectSkill.SkillID != volunteerSkill.SkillID {
			assignmentLog.Warnf("skills do not match: project has %s, volunteer has %s",
				projectSkill.SkillID, volunteerSkill.SkillID)
			return apperrors.InvalidArgument("volunteer skill does not match project skill")
		}

		exists, err := assignmentRepo.ExistsActivePair(req.ProjectSkillID, req.VolunteerSkillID)
		if err != nil {
			return err
		}
		if exists {
			assignmentLog.Warnf("active assignment already exists for pair (%s, %s)",
				req.ProjectSkillID, req.VolunteerSkillID)
			return apperrors.Conflict("assignment already exists for this project and volunteer")
		}

		created, err = assignmentRepo.Create(models.Assignment{
			ProjectSkillID:   req.ProjectSkillID,
			VolunteerSkillID: req.VolunteerSkillID,
			Status:           models.AssignmentPending,
		})
		return err
	})
	if err != nil {
		return dto.AssignmentResponse{}, s.classify(err, "error creating assignment")
	}

	assignmentLog.Infof("assignment %s created", created.ID)
	return s.enriched(created.ID)
}

// UpdateStatus applies a lifecycle transition and reconciles the owning
// project's status within the same transaction. Completed is terminal.
func (s *AssignmentService) UpdateStatus(assignmentID string, newStatus models.AssignmentStatus) (dto.AssignmentResponse, error) {
	switch newStatus {
	case models.AssignmentPending, models.AssignmentAccepted,
		models.AssignmentRejected, models.AssignmentCompleted:
	default:
		return dto.AssignmentResponse{}, apperrors.InvalidArgument("unknown assignment status")
	}

	assignmentLog.Infof("updating assignment %s status to %s", assignmentID, newStatus)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		assignmentRepo := repositories.NewAssignmentRepository(tx)

		assignment, err := assignmentRepo.FindActiveByID(assignmentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				assignmentLog.Warnf("assignment %s not found", assignmentID)
				return apperrors.NotFound("assignment not found")
			}
			return err
		}

		if assignment.Status == models.AssignmentCompleted {
			assignmentLog.Warn("attempt to modify completed assignment")
			return apperrors.InvalidState("completed assignment cannot be modified")
		}

		oldStatus := assignment.Status
		if err := assignmentRepo.UpdateStatus(assignmentID, newStatus); err != nil {
			return err
		}

		return s.reconcileProjectStatus(tx, assignment.ProjectSkillID, oldStatus, newStatus)
	})
	if err != nil {
		return dto.AssignmentResponse{}, s.classify(err, "error updating assignment status")
	}

	assignmentLog.Infof("assignment %s status updated to %s", assignmentID, newStatus)
	return s.enriched(assignmentID)
}

// reconcileProjectStatus derives the project status from the transition that
// just happened:
//   - first acceptance marks the project assigned
//   - a rejection that leaves no non-rejected assignment marks it not_assigned
//   - a completion that leaves no open assignment marks it completed
func (s *AssignmentService) reconcileProjectStatus(tx *gorm.DB, projectSkillID string, oldStatus, newStatus models.AssignmentStatus) error {
	// The requirement may have been soft-deleted since the assignment was
	// created; it still identifies the owning project.
	var projectSkill models.ProjectSkill
	if err := tx.Unscoped().First(&projectSkill, "id = ?", projectSkillID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	projectRepo := repositories.NewProjectRepository(tx)
	project, err := projectRepo.FindByID(projectSkill.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	assignmentRepo := repositories.NewAssignmentRepository(tx)

	if newStatus == models.AssignmentAccepted && oldStatus != models.AssignmentAccepted {
		assignmentLog.Infof("project %s status updated to assigned", project.ID)
		return projectRepo.UpdateStatus(project.ID, models.ProjectAssigned)
	}

	if newStatus == models.AssignmentRejected {
		open, err := assignmentRepo.CountForProjectWithStatusNot(project.ID, models.AssignmentRejected)
		if err != nil {
			return err
		}
		if open == 0 {
			assignmentLog.Infof("project %s status updated to not_assigned", project.ID)
			return projectRepo.UpdateStatus(project.ID, models.ProjectNotAssigned)
		}
	}

	if newStatus == models.AssignmentCompleted {
		open, err := assignmentRepo.CountForProjectWithStatusNot(project.ID, models.AssignmentCompleted)
		if err != nil {
			return err
		}
		if open == 0 {
			assignmentLog.Infof("project %s status updated to completed", project.ID)
			return projectRepo.UpdateStatus(project.ID, models.ProjectCompleted)
		}
	}

	return nil
}

// GetAssignment retrieves one enriched assignment
func (s *AssignmentService) GetAssignment(assignmentID string) (dto.AssignmentResponse, error) {
	return s.enriched(assignmentID)
}

// GetAssignmentsByVolunteer retrieves every non-deleted assignment reachable
// through the volunteer's links, active or removed. A volunteer without
// links gets an empty list.
func (s *AssignmentService) GetAssignmentsByVolunteer(volunteerID string) ([]dto.AssignmentResponse, error) {
	volunteerSkillRepo := repositories.NewVolunteerSkillRepository(s.db)

	linkIDs, err := volunteerSkillRepo.AllIDsByVolunteer(volunteerID)
	if err != nil {
		return nil, s.classify(err, "error retrieving assignments")
	}
	if len(linkIDs) == 0 {
		return []dto.AssignmentResponse{}, nil
	}

	assignmentRepo := repositories.NewAssignmentRepository(s.db)
	assignments, err := assignmentRepo.FindByVolunteerSkillIDs(linkIDs)
	if err != nil {
		return nil, s.classify(err, "error retrieving assignments")
	}

	responses := make([]dto.AssignmentResponse, 0, len(assignments))
	for _, assignment := range assignments {
		responses = append(responses, toAssignmentResponse(assignment))
	}
	return responses, nil
}

// GetAssignmentsByProject retrieves every non-deleted assignment reachable
// through the project's requirements, active or removed
func (s *AssignmentService) GetAssignmentsByProject(projectID string) ([]dto.AssignmentResponse, error) {
	projectSkillRepo := repositories.NewProjectSkillRepository(s.db)

	requirementIDs, err := projectSkillRepo.AllIDsByProject(projectID)
	if err != nil {
		return nil, s.classify(err, "error retrieving assignments")
	}
	if len(requirementIDs) == 0 {
		return []dto.AssignmentResponse{}, nil
	}

	assignmentRepo := repositories.NewAssignmentRepository(s.db)
	assignments, err := assignmentRepo.FindByProjectSkillIDs(requirementIDs)
	if err != nil {
		return nil, s.classify(err, "error retrieving assignments")
	}

	responses := make([]dto.AssignmentResponse, 0, len(assignments))
	for _, assignment := range assignments {
		responses = append(responses, toAssignmentResponse(assignment))
	}
	return responses, nil
}

func (s *AssignmentService) enriched(assignmentID string) (dto.AssignmentResponse, error) {
	assignmentRepo := repositories.NewAssignmentRepository(s.db)
	assignment, err := assignmentRepo.FindEnrichedByID(assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AssignmentResponse{}, apperrors.NotFound("assignment not found")
		}
		return dto.AssignmentResponse{}, s.classify(err, "error retrieving assignment")
	}
	return toAssignmentResponse(assignment), nil
}

// classify keeps typed errors as-is and hides persistence detail behind an
// internal error with a short reason.
func (s *AssignmentService) classify(err error, message string) error {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		return err
	}
	assignmentLog.WithError(err).Error(message)
	return apperrors.Internal(message)
}

// toAssignmentResponse builds the enriched read model from preloaded
// relations without mutating the persisted entity
func toAssignmentResponse(assignment models.Assignment) dto.AssignmentResponse {
	response := dto.AssignmentResponse{
		ID:               assignment.ID,
		ProjectSkillID:   assignment.ProjectSkillID,
		VolunteerSkillID: assignment.VolunteerSkillID,
		Status:           assignment.Status,
		CreatedAt:        assignment.CreatedAt,
		UpdatedAt:        assignment.UpdatedAt,
	}

	if project := assignment.ProjectSkill.Project; project.ID != "" {
		response.Project = &dto.ProjectInfo{
			ID:          project.ID,
			Name:        project.Name,
			Description: project.Description,
		}
	}

	if volunteer := assignment.VolunteerSkill.Volunteer; volunteer.ID != "" {
		info := &dto.VolunteerInfo{
			ID:     volunteer.ID,
			UserID: volunteer.UserID,
		}
		if volunteer.User.ID != "" {
			info.UserName = volunteer.User.Name
		}
		response.Volunteer = info
	}

	if skill := assignment.ProjectSkill.Skill; skill.ID != "" {
		response.MatchedSkill = &dto.SkillInfo{
			ID:   skill.ID,
			Name: skill.Name,
		}
	}

	return response
}
