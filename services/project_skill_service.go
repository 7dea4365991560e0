package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/volunhub/apperrors"
	"github.com/volunhub/cache"
	"github.com/volunhub/dto"
	"github.com/volunhub/models"
	"github.com/volunhub/repositories"
	"gorm.io/gorm"
)

var projectSkillLog = logrus.WithField("component", "project-skills")

// ProjectSkillService manages the requirement side of the skill links, with
// the same reactivation-not-duplication semantics as the volunteer side.
type ProjectSkillService struct {
	db    *gorm.DB
	cache *cache.Client
}

// NewProjectSkillService creates a new project skill service instance. The
// cache may be nil.
func NewProjectSkillService(db *gorm.DB, cacheClient *cache.Client) *ProjectSkillService {
	return &ProjectSkillService{db: db, cache: cacheClient}
}

// AddSkill adds a skill requirement to a project, reactivating a previously
// removed requirement when one exists
func (s *ProjectSkillService) AddSkill(ctx context.Context, projectID, skillID string) (models.ProjectSkill, error) {
	projectSkillLog.Infof("adding skill %s to project %s", skillID, projectID)

	var requirement models.ProjectSkill

	err := s.db.Transaction(func(tx *gorm.DB) error {
		projectRepo := repositories.NewProjectRepository(tx)
		skillRepo := repositories.NewSkillRepository(tx)
		requirementRepo := repositories.NewProjectSkillRepository(tx)

		if _, err := projectRepo.FindByID(projectID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("project not found")
			}
			return err
		}

		if _, err := skillRepo.FindByID(skillID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("skill not found")
			}
			return err
		}

		existing, err := requirementRepo.FindPairAnyState(projectID, skillID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				requirement, err = requirementRepo.Create(models.ProjectSkill{
					ProjectID: projectID,
					SkillID:   skillID,
				})
				return err
			}
			return err
		}

		if !existing.DeletedAt.Valid {
			projectSkillLog.Warnf("project %s already requires skill %s", projectID, skillID)
			return apperrors.Conflict("project already has this skill")
		}

		if err := requirementRepo.Reactivate(existing.ID); err != nil {
			return err
		}
		requirement, err = requirementRepo.FindActiveByID(existing.ID)
		return err
	})
	if err != nil {
		return models.ProjectSkill{}, classifyLinkError(projectSkillLog, err, "error adding skill to project")
	}

	s.invalidateMatching(ctx, projectID)
	projectSkillLog.Infof("skill %s required by project %s as requirement %s", skillID, projectID, requirement.ID)
	return requirement, nil
}

// RemoveSkill soft-deletes the active requirement between a project and a
// skill
func (s *ProjectSkillService) RemoveSkill(ctx context.Context, projectID, skillID string) error {
	projectSkillLog.Infof("removing skill %s from project %s", skillID, projectID)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var requirement models.ProjectSkill
		err := tx.First(&requirement, "project_id = ? AND skill_id = ?", projectID, skillID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("skill not assigned to project")
			}
			return err
		}
		return repositories.NewProjectSkillRepository(tx).Delete(requirement.ID)
	})
	if err != nil {
		return classifyLinkError(projectSkillLog, err, "error removing skill from project")
	}

	s.invalidateMatching(ctx, projectID)
	return nil
}

// ListSkills returns the project's active skill requirements
func (s *ProjectSkillService) ListSkills(projectID string) (dto.ProjectSkillsResponse, error) {
	projectRepo := repositories.NewProjectRepository(s.db)
	project, err := projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProjectSkillsResponse{}, apperrors.NotFound("project not found")
		}
		return dto.ProjectSkillsResponse{}, classifyLinkError(projectSkillLog, err, "error listing project skills")
	}

	requirementRepo := repositories.NewProjectSkillRepository(s.db)
	requirements, err := requirementRepo.FindActiveByProject(projectID)
	if err != nil {
		return dto.ProjectSkillsResponse{}, classifyLinkError(projectSkillLog, err, "error listing project skills")
	}

	response := dto.ProjectSkillsResponse{
		ProjectID:   project.ID,
		ProjectName: project.Name,
		Skills:      make([]dto.ProjectSkillLinkInfo, 0, len(requirements)),
	}
	for _, requirement := range requirements {
		response.Skills = append(response.Skills, dto.ProjectSkillLinkInfo{
			ID:      requirement.ID,
			SkillID: requirement.SkillID,
			Name:    requirement.Skill.Name,
			AddedAt: requirement.CreatedAt,
		})
	}
	return response, nil
}

func (s *ProjectSkillService) invalidateMatching(ctx context.Context, projectID string) {
	if err := s.cache.Delete(ctx, matchingCacheKey(projectID)); err != nil {
		projectSkillLog.WithError(err).Warn("failed to invalidate matching cache")
	}
}
