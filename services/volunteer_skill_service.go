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

var volunteerSkillLog = logrus.WithField("component", "volunteer-skills")

// VolunteerSkillService manages the volunteer side of the skill links.
// At most one row ever exists per (volunteer, skill) pair: removal soft
// deletes it, re-adding reactivates it.
type VolunteerSkillService struct {
	db    *gorm.DB
	cache *cache.Client
}

// NewVolunteerSkillService creates a new volunteer skill service instance.
// The cache may be nil.
func NewVolunteerSkillService(db *gorm.DB, cacheClient *cache.Client) *VolunteerSkillService {
	return &VolunteerSkillService{db: db, cache: cacheClient}
}

// AddSkill links a catalog skill to a volunteer, reactivating a previously
// removed link when one exists
func (s *VolunteerSkillService) AddSkill(ctx context.Context, volunteerID, skillID string) (models.VolunteerSkill, error) {
	volunteerSkillLog.Infof("adding skill %s to volunteer %s", skillID, volunteerID)

	var link models.VolunteerSkill

	err := s.db.Transaction(func(tx *gorm.DB) error {
		volunteerRepo := repositories.NewVolunteerRepository(tx)
		skillRepo := repositories.NewSkillRepository(tx)
		linkRepo := repositories.NewVolunteerSkillRepository(tx)

		if _, err := volunteerRepo.FindByID(volunteerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("volunteer not found")
			}
			return err
		}

		if _, err := skillRepo.FindByID(skillID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("skill not found")
			}
			return err
		}

		existing, err := linkRepo.FindPairAnyState(volunteerID, skillID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				link, err = linkRepo.Create(models.VolunteerSkill{
					VolunteerID: volunteerID,
					SkillID:     skillID,
				})
				return err
			}
			return err
		}

		if !existing.DeletedAt.Valid {
			volunteerSkillLog.Warnf("volunteer %s already has skill %s", volunteerID, skillID)
			return apperrors.Conflict("volunteer already has this skill")
		}

		if err := linkRepo.Reactivate(existing.ID); err != nil {
			return err
		}
		link, err = linkRepo.FindActiveByID(existing.ID)
		return err
	})
	if err != nil {
		return models.VolunteerSkill{}, classifyLinkError(volunteerSkillLog, err, "error adding skill to volunteer")
	}

	s.invalidateMatchingBySkill(ctx, skillID)
	volunteerSkillLog.Infof("skill %s linked to volunteer %s as link %s", skillID, volunteerID, link.ID)
	return link, nil
}

// RemoveSkill soft-deletes the active link between a volunteer and a skill.
// Assignments referencing the link keep their history; the link just can no
// longer start new assignments.
func (s *VolunteerSkillService) RemoveSkill(ctx context.Context, volunteerID, skillID string) error {
	volunteerSkillLog.Infof("removing skill %s from volunteer %s", skillID, volunteerID)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var link models.VolunteerSkill
		err := tx.First(&link, "volunteer_id = ? AND skill_id = ?", volunteerID, skillID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("skill not assigned to volunteer")
			}
			return err
		}
		return repositories.NewVolunteerSkillRepository(tx).Delete(link.ID)
	})
	if err != nil {
		return classifyLinkError(volunteerSkillLog, err, "error removing skill from volunteer")
	}

	s.invalidateMatchingBySkill(ctx, skillID)
	return nil
}

// ListSkills returns the volunteer's active skill links
func (s *VolunteerSkillService) ListSkills(volunteerID string) (dto.VolunteerSkillsResponse, error) {
	volunteerRepo := repositories.NewVolunteerRepository(s.db)
	if _, err := volunteerRepo.FindByID(volunteerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.VolunteerSkillsResponse{}, apperrors.NotFound("volunteer not found")
		}
		return dto.VolunteerSkillsResponse{}, classifyLinkError(volunteerSkillLog, err, "error listing volunteer skills")
	}

	linkRepo := repositories.NewVolunteerSkillRepository(s.db)
	links, err := linkRepo.FindActiveByVolunteer(volunteerID)
	if err != nil {
		return dto.VolunteerSkillsResponse{}, classifyLinkError(volunteerSkillLog, err, "error listing volunteer skills")
	}

	response := dto.VolunteerSkillsResponse{
		VolunteerID: volunteerID,
		Skills:      make([]dto.VolunteerSkillLinkInfo, 0, len(links)),
	}
	for _, link := range links {
		response.Skills = append(response.Skills, dto.VolunteerSkillLinkInfo{
			ID:      link.ID,
			SkillID: link.SkillID,
			Name:    link.Skill.Name,
			AddedAt: link.CreatedAt,
		})
	}
	return response, nil
}

// invalidateMatchingBySkill drops cached matching results of every project
// currently requiring the skill. A changed volunteer link affects all of them.
func (s *VolunteerSkillService) invalidateMatchingBySkill(ctx context.Context, skillID string) {
	if s.cache == nil {
		return
	}

	projectIDs, err := repositories.NewProjectSkillRepository(s.db).ActiveProjectIDsBySkill(skillID)
	if err != nil {
		volunteerSkillLog.WithError(err).Warn("failed to resolve projects for cache invalidation")
		return
	}
	for _, projectID := range projectIDs {
		if err := s.cache.Delete(ctx, matchingCacheKey(projectID)); err != nil {
			volunteerSkillLog.WithError(err).Warn("failed to invalidate matching cache")
		}
	}
}

// classifyLinkError keeps typed errors and wraps the rest as internal
func classifyLinkError(log *logrus.Entry, err error, message string) error {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		return err
	}
	log.WithError(err).Error(message)
	return apperrors.Internal(message)
}
