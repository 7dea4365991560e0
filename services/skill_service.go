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

var skillLog = logrus.WithField("component", "skills")

// SkillService handles business logic for the skill catalog
type SkillService struct {
	db *gorm.DB
}

// NewSkillService creates a new skill service instance
func NewSkillService(db *gorm.DB) *SkillService {
	return &SkillService{db: db}
}

// ListSkills retrieves all active skills
func (s *SkillService) ListSkills() ([]models.Skill, error) {
	skills, err := repositories.NewSkillRepository(s.db).FindAll()
	if err != nil {
		skillLog.WithError(err).Error("error listing skills")
		return nil, apperrors.Internal("error listing skills")
	}
	return skills, nil
}

// GetSkill retrieves one active skill
func (s *SkillService) GetSkill(id string) (models.Skill, error) {
	skill, err := repositories.NewSkillRepository(s.db).FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			skillLog.Warnf("skill %s not found", id)
			return models.Skill{}, apperrors.NotFound("skill not found")
		}
		skillLog.WithError(err).Error("error retrieving skill")
		return models.Skill{}, apperrors.Internal("error retrieving skill")
	}
	return skill, nil
}

// CreateSkill adds a skill to the catalog. Names are unique among active
// skills.
func (s *SkillService) CreateSkill(req dto.CreateSkillRequest) (models.Skill, error) {
	skillLog.Infof("creating skill %q", req.Name)

	repo := repositories.NewSkillRepository(s.db)

	exists, err := repo.ExistsByName(req.Name)
	if err != nil {
		skillLog.WithError(err).Error("error creating skill")
		return models.Skill{}, apperrors.Internal("error creating skill")
	}
	if exists {
		skillLog.Warnf("skill %q already exists", req.Name)
		return models.Skill{}, apperrors.Conflict("skill already exists")
	}

	skill, err := repo.Create(models.Skill{Name: req.Name})
	if err != nil {
		skillLog.WithError(err).Error("error creating skill")
		return models.Skill{}, apperrors.Internal("error creating skill")
	}
	return skill, nil
}

// UpdateSkill renames a skill
func (s *SkillService) UpdateSkill(id string, req dto.UpdateSkillRequest) (models.Skill, error) {
	repo := repositories.NewSkillRepository(s.db)

	skill, err := s.GetSkill(id)
	if err != nil {
		return models.Skill{}, err
	}

	if skill.Name != req.Name {
		exists, err := repo.ExistsByName(req.Name)
		if err != nil {
			skillLog.WithError(err).Error("error updating skill")
			return models.Skill{}, apperrors.Internal("error updating skill")
		}
		if exists {
			return models.Skill{}, apperrors.Conflict("skill already exists")
		}
	}

	skill.Name = req.Name
	if err := repo.Update(skill); err != nil {
		skillLog.WithError(err).Error("error updating skill")
		return models.Skill{}, apperrors.Internal("error updating skill")
	}
	skillLog.Infof("skill %s renamed to %q", id, req.Name)
	return skill, nil
}

// DeleteSkill removes a skill from the catalog (soft delete). Existing
// assignments keep their history; the skill just stops matching.
func (s *SkillService) DeleteSkill(id string) error {
	if _, err := s.GetSkill(id); err != nil {
		return err
	}
	if err := repositories.NewSkillRepository(s.db).Delete(id); err != nil {
		skillLog.WithError(err).Error("error deleting skill")
		return apperrors.Internal("error deleting skill")
	}
	skillLog.Infof("skill %s deleted", id)
	return nil
}
