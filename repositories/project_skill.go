package repositories

import (
	"github.com/volunhub/models"
	"gorm.io/gorm"
)

// ProjectSkillRepository handles database operations for project skill requirements
type ProjectSkillRepository struct {
	db *gorm.DB
}

// NewProjectSkillRepository creates a new project skill repository instance
func NewProjectSkillRepository(db *gorm.DB) *ProjectSkillRepository {
	return &ProjectSkillRepository{db: db}
}

// FindActiveByID retrieves a non-deleted requirement by its ID
func (r *ProjectSkillRepository) FindActiveByID(id string) (models.ProjectSkill, error) {
	var requirement models.ProjectSkill
	result := r.db.First(&requirement, "id = ?", id)
	return requirement, result.Error
}

// FindPairAnyState retrieves the requirement row for a (project, skill) pair
// including soft-deleted rows. Only one such row ever exists per pair.
func (r *ProjectSkillRepository) FindPairAnyState(projectID, skillID string) (models.ProjectSkill, error) {
	var requirement models.ProjectSkill
	result := r.db.Unscoped().First(&requirement, "project_id = ? AND skill_id = ?", projectID, skillID)
	return requirement, result.Error
}

// Create inserts a new requirement into the database
func (r *ProjectSkillRepository) Create(requirement models.ProjectSkill) (models.ProjectSkill, error) {
	result := r.db.Create(&requirement)
	return requirement, result.Error
}

// Reactivate clears deleted_at on a previously removed requirement
func (r *ProjectSkillRepository) Reactivate(id string) error {
	result := r.db.Unscoped().Model(&models.ProjectSkill{}).
		Where("id = ?", id).Update("deleted_at", nil)
	return result.Error
}

// Delete removes a requirement (soft delete)
func (r *ProjectSkillRepository) Delete(id string) error {
	result := r.db.Delete(&models.ProjectSkill{}, "id = ?", id)
	return result.Error
}

// FindActiveByProject retrieves the active requirements of a project whose
// skill is still in the catalog
func (r *ProjectSkillRepository) FindActiveByProject(projectID string) ([]models.ProjectSkill, error) {
	var requirements []models.ProjectSkill
	result := r.db.
		Joins("JOIN skills ON skills.id = project_skills.skill_id AND skills.deleted_at IS NULL").
		Where("project_skills.project_id = ?", projectID).
		Preload("Skill").
		Find(&requirements)
	return requirements, result.Error
}

// ActiveSkillIDs returns the skill ids a project currently requires,
// excluding soft-deleted skills and requirements
func (r *ProjectSkillRepository) ActiveSkillIDs(projectID string) ([]string, error) {
	var ids []string
	result := r.db.Model(&models.ProjectSkill{}).
		Joins("JOIN skills ON skills.id = project_skills.skill_id AND skills.deleted_at IS NULL").
		Where("project_skills.project_id = ?", projectID).
		Pluck("project_skills.skill_id", &ids)
	return ids, result.Error
}

// ActiveProjectIDsBySkill returns the ids of projects currently requiring a
// skill. Used to invalidate cached matching results when volunteer links
// change.
func (r *ProjectSkillRepository) ActiveProjectIDsBySkill(skillID string) ([]string, error) {
	var ids []string
	result := r.db.Model(&models.ProjectSkill{}).
		Where("skill_id = ?", skillID).
		Pluck("project_id", &ids)
	return ids, result.Error
}

// AllIDsByProject returns the ids of every requirement a project ever had,
// active or removed
func (r *ProjectSkillRepository) AllIDsByProject(projectID string) ([]string, error) {
	var ids []string
	result := r.db.Unscoped().Model(&models.ProjectSkill{}).
		Where("project_id = ?", projectID).
		Pluck("id", &ids)
	return ids, result.Error
}
