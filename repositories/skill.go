package repositories

import (
	"github.com/volunhub/models"
	"gorm.io/gorm"
)

// SkillRepository handles database operations for the skill catalog
type SkillRepository struct {
	db *gorm.DB
}

// NewSkillRepository creates a new skill repository instance
func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{db: db}
}

// FindAll retrieves all active skills
func (r *SkillRepository) FindAll() ([]models.Skill, error) {
	var skills []models.Skill
	result := r.db.Order("name asc").Find(&skills)
	return skills, result.Error
}

// FindByID retrieves an active skill by its ID
func (r *SkillRepository) FindByID(id string) (models.Skill, error) {
	var skill models.Skill
	result := r.db.First(&skill, "id = ?", id)
	return skill, result.Error
}

// ExistsByName checks whether an active skill with the given name exists
func (r *SkillRepository) ExistsByName(name string) (bool, error) {
	var count int64
	result := r.db.Model(&models.Skill{}).Where("name = ?", name).Count(&count)
	return count > 0, result.Error
}

// Create inserts a new skill into the database
func (r *SkillRepository) Create(skill models.Skill) (models.Skill, error) {
	result := r.db.Create(&skill)
	return skill, result.Error
}

// Update modifies an existing skill
func (r *SkillRepository) Update(skill models.Skill) error {
	result := r.db.Save(&skill)
	return result.Error
}

// Delete removes a skill from the catalog (soft delete). Historical
// assignments keep referencing the row.
func (r *SkillRepository) Delete(id string) error {
	result := r.db.Delete(&models.Skill{}, "id = ?", id)
	return result.Error
}
