package repositories

import (
	"github.com/volunhub/models"
	"gorm.io/gorm"
)

// VolunteerSkillRepository handles database operations for volunteer skill links
type VolunteerSkillRepository struct {
	db *gorm.DB
}

// NewVolunteerSkillRepository creates a new volunteer skill repository instance
func NewVolunteerSkillRepository(db *gorm.DB) *VolunteerSkillRepository {
	return &VolunteerSkillRepository{db: db}
}

// FindActiveByID retrieves a non-deleted link by its ID
func (r *VolunteerSkillRepository) FindActiveByID(id string) (models.VolunteerSkill, error) {
	var link models.VolunteerSkill
	result := r.db.First(&link, "id = ?", id)
	return link, result.Error
}

// FindPairAnyState retrieves the link row for a (volunteer, skill) pair
// including soft-deleted rows. Only one such row ever exists per pair.
func (r *VolunteerSkillRepository) FindPairAnyState(volunteerID, skillID string) (models.VolunteerSkill, error) {
	var link models.VolunteerSkill
	result := r.db.Unscoped().First(&link, "volunteer_id = ? AND skill_id = ?", volunteerID, skillID)
	return link, result.Error
}

// Create inserts a new link into the database
func (r *VolunteerSkillRepository) Create(link models.VolunteerSkill) (models.VolunteerSkill, error) {
	result := r.db.Create(&link)
	return link, result.Error
}

// Reactivate clears deleted_at on a previously removed link
func (r *VolunteerSkillRepository) Reactivate(id string) error {
	result := r.db.Unscoped().Model(&models.VolunteerSkill{}).
		Where("id = ?", id).Update("deleted_at", nil)
	return result.Error
}

// Delete removes a link (soft delete). Historical assignments keep
// referencing the row.
func (r *VolunteerSkillRepository) Delete(id string) error {
	result := r.db.Delete(&models.VolunteerSkill{}, "id = ?", id)
	return result.Error
}

// FindActiveByVolunteer retrieves the active links of a volunteer whose
// skill is still in the catalog
func (r *VolunteerSkillRepository) FindActiveByVolunteer(volunteerID string) ([]models.VolunteerSkill, error) {
	var links []models.VolunteerSkill
	result := r.db.
		Joins("JOIN skills ON skills.id = volunteer_skills.skill_id AND skills.deleted_at IS NULL").
		Where("volunteer_skills.volunteer_id = ?", volunteerID).
		Preload("Skill").
		Find(&links)
	return links, result.Error
}

// AllIDsByVolunteer returns the ids of every link a volunteer ever had,
// active or removed. Assignment history is reachable through removed links.
func (r *VolunteerSkillRepository) AllIDsByVolunteer(volunteerID string) ([]string, error) {
	var ids []string
	result := r.db.Unscoped().Model(&models.VolunteerSkill{}).
		Where("volunteer_id = ?", volunteerID).
		Pluck("id", &ids)
	return ids, result.Error
}

// FindActiveBySkillIDs retrieves active links of active volunteers whose
// skill id is in the given set. Used by the matcher.
func (r *VolunteerSkillRepository) FindActiveBySkillIDs(skillIDs []string) ([]models.VolunteerSkill, error) {
	var links []models.VolunteerSkill
	result := r.db.
		Joins("JOIN volunteers ON volunteers.id = volunteer_skills.volunteer_id AND volunteers.deleted_at IS NULL AND volunteers.status = ?", models.VolunteerActive).
		Where("volunteer_skills.skill_id IN ?", skillIDs).
		Preload("Volunteer.User").
		Preload("Skill").
		Find(&links)
	return links, result.Error
}
