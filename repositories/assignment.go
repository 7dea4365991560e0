package repositories

import (
	"github.com/volunhub/models"
	"gorm.io/gorm"
)

// AssignmentRepository handles database operations for assignments
type AssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository instance
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// unscopedLinks preloads the link rows and their neighbours without the
// soft-delete scope. History must stay readable after a link, skill or
// project is removed from the catalog.
func (r *AssignmentRepository) unscopedLinks(db *gorm.DB) *gorm.DB {
	unscoped := func(db *gorm.DB) *gorm.DB { return db.Unscoped() }
	return db.
		Preload("ProjectSkill", unscoped).
		Preload("ProjectSkill.Project", unscoped).
		Preload("ProjectSkill.Skill", unscoped).
		Preload("VolunteerSkill", unscoped).
		Preload("VolunteerSkill.Volunteer", unscoped).
		Preload("VolunteerSkill.Volunteer.User", unscoped).
		Preload("VolunteerSkill.Skill", unscoped)
}

// FindActiveByID retrieves a non-deleted assignment by its ID
func (r *AssignmentRepository) FindActiveByID(id string) (models.Assignment, error) {
	var assignment models.Assignment
	result := r.db.First(&assignment, "id = ?", id)
	return assignment, result.Error
}

// FindEnrichedByID retrieves an assignment with project, volunteer and
// matched skill loaded
func (r *AssignmentRepository) FindEnrichedByID(id string) (models.Assignment, error) {
	var assignment models.Assignment
	result := r.unscopedLinks(r.db).First(&assignment, "id = ?", id)
	return assignment, result.Error
}

// ExistsActivePair checks for a non-deleted pending/accepted assignment on
// the same (project skill, volunteer skill) pair
func (r *AssignmentRepository) ExistsActivePair(projectSkillID, volunteerSkillID string) (bool, error) {
	var count int64
	result := r.db.Model(&models.Assignment{}).
		Where("project_skill_id = ? AND volunteer_skill_id = ?", projectSkillID, volunteerSkillID).
		Where("status IN ?", []models.AssignmentStatus{models.AssignmentPending, models.AssignmentAccepted}).
		Count(&count)
	return count > 0, result.Error
}

// Create inserts a new assignment into the database
func (r *AssignmentRepository) Create(assignment models.Assignment) (models.Assignment, error) {
	result := r.db.Create(&assignment)
	return assignment, result.Error
}

// UpdateStatus sets the status of an assignment
func (r *AssignmentRepository) UpdateStatus(id string, status models.AssignmentStatus) error {
	result := r.db.Model(&models.Assignment{}).Where("id = ?", id).Update("status", status)
	return result.Error
}

// FindByVolunteerSkillIDs retrieves enriched assignments referencing any of
// the given volunteer skill links
func (r *AssignmentRepository) FindByVolunteerSkillIDs(linkIDs []string) ([]models.Assignment, error) {
	var assignments []models.Assignment
	result := r.unscopedLinks(r.db).
		Where("volunteer_skill_id IN ?", linkIDs).
		Order("created_at asc").
		Find(&assignments)
	return assignments, result.Error
}

// FindByProjectSkillIDs retrieves enriched assignments referencing any of
// the given project skill requirements
func (r *AssignmentRepository) FindByProjectSkillIDs(requirementIDs []string) ([]models.Assignment, error) {
	var assignments []models.Assignment
	result := r.unscopedLinks(r.db).
		Where("project_skill_id IN ?", requirementIDs).
		Order("created_at asc").
		Find(&assignments)
	return assignments, result.Error
}

// CountForProjectWithStatusNot counts non-deleted assignments of a project
// whose status differs from the given one. Requirements are joined without
// the soft-delete scope so removed links still count toward the aggregate.
func (r *AssignmentRepository) CountForProjectWithStatusNot(projectID string, status models.AssignmentStatus) (int64, error) {
	var count int64
	result := r.db.Model(&models.Assignment{}).
		Joins("JOIN project_skills ON project_skills.id = assignments.project_skill_id").
		Where("project_skills.project_id = ?", projectID).
		Where("assignments.status <> ?", status).
		Count(&count)
	return count, result.Error
}

// CountForProject counts non-deleted assignments of a project
func (r *AssignmentRepository) CountForProject(projectID string) (int64, error) {
	var count int64
	result := r.db.Model(&models.Assignment{}).
		Joins("JOIN project_skills ON project_skills.id = assignments.project_skill_id").
		Where("project_skills.project_id = ?", projectID).
		Count(&count)
	return count, result.Error
}

// FindAll retrieves every non-deleted assignment (export)
func (r *AssignmentRepository) FindAll() ([]models.Assignment, error) {
	var assignments []models.Assignment
	result := r.db.Order("created_at asc").Find(&assignments)
	return assignments, result.Error
}
