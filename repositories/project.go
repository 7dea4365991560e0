package repositories

import (
	"github.com/volunhub/models"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// FindByID retrieves an active project by its ID
func (r *ProjectRepository) FindByID(id string) (models.Project, error) {
	var project models.Project
	result := r.db.Preload("Category").First(&project, "id = ?", id)
	return project, result.Error
}

// ExistsByName checks whether an active project with the given name exists
func (r *ProjectRepository) ExistsByName(name string) (bool, error) {
	var count int64
	result := r.db.Model(&models.Project{}).Where("name = ?", name).Count(&count)
	return count > 0, result.Error
}

// Create inserts a new project into the database
func (r *ProjectRepository) Create(project models.Project) (models.Project, error) {
	result := r.db.Create(&project)
	return project, result.Error
}

// Update modifies an existing project
func (r *ProjectRepository) Update(project models.Project) error {
	result := r.db.Save(&project)
	return result.Error
}

// UpdateStatus sets the derived project status
func (r *ProjectRepository) UpdateStatus(id string, status models.ProjectStatus) error {
	result := r.db.Model(&models.Project{}).Where("id = ?", id).Update("status", status)
	return result.Error
}

// Delete removes a project and its skill requirements (soft delete)
func (r *ProjectRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectSkill{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, "id = ?", id).Error
	})
}

// FindWithPagination retrieves projects with pagination, filtering and sorting
func (r *ProjectRepository) FindWithPagination(
	page, pageSize int,
	sortBy, sortOrder string,
	search string) ([]models.Project, int64, error) {

	var projects []models.Project
	var totalCount int64

	db := r.db.Model(&models.Project{})

	if search != "" {
		searchPattern := "%" + search + "%"
		db = db.Where("(name LIKE ? OR description LIKE ?)", searchPattern, searchPattern)
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize

	orderString := sortBy + " " + sortOrder
	if err := db.Order(orderString).Limit(pageSize).Offset(offset).
		Preload("Category").Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	return projects, totalCount, nil
}
