package repositories

import (
	"github.com/volunhub/models"
	"gorm.io/gorm"
)

// CategoryRepository handles database operations for categories
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// FindAll retrieves all active categories
func (r *CategoryRepository) FindAll() ([]models.Category, error) {
	var categories []models.Category
	result := r.db.Find(&categories)
	return categories, result.Error
}

// FindByID retrieves a category by its ID
func (r *CategoryRepository) FindByID(id string) (models.Category, error) {
	var category models.Category
	result := r.db.First(&category, "id = ?", id)
	return category, result.Error
}

// Create inserts a new category into the database
func (r *CategoryRepository) Create(category models.Category) (models.Category, error) {
	result := r.db.Create(&category)
	return category, result.Error
}

// Update modifies an existing category
func (r *CategoryRepository) Update(category models.Category) error {
	result := r.db.Save(&category)
	return result.Error
}

// Delete removes a category from the database (soft delete)
func (r *CategoryRepository) Delete(id string) error {
	result := r.db.Delete(&models.Category{}, "id = ?", id)
	return result.Error
}
