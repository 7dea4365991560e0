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

var categoryLog = logrus.WithField("component", "categories")

// CategoryService handles business logic for project categories
type CategoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new category service instance
func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// ListCategories retrieves all active categories
func (s *CategoryService) ListCategories() ([]models.Category, error) {
	categories, err := repositories.NewCategoryRepository(s.db).FindAll()
	if err != nil {
		categoryLog.WithError(err).Error("error listing categories")
		return nil, apperrors.Internal("error listing categories")
	}
	return categories, nil
}

// GetCategory retrieves one active category
func (s *CategoryService) GetCategory(id string) (models.Category, error) {
	category, err := repositories.NewCategoryRepository(s.db).FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Category{}, apperrors.NotFound("category not found")
		}
		categoryLog.WithError(err).Error("error retrieving category")
		return models.Category{}, apperrors.Internal("error retrieving category")
	}
	return category, nil
}

// CreateCategory adds a category
func (s *CategoryService) CreateCategory(req dto.CreateCategoryRequest) (models.Category, error) {
	category, err := repositories.NewCategoryRepository(s.db).Create(models.Category{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		categoryLog.WithError(err).Error("error creating category")
		return models.Category{}, apperrors.Internal("error creating category")
	}
	categoryLog.Infof("category %q created", req.Name)
	return category, nil
}

// UpdateCategory applies a partial update to a category
func (s *CategoryService) UpdateCategory(id string, req dto.UpdateCategoryRequest) (models.Category, error) {
	category, err := s.GetCategory(id)
	if err != nil {
		return models.Category{}, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}

	if err := repositories.NewCategoryRepository(s.db).Update(category); err != nil {
		categoryLog.WithError(err).Error("error updating category")
		return models.Category{}, apperrors.Internal("error updating category")
	}
	return category, nil
}

// DeleteCategory removes a category (soft delete)
func (s *CategoryService) DeleteCategory(id string) error {
	if _, err := s.GetCategory(id); err != nil {
		return err
	}
	if err := repositories.NewCategoryRepository(s.db).Delete(id); err != nil {
		categoryLog.WithError(err).Error("error deleting category")
		return apperrors.Internal("error deleting category")
	}
	return nil
}
