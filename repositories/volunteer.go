package repositories

import (
	"github.com/volunhub/models"
	"gorm.io/gorm"
)

// VolunteerRepository handles database operations for volunteers
type VolunteerRepository struct {
	db *gorm.DB
}

// NewVolunteerRepository creates a new volunteer repository instance
func NewVolunteerRepository(db *gorm.DB) *VolunteerRepository {
	return &VolunteerRepository{db: db}
}

// FindAll retrieves all active volunteers with their user accounts
func (r *VolunteerRepository) FindAll() ([]models.Volunteer, error) {
	var volunteers []models.Volunteer
	result := r.db.Preload("User").Find(&volunteers)
	return volunteers, result.Error
}

// FindByID retrieves an active volunteer by its ID
func (r *VolunteerRepository) FindByID(id string) (models.Volunteer, error) {
	var volunteer models.Volunteer
	result := r.db.Preload("User").First(&volunteer, "id = ?", id)
	return volunteer, result.Error
}

// FindByUserID retrieves the volunteer profile belonging to a user account
func (r *VolunteerRepository) FindByUserID(userID string) (models.Volunteer, error) {
	var volunteer models.Volunteer
	result := r.db.First(&volunteer, "user_id = ?", userID)
	return volunteer, result.Error
}

// ExistsByUserID checks whether a user already has a volunteer profile
func (r *VolunteerRepository) ExistsByUserID(userID string) (bool, error) {
	var count int64
	result := r.db.Model(&models.Volunteer{}).Where("user_id = ?", userID).Count(&count)
	return count > 0, result.Error
}

// Create inserts a new volunteer into the database
func (r *VolunteerRepository) Create(volunteer models.Volunteer) (models.Volunteer, error) {
	result := r.db.Create(&volunteer)
	return volunteer, result.Error
}

// Update modifies an existing volunteer
func (r *VolunteerRepository) Update(volunteer models.Volunteer) error {
	result := r.db.Save(&volunteer)
	return result.Error
}

// Delete suspends and soft-deletes a volunteer
func (r *VolunteerRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Volunteer{}).Where("id = ?", id).
			Update("status", models.VolunteerSuspended).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Volunteer{}, "id = ?", id).Error
	})
}
