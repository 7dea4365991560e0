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

var volunteerLog = logrus.WithField("component", "volunteers")

// VolunteerService handles business logic for volunteer profiles
type VolunteerService struct {
	db *gorm.DB
}

// NewVolunteerService creates a new volunteer service instance
func NewVolunteerService(db *gorm.DB) *VolunteerService {
	return &VolunteerService{db: db}
}

// ListVolunteers retrieves all active volunteers
func (s *VolunteerService) ListVolunteers() ([]models.Volunteer, error) {
	volunteers, err := repositories.NewVolunteerRepository(s.db).FindAll()
	if err != nil {
		volunteerLog.WithError(err).Error("error listing volunteers")
		return nil, apperrors.Internal("error listing volunteers")
	}
	return volunteers, nil
}

// GetVolunteer retrieves one active volunteer with its user account
func (s *VolunteerService) GetVolunteer(id string) (models.Volunteer, error) {
	volunteer, err := repositories.NewVolunteerRepository(s.db).FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			volunteerLog.Warnf("volunteer %s not found", id)
			return models.Volunteer{}, apperrors.NotFound("volunteer not found")
		}
		volunteerLog.WithError(err).Error("error retrieving volunteer")
		return models.Volunteer{}, apperrors.Internal("error retrieving volunteer")
	}
	return volunteer, nil
}

// CreateVolunteer creates a volunteer profile for an existing user account
func (s *VolunteerService) CreateVolunteer(req dto.CreateVolunteerRequest) (models.Volunteer, error) {
	volunteerLog.Infof("creating volunteer for user %s", req.UserID)

	volunteerRepo := repositories.NewVolunteerRepository(s.db)
	userRepo := repositories.NewUserRepository(s.db)

	if _, err := userRepo.FindByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Volunteer{}, apperrors.NotFound("user not found")
		}
		volunteerLog.WithError(err).Error("error creating volunteer")
		return models.Volunteer{}, apperrors.Internal("error creating volunteer")
	}

	exists, err := volunteerRepo.ExistsByUserID(req.UserID)
	if err != nil {
		volunteerLog.WithError(err).Error("error creating volunteer")
		return models.Volunteer{}, apperrors.Internal("error creating volunteer")
	}
	if exists {
		return models.Volunteer{}, apperrors.Conflict("user already has a volunteer profile")
	}

	volunteer, err := volunteerRepo.Create(models.Volunteer{
		UserID: req.UserID,
		Status: models.VolunteerActive,
	})
	if err != nil {
		volunteerLog.WithError(err).Error("error creating volunteer")
		return models.Volunteer{}, apperrors.Internal("error creating volunteer")
	}
	volunteerLog.Infof("volunteer %s created", volunteer.ID)
	return volunteer, nil
}

// UpdateVolunteer changes the availability status of a volunteer
func (s *VolunteerService) UpdateVolunteer(id string, req dto.UpdateVolunteerRequest) (models.Volunteer, error) {
	switch req.Status {
	case models.VolunteerActive, models.VolunteerInactive, models.VolunteerSuspended:
	default:
		return models.Volunteer{}, apperrors.InvalidArgument("unknown volunteer status")
	}

	volunteer, err := s.GetVolunteer(id)
	if err != nil {
		return models.Volunteer{}, err
	}

	volunteer.Status = req.Status
	if err := repositories.NewVolunteerRepository(s.db).Update(volunteer); err != nil {
		volunteerLog.WithError(err).Error("error updating volunteer")
		return models.Volunteer{}, apperrors.Internal("error updating volunteer")
	}
	volunteerLog.Infof("volunteer %s status set to %s", id, req.Status)
	return volunteer, nil
}

// DeleteVolunteer suspends and soft-deletes a volunteer profile
func (s *VolunteerService) DeleteVolunteer(id string) error {
	if _, err := s.GetVolunteer(id); err != nil {
		return err
	}
	if err := repositories.NewVolunteerRepository(s.db).Delete(id); err != nil {
		volunteerLog.WithError(err).Error("error deleting volunteer")
		return apperrors.Internal("error deleting volunteer")
	}
	volunteerLog.Infof("volunteer %s deleted", id)
	return nil
}
