package services

import (
	"encoding/csv"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/volunhub/apperrors"
	"github.com/volunhub/models"
	"github.com/volunhub/repositories"
	"gorm.io/gorm"
)

var exportLog = logrus.WithField("component", "export")

// ExportService streams entity tables as CSV for reporting
type ExportService struct {
	db *gorm.DB
}

// NewExportService creates a new export service instance
func NewExportService(db *gorm.DB) *ExportService {
	return &ExportService{db: db}
}

// Entities returns the exportable entity names
func (s *ExportService) Entities() []string {
	return []string{"skills", "volunteers", "projects", "assignments"}
}

// WriteCSV writes the named entity table to w as CSV
func (s *ExportService) WriteCSV(entity string, w io.Writer) error {
	writer := csv.NewWriter(w)

	var err error
	switch entity {
	case "skills":
		err = s.writeSkills(writer)
	case "volunteers":
		err = s.writeVolunteers(writer)
	case "projects":
		err = s.writeProjects(writer)
	case "assignments":
		err = s.writeAssignments(writer)
	default:
		return apperrors.InvalidArgument("unknown export entity")
	}
	if err != nil {
		exportLog.WithError(err).Errorf("error exporting %s", entity)
		return apperrors.Internal("error exporting " + entity)
	}

	writer.Flush()
	return writer.Error()
}

func (s *ExportService) writeSkills(w *csv.Writer) error {
	skills, err := repositories.NewSkillRepository(s.db).FindAll()
	if err != nil {
		return err
	}
	if err := w.Write([]string{"id", "name", "created_at"}); err != nil {
		return err
	}
	for _, skill := range skills {
		if err := w.Write([]string{skill.ID, skill.Name, skill.CreatedAt.Format(time.RFC3339)}); err != nil {
			return err
		}
	}
	return nil
}

func (s *ExportService) writeVolunteers(w *csv.Writer) error {
	volunteers, err := repositories.NewVolunteerRepository(s.db).FindAll()
	if err != nil {
		return err
	}
	if err := w.Write([]string{"id", "user_id", "name", "email", "status", "created_at"}); err != nil {
		return err
	}
	for _, volunteer := range volunteers {
		record := []string{
			volunteer.ID,
			volunteer.UserID,
			volunteer.User.Name,
			volunteer.User.Email,
			string(volunteer.Status),
			volunteer.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func (s *ExportService) writeProjects(w *csv.Writer) error {
	var projects []models.Project
	if err := s.db.Order("created_at asc").Find(&projects).Error; err != nil {
		return err
	}
	if err := w.Write([]string{"id", "name", "status", "priority", "deadline", "created_at"}); err != nil {
		return err
	}
	for _, project := range projects {
		deadline := ""
		if project.Deadline != nil {
			deadline = project.Deadline.Format(time.RFC3339)
		}
		record := []string{
			project.ID,
			project.Name,
			string(project.Status),
			string(project.Priority),
			deadline,
			project.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func (s *ExportService) writeAssignments(w *csv.Writer) error {
	assignments, err := repositories.NewAssignmentRepository(s.db).FindAll()
	if err != nil {
		return err
	}
	if err := w.Write([]string{"id", "project_skill_id", "volunteer_skill_id", "status", "created_at", "updated_at"}); err != nil {
		return err
	}
	for _, assignment := range assignments {
		record := []string{
			assignment.ID,
			assignment.ProjectSkillID,
			assignment.VolunteerSkillID,
			string(assignment.Status),
			assignment.CreatedAt.Format(time.RFC3339),
			assignment.UpdatedAt.Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}
