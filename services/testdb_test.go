package services

import (
	"path/filepath"
	"testing"

	"github.com/volunhub/database"
	"github.com/volunhub/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a throwaway sqlite database migrated to the full schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "volunhub_test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, name, email string) models.User {
	t.Helper()
	user := models.User{
		Email:    email,
		Password: "hashed",
		Name:     name,
		Role:     models.RoleVolunteer,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func createVolunteer(t *testing.T, db *gorm.DB, name, email string) models.Volunteer {
	t.Helper()
	user := createUser(t, db, name, email)
	volunteer := models.Volunteer{
		UserID: user.ID,
		Status: models.VolunteerActive,
	}
	if err := db.Create(&volunteer).Error; err != nil {
		t.Fatalf("failed to create volunteer: %v", err)
	}
	volunteer.User = user
	return volunteer
}

func createSkill(t *testing.T, db *gorm.DB, name string) models.Skill {
	t.Helper()
	skill := models.Skill{Name: name}
	if err := db.Create(&skill).Error; err != nil {
		t.Fatalf("failed to create skill: %v", err)
	}
	return skill
}

func createProject(t *testing.T, db *gorm.DB, name string) models.Project {
	t.Helper()
	project := models.Project{
		Name:     name,
		Status:   models.ProjectNotAssigned,
		Priority: models.PriorityMedium,
	}
	if err := db.Create(&project).Error; err != nil {
		t.Fatalf("failed to create project: %v", err)
	}
	return project
}

func linkVolunteerSkill(t *testing.T, db *gorm.DB, volunteerID, skillID string) models.VolunteerSkill {
	t.Helper()
	link := models.VolunteerSkill{VolunteerID: volunteerID, SkillID: skillID}
	if err := db.Create(&link).Error; err != nil {
		t.Fatalf("failed to link volunteer skill: %v", err)
	}
	return link
}

func linkProjectSkill(t *testing.T, db *gorm.DB, projectID, skillID string) models.ProjectSkill {
	t.Helper()
	requirement := models.ProjectSkill{ProjectID: projectID, SkillID: skillID}
	if err := db.Create(&requirement).Error; err != nil {
		t.Fatalf("failed to link project skill: %v", err)
	}
	return requirement
}

func projectStatus(t *testing.T, db *gorm.DB, projectID string) models.ProjectStatus {
	t.Helper()
	var project models.Project
	if err := db.First(&project, "id = ?", projectID).Error; err != nil {
		t.Fatalf("failed to reload project: %v", err)
	}
	return project.Status
}
