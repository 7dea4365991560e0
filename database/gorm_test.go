package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volunhub/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newMigratedDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "volunhub_test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

// createPair inserts a linked (project skill, volunteer skill) pair for one
// skill, with the owning rows behind it
func createPair(t *testing.T, db *gorm.DB, skillName, email string) (models.ProjectSkill, models.VolunteerSkill) {
	t.Helper()

	skill := models.Skill{Name: skillName}
	require.NoError(t, db.Create(&skill).Error)

	project := models.Project{Name: skillName + " project", Status: models.ProjectNotAssigned, Priority: models.PriorityMedium}
	require.NoError(t, db.Create(&project).Error)

	user := models.User{Email: email, Password: "hashed", Name: "Tester", Role: models.RoleVolunteer}
	require.NoError(t, db.Create(&user).Error)

	volunteer := models.Volunteer{UserID: user.ID, Status: models.VolunteerActive}
	require.NoError(t, db.Create(&volunteer).Error)

	requirement := models.ProjectSkill{ProjectID: project.ID, SkillID: skill.ID}
	require.NoError(t, db.Create(&requirement).Error)

	link := models.VolunteerSkill{VolunteerID: volunteer.ID, SkillID: skill.ID}
	require.NoError(t, db.Create(&link).Error)

	return requirement, link
}

// The partial unique index must reject a second pending/accepted assignment
// on the same pair at the store level, independent of the service-layer check
func TestActivePairIndexRejectsDuplicates(t *testing.T) {
	db := newMigratedDB(t)
	requirement, link := createPair(t, db, "welding", "ana@example.com")

	first := models.Assignment{
		ProjectSkillID:   requirement.ID,
		VolunteerSkillID: link.ID,
		Status:           models.AssignmentPending,
	}
	require.NoError(t, db.Create(&first).Error)

	duplicate := models.Assignment{
		ProjectSkillID:   requirement.ID,
		VolunteerSkillID: link.ID,
		Status:           models.AssignmentPending,
	}
	err := db.Create(&duplicate).Error
	require.Error(t, err)
	assert.ErrorContains(t, err, "UNIQUE")

	// A rejected assignment leaves the index and frees the pair
	require.NoError(t, db.Model(&first).Update("status", models.AssignmentRejected).Error)

	reopened := models.Assignment{
		ProjectSkillID:   requirement.ID,
		VolunteerSkillID: link.ID,
		Status:           models.AssignmentPending,
	}
	require.NoError(t, db.Create(&reopened).Error)
}

// A different pair is never blocked
func TestActivePairIndexScopedToPair(t *testing.T) {
	db := newMigratedDB(t)
	requirement, link := createPair(t, db, "welding", "ana@example.com")
	otherRequirement, otherLink := createPair(t, db, "cooking", "ben@example.com")

	require.NoError(t, db.Create(&models.Assignment{
		ProjectSkillID:   requirement.ID,
		VolunteerSkillID: link.ID,
		Status:           models.AssignmentAccepted,
	}).Error)
	require.NoError(t, db.Create(&models.Assignment{
		ProjectSkillID:   otherRequirement.ID,
		VolunteerSkillID: otherLink.ID,
		Status:           models.AssignmentPending,
	}).Error)
}
