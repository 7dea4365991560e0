package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volunhub/apperrors"
	"github.com/volunhub/dto"
	"github.com/volunhub/models"
)

func TestCreateAssignment(t *testing.T) {
	db := newTestDB(t)
	service := NewAssignmentService(db)

	skill := createSkill(t, db, "welding")
	volunteer := createVolunteer(t, db, "Ana", "ana@example.com")
	project := createProject(t, db, "bridge repair")
	volunteerSkill := linkVolunteerSkill(t, db, volunteer.ID, skill.ID)
	projectSkill := linkProjectSkill(t, db, project.ID, skill.ID)

	res, err := service.CreateAssignment(dto.CreateAssignmentRequest{
		ProjectSkillID:   projectSkill.ID,
		VolunteerSkillID: volunteerSkill.ID,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.ID)
	assert.Equal(t, models.AssignmentPending, res.Status)

	require.NotNil(t, res.Project)
	assert.Equal(t, project.ID, res.Project.ID)
	assert.Equal(t, "bridge repair", res.Project.Name)

	require.NotNil(t, res.Volunteer)
	assert.Equal(t, volunteer.ID, res.Volunteer.ID)
	assert.Equal(t, volunteer.UserID, res.Volunteer.UserID)
	assert.Equal(t, "Ana", res.Volunteer.UserName)

	require.NotNil(t, res.MatchedSkill)
	assert.Equal(t, skill.ID, res.MatchedSkill.ID)
	assert.Equal(t, "welding", res.MatchedSkill.Name)
}

func TestCreateAssignmentSkillMismatch(t *testing.T) {
	db := newTestDB(t)
	service := NewAssignmentService(db)

	welding := createSkill(t, db, "welding")
	cooking := createSkill(t, db, "cooking")
	volunteer := createVolunteer(t, db, "Ana", "ana@example.com")
	project := createProject(t, db, "bridge repair")
	volunteerSkill := linkVolunteerSkill(t, db, volunteer.ID, cooking.ID)
	projectSkill := linkProjectSkill(t, db, project.ID, welding.ID)

	_, err := service.CreateAssignment(dto.CreateAssignmentRequest{
		ProjectSkillID:   projectSkill.ID,
		VolunteerSkillID: volunteerSkill.ID,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidArgument))
	assert.Equal(t, "volunteer skill does not match project skill", err.Error())
}

func TestCreateAssignmentMissingLinks(t *testing.T) {
	db := newTestDB(t)
	service := NewAssignmentService(db)

	skill := createSkill(t, db, "welding")
	volunteer := createVolunteer(t, db, "Ana", "ana@example.com")
	project := createProject(t, db, "bridge repair")
	volunteerSkill := linkVolunteerSkill(t, db, volunteer.ID, skill.ID)
	projectSkill := linkProjectSkill(t, db, project.ID, skill.ID)

	t.Run("unknown project skill", func(t *testing.T) {
		_, err := service.CreateAssignment(dto.CreateAssignmentRequest{
			ProjectSkillID:   "00000000-0000-0000-0000-000000000000",
			VolunteerSkillID: volunteerSkill.ID,
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	})

	t.Run("soft-deleted volunteer skill", func(t *testing.T) {
		removed := linkVolunteerSkill(t, db, createVolunteer(t, db, "Ben", "ben@example.com").ID, skill.ID)
		require.NoError(t, db.Delete(&models.VolunteerSkill{}, "id = ?", removed.ID).Error)

		_, err := service.CreateAssignment(dto.CreateAssignmentRequest{
			ProjectSkillID:   projectSkill.ID,
			VolunteerSkillID: removed.ID,
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
		assert.Equal(t, "volunteer skill not found", err.Error())
	})
}

func TestCreateAssignmentDuplicatePair(t *testing.T) {
	db := newTestDB(t)
	service := NewAssignmentService(db)

	skill := createSkill(t, db, "welding")
	volunteer := createVolunteer(t, db, "Ana", "ana@example.com")
	project := createProject(t, db, "bridge repair")
	volunteerSkill := linkVolunteerSkill(t, db, volunteer.ID, skill.ID)
	projectSkill := linkProjectSkill(t, db, project.ID, skill.ID)

	req := dto.CreateAssignmentRequest{
		ProjectSkillID:   projectSkill.ID,
		VolunteerSkillID: volunteerSkill.ID,
	}

	first, err := service.CreateAssignment(req)
	require.NoError(t, err)

	_, err = service.CreateAssignment(req)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
	assert.Equal(t, "assignment already exists for this project and volunteer", err.Error())

	// A rejected assignment no longer blocks the pair
	_, err = service.UpdateStatus(first.ID, models.AssignmentRejected)
	require.NoError(t, err)

	second, err := service.CreateAssignment(req)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestUpdateStatusNotFound(t *testing.T) {
	db := newTestDB(t)
	service := NewAssignmentService(db)

	_, err := service.UpdateStatus("00000000-0000-0000-0000-000000000000", models.AssignmentAccepted)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestUpdateStatusUnknownValue(t *testing.T) {
	db := newTestDB(t)
	service := NewAssignmentService(db)

	_, err := service.UpdateStatus("irrelevant", models.AssignmentStatus("paused"))
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidArgument))
}

func TestUpdateStatusCompletedIsTerminal(t *testing.T) {
	db := newTestDB(t)
	service := NewAssignmentService(db)

	skill := createSkill(t, db, "welding")
	volunteer := createVolunteer(t, db, "Ana", "ana@example.com")
	project := createProject(t, db, "bridge repair")
	volunteerSkill := linkVolunteerSkill(t, db, volunteer.ID, skill.ID)
	projectSkill := linkProjectSkill(t, db, project.ID, skill.ID)

	created, err := service.CreateAssignment(dto.CreateAssignmentRequest{
		ProjectSkillID:   projectSkill.ID,
		VolunteerSkillID: volunteerSkill.ID,
	})
	require.NoError(t, err)

	_, err = service.UpdateStatus(created.ID, models.AssignmentAccepted)
	require.NoError(t, err)
	_, err = service.UpdateStatus(created.ID, models.AssignmentCompleted)
	require.NoError(t, err)

	for _, status := range []models.AssignmentStatus{
		models.AssignmentPending,
		models.AssignmentAccepted,
		models.AssignmentRejected,
		models.AssignmentCompleted,
	} {
		_, err = service.UpdateStatus(created.ID, status)
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
		assert.Equal(t, "completed assignment cannot be modified", err.Error())
	}
}

func TestProjectStatusCascade(t *testing.T) {
	db := newTestDB(t)
	service := NewAssignmentService(db)

	skill := createSkill(t, db, "welding")
	volunteer := createVolunteer(t, db, "Ana", "ana@example.com")
	project := createProject(t, db, "bridge repair")
	volunteerSkill := linkVolunteerSkill(t, db, volunteer.ID, skill.ID)
	projectSkill := linkProjectSkill(t, db, project.ID, skill.ID)

	created, err := service.CreateAssignment(dto.CreateAssignmentRequest{
		ProjectSkillID:   projectSkill.ID,
		VolunteerSkillID: volunteerSkill.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ProjectNotAssigned, projectStatus(t, db, project.ID))

	_, err = service.UpdateStatus(created.ID, models.AssignmentAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectAssigned, projectStatus(t, db, project.ID))

	_, err = service.UpdateStatus(created.ID, models.AssignmentCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectCompleted, projectStatus(t, db, project.ID))
}

func TestProjectStatusCascadeRejection(t *testing.T) {
	db := newTestDB(t)
	service := NewAssignmentService(db)

	skill := createSkill(t, db, "welding")
	volunteer := createVolunteer(t, db, "Ana", "ana@example.com")
	project := createProject(t, db, "bridge repair")
	volunteerSkill := linkVolunteerSkill(t, db, volunteer.ID, skill.ID)
	projectSkill := linkProjectSkill(t, db, project.ID, skill.ID)

	created, err := service.CreateAssignment(dto.CreateAssignmentRequest{
		ProjectSkillID:   projectSkill.ID,
		VolunteerSkillID: volunteerSkill.ID,
	})
	require.NoError(t, err)

	_, err = service.UpdateStatus(created.ID, models.AssignmentAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectAssigned, projectStatus(t, db, project.ID))

	// Rejecting the only assignment puts the project back to not_assigned
	_, err = service.UpdateStatus(created.ID, models.AssignmentRejected)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectNotAssigned, projectStatus(t, db, project.ID))
}

func TestProjectStatusCascadePartial(t *testing.T) {
	db := newTestDB(t)
	service := NewAssignmentService(db)

	welding := createSkill(t, db, "welding")
	cooking := createSkill(t, db, "cooking")
	ana := createVolunteer(t, db, "Ana", "ana@example.com")
	ben := createVolunteer(t, db, "Ben", "ben@example.com")
	project := createProject(t, db, "community kitchen")

	anaLink := linkVolunteerSkill(t, db, ana.ID, welding.ID)
	benLink := linkVolunteerSkill(t, db, ben.ID, cooking.ID)
	weldingReq := linkProjectSkill(t, db, project.ID, welding.ID)
	cookingReq := linkProjectSkill(t, db, project.ID, cooking.ID)

	first, err := service.CreateAssignment(dto.CreateAssignmentRequest{
		ProjectSkillID:   weldingReq.ID,
		VolunteerSkillID: anaLink.ID,
	})
	require.NoError(t, err)
	second, err := service.CreateAssignment(dto.CreateAssignmentRequest{
		ProjectSkillID:   cookingReq.ID,
		VolunteerSkillID: benLink.ID,
	})
	require.NoError(t, err)

	_, err = service.UpdateStatus(first.ID, models.AssignmentAccepted)
	require.NoError(t, err)
	_, err = service.UpdateStatus(second.ID, models.AssignmentAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectAssigned, projectStatus(t, db, project.ID))

	// One completion out of two open assignments leaves the project assigned
	_, err = service.UpdateStatus(first.ID, models.AssignmentCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectAssigned, projectStatus(t, db, project.ID))

	// Completing the last open assignment completes the project
	_, err = service.UpdateStatus(second.ID, models.AssignmentCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectCompleted, projectStatus(t, db, project.ID))
}

func TestGetAssignmentsByVolunteer(t *testing.T) {
	db := newTestDB(t)
	service := NewAssignmentService(db)

	skill := createSkill(t, db, "welding")
	volunteer := createVolunteer(t, db, "Ana", "ana@example.com")
	project := createProject(t, db, "bridge repair")
	volunteerSkill := linkVolunteerSkill(t, db, volunteer.ID, skill.ID)
	projectSkill := linkProjectSkill(t, db, project.ID, skill.ID)

	created, err := service.CreateAssignment(dto.CreateAssignmentRequest{
		ProjectSkillID:   projectSkill.ID,
		VolunteerSkillID: volunteerSkill.ID,
	})
	require.NoError(t, err)

	// Removing the link keeps the assignment history visible
	require.NoError(t, db.Delete(&models.VolunteerSkill{}, "id = ?", volunteerSkill.ID).Error)

	assignments, err := service.GetAssignmentsByVolunteer(volunteer.ID)
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	assert.Equal(t, created.ID, assignments[0].ID)

	// A volunteer without links gets an empty list, not an error
	other := createVolunteer(t, db, "Ben", "ben@example.com")
	assignments, err = service.GetAssignmentsByVolunteer(other.ID)
	require.NoError(t, err)
	assert.Empty(t, assignments)
}
