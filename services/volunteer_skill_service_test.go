package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volunhub/apperrors"
	"github.com/volunhub/models"
	"github.com/volunhub/repositories"
)

func TestVolunteerSkillAddAndList(t *testing.T) {
	db := newTestDB(t)
	service := NewVolunteerSkillService(db, nil)
	ctx := t.Context()

	volunteer := createVolunteer(t, db, "Ana", "ana@example.com")
	skill := createSkill(t, db, "welding")

	link, err := service.AddSkill(ctx, volunteer.ID, skill.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, link.ID)

	response, err := service.ListSkills(volunteer.ID)
	require.NoError(t, err)
	assert.Equal(t, volunteer.ID, response.VolunteerID)
	require.Len(t, response.Skills, 1)
	assert.Equal(t, "welding", response.Skills[0].Name)
}

func TestVolunteerSkillAddValidation(t *testing.T) {
	db := newTestDB(t)
	service := NewVolunteerSkillService(db, nil)
	ctx := t.Context()

	volunteer := createVolunteer(t, db, "Ana", "ana@example.com")
	skill := createSkill(t, db, "welding")

	_, err := service.AddSkill(ctx, "00000000-0000-0000-0000-000000000000", skill.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))

	_, err = service.AddSkill(ctx, volunteer.ID, "00000000-0000-0000-0000-000000000000")
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))

	_, err = service.AddSkill(ctx, volunteer.ID, skill.ID)
	require.NoError(t, err)
	_, err = service.AddSkill(ctx, volunteer.ID, skill.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
	assert.Equal(t, "volunteer already has this skill", err.Error())
}

func TestVolunteerSkillReactivation(t *testing.T) {
	db := newTestDB(t)
	service := NewVolunteerSkillService(db, nil)
	ctx := t.Context()

	volunteer := createVolunteer(t, db, "Ana", "ana@example.com")
	skill := createSkill(t, db, "welding")

	original, err := service.AddSkill(ctx, volunteer.ID, skill.ID)
	require.NoError(t, err)

	require.NoError(t, service.RemoveSkill(ctx, volunteer.ID, skill.ID))

	// Removed links no longer show up
	response, err := service.ListSkills(volunteer.ID)
	require.NoError(t, err)
	assert.Empty(t, response.Skills)

	// Re-adding reactivates the same row instead of inserting a second one
	readded, err := service.AddSkill(ctx, volunteer.ID, skill.ID)
	require.NoError(t, err)
	assert.Equal(t, original.ID, readded.ID)

	var count int64
	require.NoError(t, db.Unscoped().Model(&models.VolunteerSkill{}).
		Where("volunteer_id = ? AND skill_id = ?", volunteer.ID, skill.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestVolunteerSkillRemoveNotLinked(t *testing.T) {
	db := newTestDB(t)
	service := NewVolunteerSkillService(db, nil)

	volunteer := createVolunteer(t, db, "Ana", "ana@example.com")
	skill := createSkill(t, db, "welding")

	err := service.RemoveSkill(t.Context(), volunteer.ID, skill.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	assert.Equal(t, "skill not assigned to volunteer", err.Error())
}

// A changed volunteer link invalidates matching for exactly the projects
// requiring that skill; this resolves the affected project set
func TestActiveProjectIDsBySkill(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewProjectSkillRepository(db)

	welding := createSkill(t, db, "welding")
	cooking := createSkill(t, db, "cooking")

	bridge := createProject(t, db, "bridge repair")
	kitchen := createProject(t, db, "community kitchen")
	linkProjectSkill(t, db, bridge.ID, welding.ID)
	linkProjectSkill(t, db, kitchen.ID, cooking.ID)
	removed := linkProjectSkill(t, db, kitchen.ID, welding.ID)
	require.NoError(t, db.Delete(&models.ProjectSkill{}, "id = ?", removed.ID).Error)

	ids, err := repo.ActiveProjectIDsBySkill(welding.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{bridge.ID}, ids)

	ids, err = repo.ActiveProjectIDsBySkill(cooking.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{kitchen.ID}, ids)
}

func TestProjectSkillReactivation(t *testing.T) {
	db := newTestDB(t)
	service := NewProjectSkillService(db, nil)
	ctx := t.Context()

	project := createProject(t, db, "bridge repair")
	skill := createSkill(t, db, "welding")

	original, err := service.AddSkill(ctx, project.ID, skill.ID)
	require.NoError(t, err)

	_, err = service.AddSkill(ctx, project.ID, skill.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))

	require.NoError(t, service.RemoveSkill(ctx, project.ID, skill.ID))

	readded, err := service.AddSkill(ctx, project.ID, skill.ID)
	require.NoError(t, err)
	assert.Equal(t, original.ID, readded.ID)

	var count int64
	require.NoError(t, db.Unscoped().Model(&models.ProjectSkill{}).
		Where("project_id = ? AND skill_id = ?", project.ID, skill.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)

	response, err := service.ListSkills(project.ID)
	require.NoError(t, err)
	assert.Equal(t, "bridge repair", response.ProjectName)
	require.Len(t, response.Skills, 1)
	assert.Equal(t, skill.ID, response.Skills[0].SkillID)
}
