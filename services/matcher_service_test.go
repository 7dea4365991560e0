package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volunhub/apperrors"
	"github.com/volunhub/dto"
	"github.com/volunhub/models"
)

func TestFindMatchingVolunteers(t *testing.T) {
	db := newTestDB(t)
	service := NewMatcherService(db, nil)

	welding := createSkill(t, db, "welding")
	cooking := createSkill(t, db, "cooking")
	plumbing := createSkill(t, db, "plumbing")

	ana := createVolunteer(t, db, "Ana", "ana@example.com")
	ben := createVolunteer(t, db, "Ben", "ben@example.com")
	cara := createVolunteer(t, db, "Cara", "cara@example.com")

	linkVolunteerSkill(t, db, ana.ID, welding.ID)
	linkVolunteerSkill(t, db, ben.ID, welding.ID)
	linkVolunteerSkill(t, db, ben.ID, cooking.ID)
	linkVolunteerSkill(t, db, cara.ID, plumbing.ID)

	project := createProject(t, db, "community kitchen")
	linkProjectSkill(t, db, project.ID, welding.ID)
	linkProjectSkill(t, db, project.ID, cooking.ID)

	matches, err := service.FindMatchingVolunteers(context.Background(), project.ID)
	require.NoError(t, err)
	require.Len(t, matches, 2)

	byID := make(map[string]dto.MatchingVolunteer)
	for _, match := range matches {
		byID[match.VolunteerID] = match
	}

	require.Contains(t, byID, ana.ID)
	assert.Equal(t, "Ana", byID[ana.ID].VolunteerName)
	require.Len(t, byID[ana.ID].MatchedSkills, 1)
	assert.Equal(t, welding.ID, byID[ana.ID].MatchedSkills[0].ID)

	require.Contains(t, byID, ben.ID)
	require.Len(t, byID[ben.ID].MatchedSkills, 2)

	assert.NotContains(t, byID, cara.ID)
}

func TestFindMatchingVolunteersNoRequirements(t *testing.T) {
	db := newTestDB(t)
	service := NewMatcherService(db, nil)

	createVolunteer(t, db, "Ana", "ana@example.com")
	project := createProject(t, db, "empty project")

	matches, err := service.FindMatchingVolunteers(context.Background(), project.ID)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestFindMatchingVolunteersProjectNotFound(t *testing.T) {
	db := newTestDB(t)
	service := NewMatcherService(db, nil)

	_, err := service.FindMatchingVolunteers(context.Background(), "00000000-0000-0000-0000-000000000000")
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestFindMatchingVolunteersExcludesRemovedAndInactive(t *testing.T) {
	db := newTestDB(t)
	service := NewMatcherService(db, nil)

	welding := createSkill(t, db, "welding")
	project := createProject(t, db, "bridge repair")
	linkProjectSkill(t, db, project.ID, welding.ID)

	ana := createVolunteer(t, db, "Ana", "ana@example.com")
	removedLink := linkVolunteerSkill(t, db, ana.ID, welding.ID)
	require.NoError(t, db.Delete(&models.VolunteerSkill{}, "id = ?", removedLink.ID).Error)

	ben := createVolunteer(t, db, "Ben", "ben@example.com")
	linkVolunteerSkill(t, db, ben.ID, welding.ID)
	require.NoError(t, db.Model(&models.Volunteer{}).
		Where("id = ?", ben.ID).
		Update("status", models.VolunteerInactive).Error)

	matches, err := service.FindMatchingVolunteers(context.Background(), project.ID)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestFindMatchingVolunteersExcludesRemovedRequirement(t *testing.T) {
	db := newTestDB(t)
	service := NewMatcherService(db, nil)

	welding := createSkill(t, db, "welding")
	cooking := createSkill(t, db, "cooking")
	project := createProject(t, db, "community kitchen")
	linkProjectSkill(t, db, project.ID, cooking.ID)
	removedReq := linkProjectSkill(t, db, project.ID, welding.ID)
	require.NoError(t, db.Delete(&models.ProjectSkill{}, "id = ?", removedReq.ID).Error)

	ana := createVolunteer(t, db, "Ana", "ana@example.com")
	linkVolunteerSkill(t, db, ana.ID, welding.ID)

	matches, err := service.FindMatchingVolunteers(context.Background(), project.ID)
	require.NoError(t, err)
	assert.Empty(t, matches)
}
