package services

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volunhub/apperrors"
)

func TestExportSkillsCSV(t *testing.T) {
	db := newTestDB(t)
	service := NewExportService(db)

	createSkill(t, db, "welding")
	createSkill(t, db, "cooking")

	var buf bytes.Buffer
	require.NoError(t, service.WriteCSV("skills", &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"id", "name", "created_at"}, records[0])
	// The catalog is exported in name order
	assert.Equal(t, "cooking", records[1][1])
	assert.Equal(t, "welding", records[2][1])
}

func TestExportUnknownEntity(t *testing.T) {
	db := newTestDB(t)
	service := NewExportService(db)

	var buf bytes.Buffer
	err := service.WriteCSV("users", &buf)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidArgument))
}

func TestExportVolunteersCSV(t *testing.T) {
	db := newTestDB(t)
	service := NewExportService(db)

	createVolunteer(t, db, "Ana", "ana@example.com")

	var buf bytes.Buffer
	require.NoError(t, service.WriteCSV("volunteers", &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Ana", records[1][2])
	assert.Equal(t, "ana@example.com", records[1][3])
	assert.Equal(t, "active", records[1][4])
}
