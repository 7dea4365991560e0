package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volunhub/apperrors"
	"github.com/volunhub/dto"
	"github.com/volunhub/models"
)

func TestRegisterAndLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	db := newTestDB(t)
	service := NewAuthService(db)

	user, err := service.Register(dto.RegisterRequest{
		Email:    "ana@example.com",
		Password: "hunter22",
		Name:     "Ana",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, models.RoleVolunteer, user.Role)
	assert.Empty(t, user.Password)

	_, err = service.Register(dto.RegisterRequest{
		Email:    "ana@example.com",
		Password: "hunter22",
		Name:     "Ana Again",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))

	auth, err := service.Login(dto.LoginRequest{Email: "ana@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.NotEmpty(t, auth.Token)
	assert.Equal(t, user.ID, auth.User.ID)

	claims, err := ValidateToken(auth.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, string(models.RoleVolunteer), claims.Role)

	_, err = service.Login(dto.LoginRequest{Email: "ana@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidArgument))

	// Unknown email fails with the same message as a bad password
	_, err = service.Login(dto.LoginRequest{Email: "nobody@example.com", Password: "hunter22"})
	require.Error(t, err)
	assert.Equal(t, "invalid email or password", err.Error())
}
