package service_test

import (
	"database/sql"
	"errors"
	"testing"

	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProfileService(t *testing.T) {
	ctx := t.Context()
	id := uuid.New()

	t.Run("Success - Create", func(t *testing.T) {
		// Arrange
		repo := mocks.NewMockProfileRepository(t)
		profileService := service.NewProfileService(repo)
		repo.On("CreateProfile", ctx, mock.MatchedBy(func(p *models.Profile) bool {
			return p.Name == "ana" && p.Bio == "hi"
		})).Return(nil).Once()

		// Act
		profile, err := profileService.CreateProfile(ctx, &models.CreateProfileRequest{Name: "ana", Bio: "hi"})

		// Assert
		require.NoError(t, err)
		assert.Nil(t, profile.Picture)
	})

	t.Run("Failure - Create Database Error", func(t *testing.T) {
		repo := mocks.NewMockProfileRepository(t)
		repo.On("CreateProfile", ctx, mock.Anything).Return(errors.New("boom")).Once()

		_, err := service.NewProfileService(repo).CreateProfile(ctx, &models.CreateProfileRequest{Name: "ana", Bio: "hi"})

		requireAppError(t, err, appErrors.ErrCodeDatabaseError)
	})

	t.Run("Success - Partial Update", func(t *testing.T) {
		// Arrange
		repo := mocks.NewMockProfileRepository(t)
		profileService := service.NewProfileService(repo)

		repo.On("GetProfileByID", ctx, id).Return(&models.Profile{ID: id, Name: "ana", Bio: "hi"}, nil).Once()
		repo.On("UpdateProfile", ctx, mock.MatchedBy(func(p *models.Profile) bool {
			return p.Name == "ana" && p.Bio == "hello" && *p.Picture == "me.png"
		})).Return(nil).Once()

		// Act
		profile, err := profileService.UpdateProfile(ctx, id, &models.UpdateProfileRequest{Bio: ptr("hello"), Picture: ptr("me.png")})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "hello", profile.Bio)
	})

	t.Run("Failure - Update Missing", func(t *testing.T) {
		repo := mocks.NewMockProfileRepository(t)
		repo.On("GetProfileByID", ctx, id).Return(nil, sql.ErrNoRows).Once()

		_, err := service.NewProfileService(repo).UpdateProfile(ctx, id, &models.UpdateProfileRequest{})

		requireAppError(t, err, appErrors.ErrCodeNotFound)
	})

	t.Run("Success - Delete", func(t *testing.T) {
		repo := mocks.NewMockProfileRepository(t)
		repo.On("DeleteProfile", ctx, id).Return(nil).Once()

		assert.NoError(t, service.NewProfileService(repo).DeleteProfile(ctx, id))
	})

	t.Run("Success - List", func(t *testing.T) {
		repo := mocks.NewMockProfileRepository(t)
		repo.On("ListProfiles", ctx, 1, 10).Return([]*models.Profile{{ID: id}}, 1, nil).Once()

		profiles, total, err := service.NewProfileService(repo).ListProfiles(ctx, 1, 10)

		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Len(t, profiles, 1)
	})
}
