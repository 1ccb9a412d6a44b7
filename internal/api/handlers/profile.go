package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type ProfileHandler struct {
	profileService service.ProfileService
	validator      *validator.Validate
}

func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, validator: validator.New()}
}

// CreateProfile godoc
//	@Summary	Create a profile
//	@Tags		Profiles
//	@Accept		json
//	@Produce	json
//	@Param		profile	body		models.CreateProfileRequest	true	"Profile"
//	@Success	201		{object}	models.Profile
//	@Failure	400		{object}	response.ErrorResponse
//	@Router		/profiles [post]
func (h *ProfileHandler) CreateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateProfileRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		profile, err := h.profileService.CreateProfile(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create profile", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Profile created", slog.String("profileId", profile.ID.String()))
		response.Success(w, http.StatusCreated, profile)
	}
}

// GetProfile godoc
//	@Summary	Get a profile
//	@Tags		Profiles
//	@Produce	json
//	@Param		id	path		string	true	"Profile ID (UUID)"	Format(uuid)
//	@Success	200	{object}	models.Profile
//	@Failure	404	{object}	response.ErrorResponse
//	@Router		/profiles/{id} [get]
func (h *ProfileHandler) GetProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		profile, err := h.profileService.GetProfile(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, profile)
	}
}

// UpdateProfile godoc
//	@Summary	Update a profile
//	@Tags		Profiles
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Profile ID (UUID)"	Format(uuid)
//	@Param		profile	body		models.UpdateProfileRequest	true	"Fields to change"
//	@Success	200		{object}	models.Profile
//	@Failure	400		{object}	response.ErrorResponse
//	@Failure	404		{object}	response.ErrorResponse
//	@Router		/profiles/{id} [put]
func (h *ProfileHandler) UpdateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateProfileRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		profile, err := h.profileService.UpdateProfile(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update profile", slog.String("profileId", id.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, profile)
	}
}

// DeleteProfile godoc
//	@Summary	Delete a profile
//	@Tags		Profiles
//	@Param		id	path	string	true	"Profile ID (UUID)"	Format(uuid)
//	@Success	204
//	@Failure	404	{object}	response.ErrorResponse
//	@Router		/profiles/{id} [delete]
func (h *ProfileHandler) DeleteProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.profileService.DeleteProfile(r.Context(), id); err != nil {
			response.Error(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ListProfiles godoc
//	@Summary	List profiles
//	@Tags		Profiles
//	@Produce	json
//	@Param		page		query		int	false	"Page number (default: 1)"	minimum(1)
//	@Param		pageSize	query		int	false	"Items per page (default: 10, max: 100)"	minimum(1)	maximum(100)
//	@Success	200			{object}	models.PaginatedResponse{Data=[]models.Profile}
//	@Router		/profiles [get]
func (h *ProfileHandler) ListProfiles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, pageSize := utils.ParsePagination(r)

		profiles, total, err := h.profileService.ListProfiles(r.Context(), page, pageSize)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to list profiles", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     profiles,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}
