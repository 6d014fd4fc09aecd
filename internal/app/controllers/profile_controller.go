package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mertcan/placeport/internal/app/models/dto"
	"github.com/mertcan/placeport/internal/app/services"
	"github.com/mertcan/placeport/internal/middleware"
	"github.com/mertcan/placeport/internal/pkg/filestorage"
)

// ProfileController handles student profile operations
type ProfileController struct {
	profileService *services.ProfileService
	storage        filestorage.FileStorage
	logger         zerolog.Logger
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService *services.ProfileService, storage filestorage.FileStorage, logger zerolog.Logger) *ProfileController {
	return &ProfileController{
		profileService: profileService,
		storage:        storage,
		logger:         logger,
	}
}

// GetMyProfile returns the authenticated student's profile
func (c *ProfileController) GetMyProfile(ctx *gin.Context) {
	profile, err := c.profileService.GetProfile(ctx.Request.Context(), middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(profile))
}

// UpdateMyProfile merges profile changes for the authenticated student.
// Warnings from the eligibility rules come back alongside the updated
// profile; they never block the save.
func (c *ProfileController) UpdateMyProfile(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	profile, warnings, err := c.profileService.UpdateProfile(ctx.Request.Context(), middleware.UserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(profile).WithWarnings(warnings))
}

// ListProfiles returns every student profile
func (c *ProfileController) ListProfiles(ctx *gin.Context) {
	profiles, err := c.profileService.ListProfiles(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(profiles))
}

// GetProfile returns one student's profile by user ID
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	profile, err := c.profileService.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(profile))
}

// UpdatePlacementStatus sets a student's placement status
func (c *ProfileController) UpdatePlacementStatus(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	var req dto.UpdatePlacementStatusRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	profile, err := c.profileService.UpdatePlacementStatus(ctx.Request.Context(), userID, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(profile))
}

// UploadResume stores an uploaded resume and records its stored name
func (c *ProfileController) UploadResume(ctx *gin.Context) {
	c.uploadFile(ctx, "resume", "resumes", c.profileService.SetResumeFilename)
}

// UploadPhoto stores an uploaded photo and records its stored name
func (c *ProfileController) UploadPhoto(ctx *gin.Context) {
	c.uploadFile(ctx, "photo", "photos", c.profileService.SetPhotoFilename)
}

func (c *ProfileController) uploadFile(ctx *gin.Context, field, subPath string, record func(ctx context.Context, userID int64, filename string) error) {
	fileHeader, err := ctx.FormFile(field)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "File upload required").WithField(field)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	storedName, err := c.storage.SaveFile(fileHeader, subPath)
	if err != nil {
		c.logger.Error().Err(err).Str("field", field).Msg("Failed to store uploaded file")
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := record(ctx.Request.Context(), middleware.UserID(ctx), storedName); err != nil {
		_ = c.storage.DeleteFile(storedName)
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(gin.H{"filename": storedName}))
}
