package services_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mertcan/placeport/internal/app/models/dto"
	"github.com/mertcan/placeport/internal/app/services"
	"github.com/mertcan/placeport/internal/pkg/apperrors"
)

func TestUpdateProfileLowGPAWarnsButSaves(t *testing.T) {
	s := newTestStore(t)
	svc := services.NewProfileService(s, zerolog.Nop())
	ctx := context.Background()

	userID := seedStudent(t, s)

	gpa := 5.5
	profile, warnings, err := svc.UpdateProfile(ctx, userID, &dto.UpdateProfileRequest{GPA: &gpa})
	require.NoError(t, err)

	// The save went through despite the eligibility warning.
	assert.Equal(t, 5.5, profile.GPA)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "6.0")
}

func TestUpdateProfileOutOfRangeGPABlocks(t *testing.T) {
	s := newTestStore(t)
	svc := services.NewProfileService(s, zerolog.Nop())
	ctx := context.Background()

	userID := seedStudent(t, s)

	gpa := 11.0
	_, _, err := svc.UpdateProfile(ctx, userID, &dto.UpdateProfileRequest{GPA: &gpa})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	// The stored profile is unchanged.
	profile, err := svc.GetProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 8.2, profile.GPA)
}

func TestUpdateProfileEmptyDepartmentBlocks(t *testing.T) {
	s := newTestStore(t)
	svc := services.NewProfileService(s, zerolog.Nop())
	ctx := context.Background()

	userID := seedStudent(t, s)

	dept := " "
	_, _, err := svc.UpdateProfile(ctx, userID, &dto.UpdateProfileRequest{Department: &dept})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateProfileInvalidPhoneBlocks(t *testing.T) {
	s := newTestStore(t)
	svc := services.NewProfileService(s, zerolog.Nop())
	ctx := context.Background()

	userID := seedStudent(t, s)

	phone := "12-34"
	_, _, err := svc.UpdateProfile(ctx, userID, &dto.UpdateProfileRequest{Phone: &phone})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateProfileMissingProfile(t *testing.T) {
	s := newTestStore(t)
	svc := services.NewProfileService(s, zerolog.Nop())

	dept := "Computer Science"
	_, _, err := svc.UpdateProfile(context.Background(), 9999, &dto.UpdateProfileRequest{Department: &dept})
	assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
}

func TestUpdatePlacementStatus(t *testing.T) {
	s := newTestStore(t)
	svc := services.NewProfileService(s, zerolog.Nop())
	ctx := context.Background()

	userID := seedStudent(t, s)

	profile, err := svc.UpdatePlacementStatus(ctx, userID, "Placed at Infosys")
	require.NoError(t, err)
	assert.Equal(t, "Placed at Infosys", profile.PlacementStatus)

	// Only the status changed.
	assert.Equal(t, "Computer Science", profile.Department)
	assert.Equal(t, 8.2, profile.GPA)

	_, err = svc.UpdatePlacementStatus(ctx, 9999, "Placed")
	assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
}

func TestSetResumeFilename(t *testing.T) {
	s := newTestStore(t)
	svc := services.NewProfileService(s, zerolog.Nop())
	ctx := context.Background()

	userID := seedStudent(t, s)

	require.NoError(t, svc.SetResumeFilename(ctx, userID, "resumes/abc123.pdf"))

	profile, err := svc.GetProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "resumes/abc123.pdf", profile.ResumeFilename)
}
