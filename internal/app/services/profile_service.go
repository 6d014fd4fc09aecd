package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mertcan/placeport/internal/app/models"
	"github.com/mertcan/placeport/internal/app/models/dto"
	"github.com/mertcan/placeport/internal/app/store"
	"github.com/mertcan/placeport/internal/pkg/apperrors"
	"github.com/mertcan/placeport/internal/pkg/rules"
)

// ProfileService handles student profile reads and rule-checked updates
type ProfileService struct {
	store  store.Store
	logger zerolog.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(store store.Store, logger zerolog.Logger) *ProfileService {
	return &ProfileService{
		store:  store,
		logger: logger,
	}
}

// GetProfile returns a student's profile
func (s *ProfileService) GetProfile(ctx context.Context, userID int64) (*models.StudentProfile, error) {
	return s.store.GetProfileByUserID(ctx, userID)
}

// ListProfiles returns every student profile
func (s *ProfileService) ListProfiles(ctx context.Context) ([]*models.StudentProfile, error) {
	return s.store.ListProfiles(ctx)
}

// UpdateProfile merges the requested changes after checking them against
// the eligibility rules. Error-severity violations block the save;
// warning-severity ones are returned alongside the updated profile. The
// low-GPA eligibility flag is a warning, so a save with GPA below the
// floor still goes through.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*models.StudentProfile, []string, error) {
	current, err := s.store.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	update := toProfileUpdate(req)

	// Validate the profile as it would look after the merge.
	candidate := *current
	update.Apply(&candidate)

	violations := rules.ValidateProfile(&candidate)
	if req.Phone != nil && *req.Phone != "" && !rules.ValidatePhone(*req.Phone) {
		violations = append(violations, rules.Violation{
			Field:    "phone",
			Message:  "Phone number format is invalid",
			Severity: rules.SeverityError,
		})
	}

	if violations.Blocking() {
		return nil, nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "profile validation failed").
			WithDetails(map[string]interface{}{"violations": violations})
	}

	if err := s.store.UpdateProfile(ctx, current.ID, update); err != nil {
		return nil, nil, err
	}

	updated, err := s.store.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info().Int64("userID", userID).Msg("Profile updated")
	return updated, violations.Warnings().Messages(), nil
}

// UpdatePlacementStatus sets a student's placement status. Staff-driven;
// the status is free text and bypasses the eligibility rules.
func (s *ProfileService) UpdatePlacementStatus(ctx context.Context, userID int64, status string) (*models.StudentProfile, error) {
	profile, err := s.store.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.store.UpdateProfile(ctx, profile.ID, &models.ProfileUpdate{PlacementStatus: &status}); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", userID).Str("status", status).Msg("Placement status updated")
	return s.store.GetProfileByUserID(ctx, userID)
}

// SetResumeFilename records the stored resume filename on the profile
func (s *ProfileService) SetResumeFilename(ctx context.Context, userID int64, filename string) error {
	return s.setFileField(ctx, userID, &models.ProfileUpdate{ResumeFilename: &filename})
}

// SetPhotoFilename records the stored photo filename on the profile
func (s *ProfileService) SetPhotoFilename(ctx context.Context, userID int64, filename string) error {
	return s.setFileField(ctx, userID, &models.ProfileUpdate{PhotoFilename: &filename})
}

func (s *ProfileService) setFileField(ctx context.Context, userID int64, update *models.ProfileUpdate) error {
	profile, err := s.store.GetProfileByUserID(ctx, userID)
	if err != nil {
		return err
	}
	return s.store.UpdateProfile(ctx, profile.ID, update)
}

func toProfileUpdate(req *dto.UpdateProfileRequest) *models.ProfileUpdate {
	return &models.ProfileUpdate{
		Department:        req.Department,
		GPA:               req.GPA,
		Skills:            req.Skills,
		Internships:       req.Internships,
		Projects:          req.Projects,
		Certifications:    req.Certifications,
		CareerPreferences: req.CareerPreferences,
		PlacementStatus:   req.PlacementStatus,
		Phone:             req.Phone,
		LinkedIn:          req.LinkedIn,
		GitHub:            req.GitHub,
		Portfolio:         req.Portfolio,
	}
}
