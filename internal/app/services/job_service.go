package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mertcan/placeport/internal/app/models"
	"github.com/mertcan/placeport/internal/app/models/dto"
	"github.com/mertcan/placeport/internal/app/store"
	"github.com/mertcan/placeport/internal/pkg/apperrors"
	"github.com/mertcan/placeport/internal/pkg/rules"
)

// JobService handles job postings, applications and status changes
type JobService struct {
	store  store.Store
	logger zerolog.Logger
}

// NewJobService creates a new JobService
func NewJobService(store store.Store, logger zerolog.Logger) *JobService {
	return &JobService{
		store:  store,
		logger: logger,
	}
}

// CreateJob creates a job posting
func (s *JobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.JobPosting, error) {
	id, err := s.store.CreateJob(ctx, &models.JobPosting{
		CompanyID:          req.CompanyID,
		Title:              req.Title,
		Description:        req.Description,
		Requirements:       req.Requirements,
		Location:           req.Location,
		JobType:            req.JobType,
		SalaryRange:        req.SalaryRange,
		Eligibility:        req.Eligibility,
		ApplicationProcess: req.ApplicationProcess,
		VisitDate:          req.VisitDate,
		VisitTime:          req.VisitTime,
		Venue:              req.Venue,
		Deadline:           req.Deadline,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("jobID", id).Str("title", req.Title).Msg("Job posting created")
	return s.store.GetJob(ctx, id)
}

// GetJob returns a job posting by ID
func (s *JobService) GetJob(ctx context.Context, id int64) (*models.JobPosting, error) {
	return s.store.GetJob(ctx, id)
}

// ListActiveJobs returns active postings in creation order
func (s *JobService) ListActiveJobs(ctx context.Context) ([]*models.JobPosting, error) {
	return s.store.ListActiveJobs(ctx)
}

// UpdateJob updates a job posting
func (s *JobService) UpdateJob(ctx context.Context, id int64, req *dto.UpdateJobRequest) (*models.JobPosting, error) {
	err := s.store.UpdateJob(ctx, &models.JobPosting{
		ID:                 id,
		Title:              req.Title,
		Description:        req.Description,
		Requirements:       req.Requirements,
		Location:           req.Location,
		JobType:            req.JobType,
		SalaryRange:        req.SalaryRange,
		Eligibility:        req.Eligibility,
		ApplicationProcess: req.ApplicationProcess,
		VisitDate:          req.VisitDate,
		VisitTime:          req.VisitTime,
		Venue:              req.Venue,
		Deadline:           req.Deadline,
		IsActive:           req.IsActive,
	})
	if err != nil {
		return nil, err
	}

	return s.store.GetJob(ctx, id)
}

// DeactivateJob marks a job posting inactive
func (s *JobService) DeactivateJob(ctx context.Context, id int64) error {
	return s.store.DeactivateJob(ctx, id)
}

// Apply submits a student's application to a job posting and notifies
// the student. Notification failures are logged, never surfaced: the
// application itself has already been recorded.
func (s *JobService) Apply(ctx context.Context, studentID, jobID int64, req *dto.ApplyRequest) (*models.JobApplication, error) {
	appID, err := s.store.CreateApplication(ctx, &models.ApplicationInput{
		StudentID:    studentID,
		JobPostingID: jobID,
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		CoverLetter:  req.CoverLetter,
	})
	if err != nil {
		return nil, err
	}

	app, err := s.store.GetApplication(ctx, appID)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, studentID,
		"Application Submitted",
		fmt.Sprintf("Your application for %s at %s has been received.", app.JobTitle, app.CompanyName),
		models.NotificationSuccess)

	s.logger.Info().Int64("studentID", studentID).Int64("jobID", jobID).Msg("Application submitted")
	return app, nil
}

// GetApplication returns an application by ID
func (s *JobService) GetApplication(ctx context.Context, id int64) (*models.JobApplication, error) {
	return s.store.GetApplication(ctx, id)
}

// ListApplicationsForUser returns a student's applications, newest first
func (s *JobService) ListApplicationsForUser(ctx context.Context, userID int64) ([]*models.JobApplication, error) {
	return s.store.ListApplicationsForUser(ctx, userID)
}

// ListApplications returns all applications, newest first
func (s *JobService) ListApplications(ctx context.Context) ([]*models.JobApplication, error) {
	return s.store.ListApplications(ctx)
}

// UpdateApplicationStatus changes an application's status and notifies
// the student. An unknown status fails before any write.
func (s *JobService) UpdateApplicationStatus(ctx context.Context, id int64, status string) (*models.JobApplication, error) {
	next := models.ApplicationStatus(status)
	if !rules.ValidApplicationStatus(next) {
		return nil, apperrors.ErrInvalidStatus
	}

	app, err := s.store.GetApplication(ctx, id)
	if err != nil {
		return nil, err
	}

	if !rules.CanTransitionApplicationStatus(app.Status, next) {
		return nil, apperrors.ErrInvalidStatus
	}

	if err := s.store.UpdateApplicationStatus(ctx, id, next); err != nil {
		return nil, err
	}

	s.notify(ctx, app.StudentID,
		"Application Status Updated",
		fmt.Sprintf("Your application for %s at %s is now %s.", app.JobTitle, app.CompanyName, next),
		statusNotificationType(next))

	return s.store.GetApplication(ctx, id)
}

func (s *JobService) notify(ctx context.Context, userID int64, title, message string, notificationType models.NotificationType) {
	if _, err := s.store.CreateNotification(ctx, userID, title, message, notificationType); err != nil {
		s.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to create notification")
	}
}

func statusNotificationType(status models.ApplicationStatus) models.NotificationType {
	switch status {
	case models.StatusShortlisted:
		return models.NotificationSuccess
	case models.StatusRejected:
		return models.NotificationError
	default:
		return models.NotificationInfo
	}
}
