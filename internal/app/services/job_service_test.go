package services_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mertcan/placeport/internal/app/models"
	"github.com/mertcan/placeport/internal/app/models/dto"
	"github.com/mertcan/placeport/internal/app/services"
	"github.com/mertcan/placeport/internal/pkg/apperrors"
)

func TestApply(t *testing.T) {
	s := newTestStore(t)
	svc := services.NewJobService(s, zerolog.Nop())
	ctx := context.Background()

	studentID := seedStudent(t, s)
	jobID := seedJob(t, s)

	app, err := svc.Apply(ctx, studentID, jobID, &dto.ApplyRequest{CoverLetter: "I would like to apply."})
	require.NoError(t, err)

	// Snapshot fields come from the account and profile.
	assert.Equal(t, "Arun Kumar", app.FullName)
	assert.Equal(t, "arun@x.edu", app.Email)
	assert.Equal(t, "8.2", app.GPA)
	assert.Equal(t, "Infosys Limited", app.CompanyName)
	assert.Equal(t, models.StatusPending, app.Status)

	// The student is notified of the submission.
	notifications, err := s.ListNotificationsForUser(ctx, studentID, false)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "Application Submitted", notifications[0].Title)
	assert.Equal(t, models.NotificationSuccess, notifications[0].Type)
}

func TestApplyDuplicate(t *testing.T) {
	s := newTestStore(t)
	svc := services.NewJobService(s, zerolog.Nop())
	ctx := context.Background()

	studentID := seedStudent(t, s)
	jobID := seedJob(t, s)

	_, err := svc.Apply(ctx, studentID, jobID, &dto.ApplyRequest{})
	require.NoError(t, err)

	_, err = svc.Apply(ctx, studentID, jobID, &dto.ApplyRequest{})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateApplication)

	// Only the first submission produced a notification.
	notifications, err := s.ListNotificationsForUser(ctx, studentID, false)
	require.NoError(t, err)
	assert.Len(t, notifications, 1)
}

func TestApplyMissingJob(t *testing.T) {
	s := newTestStore(t)
	svc := services.NewJobService(s, zerolog.Nop())

	studentID := seedStudent(t, s)

	_, err := svc.Apply(context.Background(), studentID, 9999, &dto.ApplyRequest{})
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
}

func TestUpdateApplicationStatus(t *testing.T) {
	s := newTestStore(t)
	svc := services.NewJobService(s, zerolog.Nop())
	ctx := context.Background()

	studentID := seedStudent(t, s)
	jobID := seedJob(t, s)

	app, err := svc.Apply(ctx, studentID, jobID, &dto.ApplyRequest{})
	require.NoError(t, err)

	updated, err := svc.UpdateApplicationStatus(ctx, app.ID, "Shortlisted")
	require.NoError(t, err)
	assert.Equal(t, models.StatusShortlisted, updated.Status)

	// Submission plus status change, newest first.
	notifications, err := s.ListNotificationsForUser(ctx, studentID, false)
	require.NoError(t, err)
	require.Len(t, notifications, 2)
	assert.Equal(t, "Application Status Updated", notifications[0].Title)
	assert.Equal(t, models.NotificationSuccess, notifications[0].Type)
}

func TestUpdateApplicationStatusInvalid(t *testing.T) {
	s := newTestStore(t)
	svc := services.NewJobService(s, zerolog.Nop())
	ctx := context.Background()

	studentID := seedStudent(t, s)
	jobID := seedJob(t, s)

	app, err := svc.Apply(ctx, studentID, jobID, &dto.ApplyRequest{})
	require.NoError(t, err)

	_, err = svc.UpdateApplicationStatus(ctx, app.ID, "Hired")
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)

	// The stored status is untouched.
	got, err := svc.GetApplication(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)
}

func TestRejectedStatusNotifiesWithErrorType(t *testing.T) {
	s := newTestStore(t)
	svc := services.NewJobService(s, zerolog.Nop())
	ctx := context.Background()

	studentID := seedStudent(t, s)
	jobID := seedJob(t, s)

	app, err := svc.Apply(ctx, studentID, jobID, &dto.ApplyRequest{})
	require.NoError(t, err)

	_, err = svc.UpdateApplicationStatus(ctx, app.ID, "Rejected")
	require.NoError(t, err)

	notifications, err := s.ListNotificationsForUser(ctx, studentID, false)
	require.NoError(t, err)
	require.NotEmpty(t, notifications)
	assert.Equal(t, models.NotificationError, notifications[0].Type)
}
