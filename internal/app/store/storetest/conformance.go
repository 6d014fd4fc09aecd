// Package storetest holds a backend-agnostic conformance suite. Both
// store backends must pass it unchanged: every assertion here is part of
// the store contract, not an implementation detail of one backend.
package storetest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mertcan/placeport/internal/app/models"
	"github.com/mertcan/placeport/internal/app/store"
	"github.com/mertcan/placeport/internal/pkg/apperrors"
)

// Factory returns a fresh, empty store for one subtest.
type Factory func(t *testing.T) store.Store

// Run exercises the full store contract against the given backend.
func Run(t *testing.T, newStore Factory) {
	t.Run("CreateUserRejectsDuplicateEmail", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		_, err := s.CreateUser(ctx, "Arun Kumar", "arun@x.edu", "Passw0rd!", models.RoleStudent)
		require.NoError(t, err)

		_, err = s.CreateUser(ctx, "Another Arun", "arun@x.edu", "Different1!", models.RoleStudent)
		assert.ErrorIs(t, err, apperrors.ErrDuplicateEmail)
	})

	t.Run("CreateUserProvisionsEmptyStudentProfile", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		userID, err := s.CreateUser(ctx, "Arun Kumar", "arun@x.edu", "Passw0rd!", models.RoleStudent)
		require.NoError(t, err)

		profile, err := s.GetProfileByUserID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, userID, profile.UserID)
		assert.Empty(t, profile.Department)
		assert.Zero(t, profile.GPA)
		assert.Equal(t, models.PlacementStatusNotPlaced, profile.PlacementStatus)
	})

	t.Run("NonStudentUsersGetNoProfile", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		userID, err := s.CreateUser(ctx, "Placement Admin", "admin@x.edu", "Adm1nPass!", models.RoleAdmin)
		require.NoError(t, err)

		_, err = s.GetProfileByUserID(ctx, userID)
		assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
	})

	t.Run("VerifyPasswordFailuresAreIndistinguishable", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		_, err := s.CreateUser(ctx, "Arun Kumar", "arun@x.edu", "Passw0rd!", models.RoleStudent)
		require.NoError(t, err)

		_, wrongPassword := s.VerifyPassword(ctx, "arun@x.edu", "WrongPass1")
		_, wrongEmail := s.VerifyPassword(ctx, "nobody@x.edu", "Passw0rd!")
		assert.ErrorIs(t, wrongPassword, apperrors.ErrInvalidCredentials)
		assert.ErrorIs(t, wrongEmail, apperrors.ErrInvalidCredentials)
	})

	t.Run("VerifyPasswordStripsHash", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		_, err := s.CreateUser(ctx, "Arun Kumar", "arun@x.edu", "Passw0rd!", models.RoleStudent)
		require.NoError(t, err)

		user, err := s.VerifyPassword(ctx, "arun@x.edu", "Passw0rd!")
		require.NoError(t, err)
		assert.Equal(t, "Arun Kumar", user.Name)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("UpdateProfileMergesOnlySuppliedFields", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		userID, err := s.CreateUser(ctx, "Arun Kumar", "arun@x.edu", "Passw0rd!", models.RoleStudent)
		require.NoError(t, err)

		profile, err := s.GetProfileByUserID(ctx, userID)
		require.NoError(t, err)

		dept := "Computer Science"
		gpa := 8.2
		require.NoError(t, s.UpdateProfile(ctx, profile.ID, &models.ProfileUpdate{
			Department: &dept,
			GPA:        &gpa,
		}))

		skills := "Go, SQL"
		require.NoError(t, s.UpdateProfile(ctx, profile.ID, &models.ProfileUpdate{
			Skills: &skills,
		}))

		got, err := s.GetProfileByUserID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, "Computer Science", got.Department)
		assert.Equal(t, 8.2, got.GPA)
		assert.Equal(t, "Go, SQL", got.Skills)
		assert.Equal(t, models.PlacementStatusNotPlaced, got.PlacementStatus)
	})

	t.Run("UpdateProfileMissingProfile", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		dept := "Computer Science"
		err := s.UpdateProfile(ctx, 9999, &models.ProfileUpdate{Department: &dept})
		assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
	})

	t.Run("CreateJobRequiresExistingCompany", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		_, err := s.CreateJob(ctx, &models.JobPosting{CompanyID: 9999, Title: "Systems Engineer"})
		assert.ErrorIs(t, err, apperrors.ErrCompanyNotFound)
	})

	t.Run("ListActiveJobsJoinsCompanyAndFilters", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		companyID, err := s.CreateCompany(ctx, &models.Company{
			Name:        "Infosys Limited",
			ShortName:   "Infosys",
			Description: "IT services and consulting",
		})
		require.NoError(t, err)

		firstID, err := s.CreateJob(ctx, &models.JobPosting{CompanyID: companyID, Title: "Systems Engineer"})
		require.NoError(t, err)
		secondID, err := s.CreateJob(ctx, &models.JobPosting{CompanyID: companyID, Title: "Data Analyst"})
		require.NoError(t, err)

		require.NoError(t, s.DeactivateJob(ctx, secondID))

		jobs, err := s.ListActiveJobs(ctx)
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, firstID, jobs[0].ID)
		require.NotNil(t, jobs[0].Company)
		assert.Equal(t, "Infosys Limited", jobs[0].Company.Name)
	})

	t.Run("CreateApplicationSnapshotsProfile", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		userID, jobID := seedStudentAndJob(t, s)

		appID, err := s.CreateApplication(ctx, &models.ApplicationInput{
			StudentID:    userID,
			JobPostingID: jobID,
			CoverLetter:  "I would like to apply.",
		})
		require.NoError(t, err)

		app, err := s.GetApplication(ctx, appID)
		require.NoError(t, err)
		assert.Equal(t, "Arun Kumar", app.FullName)
		assert.Equal(t, "arun@x.edu", app.Email)
		assert.Equal(t, "Computer Science", app.Department)
		assert.Equal(t, "8.2", app.GPA)
		assert.Equal(t, "Infosys Limited", app.CompanyName)
		assert.Equal(t, "Systems Engineer", app.JobTitle)
		assert.Equal(t, models.StatusPending, app.Status)

		// Later profile edits must not leak into the stored snapshot.
		profile, err := s.GetProfileByUserID(ctx, userID)
		require.NoError(t, err)
		gpa := 9.9
		require.NoError(t, s.UpdateProfile(ctx, profile.ID, &models.ProfileUpdate{GPA: &gpa}))

		again, err := s.GetApplication(ctx, appID)
		require.NoError(t, err)
		assert.Equal(t, "8.2", again.GPA)
	})

	t.Run("CreateApplicationRejectsDuplicatePair", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		userID, jobID := seedStudentAndJob(t, s)

		input := &models.ApplicationInput{StudentID: userID, JobPostingID: jobID}
		_, err := s.CreateApplication(ctx, input)
		require.NoError(t, err)

		_, err = s.CreateApplication(ctx, input)
		assert.ErrorIs(t, err, apperrors.ErrDuplicateApplication)

		apps, err := s.ListApplicationsForUser(ctx, userID)
		require.NoError(t, err)
		assert.Len(t, apps, 1)
	})

	t.Run("ListApplicationsNewestFirst", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		userID, _ := seedStudentAndJob(t, s)

		companyID, err := s.CreateCompany(ctx, &models.Company{Name: "Wipro Limited", ShortName: "Wipro"})
		require.NoError(t, err)

		var appIDs []int64
		for i := 0; i < 3; i++ {
			jobID, err := s.CreateJob(ctx, &models.JobPosting{
				CompanyID: companyID,
				Title:     fmt.Sprintf("Engineer %d", i),
			})
			require.NoError(t, err)

			// Keep applied-at timestamps strictly ordered.
			time.Sleep(5 * time.Millisecond)

			appID, err := s.CreateApplication(ctx, &models.ApplicationInput{
				StudentID:    userID,
				JobPostingID: jobID,
			})
			require.NoError(t, err)
			appIDs = append(appIDs, appID)
		}

		apps, err := s.ListApplicationsForUser(ctx, userID)
		require.NoError(t, err)
		require.Len(t, apps, 3)
		assert.Equal(t, appIDs[2], apps[0].ID)
		assert.Equal(t, appIDs[1], apps[1].ID)
		assert.Equal(t, appIDs[0], apps[2].ID)
	})

	t.Run("UpdateApplicationStatusWhitelist", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		userID, jobID := seedStudentAndJob(t, s)
		appID, err := s.CreateApplication(ctx, &models.ApplicationInput{
			StudentID:    userID,
			JobPostingID: jobID,
		})
		require.NoError(t, err)

		require.NoError(t, s.UpdateApplicationStatus(ctx, appID, models.StatusShortlisted))

		err = s.UpdateApplicationStatus(ctx, appID, models.ApplicationStatus("Hired"))
		assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)

		app, err := s.GetApplication(ctx, appID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusShortlisted, app.Status)
	})

	t.Run("UpdateApplicationStatusMissingApplication", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		err := s.UpdateApplicationStatus(ctx, 9999, models.StatusReviewed)
		assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)
	})

	t.Run("NotificationsNewestFirstAndUnreadFilter", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		userID, err := s.CreateUser(ctx, "Arun Kumar", "arun@x.edu", "Passw0rd!", models.RoleStudent)
		require.NoError(t, err)

		first, err := s.CreateNotification(ctx, userID, "Welcome", "Account created", models.NotificationInfo)
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
		second, err := s.CreateNotification(ctx, userID, "Reminder", "Complete your profile", "")
		require.NoError(t, err)

		all, err := s.ListNotificationsForUser(ctx, userID, false)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, second, all[0].ID)
		assert.Equal(t, first, all[1].ID)
		// Empty type defaults to info.
		assert.Equal(t, models.NotificationInfo, all[0].Type)

		require.NoError(t, s.MarkNotificationRead(ctx, second, userID))

		unread, err := s.ListNotificationsForUser(ctx, userID, true)
		require.NoError(t, err)
		require.Len(t, unread, 1)
		assert.Equal(t, first, unread[0].ID)
	})

	t.Run("MarkNotificationReadEnforcesOwnership", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		ownerID, err := s.CreateUser(ctx, "Arun Kumar", "arun@x.edu", "Passw0rd!", models.RoleStudent)
		require.NoError(t, err)
		otherID, err := s.CreateUser(ctx, "Priya Sharma", "priya@x.edu", "Passw0rd!", models.RoleStudent)
		require.NoError(t, err)

		notifID, err := s.CreateNotification(ctx, ownerID, "Welcome", "Account created", models.NotificationInfo)
		require.NoError(t, err)

		err = s.MarkNotificationRead(ctx, notifID, otherID)
		assert.ErrorIs(t, err, apperrors.ErrNotificationNotFound)

		all, err := s.ListNotificationsForUser(ctx, ownerID, true)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.False(t, all[0].IsRead)
	})
}

// seedStudentAndJob creates one student with a filled profile, one
// company and one active job, returning the user and job IDs.
func seedStudentAndJob(t *testing.T, s store.Store) (int64, int64) {
	t.Helper()
	ctx := context.Background()

	userID, err := s.CreateUser(ctx, "Arun Kumar", "arun@x.edu", "Passw0rd!", models.RoleStudent)
	require.NoError(t, err)

	profile, err := s.GetProfileByUserID(ctx, userID)
	require.NoError(t, err)

	dept := "Computer Science"
	gpa := 8.2
	skills := "Go, SQL"
	require.NoError(t, s.UpdateProfile(ctx, profile.ID, &models.ProfileUpdate{
		Department: &dept,
		GPA:        &gpa,
		Skills:     &skills,
	}))

	companyID, err := s.CreateCompany(ctx, &models.Company{
		Name:      "Infosys Limited",
		ShortName: "Infosys",
	})
	require.NoError(t, err)

	jobID, err := s.CreateJob(ctx, &models.JobPosting{
		CompanyID: companyID,
		Title:     "Systems Engineer",
	})
	require.NoError(t, err)

	return userID, jobID
}
