package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/mertcan/placeport/internal/app/models"
	"github.com/mertcan/placeport/internal/app/store"
	"github.com/mertcan/placeport/internal/app/store/document"
	"github.com/mertcan/placeport/internal/pkg/auth"
)

// newTestStore backs the services with an in-process document store.
func newTestStore(t *testing.T) store.Store {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return document.New(client, zerolog.Nop())
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "placeport.test",
	})
}

// seedStudent registers a student with a complete profile and returns
// the user ID.
func seedStudent(t *testing.T, s store.Store) int64 {
	t.Helper()
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

	return userID
}

// seedJob creates a company with one active posting and returns the job ID.
func seedJob(t *testing.T, s store.Store) int64 {
	t.Helper()
	ctx := context.Background()

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

	return jobID
}
