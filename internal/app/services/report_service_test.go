package services_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mertcan/placeport/internal/app/models"
	"github.com/mertcan/placeport/internal/app/services"
	"github.com/mertcan/placeport/internal/app/store"
)

func seedProfiles(t *testing.T, s store.Store) {
	t.Helper()
	ctx := context.Background()

	students := []struct {
		department string
		gpa        float64
		status     string
	}{
		{"Computer Science", 8.0, "Placed at Infosys"},
		{"Computer Science", 6.0, ""},
		{"Mechanical", 7.0, "Not Placed"},
	}

	for i, st := range students {
		userID, err := s.CreateUser(ctx, fmt.Sprintf("Student %d", i), fmt.Sprintf("student%d@x.edu", i), "Passw0rd!", models.RoleStudent)
		require.NoError(t, err)

		profile, err := s.GetProfileByUserID(ctx, userID)
		require.NoError(t, err)

		dept, gpa, status := st.department, st.gpa, st.status
		require.NoError(t, s.UpdateProfile(ctx, profile.ID, &models.ProfileUpdate{
			Department:      &dept,
			GPA:             &gpa,
			PlacementStatus: &status,
		}))
	}
}

func TestPlacementReport(t *testing.T) {
	s := newTestStore(t)
	svc := services.NewReportService(s, zerolog.Nop())

	seedProfiles(t, s)

	report, err := svc.PlacementReport(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, report.TotalStudents)
	assert.Equal(t, 1, report.Placed)
	assert.Equal(t, 2, report.NotPlaced)

	require.Len(t, report.Departments, 2)
	cs := report.Departments[0]
	assert.Equal(t, "Computer Science", cs.Department)
	assert.Equal(t, 2, cs.Students)
	assert.Equal(t, 1, cs.Placed)
	assert.InDelta(t, 7.0, cs.AverageGPA, 0.001)

	mech := report.Departments[1]
	assert.Equal(t, "Mechanical", mech.Department)
	assert.Equal(t, 0, mech.Placed)
}

func TestWritePlacementCSV(t *testing.T) {
	s := newTestStore(t)
	svc := services.NewReportService(s, zerolog.Nop())

	seedProfiles(t, s)

	var buf bytes.Buffer
	require.NoError(t, svc.WritePlacementCSV(context.Background(), &buf))

	out := buf.String()
	assert.Contains(t, out, "department,students,placed,not_placed,average_gpa")
	assert.Contains(t, out, "Computer Science,2,1,1,7.00")
	assert.Contains(t, out, "Mechanical,1,0,1,7.00")
}
