package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mertcan/placeport/internal/app/models"
)

func TestValidateProfile(t *testing.T) {
	tests := []struct {
		name         string
		profile      models.StudentProfile
		wantBlocking bool
		wantWarnings int
	}{
		{
			name:         "valid profile",
			profile:      models.StudentProfile{Department: "Computer Science", GPA: 8.2},
			wantBlocking: false,
			wantWarnings: 0,
		},
		{
			name:         "missing department",
			profile:      models.StudentProfile{Department: "", GPA: 8.2},
			wantBlocking: true,
		},
		{
			name:         "whitespace department",
			profile:      models.StudentProfile{Department: "  ", GPA: 8.2},
			wantBlocking: true,
		},
		{
			name:         "gpa above range",
			profile:      models.StudentProfile{Department: "Computer Science", GPA: 10.5},
			wantBlocking: true,
		},
		{
			name:         "gpa below range",
			profile:      models.StudentProfile{Department: "Computer Science", GPA: -1},
			wantBlocking: true,
		},
		{
			name:         "gpa at lower bound",
			profile:      models.StudentProfile{Department: "Computer Science", GPA: 0},
			wantBlocking: false,
			wantWarnings: 1,
		},
		{
			name:         "gpa at upper bound",
			profile:      models.StudentProfile{Department: "Computer Science", GPA: 10},
			wantBlocking: false,
			wantWarnings: 0,
		},
		{
			name:         "low gpa warns but does not block",
			profile:      models.StudentProfile{Department: "Computer Science", GPA: 5.5},
			wantBlocking: false,
			wantWarnings: 1,
		},
		{
			name:         "gpa exactly at eligibility floor",
			profile:      models.StudentProfile{Department: "Computer Science", GPA: 6.0},
			wantBlocking: false,
			wantWarnings: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := ValidateProfile(&tt.profile)
			assert.Equal(t, tt.wantBlocking, violations.Blocking())
			assert.Len(t, violations.Warnings(), tt.wantWarnings)
		})
	}
}

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantOK   bool
	}{
		{"valid password", "Passw0rd!", true},
		{"valid without special character", "Passw0rd", true},
		{"too short", "Pw1", false},
		{"no uppercase", "passw0rd", false},
		{"no lowercase", "PASSW0RD", false},
		{"no digit", "Password", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := ValidatePasswordStrength(tt.password)
			assert.Equal(t, tt.wantOK, !violations.Blocking())
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"arun@x.edu", true},
		{"arun.kumar+tag@college.ac.in", true},
		{"no-at-sign.edu", false},
		{"missing@tld", false},
		{"", false},
		{"two@@x.edu", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateEmail(tt.email))
		})
	}
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("9876543210"))
	assert.True(t, ValidatePhone("+919876543210"))
	assert.False(t, ValidatePhone("12345"))
	assert.False(t, ValidatePhone("not-a-number"))
}

func TestCanTransitionApplicationStatus(t *testing.T) {
	valid := []models.ApplicationStatus{
		models.StatusPending, models.StatusReviewed, models.StatusShortlisted, models.StatusRejected,
	}

	// Statuses are tags, not a workflow: every valid pair is allowed,
	// including moving back to Pending and self-transitions.
	for _, from := range valid {
		for _, to := range valid {
			assert.True(t, CanTransitionApplicationStatus(from, to), "%s -> %s", from, to)
		}
	}

	assert.False(t, CanTransitionApplicationStatus(models.StatusPending, "Hired"))
	assert.False(t, CanTransitionApplicationStatus("Unknown", models.StatusPending))
}

func TestValidApplicationStatus(t *testing.T) {
	assert.True(t, ValidApplicationStatus(models.StatusPending))
	assert.True(t, ValidApplicationStatus(models.StatusRejected))
	assert.False(t, ValidApplicationStatus("pending"))
	assert.False(t, ValidApplicationStatus(""))
}
