package models

import (
	"strconv"
	"time"
)

// JobApplication defines the application model based on the 'job_applications' table.
// Profile fields are snapshotted at submission time and intentionally never
// re-derived from the live profile.
type JobApplication struct {
	ID           int64             `json:"id" db:"id"`
	StudentID    int64             `json:"studentId" db:"student_id"`
	JobPostingID *int64            `json:"jobPostingId,omitempty" db:"job_posting_id"` // Nullable for legacy free-text applications
	CompanyName  string            `json:"companyName" db:"company_name"`
	JobTitle     string            `json:"jobTitle" db:"job_title"`
	FullName     string            `json:"fullName" db:"full_name"`
	Email        string            `json:"email" db:"email"`
	Phone        string            `json:"phone,omitempty" db:"phone"`
	Department   string            `json:"department" db:"department"`
	GPA          string            `json:"gpa" db:"gpa"` // Stored as text in the snapshot, matching the legacy schema
	Skills       string            `json:"skills,omitempty" db:"skills"`
	CoverLetter  string            `json:"coverLetter,omitempty" db:"cover_letter"`
	Status       ApplicationStatus `json:"status" db:"status"`
	AppliedAt    time.Time         `json:"appliedAt" db:"applied_at"`
}

// ApplicationInput carries a new application request. Contact overrides
// default to the student's user record and profile when left empty; the
// remaining snapshot fields always come from the live profile at insert
// time.
type ApplicationInput struct {
	StudentID    int64
	JobPostingID int64
	FullName     string
	Email        string
	Phone        string
	CoverLetter  string
}

// NewApplicationSnapshot builds the denormalized application record from
// the live user, profile and job rows at submission time. Both backends
// snapshot through this so the captured fields stay identical.
func NewApplicationSnapshot(input *ApplicationInput, user *User, profile *StudentProfile, job *JobPosting) *JobApplication {
	fullName := input.FullName
	if fullName == "" {
		fullName = user.Name
	}
	email := input.Email
	if email == "" {
		email = user.Email
	}
	phone := input.Phone
	if phone == "" {
		phone = profile.Phone
	}

	jobID := job.ID
	return &JobApplication{
		StudentID:    input.StudentID,
		JobPostingID: &jobID,
		CompanyName:  job.Company.Name,
		JobTitle:     job.Title,
		FullName:     fullName,
		Email:        email,
		Phone:        phone,
		Department:   profile.Department,
		GPA:          strconv.FormatFloat(profile.GPA, 'f', -1, 64),
		Skills:       profile.Skills,
		CoverLetter:  input.CoverLetter,
		Status:       StatusPending,
	}
}

