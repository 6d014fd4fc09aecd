package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mertcan/placeport/internal/app/models"
	"github.com/mertcan/placeport/internal/pkg/apperrors"
	"github.com/mertcan/placeport/internal/pkg/dberrors"
)

const jobColumns = `j.id, j.company_id, j.title, j.description, j.requirements, j.location,
	j.job_type, j.salary_range, j.eligibility, j.application_process,
	j.visit_date, j.visit_time, j.venue, j.deadline, j.is_active, j.created_at,
	c.name, c.short_name, c.description`

func scanJob(row pgx.Row) (*models.JobPosting, error) {
	var j models.JobPosting
	var company models.CompanySummary
	err := row.Scan(
		&j.ID, &j.CompanyID, &j.Title, &j.Description, &j.Requirements, &j.Location,
		&j.JobType, &j.SalaryRange, &j.Eligibility, &j.ApplicationProcess,
		&j.VisitDate, &j.VisitTime, &j.Venue, &j.Deadline, &j.IsActive, &j.CreatedAt,
		&company.Name, &company.ShortName, &company.Description)
	if err != nil {
		return nil, err
	}
	j.Company = &company
	return &j, nil
}

// CreateJob creates a new job posting
func (s *Store) CreateJob(ctx context.Context, job *models.JobPosting) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx, `
		INSERT INTO job_postings (company_id, title, description, requirements, location,
			job_type, salary_range, eligibility, application_process,
			visit_date, visit_time, venue, deadline, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, true)
		RETURNING id`,
		job.CompanyID, job.Title, job.Description, job.Requirements, job.Location,
		job.JobType, job.SalaryRange, job.Eligibility, job.ApplicationProcess,
		job.VisitDate, job.VisitTime, job.Venue, job.Deadline).Scan(&id)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrCompanyNotFound
		}
		return 0, fmt.Errorf("error creating job posting: %w", err)
	}

	return id, nil
}

// GetJob retrieves a job posting with its company display fields
func (s *Store) GetJob(ctx context.Context, id int64) (*models.JobPosting, error) {
	job, err := scanJob(s.pool.QueryRow(ctx, `
		SELECT `+jobColumns+`
		FROM job_postings j
		JOIN companies c ON c.id = j.company_id
		WHERE j.id = $1`,
		id))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("error retrieving job posting: %w", err)
	}

	return job, nil
}

// ListActiveJobs returns active postings ordered by creation time
func (s *Store) ListActiveJobs(ctx context.Context) ([]*models.JobPosting, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+jobColumns+`
		FROM job_postings j
		JOIN companies c ON c.id = j.company_id
		WHERE j.is_active = true
		ORDER BY j.created_at, j.id`)
	if err != nil {
		return nil, fmt.Errorf("error listing jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*models.JobPosting
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning job row: %w", err)
		}
		jobs = append(jobs, job)
	}

	return jobs, rows.Err()
}

// UpdateJob updates a job posting
func (s *Store) UpdateJob(ctx context.Context, job *models.JobPosting) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE job_postings
		SET title = $1, description = $2, requirements = $3, location = $4,
		    job_type = $5, salary_range = $6, eligibility = $7, application_process = $8,
		    visit_date = $9, visit_time = $10, venue = $11, deadline = $12, is_active = $13
		WHERE id = $14`,
		job.Title, job.Description, job.Requirements, job.Location,
		job.JobType, job.SalaryRange, job.Eligibility, job.ApplicationProcess,
		job.VisitDate, job.VisitTime, job.Venue, job.Deadline, job.IsActive,
		job.ID)

	if err != nil {
		return fmt.Errorf("error updating job posting: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}

	return nil
}

// DeactivateJob marks a job posting inactive
func (s *Store) DeactivateJob(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE job_postings SET is_active = false WHERE id = $1`,
		id)

	if err != nil {
		return fmt.Errorf("error deactivating job posting: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}

	return nil
}

// CreateApplication inserts an application with the student's profile
// fields snapshotted at insert time. The (student, job) uniqueness rides
// on the composite unique index.
func (s *Store) CreateApplication(ctx context.Context, input *models.ApplicationInput) (int64, error) {
	user, err := s.GetUserByID(ctx, input.StudentID)
	if err != nil {
		return 0, err
	}

	profile, err := s.GetProfileByUserID(ctx, input.StudentID)
	if err != nil {
		return 0, err
	}

	job, err := s.GetJob(ctx, input.JobPostingID)
	if err != nil {
		return 0, err
	}

	app := models.NewApplicationSnapshot(input, user, profile, job)

	var id int64
	err = s.pool.QueryRow(ctx, `
		INSERT INTO job_applications (student_id, job_posting_id, company_name, job_title,
			full_name, email, phone, department, gpa, skills, cover_letter, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`,
		app.StudentID, app.JobPostingID, app.CompanyName, app.JobTitle,
		app.FullName, app.Email, app.Phone, app.Department, app.GPA,
		app.Skills, app.CoverLetter, app.Status).Scan(&id)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "job_applications_student_job_key") {
			s.logger.Warn().Int64("studentID", input.StudentID).Int64("jobID", input.JobPostingID).
				Msg("Duplicate application attempt")
			return 0, apperrors.ErrDuplicateApplication
		}
		return 0, fmt.Errorf("error creating application: %w", err)
	}

	return id, nil
}

const applicationColumns = `id, student_id, job_posting_id, company_name, job_title,
	full_name, email, phone, department, gpa, skills, cover_letter, status, applied_at`

func scanApplication(row pgx.Row) (*models.JobApplication, error) {
	var a models.JobApplication
	err := row.Scan(
		&a.ID, &a.StudentID, &a.JobPostingID, &a.CompanyName, &a.JobTitle,
		&a.FullName, &a.Email, &a.Phone, &a.Department, &a.GPA,
		&a.Skills, &a.CoverLetter, &a.Status, &a.AppliedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetApplication retrieves an application by ID
func (s *Store) GetApplication(ctx context.Context, id int64) (*models.JobApplication, error) {
	app, err := scanApplication(s.pool.QueryRow(ctx, `
		SELECT `+applicationColumns+`
		FROM job_applications
		WHERE id = $1`,
		id))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}

	return app, nil
}

// ListApplicationsForUser returns a student's applications, newest first
func (s *Store) ListApplicationsForUser(ctx context.Context, userID int64) ([]*models.JobApplication, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+applicationColumns+`
		FROM job_applications
		WHERE student_id = $1
		ORDER BY applied_at DESC, id DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	return collectApplications(rows)
}

// ListApplications returns all applications, newest first
func (s *Store) ListApplications(ctx context.Context) ([]*models.JobApplication, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+applicationColumns+`
		FROM job_applications
		ORDER BY applied_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	return collectApplications(rows)
}

func collectApplications(rows pgx.Rows) ([]*models.JobApplication, error) {
	var apps []*models.JobApplication
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning application row: %w", err)
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

// UpdateApplicationStatus updates an application's status. Values outside
// the four enumerated statuses fail and leave the record unchanged.
func (s *Store) UpdateApplicationStatus(ctx context.Context, id int64, status models.ApplicationStatus) error {
	switch status {
	case models.StatusPending, models.StatusReviewed, models.StatusShortlisted, models.StatusRejected:
	default:
		return apperrors.ErrInvalidStatus
	}

	tag, err := s.pool.Exec(ctx, `
		UPDATE job_applications SET status = $1 WHERE id = $2`,
		status, id)

	if err != nil {
		return fmt.Errorf("error updating application status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}

	return nil
}
