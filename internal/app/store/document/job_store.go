package document

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mertcan/placeport/internal/app/models"
	"github.com/mertcan/placeport/internal/pkg/apperrors"
)

// CreateJob creates a new job posting. The company must exist; the
// company display fields are joined at read time rather than stored in
// the job document.
func (s *Store) CreateJob(ctx context.Context, job *models.JobPosting) (int64, error) {
	if _, err := s.GetCompany(ctx, job.CompanyID); err != nil {
		return 0, err
	}

	id, err := s.nextID(ctx, "jobs")
	if err != nil {
		return 0, err
	}

	job.ID = id
	job.IsActive = true
	job.CreatedAt = time.Now().UTC()
	job.Company = nil

	if err := s.setJSON(ctx, jobKey(id), job); err != nil {
		return 0, fmt.Errorf("error creating job posting: %w", err)
	}
	if err := s.client.ZAdd(ctx, jobsKey, redis.Z{Score: float64(id), Member: id}).Err(); err != nil {
		return 0, fmt.Errorf("error registering job posting: %w", err)
	}

	return id, nil
}

// GetJob retrieves a job posting with its company display fields
func (s *Store) GetJob(ctx context.Context, id int64) (*models.JobPosting, error) {
	job := &models.JobPosting{}
	if err := s.getJSON(ctx, jobKey(id), job); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("error retrieving job posting: %w", err)
	}

	if err := s.attachCompany(ctx, job); err != nil {
		return nil, err
	}

	return job, nil
}

func (s *Store) attachCompany(ctx context.Context, job *models.JobPosting) error {
	company, err := s.GetCompany(ctx, job.CompanyID)
	if err != nil {
		return err
	}
	job.Company = &models.CompanySummary{
		Name:        company.Name,
		ShortName:   company.ShortName,
		Description: company.Description,
	}
	return nil
}

// ListActiveJobs returns active postings ordered by creation time
func (s *Store) ListActiveJobs(ctx context.Context) ([]*models.JobPosting, error) {
	members, err := s.client.ZRange(ctx, jobsKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("error listing jobs: %w", err)
	}

	var jobs []*models.JobPosting
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("corrupt job registry entry %q: %w", m, err)
		}
		job, err := s.GetJob(ctx, id)
		if err != nil {
			return nil, err
		}
		if !job.IsActive {
			continue
		}
		jobs = append(jobs, job)
	}

	return jobs, nil
}

// UpdateJob updates a job posting. The owning company and creation
// timestamp are immutable.
func (s *Store) UpdateJob(ctx context.Context, job *models.JobPosting) error {
	existing := &models.JobPosting{}
	if err := s.getJSON(ctx, jobKey(job.ID), existing); err != nil {
		if errors.Is(err, redis.Nil) {
			return apperrors.ErrJobNotFound
		}
		return fmt.Errorf("error retrieving job posting: %w", err)
	}

	job.CompanyID = existing.CompanyID
	job.CreatedAt = existing.CreatedAt
	job.Company = nil

	if err := s.setJSON(ctx, jobKey(job.ID), job); err != nil {
		return fmt.Errorf("error updating job posting: %w", err)
	}
	return nil
}

// DeactivateJob marks a job posting inactive
func (s *Store) DeactivateJob(ctx context.Context, id int64) error {
	job := &models.JobPosting{}
	if err := s.getJSON(ctx, jobKey(id), job); err != nil {
		if errors.Is(err, redis.Nil) {
			return apperrors.ErrJobNotFound
		}
		return fmt.Errorf("error retrieving job posting: %w", err)
	}

	job.IsActive = false

	if err := s.setJSON(ctx, jobKey(id), job); err != nil {
		return fmt.Errorf("error deactivating job posting: %w", err)
	}
	return nil
}

// CreateApplication inserts an application with the student's profile
// fields snapshotted at insert time. The (student, job) pair key is
// reserved with SETNX so duplicate submissions cannot race past each
// other.
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

	pairKey := applicationPairKey(input.StudentID, input.JobPostingID)
	reserved, err := s.client.SetNX(ctx, pairKey, "0", 0).Result()
	if err != nil {
		return 0, fmt.Errorf("error reserving application: %w", err)
	}
	if !reserved {
		s.logger.Warn().Int64("studentID", input.StudentID).Int64("jobID", input.JobPostingID).
			Msg("Duplicate application attempt")
		return 0, apperrors.ErrDuplicateApplication
	}

	id, err := s.createApplicationDoc(ctx, input, user, profile, job)
	if err != nil {
		s.client.Del(ctx, pairKey)
		return 0, err
	}

	if err := s.client.Set(ctx, pairKey, strconv.FormatInt(id, 10), 0).Err(); err != nil {
		return 0, fmt.Errorf("error indexing application: %w", err)
	}

	return id, nil
}

func (s *Store) createApplicationDoc(ctx context.Context, input *models.ApplicationInput, user *models.User, profile *models.StudentProfile, job *models.JobPosting) (int64, error) {
	id, err := s.nextID(ctx, "applications")
	if err != nil {
		return 0, err
	}

	app := models.NewApplicationSnapshot(input, user, profile, job)
	app.ID = id
	app.AppliedAt = time.Now().UTC()

	if err := s.setJSON(ctx, applicationKey(id), app); err != nil {
		return 0, fmt.Errorf("error creating application: %w", err)
	}
	if err := s.client.ZAdd(ctx, applicationsKey, redis.Z{Score: float64(id), Member: id}).Err(); err != nil {
		return 0, fmt.Errorf("error registering application: %w", err)
	}
	if err := s.client.ZAdd(ctx, userApplicationsKey(input.StudentID), redis.Z{Score: float64(id), Member: id}).Err(); err != nil {
		return 0, fmt.Errorf("error registering application: %w", err)
	}

	return id, nil
}

// GetApplication retrieves an application by ID
func (s *Store) GetApplication(ctx context.Context, id int64) (*models.JobApplication, error) {
	app := &models.JobApplication{}
	if err := s.getJSON(ctx, applicationKey(id), app); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}
	return app, nil
}

// ListApplicationsForUser returns a student's applications, newest first
func (s *Store) ListApplicationsForUser(ctx context.Context, userID int64) ([]*models.JobApplication, error) {
	return s.listApplications(ctx, userApplicationsKey(userID))
}

// ListApplications returns all applications, newest first
func (s *Store) ListApplications(ctx context.Context) ([]*models.JobApplication, error) {
	return s.listApplications(ctx, applicationsKey)
}

// listApplications walks a registry in reverse score order. Scores are
// the monotonically allocated IDs, so this is newest first.
func (s *Store) listApplications(ctx context.Context, key string) ([]*models.JobApplication, error) {
	members, err := s.client.ZRevRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("error listing applications: %w", err)
	}

	var apps []*models.JobApplication
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("corrupt application registry entry %q: %w", m, err)
		}
		app, err := s.GetApplication(ctx, id)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}

	return apps, nil
}

// UpdateApplicationStatus updates an application's status. Values outside
// the four enumerated statuses fail and leave the record unchanged.
func (s *Store) UpdateApplicationStatus(ctx context.Context, id int64, status models.ApplicationStatus) error {
	switch status {
	case models.StatusPending, models.StatusReviewed, models.StatusShortlisted, models.StatusRejected:
	default:
		return apperrors.ErrInvalidStatus
	}

	app, err := s.GetApplication(ctx, id)
	if err != nil {
		return err
	}

	app.Status = status

	if err := s.setJSON(ctx, applicationKey(id), app); err != nil {
		return fmt.Errorf("error updating application status: %w", err)
	}
	return nil
}
