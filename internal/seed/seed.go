// Package seed provisions default data on first startup. It works
// through the store contract, so it behaves the same on both backends.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mertcan/placeport/internal/app/models"
	"github.com/mertcan/placeport/internal/app/store"
	"github.com/mertcan/placeport/internal/pkg/apperrors"
)

// Default account credentials. Meant for first login only; operators are
// expected to change them.
const (
	AdminEmail        = "admin@placeport.app"
	adminPassword     = "Admin@123"
	RecruiterEmail    = "recruiter@placeport.app"
	recruiterPassword = "Recruit@123"
)

// CreateDefaultData seeds the default admin and recruiter accounts plus a
// starter set of companies and job postings. Safe to run on every
// startup: existing data is left alone.
func CreateDefaultData(ctx context.Context, s store.Store, logger zerolog.Logger) error {
	if err := ensureUser(ctx, s, "Placement Admin", AdminEmail, adminPassword, models.RoleAdmin, logger); err != nil {
		return err
	}
	if err := ensureUser(ctx, s, "Campus Recruiter", RecruiterEmail, recruiterPassword, models.RoleRecruiter, logger); err != nil {
		return err
	}

	return ensureCompaniesAndJobs(ctx, s, logger)
}

func ensureUser(ctx context.Context, s store.Store, name, email, password string, role models.RoleType, logger zerolog.Logger) error {
	_, err := s.GetUserByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return fmt.Errorf("failed to check for default user %s: %w", email, err)
	}

	if _, err := s.CreateUser(ctx, name, email, password, role); err != nil {
		return fmt.Errorf("failed to create default user %s: %w", email, err)
	}

	logger.Info().Str("email", email).Str("role", string(role)).Msg("Default user created")
	return nil
}

func ensureCompaniesAndJobs(ctx context.Context, s store.Store, logger zerolog.Logger) error {
	companies, err := s.ListCompanies(ctx)
	if err != nil {
		return fmt.Errorf("failed to list companies: %w", err)
	}
	if len(companies) > 0 {
		return nil
	}

	deadline := time.Now().AddDate(0, 1, 0)

	defaults := []struct {
		company models.Company
		job     models.JobPosting
	}{
		{
			company: models.Company{
				Name:         "Infosys Limited",
				ShortName:    "Infosys",
				Description:  "Global IT services and consulting",
				Industry:     "Information Technology",
				Headquarters: "Bengaluru, India",
				Employees:    "300,000+",
				Website:      "https://www.infosys.com",
			},
			job: models.JobPosting{
				Title:       "Systems Engineer",
				Description: "Entry-level software engineering role across service lines.",
				Location:    "Bengaluru",
				JobType:     "Full-time",
				SalaryRange: "4-6 LPA",
				Eligibility: "All branches, GPA 6.0+",
				Deadline:    &deadline,
			},
		},
		{
			company: models.Company{
				Name:         "Tata Consultancy Services",
				ShortName:    "TCS",
				Description:  "IT services, consulting and business solutions",
				Industry:     "Information Technology",
				Headquarters: "Mumbai, India",
				Employees:    "600,000+",
				Website:      "https://www.tcs.com",
			},
			job: models.JobPosting{
				Title:       "Assistant Systems Engineer",
				Description: "Graduate trainee role through the campus hiring programme.",
				Location:    "Mumbai",
				JobType:     "Full-time",
				SalaryRange: "3.5-7 LPA",
				Eligibility: "All branches, GPA 6.0+",
				Deadline:    &deadline,
			},
		},
	}

	for _, d := range defaults {
		company := d.company
		companyID, err := s.CreateCompany(ctx, &company)
		if err != nil {
			return fmt.Errorf("failed to seed company %s: %w", company.Name, err)
		}

		job := d.job
		job.CompanyID = companyID
		if _, err := s.CreateJob(ctx, &job); err != nil {
			return fmt.Errorf("failed to seed job %s: %w", job.Title, err)
		}
	}

	logger.Info().Int("companies", len(defaults)).Msg("Default companies and jobs created")
	return nil
}
