package models

import "time"

// JobPosting defines the job posting model based on the 'job_postings' table
type JobPosting struct {
	ID                 int64      `json:"id" db:"id"`
	CompanyID          int64      `json:"companyId" db:"company_id"`
	Title              string     `json:"title" db:"title"`
	Description        string     `json:"description" db:"description"`
	Requirements       string     `json:"requirements,omitempty" db:"requirements"`
	Location           string     `json:"location,omitempty" db:"location"`
	JobType            string     `json:"jobType,omitempty" db:"job_type"` // Full-time, Internship, Part-time
	SalaryRange        string     `json:"salaryRange,omitempty" db:"salary_range"`
	Eligibility        string     `json:"eligibility,omitempty" db:"eligibility"`
	ApplicationProcess string     `json:"applicationProcess,omitempty" db:"application_process"`
	VisitDate          *time.Time `json:"visitDate,omitempty" db:"visit_date"`
	VisitTime          string     `json:"visitTime,omitempty" db:"visit_time"`
	Venue              string     `json:"venue,omitempty" db:"venue"`
	Deadline           *time.Time `json:"deadline,omitempty" db:"deadline"`
	IsActive           bool       `json:"isActive" db:"is_active"`
	CreatedAt          time.Time  `json:"createdAt" db:"created_at"`

	// Company display fields, joined for listings (no db tag)
	Company *CompanySummary `json:"company,omitempty"`
}

// CompanySummary carries the company display fields denormalized into
// job listings.
type CompanySummary struct {
	Name        string `json:"name"`
	ShortName   string `json:"shortName"`
	Description string `json:"description,omitempty"`
}
