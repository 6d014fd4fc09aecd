package dto

import "time"

// CreateJobRequest represents a new job posting
type CreateJobRequest struct {
	CompanyID          int64      `json:"companyId" binding:"required,min=1"`
	Title              string     `json:"title" binding:"required"`
	Description        string     `json:"description"`
	Requirements       string     `json:"requirements"`
	Location           string     `json:"location"`
	JobType            string     `json:"jobType"`
	SalaryRange        string     `json:"salaryRange"`
	Eligibility        string     `json:"eligibility"`
	ApplicationProcess string     `json:"applicationProcess"`
	VisitDate          *time.Time `json:"visitDate,omitempty"`
	VisitTime          string     `json:"visitTime"`
	Venue              string     `json:"venue"`
	Deadline           *time.Time `json:"deadline,omitempty"`
}

// UpdateJobRequest represents a job posting update
type UpdateJobRequest struct {
	Title              string     `json:"title" binding:"required"`
	Description        string     `json:"description"`
	Requirements       string     `json:"requirements"`
	Location           string     `json:"location"`
	JobType            string     `json:"jobType"`
	SalaryRange        string     `json:"salaryRange"`
	Eligibility        string     `json:"eligibility"`
	ApplicationProcess string     `json:"applicationProcess"`
	VisitDate          *time.Time `json:"visitDate,omitempty"`
	VisitTime          string     `json:"visitTime"`
	Venue              string     `json:"venue"`
	Deadline           *time.Time `json:"deadline,omitempty"`
	IsActive           bool       `json:"isActive"`
}

// ApplyRequest represents a student applying to a job posting. Contact
// fields default to the student's account and profile when left empty.
type ApplyRequest struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone"`
	CoverLetter string `json:"coverLetter"`
}

// UpdateApplicationStatusRequest represents a status change
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
