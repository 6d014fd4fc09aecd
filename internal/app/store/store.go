// Package store defines the uniform data-access contract the request
// handlers depend on, and the facade that binds it to one concrete
// backend at process start.
package store

import (
	"context"

	"github.com/mertcan/placeport/internal/app/models"
)

// Store is the capability set both backends implement fully. Every method
// has identical fail-vs-succeed semantics across backends; the conformance
// suite in storetest verifies this.
type Store interface {
	CredentialStore
	ProfileStore
	CompanyStore
	JobStore
	NotificationStore

	// Close releases backend resources.
	Close()
}

// CredentialStore owns user identity records and password verification.
type CredentialStore interface {
	// CreateUser hashes the password before persisting and, for student
	// users, atomically creates an empty profile. Returns
	// apperrors.ErrDuplicateEmail when the email is already registered.
	CreateUser(ctx context.Context, name, email, password string, role models.RoleType) (int64, error)

	// GetUserByEmail returns apperrors.ErrUserNotFound on a miss.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID returns apperrors.ErrUserNotFound on a miss.
	GetUserByID(ctx context.Context, id int64) (*models.User, error)

	// VerifyPassword returns the public user record (never the hash) on
	// success. Wrong email and wrong password are indistinguishable to the
	// caller: both return apperrors.ErrInvalidCredentials.
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
}

// ProfileStore owns per-student extended attributes.
type ProfileStore interface {
	CreateProfile(ctx context.Context, profile *models.StudentProfile) (int64, error)

	// GetProfileByUserID returns apperrors.ErrProfileNotFound on a miss.
	GetProfileByUserID(ctx context.Context, userID int64) (*models.StudentProfile, error)

	// UpdateProfile merges only the supplied fields. No range validation
	// happens here; callers consult the eligibility rules first.
	UpdateProfile(ctx context.Context, profileID int64, update *models.ProfileUpdate) error

	// ListProfiles returns every student profile, for aggregate reporting.
	ListProfiles(ctx context.Context) ([]*models.StudentProfile, error)
}

// CompanyStore owns company records.
type CompanyStore interface {
	CreateCompany(ctx context.Context, company *models.Company) (int64, error)

	// GetCompany returns apperrors.ErrCompanyNotFound on a miss.
	GetCompany(ctx context.Context, id int64) (*models.Company, error)

	ListCompanies(ctx context.Context) ([]*models.Company, error)
	UpdateCompany(ctx context.Context, company *models.Company) error
	DeactivateCompany(ctx context.Context, id int64) error
}

// JobStore owns job postings and the applications linking students to them.
type JobStore interface {
	CreateJob(ctx context.Context, job *models.JobPosting) (int64, error)

	// GetJob returns apperrors.ErrJobNotFound on a miss.
	GetJob(ctx context.Context, id int64) (*models.JobPosting, error)

	// ListActiveJobs returns active postings ordered by creation time, each
	// joined with its owning company's display fields.
	ListActiveJobs(ctx context.Context) ([]*models.JobPosting, error)

	UpdateJob(ctx context.Context, job *models.JobPosting) error
	DeactivateJob(ctx context.Context, id int64) error

	// CreateApplication snapshots the student's current profile fields into
	// the application record at insert time. Returns
	// apperrors.ErrDuplicateApplication when an application already exists
	// for the (student, job) pair.
	CreateApplication(ctx context.Context, input *models.ApplicationInput) (int64, error)

	// GetApplication returns apperrors.ErrApplicationNotFound on a miss.
	GetApplication(ctx context.Context, id int64) (*models.JobApplication, error)

	// ListApplicationsForUser returns the student's applications, newest first.
	ListApplicationsForUser(ctx context.Context, userID int64) ([]*models.JobApplication, error)

	// ListApplications returns all applications, newest first.
	ListApplications(ctx context.Context) ([]*models.JobApplication, error)

	// UpdateApplicationStatus accepts only the four enumerated statuses; any
	// other value fails with apperrors.ErrInvalidStatus and leaves the
	// record unchanged.
	UpdateApplicationStatus(ctx context.Context, id int64, status models.ApplicationStatus) error
}

// NotificationStore owns per-user notification records.
type NotificationStore interface {
	CreateNotification(ctx context.Context, userID int64, title, message string, notificationType models.NotificationType) (int64, error)

	// ListNotificationsForUser returns the user's notifications, newest first.
	ListNotificationsForUser(ctx context.Context, userID int64, unreadOnly bool) ([]*models.Notification, error)

	// MarkNotificationRead enforces ownership at this boundary: it fails
	// with apperrors.ErrNotificationNotFound when the notification does not
	// belong to userID.
	MarkNotificationRead(ctx context.Context, notificationID, userID int64) error
}
