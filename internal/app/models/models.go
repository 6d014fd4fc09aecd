package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent   RoleType = "student"
	RoleAdmin     RoleType = "admin"
	RoleRecruiter RoleType = "recruiter"
)

// ValidRole reports whether the role is one of the three known roles.
// Roles are immutable after creation; there is no role-change operation.
func ValidRole(r RoleType) bool {
	switch r {
	case RoleStudent, RoleAdmin, RoleRecruiter:
		return true
	}
	return false
}

// ApplicationStatus is the enumerated tag on a job application.
// Any valid status may move to any other valid status; the field is a
// tag, not a linear workflow.
type ApplicationStatus string

const (
	StatusPending     ApplicationStatus = "Pending"
	StatusReviewed    ApplicationStatus = "Reviewed"
	StatusShortlisted ApplicationStatus = "Shortlisted"
	StatusRejected    ApplicationStatus = "Rejected"
)

// NotificationType classifies a notification for display purposes.
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

// PlacementStatusNotPlaced is the default placement status for new profiles.
const PlacementStatusNotPlaced = "Not Placed"
