// Package rules holds the pure eligibility and status rules consulted
// before state-changing operations. Nothing here touches storage.
package rules

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/mertcan/placeport/internal/app/models"
)

// Severity of a violation. Error-severity violations block the operation;
// warning-severity violations are reported but the operation proceeds.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Violation is a single field-level validation message.
type Violation struct {
	Field    string   `json:"field"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Violations is the ordered list produced by a validation pass.
type Violations []Violation

// Blocking reports whether any violation has error severity.
func (v Violations) Blocking() bool {
	for _, violation := range v {
		if violation.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Warnings returns only the warning-severity violations.
func (v Violations) Warnings() Violations {
	var out Violations
	for _, violation := range v {
		if violation.Severity == SeverityWarning {
			out = append(out, violation)
		}
	}
	return out
}

// Messages flattens the violations into plain strings.
func (v Violations) Messages() []string {
	out := make([]string, 0, len(v))
	for _, violation := range v {
		out = append(out, violation.Message)
	}
	return out
}

var (
	// EmailPattern is an RFC-lite local@domain.tld check, not full RFC 5322.
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// PhonePattern accepts 10-15 digits with an optional leading plus.
	PhonePattern = `^[+]?[0-9]{10,15}$`

	// PasswordMinLength is the minimum accepted password length.
	PasswordMinLength = 8

	// DepartmentMinLength applies after trimming whitespace.
	DepartmentMinLength = 2

	// MinEligibleGPA is the placement-eligibility floor. A GPA below it is a
	// warning, not a rejection: the save still proceeds.
	MinEligibleGPA = 6.0
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
	Phone *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
	Phone: regexp.MustCompile(PhonePattern),
}

// ValidateProfile checks a student profile. Department and GPA range
// violations carry error severity; the placement-eligibility GPA floor is
// warning severity only.
func ValidateProfile(profile *models.StudentProfile) Violations {
	var violations Violations

	if len(strings.TrimSpace(profile.Department)) < DepartmentMinLength {
		violations = append(violations, Violation{
			Field:    "department",
			Message:  "Department is required",
			Severity: SeverityError,
		})
	}

	if profile.GPA < 0 || profile.GPA > 10 {
		violations = append(violations, Violation{
			Field:    "gpa",
			Message:  "GPA must be between 0 and 10",
			Severity: SeverityError,
		})
	} else if profile.GPA < MinEligibleGPA {
		violations = append(violations, Violation{
			Field:    "gpa",
			Message:  "GPA should be at least 6.0 for placement eligibility",
			Severity: SeverityWarning,
		})
	}

	return violations
}

// ValidatePasswordStrength checks minimum length plus at least one
// uppercase letter, one lowercase letter and one digit. No special
// character is required.
func ValidatePasswordStrength(password string) Violations {
	var violations Violations

	if len(password) < PasswordMinLength {
		violations = append(violations, Violation{
			Field:    "password",
			Message:  "Password must be at least 8 characters long",
			Severity: SeverityError,
		})
	}

	var hasUpper, hasLower, hasDigit bool
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsDigit(c):
			hasDigit = true
		}
	}

	if !hasUpper {
		violations = append(violations, Violation{
			Field:    "password",
			Message:  "Password must contain at least one uppercase letter",
			Severity: SeverityError,
		})
	}
	if !hasLower {
		violations = append(violations, Violation{
			Field:    "password",
			Message:  "Password must contain at least one lowercase letter",
			Severity: SeverityError,
		})
	}
	if !hasDigit {
		violations = append(violations, Violation{
			Field:    "password",
			Message:  "Password must contain at least one digit",
			Severity: SeverityError,
		})
	}

	return violations
}

// ValidateEmail validates an email address format.
func ValidateEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// ValidatePhone validates a phone number format.
func ValidatePhone(phone string) bool {
	return CompiledPatterns.Phone.MatchString(phone)
}

// CanTransitionApplicationStatus reports whether an application may move
// from current to next. Any valid status may move to any other valid
// status; the status field is an enumerated tag, not a linear workflow.
func CanTransitionApplicationStatus(current, next models.ApplicationStatus) bool {
	return ValidApplicationStatus(current) && ValidApplicationStatus(next)
}

// ValidApplicationStatus reports whether the value is one of the four
// enumerated statuses.
func ValidApplicationStatus(status models.ApplicationStatus) bool {
	switch status {
	case models.StatusPending, models.StatusReviewed, models.StatusShortlisted, models.StatusRejected:
		return true
	}
	return false
}
