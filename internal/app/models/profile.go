package models

// StudentProfile defines the student profile model based on the 'student_profiles' table.
// Owned 1:1 by a User with role student; cascade-deleted with the user.
type StudentProfile struct {
	ID                int64   `json:"id" db:"id"`
	UserID            int64   `json:"userId" db:"user_id"`
	Department        string  `json:"department" db:"department"`
	GPA               float64 `json:"gpa" db:"gpa"` // Domain [0,10]; below 6.0 flags placement-eligibility warning
	Skills            string  `json:"skills,omitempty" db:"skills"`
	Internships       string  `json:"internships,omitempty" db:"internships"`
	Projects          string  `json:"projects,omitempty" db:"projects"`
	Certifications    string  `json:"certifications,omitempty" db:"certifications"`
	CareerPreferences string  `json:"careerPreferences,omitempty" db:"career_preferences"`
	ResumeFilename    string  `json:"resumeFilename,omitempty" db:"resume_filename"` // Opaque stored filename
	PhotoFilename     string  `json:"photoFilename,omitempty" db:"photo_filename"`   // Opaque stored filename
	PlacementStatus   string  `json:"placementStatus" db:"placement_status"`         // Free text, defaults "Not Placed"
	Phone             string  `json:"phone,omitempty" db:"phone"`
	LinkedIn          string  `json:"linkedin,omitempty" db:"linkedin"`
	GitHub            string  `json:"github,omitempty" db:"github"`
	Portfolio         string  `json:"portfolio,omitempty" db:"portfolio"`
}

// ProfileUpdate carries a partial profile update. Nil fields are left
// untouched by the store; the store performs no range validation (the
// caller consults the eligibility rules first).
type ProfileUpdate struct {
	Department        *string  `json:"department,omitempty"`
	GPA               *float64 `json:"gpa,omitempty"`
	Skills            *string  `json:"skills,omitempty"`
	Internships       *string  `json:"internships,omitempty"`
	Projects          *string  `json:"projects,omitempty"`
	Certifications    *string  `json:"certifications,omitempty"`
	CareerPreferences *string  `json:"careerPreferences,omitempty"`
	ResumeFilename    *string  `json:"resumeFilename,omitempty"`
	PhotoFilename     *string  `json:"photoFilename,omitempty"`
	PlacementStatus   *string  `json:"placementStatus,omitempty"`
	Phone             *string  `json:"phone,omitempty"`
	LinkedIn          *string  `json:"linkedin,omitempty"`
	GitHub            *string  `json:"github,omitempty"`
	Portfolio         *string  `json:"portfolio,omitempty"`
}

// Apply merges the non-nil fields into the profile.
func (u *ProfileUpdate) Apply(p *StudentProfile) {
	if u.Department != nil {
		p.Department = *u.Department
	}
	if u.GPA != nil {
		p.GPA = *u.GPA
	}
	if u.Skills != nil {
		p.Skills = *u.Skills
	}
	if u.Internships != nil {
		p.Internships = *u.Internships
	}
	if u.Projects != nil {
		p.Projects = *u.Projects
	}
	if u.Certifications != nil {
		p.Certifications = *u.Certifications
	}
	if u.CareerPreferences != nil {
		p.CareerPreferences = *u.CareerPreferences
	}
	if u.ResumeFilename != nil {
		p.ResumeFilename = *u.ResumeFilename
	}
	if u.PhotoFilename != nil {
		p.PhotoFilename = *u.PhotoFilename
	}
	if u.PlacementStatus != nil {
		p.PlacementStatus = *u.PlacementStatus
	}
	if u.Phone != nil {
		p.Phone = *u.Phone
	}
	if u.LinkedIn != nil {
		p.LinkedIn = *u.LinkedIn
	}
	if u.GitHub != nil {
		p.GitHub = *u.GitHub
	}
	if u.Portfolio != nil {
		p.Portfolio = *u.Portfolio
	}
}
