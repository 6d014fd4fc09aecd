package dto

// UpdateProfileRequest represents a partial profile update. Absent fields
// are left untouched.
// UpdatePlacementStatusRequest sets a student's placement status. The
// status is free text; "Not Placed" is the default for new profiles.
type UpdatePlacementStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateProfileRequest struct {
	Department        *string  `json:"department,omitempty"`
	GPA               *float64 `json:"gpa,omitempty"`
	Skills            *string  `json:"skills,omitempty"`
	Internships       *string  `json:"internships,omitempty"`
	Projects          *string  `json:"projects,omitempty"`
	Certifications    *string  `json:"certifications,omitempty"`
	CareerPreferences *string  `json:"careerPreferences,omitempty"`
	PlacementStatus   *string  `json:"placementStatus,omitempty"`
	Phone             *string  `json:"phone,omitempty"`
	LinkedIn          *string  `json:"linkedin,omitempty"`
	GitHub            *string  `json:"github,omitempty"`
	Portfolio         *string  `json:"portfolio,omitempty"`
}
