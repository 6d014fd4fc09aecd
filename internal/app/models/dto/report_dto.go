package dto

// DepartmentPlacementStats aggregates placement numbers for one department
type DepartmentPlacementStats struct {
	Department string  `json:"department"`
	Students   int     `json:"students"`
	Placed     int     `json:"placed"`
	AverageGPA float64 `json:"averageGpa"`
}

// PlacementReport is the aggregate placement view across all students
type PlacementReport struct {
	TotalStudents int                        `json:"totalStudents"`
	Placed        int                        `json:"placed"`
	NotPlaced     int                        `json:"notPlaced"`
	Departments   []DepartmentPlacementStats `json:"departments"`
}
