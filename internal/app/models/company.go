package models

import "time"

// Company defines the company model based on the 'companies' table
type Company struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	ShortName    string    `json:"shortName" db:"short_name"`
	Description  string    `json:"description,omitempty" db:"description"`
	Industry     string    `json:"industry,omitempty" db:"industry"`
	Headquarters string    `json:"headquarters,omitempty" db:"headquarters"`
	Employees    string    `json:"employees,omitempty" db:"employees"`
	Website      string    `json:"website,omitempty" db:"website"`
	IsActive     bool      `json:"isActive" db:"is_active"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
