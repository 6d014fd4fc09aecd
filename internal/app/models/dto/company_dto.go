package dto

// CreateCompanyRequest represents a new company record
type CreateCompanyRequest struct {
	Name         string `json:"name" binding:"required"`
	ShortName    string `json:"shortName"`
	Description  string `json:"description"`
	Industry     string `json:"industry"`
	Headquarters string `json:"headquarters"`
	Employees    string `json:"employees"`
	Website      string `json:"website" binding:"omitempty,url"`
}

// UpdateCompanyRequest represents a company update
type UpdateCompanyRequest struct {
	Name         string `json:"name" binding:"required"`
	ShortName    string `json:"shortName"`
	Description  string `json:"description"`
	Industry     string `json:"industry"`
	Headquarters string `json:"headquarters"`
	Employees    string `json:"employees"`
	Website      string `json:"website" binding:"omitempty,url"`
	IsActive     bool   `json:"isActive"`
}
