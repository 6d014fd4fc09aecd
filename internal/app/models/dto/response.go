package dto

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}

// DataResponse wraps a payload with optional non-blocking warnings.
type DataResponse struct {
	Success  bool        `json:"success"`
	Data     interface{} `json:"data,omitempty"`
	Warnings []string    `json:"warnings,omitempty"`
}

// NewDataResponse creates a success envelope around a payload
func NewDataResponse(data interface{}) *DataResponse {
	return &DataResponse{Success: true, Data: data}
}

// WithWarnings attaches non-blocking warnings to the response
func (r *DataResponse) WithWarnings(warnings []string) *DataResponse {
	r.Warnings = warnings
	return r
}
