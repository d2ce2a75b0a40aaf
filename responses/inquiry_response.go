package responses

import "agro-exports-api/models"

type ErrorResponse struct {
	Status  int                 `json:"status"`
	Message string              `json:"message"`
	Detail  string              `json:"detail,omitempty"`
	Errors  []models.FieldError `json:"errors,omitempty"`
}

type InquiryCreatedResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type InquiryListResponse struct {
	Items []map[string]interface{} `json:"items"`
	Count int                      `json:"count"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// DiagnosticsResponse mirrors the /test endpoint: human-readable status
// strings, never an HTTP error.
type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url,omitempty"`
	DatabaseName     string   `json:"database_name,omitempty"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}
