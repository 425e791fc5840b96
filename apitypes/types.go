// Package apitypes provides request and response types for the dataferry
// HTTP API.
package apitypes

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Stats summarizes the state of the metadata store.
type Stats struct {
	Datasets     int            `json:"datasets"`
	Records      int            `json:"records"`
	Existing     int            `json:"existing"`
	ByStatus     map[string]int `json:"by_status,omitempty"`
	Repositories int            `json:"repositories"`
}

// RegisterRequest announces a file to the metadata store. The announcing
// repository's copy is taken as existing; copies everywhere else start as
// wanted-but-absent.
type RegisterRequest struct {
	Lab        string `json:"lab"`
	Repository string `json:"repository"`
	Path       string `json:"path"`
	Name       string `json:"name,omitempty"`
	FileSize   *int64 `json:"file_size,omitempty"`
	Hash       string `json:"hash,omitempty"`
	Revision   string `json:"revision,omitempty"`
	Protected  bool   `json:"protected,omitempty"`
}

// RegisterResponse reports the dataset and the records created or updated
// by a registration.
type RegisterResponse struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Patched bool     `json:"patched"`
	Records []Record `json:"records"`
}

// Dataset is one logical file and its placements.
type Dataset struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Lab       string   `json:"lab,omitempty"`
	FileSize  *int64   `json:"file_size,omitempty"`
	Hash      string   `json:"hash,omitempty"`
	Revision  string   `json:"revision,omitempty"`
	Protected bool     `json:"protected"`
	CreatedAt string   `json:"created_at"`
	Records   []Record `json:"records,omitempty"`
}

// Record is the belief about one dataset copy at one repository.
type Record struct {
	ID           string `json:"id"`
	Repository   string `json:"repository"`
	RelativePath string `json:"relative_path"`
	Exists       bool   `json:"exists"`
	Status       string `json:"status,omitempty"`
}

// Repository is a named storage location.
type Repository struct {
	Name       string `json:"name"`
	EndpointID string `json:"endpoint_id"`
	RootPath   string `json:"root_path"`
	IsPersonal bool   `json:"is_personal"`
	Lab        string `json:"lab,omitempty"`
}
