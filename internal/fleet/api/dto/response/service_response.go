package response

import "time"

type ServiceResponse struct {
	ID            string     `json:"id"`
	ServerID      string     `json:"server_id"`
	Name          string     `json:"name"`
	ServiceType   string     `json:"service_type"`
	CheckCommand  string     `json:"check_command"`
	Status        string     `json:"status"`
	StatusOutput  string     `json:"status_output"`
	LastCheckedAt *time.Time `json:"last_checked_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type CheckResponse struct {
	ServiceID string    `json:"service_id,omitempty"`
	Success   bool      `json:"success"`
	Status    string    `json:"status,omitempty"`
	Output    string    `json:"output,omitempty"`
	Error     string    `json:"error,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}

type AvailabilityResponse struct {
	ServiceID              string  `json:"service_id"`
	AvailabilityPercentage float64 `json:"availability_percentage"`
}
