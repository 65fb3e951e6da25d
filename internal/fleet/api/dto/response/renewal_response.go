package response

import "time"

type RenewalResponse struct {
	ID              string     `json:"id"`
	ServerID        string     `json:"server_id"`
	Name            string     `json:"name"`
	RenewalType     string     `json:"renewal_type"`
	Script          string     `json:"script"`
	Description     string     `json:"description,omitempty"`
	Schedule        string     `json:"schedule"`
	Status          string     `json:"status"`
	LastExecutedAt  *time.Time `json:"last_executed_at"`
	NextExecutionAt *time.Time `json:"next_execution_at"`
	LastOutput      string     `json:"last_output"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type ExecutionResponse struct {
	Success         bool       `json:"success"`
	Status          string     `json:"status"`
	Output          string     `json:"output,omitempty"`
	Error           string     `json:"error,omitempty"`
	ExecutedAt      time.Time  `json:"executed_at"`
	NextExecutionAt *time.Time `json:"next_execution_at"`
}

type TestRenewalResponse struct {
	Success bool   `json:"success"`
	Output  string `json:"output,omitempty"`
	Error   string `json:"error,omitempty"`
}
