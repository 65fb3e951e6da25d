package response

import "time"

type ServerResponse struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Hostname      string     `json:"hostname"`
	Port          int        `json:"port"`
	Username      string     `json:"username"`
	SSHKeyPath    string     `json:"ssh_key_path,omitempty"`
	HasInlineKey  bool       `json:"has_inline_key"`
	Description   string     `json:"description,omitempty"`
	Status        string     `json:"status"`
	LastCheckedAt *time.Time `json:"last_checked_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type ImportServerResponse struct {
	ImportedCount   int      `json:"imported_count"`
	ImportedServers []string `json:"imported_servers,omitempty"`
	FailedCount     int      `json:"failed_count"`
	FailedServers   []string `json:"failed_servers,omitempty"`
}

type ConnectionResponse struct {
	Success   bool      `json:"success"`
	Status    string    `json:"status"`
	Output    string    `json:"output,omitempty"`
	Error     string    `json:"error,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}
