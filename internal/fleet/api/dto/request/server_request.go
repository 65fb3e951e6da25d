package request

type ServerRequest struct {
	Name        string `json:"name" binding:"required" validate:"required"`
	Hostname    string `json:"hostname" binding:"required,hostname_rfc1123|ip" validate:"required,hostname_rfc1123|ip"`
	Port        *int   `json:"port" binding:"omitempty,gte=1,lte=65535" validate:"omitempty,gte=1,lte=65535"`
	Username    string `json:"username" binding:"required" validate:"required"`
	SSHKey      string `json:"ssh_key"`
	SSHKeyPath  string `json:"ssh_key_path"`
	Description string `json:"description"`
}
