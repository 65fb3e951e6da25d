package request

type RenewalRequest struct {
	ServerID    string `json:"server_id" binding:"required,uuid"`
	Name        string `json:"name" binding:"required"`
	RenewalType string `json:"renewal_type" binding:"required,oneof=ssl certificate lets_encrypt custom"`
	Script      string `json:"script" binding:"required"`
	Description string `json:"description"`
	Schedule    string `json:"schedule"`
}
