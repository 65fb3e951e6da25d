package request

type ServiceRequest struct {
	ServerID     string `json:"server_id" binding:"required,uuid"`
	Name         string `json:"name" binding:"required"`
	ServiceType  string `json:"service_type" binding:"required,oneof=systemd docker process custom"`
	CheckCommand string `json:"check_command"`
}
