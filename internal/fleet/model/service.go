package model

import "time"

type ServiceType string

const (
	ServiceTypeSystemd ServiceType = "systemd"
	ServiceTypeDocker  ServiceType = "docker"
	ServiceTypeProcess ServiceType = "process"
	ServiceTypeCustom  ServiceType = "custom"
)

type ServiceStatus string

const (
	ServiceStatusRunning ServiceStatus = "running"
	ServiceStatusStopped ServiceStatus = "stopped"
	ServiceStatusUnknown ServiceStatus = "unknown"
)

type Service struct {
	ID            string `gorm:"default:(-)"`
	ServerID      string
	Name          string
	ServiceType   ServiceType
	CheckCommand  string
	Status        ServiceStatus
	StatusOutput  string
	LastCheckedAt *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
