package model

import (
	"net"
	"strconv"
	"time"
)

type ConnectionStatus string

const (
	ConnectionStatusOnline  ConnectionStatus = "online"
	ConnectionStatusOffline ConnectionStatus = "offline"
	ConnectionStatusUnknown ConnectionStatus = "unknown"
)

const DefaultSSHPort = 22

type Server struct {
	ID            string `gorm:"default:(-)"`
	Name          string
	Hostname      string
	Port          int
	Username      string
	SSHKey        string `json:"-"`
	SSHKeyPath    string
	Description   string
	Status        ConnectionStatus
	LastCheckedAt *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Address returns host:port for dialing, falling back to port 22.
func (s Server) Address() string {
	port := s.Port
	if port <= 0 {
		port = DefaultSSHPort
	}
	return net.JoinHostPort(s.Hostname, strconv.Itoa(port))
}
