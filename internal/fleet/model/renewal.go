package model

import "time"

type RenewalType string

const (
	RenewalTypeSSL         RenewalType = "ssl"
	RenewalTypeCertificate RenewalType = "certificate"
	RenewalTypeLetsEncrypt RenewalType = "lets_encrypt"
	RenewalTypeCustom      RenewalType = "custom"
)

func (t RenewalType) Valid() bool {
	switch t {
	case RenewalTypeSSL, RenewalTypeCertificate, RenewalTypeLetsEncrypt, RenewalTypeCustom:
		return true
	}
	return false
}

type RenewalStatus string

const (
	RenewalStatusPending RenewalStatus = "pending"
	RenewalStatusRunning RenewalStatus = "running"
	RenewalStatusSuccess RenewalStatus = "success"
	RenewalStatusFailed  RenewalStatus = "failed"
)

type Renewal struct {
	ID              string `gorm:"default:(-)"`
	ServerID        string
	Name            string
	RenewalType     RenewalType
	Script          string
	Description     string
	Schedule        string
	Status          RenewalStatus
	LastExecutedAt  *time.Time
	NextExecutionAt *time.Time
	LastOutput      string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsOverdue reports whether the renewal has a next execution time that is not after now.
func (r Renewal) IsOverdue(now time.Time) bool {
	return r.NextExecutionAt != nil && !r.NextExecutionAt.After(now)
}
