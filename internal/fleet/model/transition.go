package model

import (
	"strings"
	"time"
)

// MaxOutputLength caps the command output kept on a record.
const MaxOutputLength = 64 * 1024

// NormalizeOutput trims surrounding whitespace and truncates the output to MaxOutputLength bytes.
func NormalizeOutput(output string) string {
	output = strings.TrimSpace(output)
	if len(output) > MaxOutputLength {
		output = strings.ToValidUTF8(output[:MaxOutputLength], "")
	}
	return output
}

// NextStamp returns now at database precision, moved past prev when the clock did not advance.
func NextStamp(now time.Time, prev *time.Time) time.Time {
	now = now.UTC().Truncate(time.Microsecond)
	if prev != nil && !now.After(*prev) {
		now = prev.UTC().Truncate(time.Microsecond).Add(time.Microsecond)
	}
	return now
}

// ServerTransition is the connectivity outcome of a probe, written as one update.
type ServerTransition struct {
	Status    ConnectionStatus
	CheckedAt time.Time
}

func (t ServerTransition) Columns() map[string]interface{} {
	return map[string]interface{}{
		"status":          t.Status,
		"last_checked_at": t.CheckedAt,
	}
}

func (t ServerTransition) Apply(s *Server) {
	s.Status = t.Status
	checkedAt := t.CheckedAt
	s.LastCheckedAt = &checkedAt
}

// ServiceTransition is the outcome of one health check, written as one update.
type ServiceTransition struct {
	Status    ServiceStatus
	Output    string
	CheckedAt time.Time
}

func (t ServiceTransition) Columns() map[string]interface{} {
	return map[string]interface{}{
		"status":          t.Status,
		"status_output":   NormalizeOutput(t.Output),
		"last_checked_at": t.CheckedAt,
	}
}

func (t ServiceTransition) Apply(s *Service) {
	s.Status = t.Status
	s.StatusOutput = NormalizeOutput(t.Output)
	checkedAt := t.CheckedAt
	s.LastCheckedAt = &checkedAt
}

// RenewalTransition moves a renewal between states. Running only writes the
// status; finished transitions write status, output and execution time together.
type RenewalTransition struct {
	Status     RenewalStatus
	Output     string
	ExecutedAt time.Time
	// NextExecutionAt is only written on success. Nil clears it.
	NextExecutionAt *time.Time
}

func RenewalStarted() RenewalTransition {
	return RenewalTransition{Status: RenewalStatusRunning}
}

func RenewalSucceeded(executedAt time.Time, output string, next *time.Time) RenewalTransition {
	return RenewalTransition{
		Status:          RenewalStatusSuccess,
		Output:          output,
		ExecutedAt:      executedAt,
		NextExecutionAt: next,
	}
}

func RenewalFailed(executedAt time.Time, reason string) RenewalTransition {
	return RenewalTransition{
		Status:     RenewalStatusFailed,
		Output:     reason,
		ExecutedAt: executedAt,
	}
}

func (t RenewalTransition) Columns() map[string]interface{} {
	cols := map[string]interface{}{
		"status": t.Status,
	}
	switch t.Status {
	case RenewalStatusSuccess:
		cols["last_executed_at"] = t.ExecutedAt
		cols["last_output"] = NormalizeOutput(t.Output)
		if t.NextExecutionAt != nil {
			cols["next_execution_at"] = *t.NextExecutionAt
		} else {
			cols["next_execution_at"] = nil
		}
	case RenewalStatusFailed:
		cols["last_executed_at"] = t.ExecutedAt
		cols["last_output"] = NormalizeOutput(t.Output)
	}
	return cols
}

func (t RenewalTransition) Apply(r *Renewal) {
	r.Status = t.Status
	switch t.Status {
	case RenewalStatusSuccess:
		executedAt := t.ExecutedAt
		r.LastExecutedAt = &executedAt
		r.LastOutput = NormalizeOutput(t.Output)
		r.NextExecutionAt = t.NextExecutionAt
	case RenewalStatusFailed:
		executedAt := t.ExecutedAt
		r.LastExecutedAt = &executedAt
		r.LastOutput = NormalizeOutput(t.Output)
	}
}
