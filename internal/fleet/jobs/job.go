package jobs

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type Kind string

const (
	KindExecuteRenewal Kind = "execute_renewal"
	KindCheckServer    Kind = "check_server"
)

// Job is the unit of work the scheduler publishes and the worker consumes.
type Job struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"kind"`
	EntityID    string    `json:"entity_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
}

func New(kind Kind, entityID string, scheduledAt time.Time) Job {
	return Job{
		ID:          uuid.NewString(),
		Kind:        kind,
		EntityID:    entityID,
		ScheduledAt: scheduledAt.UTC(),
	}
}

// Message encodes the job keyed by entity id so jobs for one entity stay on one partition.
func (j Job) Message() (kafka.Message, error) {
	b, err := json.Marshal(j)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("Job.Message: %w", err)
	}
	return kafka.Message{
		Key:   []byte(j.EntityID),
		Value: b,
	}, nil
}

func Decode(value []byte) (Job, error) {
	var j Job
	if err := json.Unmarshal(value, &j); err != nil {
		return Job{}, fmt.Errorf("jobs.Decode: %w", err)
	}
	switch j.Kind {
	case KindExecuteRenewal, KindCheckServer:
	default:
		return Job{}, fmt.Errorf("jobs.Decode: unknown job kind %q", j.Kind)
	}
	if j.EntityID == "" {
		return Job{}, fmt.Errorf("jobs.Decode: missing entity id")
	}
	return j, nil
}
