package repository

import (
	apperrors "VCS_SMS_Fleet/internal/fleet/errors"
	"VCS_SMS_Fleet/internal/fleet/model"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/google/uuid"
)

const (
	esServiceCheckIndexName = "service_checks"
	esRenewalRunIndexName   = "renewal_runs"
)

type ServiceCheckRecord struct {
	ServiceID     string              `json:"service_id"`
	ServerID      string              `json:"server_id"`
	Status        model.ServiceStatus `json:"status"`
	StatusNumeric int                 `json:"status_numeric"`
	Output        string              `json:"output"`
	Timestamp     time.Time           `json:"timestamp"`
}

type RenewalRunRecord struct {
	RenewalID  string              `json:"renewal_id"`
	ServerID   string              `json:"server_id"`
	Status     model.RenewalStatus `json:"status"`
	Output     string              `json:"output"`
	DurationMs int64               `json:"duration_ms"`
	Timestamp  time.Time           `json:"timestamp"`
}

type HistoryRepository interface {
	RecordServiceCheck(ctx context.Context, record ServiceCheckRecord) error
	RecordRenewalRun(ctx context.Context, record RenewalRunRecord) error
	// GetServicesAvailability returns, per service id, the share of checks in the
	// window that found the service running.
	GetServicesAvailability(ctx context.Context, startTime time.Time, endTime time.Time) (map[string]float64, error)
}

type historyRepository struct {
	es *elasticsearch.Client
}

type esErrorResponse struct {
	Error struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	}
}

func NewServiceCheckRecord(service model.Service, status model.ServiceStatus, output string, checkedAt time.Time) ServiceCheckRecord {
	numeric := 0
	if status == model.ServiceStatusRunning {
		numeric = 1
	}
	return ServiceCheckRecord{
		ServiceID:     service.ID,
		ServerID:      service.ServerID,
		Status:        status,
		StatusNumeric: numeric,
		Output:        model.NormalizeOutput(output),
		Timestamp:     checkedAt,
	}
}

func (h *historyRepository) RecordServiceCheck(ctx context.Context, record ServiceCheckRecord) error {
	if err := h.index(ctx, esServiceCheckIndexName, record); err != nil {
		return fmt.Errorf("HistoryRepo.RecordServiceCheck: %w", err)
	}
	return nil
}

func (h *historyRepository) RecordRenewalRun(ctx context.Context, record RenewalRunRecord) error {
	record.Output = model.NormalizeOutput(record.Output)
	if err := h.index(ctx, esRenewalRunIndexName, record); err != nil {
		return fmt.Errorf("HistoryRepo.RecordRenewalRun: %w", err)
	}
	return nil
}

func (h *historyRepository) index(ctx context.Context, index string, doc interface{}) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(doc); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	res, err := h.es.Index(index, &buf,
		h.es.Index.WithContext(ctx),
		h.es.Index.WithDocumentID(uuid.NewString()))
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() {
		return decodeEsError(res.StatusCode, res.Body)
	}
	return nil
}

var historyIndexMappings = map[string]string{
	esServiceCheckIndexName: `{"mappings":{"properties":{
		"service_id":{"type":"keyword"},
		"server_id":{"type":"keyword"},
		"status":{"type":"keyword"},
		"status_numeric":{"type":"integer"},
		"output":{"type":"text"},
		"timestamp":{"type":"date"}}}}`,
	esRenewalRunIndexName: `{"mappings":{"properties":{
		"renewal_id":{"type":"keyword"},
		"server_id":{"type":"keyword"},
		"status":{"type":"keyword"},
		"output":{"type":"text"},
		"duration_ms":{"type":"long"},
		"timestamp":{"type":"date"}}}}`,
}

// EnsureHistoryIndices creates the history indices with their mappings when they
// do not exist yet. Availability aggregates on service_id, which must be a keyword.
func EnsureHistoryIndices(ctx context.Context, es *elasticsearch.Client) error {
	for index, mapping := range historyIndexMappings {
		res, err := es.Indices.Exists([]string{index}, es.Indices.Exists.WithContext(ctx))
		if err != nil {
			return fmt.Errorf("EnsureHistoryIndices: %w", err)
		}
		res.Body.Close()
		if res.StatusCode == 200 {
			continue
		}
		res, err = es.Indices.Create(index,
			es.Indices.Create.WithContext(ctx),
			es.Indices.Create.WithBody(strings.NewReader(mapping)))
		if err != nil {
			return fmt.Errorf("EnsureHistoryIndices: %w", err)
		}
		if res.IsError() {
			err = decodeEsError(res.StatusCode, res.Body)
			res.Body.Close()
			var esErr *apperrors.ElasticSearchError
			if errors.As(err, &esErr) && esErr.Type == "resource_already_exists_exception" {
				continue
			}
			return fmt.Errorf("EnsureHistoryIndices: %w", err)
		}
		res.Body.Close()
	}
	return nil
}

type esAvailabilityResponse struct {
	Aggregations struct {
		Services struct {
			Buckets []struct {
				Key          string `json:"key"`
				Availability struct {
					Value float64 `json:"value"`
				} `json:"availability"`
			} `json:"buckets"`
		} `json:"services"`
	} `json:"aggregations"`
}

func (h *historyRepository) GetServicesAvailability(ctx context.Context, startTime time.Time, endTime time.Time) (map[string]float64, error) {
	query := map[string]interface{}{
		"size": 0,
		"query": map[string]interface{}{
			"range": map[string]interface{}{
				"timestamp": map[string]interface{}{
					"gte": startTime,
					"lt":  endTime,
				},
			},
		},
		"aggs": map[string]interface{}{
			"services": map[string]interface{}{
				"terms": map[string]interface{}{
					"field": "service_id",
					"size":  20000,
				},
				"aggs": map[string]interface{}{
					"availability": map[string]interface{}{
						"avg": map[string]interface{}{
							"field": "status_numeric",
						},
					},
				},
			},
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return nil, fmt.Errorf("HistoryRepo.GetServicesAvailability encode query: %w", err)
	}
	res, err := h.es.Search(
		h.es.Search.WithContext(ctx),
		h.es.Search.WithIndex(esServiceCheckIndexName),
		h.es.Search.WithBody(&buf))
	if err != nil {
		return nil, fmt.Errorf("HistoryRepo.GetServicesAvailability: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("HistoryRepo.GetServicesAvailability: %w", decodeEsError(res.StatusCode, res.Body))
	}

	var availabilityRes esAvailabilityResponse
	if err = json.NewDecoder(res.Body).Decode(&availabilityRes); err != nil {
		return nil, fmt.Errorf("HistoryRepo.GetServicesAvailability decode response body: %w", err)
	}
	availability := make(map[string]float64, len(availabilityRes.Aggregations.Services.Buckets))
	for _, bucket := range availabilityRes.Aggregations.Services.Buckets {
		availability[bucket.Key] = bucket.Availability.Value * 100
	}
	return availability, nil
}

func decodeEsError(statusCode int, body io.Reader) error {
	var e esErrorResponse
	if err := json.NewDecoder(body).Decode(&e); err != nil {
		return fmt.Errorf("decode err response: %w", err)
	}
	return apperrors.NewElasticSearchError(statusCode, e.Error.Type, e.Error.Reason)
}

func NewHistoryRepository(esClient *elasticsearch.Client) HistoryRepository {
	return &historyRepository{
		es: esClient,
	}
}

type nopHistoryRepository struct{}

func (nopHistoryRepository) RecordServiceCheck(context.Context, ServiceCheckRecord) error {
	return nil
}

func (nopHistoryRepository) RecordRenewalRun(context.Context, RenewalRunRecord) error {
	return nil
}

func (nopHistoryRepository) GetServicesAvailability(context.Context, time.Time, time.Time) (map[string]float64, error) {
	return map[string]float64{}, nil
}

// NewNopHistoryRepository discards history. Used when no Elasticsearch cluster is configured.
func NewNopHistoryRepository() HistoryRepository {
	return nopHistoryRepository{}
}
