package ingestors

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"notify-digest/internal/models"
	"notify-digest/internal/queues"
	"notify-digest/internal/shared/loggers"
	"notify-digest/internal/shared/metrics"
	"notify-digest/internal/shared/svcerrors"
	"notify-digest/internal/shared/validators"

	"github.com/goccy/go-json"
)

const (
	maxRequestBytes = 1 * 1024 * 1024
)

const (
	FormatJSON = "json"
)

// IngestResult represents the result of an ingestion request.
type IngestResult struct {
	Accepted int `json:"accepted"`
}

// eventRequest is one event as sent by a producer. OccurredAt defaults to the receive time.
type eventRequest struct {
	SourceName string     `json:"sourceName" validate:"required,max=256"`
	Kind       string     `json:"kind" validate:"required,max=64"`
	Detail     string     `json:"detail" validate:"max=65536"`
	OccurredAt *time.Time `json:"occurredAt"`
}

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// IngestEvents parses a JSON object or array of events and submits them in order.
	IngestEvents(ctx context.Context, format string, r io.Reader) (*IngestResult, error)
}

type ingestionService struct {
	queueCoordinator queues.QueueCoordinator
	validate         *validators.Validate
	now              func() time.Time
}

func NewIngestionService(queueCoordinator queues.QueueCoordinator) IngestionService {
	return &ingestionService{
		queueCoordinator: queueCoordinator,
		validate:         validators.NewJSON(),
		now:              time.Now,
	}
}

func (s *ingestionService) IngestEvents(ctx context.Context, format string, r io.Reader) (*IngestResult, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started ingesting events with format: %s", format)

	events, err := s.parseEvents(format, r)
	if err != nil {
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			metricRequestsIngestedTotal.WithLabelValues(svcErr.Code).Inc()
		}
		return nil, err
	}

	// Submission never blocks on delivery; order of Submit calls is arrival order.
	for _, event := range events {
		s.queueCoordinator.Submit(ctx, event)
	}

	metricRequestsIngestedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricEventsIngestedTotal.Add(float64(len(events)))
	return &IngestResult{Accepted: len(events)}, nil
}

func (s *ingestionService) parseEvents(format string, r io.Reader) ([]models.Event, error) {
	if !strings.Contains(strings.ToLower(format), FormatJSON) {
		return nil, errValidationFailed(fmt.Sprintf("unsupported input format: %q", format), nil)
	}
	if r == nil {
		return nil, errValidationFailed("empty request body", nil)
	}

	buf, err := io.ReadAll(io.LimitReader(r, maxRequestBytes+1))
	if err != nil {
		return nil, errValidationFailed("failed to read request body", err)
	}
	if len(buf) > maxRequestBytes {
		return nil, errValidationFailed("request too large: must be <= 1MB", nil)
	}

	buf = bytes.TrimSpace(buf)
	if len(buf) == 0 {
		return nil, errValidationFailed("empty request body", nil)
	}

	var requests []eventRequest
	if buf[0] == '[' {
		if err := json.Unmarshal(buf, &requests); err != nil {
			return nil, errValidationFailed("invalid json", err)
		}
	} else {
		var single eventRequest
		if err := json.Unmarshal(buf, &single); err != nil {
			return nil, errValidationFailed("invalid json", err)
		}
		requests = []eventRequest{single}
	}

	if len(requests) == 0 {
		return nil, errValidationFailed("events cannot be empty", nil)
	}

	receivedAt := s.now().UTC()
	events := make([]models.Event, 0, len(requests))
	for i := range requests {
		event, err := s.toEvent(&requests[i], i, receivedAt)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}

func (s *ingestionService) toEvent(req *eventRequest, index int, receivedAt time.Time) (models.Event, error) {
	req.SourceName = strings.TrimSpace(req.SourceName)
	req.Kind = strings.TrimSpace(req.Kind)

	if err := s.validate.Struct(req); err != nil {
		return models.Event{}, errValidationFailed(fmt.Sprintf("item at index %d: %s", index, validators.Describe(err)), err)
	}

	occurredAt := receivedAt
	if req.OccurredAt != nil && !req.OccurredAt.IsZero() {
		occurredAt = *req.OccurredAt
	}

	return models.Event{
		SourceName: req.SourceName,
		Kind:       req.Kind,
		Detail:     req.Detail,
		OccurredAt: occurredAt,
	}, nil
}
