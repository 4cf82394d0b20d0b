package dispatchers

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"notify-digest/internal/models"
	"notify-digest/internal/shared/loggers"
	"notify-digest/internal/shared/metrics"
	"notify-digest/internal/shared/svcerrors"

	"github.com/goccy/go-json"
)

const (
	// acknowledgment is the only response body treated as a successful dispatch.
	acknowledgment = "ok"

	defaultTimeout   = 10 * time.Second
	maxResponseBytes = 64 * 1024
)

// ClientConfig holds configuration for creating a DeliveryClient.
type ClientConfig struct {
	EndpointURL string
	DisplayName string
	Timeout     time.Duration
	// HTTPClient overrides the default client; Timeout is ignored when set.
	HTTPClient *http.Client
}

// DeliveryClient makes one best-effort attempt to hand compacted groups to the sink.
//
// Every failure is logged here with the number of events lost and returned for accounting;
// there is no retry and nothing is re-queued.
//
//go:generate mockgen -source=delivery_client.go -destination=./mocks/delivery_client_mock.go -package=mocks
type DeliveryClient interface {
	Deliver(ctx context.Context, groups []models.CompactedGroup, dropped int) *svcerrors.ServiceError
}

type deliveryClient struct {
	httpClient  *http.Client
	endpointURL string
	// endpointHost is logged instead of the URL, which often embeds a webhook token.
	endpointHost string
	displayName  string
}

func NewDeliveryClient(cfg ClientConfig) DeliveryClient {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	endpointHost := ""
	if u, err := url.Parse(cfg.EndpointURL); err == nil {
		endpointHost = u.Host
	}

	return &deliveryClient{
		httpClient:   httpClient,
		endpointURL:  cfg.EndpointURL,
		endpointHost: endpointHost,
		displayName:  cfg.DisplayName,
	}
}

func (c *deliveryClient) Deliver(ctx context.Context, groups []models.CompactedGroup, dropped int) *svcerrors.ServiceError {
	logger := loggers.Ctx(ctx)
	eventCount := models.TotalEvents(groups)

	if c.endpointURL == "" {
		svcErr := errEndpointNotConfigured()
		logger.Error().
			Str(loggers.FieldErrorCode, svcErr.Code).
			Int(loggers.FieldLostCount, eventCount).
			Msg("no endpoint_url configured, dispatch skipped; set dispatch.endpoint_url or DIGEST_DISPATCH_ENDPOINT_URL")
		c.record(svcErr, eventCount)
		return svcErr
	}

	if dropped > 0 {
		metricEventsSuppressedTotal.Add(float64(dropped))
	}

	body, err := json.Marshal(dispatchPayload{Text: RenderPayload(c.displayName, groups, dropped)})
	if err != nil {
		svcErr := errInternalEncodeFailed(err)
		c.logFailure(logger, svcErr, eventCount)
		return svcErr
	}

	start := time.Now()
	svcErr := c.post(ctx, body)
	errorCode := metrics.ValueNoError
	if svcErr != nil {
		errorCode = svcErr.Code
	}
	metricSinkRequestDuration.WithLabelValues(errorCode).Observe(time.Since(start).Seconds())

	if svcErr != nil {
		c.logFailure(logger, svcErr, eventCount)
		return svcErr
	}

	logger.Debug().
		Int(loggers.FieldGroupCount, len(groups)).
		Int(loggers.FieldEventCount, eventCount).
		Int(loggers.FieldDroppedCount, dropped).
		Msg("dispatch delivered")
	c.record(nil, eventCount)
	return nil
}

// post sends body and checks the acknowledgment.
func (c *deliveryClient) post(ctx context.Context, body []byte) *svcerrors.ServiceError {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL, bytes.NewReader(body))
	if err != nil {
		return errInternalEncodeFailed(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errTransportFailed(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return errTransportFailed(err)
	}
	if string(respBody) != acknowledgment {
		return errAcknowledgmentInvalid(resp.StatusCode, string(respBody))
	}
	return nil
}

func (c *deliveryClient) logFailure(logger *loggers.Logger, svcErr *svcerrors.ServiceError, eventCount int) {
	logger.Error().
		Err(svcErr.Cause).
		Str(loggers.FieldErrorCode, svcErr.Code).
		Str(loggers.FieldEndpoint, c.endpointHost).
		Int(loggers.FieldLostCount, eventCount).
		Msgf("error sending notification, verify the incoming webhook URL; %d unsent message(s) lost", eventCount)
	c.record(svcErr, eventCount)
}

func (c *deliveryClient) record(svcErr *svcerrors.ServiceError, eventCount int) {
	if svcErr == nil {
		metricDispatchesTotal.WithLabelValues(metrics.ValueNoError).Inc()
		return
	}
	metricDispatchesTotal.WithLabelValues(svcErr.Code).Inc()
	metricEventsLostTotal.WithLabelValues(svcErr.Code).Add(float64(eventCount))
}
